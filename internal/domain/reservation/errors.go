package reservation

import "errors"

// Store-level sentinels. The GORM repository translates driver errors into
// these so the use cases never depend on the driver.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
