package httperr

import "errors"

// Business error codes. Everything here is a caller-input problem; anything
// else that bubbles up from the store is a server error.
const (
	CodeDuplicateEmail        = "duplicate_email"
	CodeInvalidReference      = "invalid_reference"
	CodeClientNotFound        = "client_not_found"
	CodeReservationNotFound   = "reservation_not_found"
	CodeInvalidDate           = "invalid_date"
	CodeHasActiveReservations = "has_active_reservations"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError, reporting whether it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
