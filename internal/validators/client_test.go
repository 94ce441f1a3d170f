package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }

func TestValidateClientCreate(t *testing.T) {
	tests := []struct {
		name       string
		clientName string
		email      string
		password   string
		phone      string
		age        int
		wantErrs   int
	}{
		{
			name:       "valid client",
			clientName: "Ana Ruiz",
			email:      "ana@x.com",
			password:   "123456",
			phone:      "+573000000",
			age:        25,
			wantErrs:   0,
		},
		{
			name:       "name too short",
			clientName: "A",
			email:      "ana@x.com",
			password:   "123456",
			phone:      "+573000000",
			age:        25,
			wantErrs:   1,
		},
		{
			name:       "name too long",
			clientName: strings.Repeat("a", 51),
			email:      "ana@x.com",
			password:   "123456",
			phone:      "+573000000",
			age:        25,
			wantErrs:   1,
		},
		{
			name:       "bad email",
			clientName: "Ana Ruiz",
			email:      "not-an-email",
			password:   "123456",
			phone:      "+573000000",
			age:        25,
			wantErrs:   1,
		},
		{
			name:       "short password",
			clientName: "Ana Ruiz",
			email:      "ana@x.com",
			password:   "12345",
			phone:      "+573000000",
			age:        25,
			wantErrs:   1,
		},
		{
			name:       "bad phone",
			clientName: "Ana Ruiz",
			email:      "ana@x.com",
			password:   "123456",
			phone:      "phone",
			age:        25,
			wantErrs:   1,
		},
		{
			name:       "age below range",
			clientName: "Ana Ruiz",
			email:      "ana@x.com",
			password:   "123456",
			phone:      "+573000000",
			age:        17,
			wantErrs:   1,
		},
		{
			name:       "age above range",
			clientName: "Ana Ruiz",
			email:      "ana@x.com",
			password:   "123456",
			phone:      "+573000000",
			age:        121,
			wantErrs:   1,
		},
		{
			name:       "every field invalid collects every violation",
			clientName: "",
			email:      "",
			password:   "",
			phone:      "",
			age:        0,
			wantErrs:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateClientCreate(tt.clientName, tt.email, tt.password, tt.phone, tt.age)
			assert.Len(t, errs, tt.wantErrs)
		})
	}
}

func TestValidateClientUpdate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		assert.Empty(t, ValidateClientUpdate(nil, nil, nil, nil, nil))
	})

	t.Run("only present fields are checked", func(t *testing.T) {
		errs := ValidateClientUpdate(nil, strPtr("bad"), nil, nil, nil)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0], "email")
	})

	t.Run("present fields follow the create rules", func(t *testing.T) {
		errs := ValidateClientUpdate(strPtr("X"), nil, strPtr("123"), nil, intPtr(10))
		assert.Len(t, errs, 3)
	})

	t.Run("valid patch", func(t *testing.T) {
		errs := ValidateClientUpdate(strPtr("Ana Ruiz"), strPtr("ana@x.com"), nil, strPtr("3000000"), intPtr(30))
		assert.Empty(t, errs)
	})
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ana@x.com"))
	assert.True(t, IsValidEmail("Ana.Ruiz+taller@example.co"))
	assert.False(t, IsValidEmail("ana@x"))
	assert.False(t, IsValidEmail("@x.com"))
	assert.False(t, IsValidEmail("ana x@x.com"))
	assert.False(t, IsValidEmail(""))
}
