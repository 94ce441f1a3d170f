package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Simple international format: optional +, 7 to 15 digits.
var phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

const (
	nameMin = 2
	nameMax = 50

	passwordMin = 6

	ageMin = 18
	ageMax = 120
)

func checkName(name string) []string {
	if n := utf8.RuneCountInString(name); n < nameMin || n > nameMax {
		return []string{fmt.Sprintf("name must be between %d and %d characters", nameMin, nameMax)}
	}
	return nil
}

func checkEmail(email string) []string {
	if !IsValidEmail(email) {
		return []string{"email must be a valid email address"}
	}
	return nil
}

func checkPassword(password string) []string {
	if utf8.RuneCountInString(password) < passwordMin {
		return []string{fmt.Sprintf("password must be at least %d characters", passwordMin)}
	}
	return nil
}

func checkPhone(phone string) []string {
	if !phoneRe.MatchString(phone) {
		return []string{"phone must contain 7 to 15 digits, optionally prefixed with +"}
	}
	return nil
}

func checkAge(age int) []string {
	if age < ageMin || age > ageMax {
		return []string{fmt.Sprintf("age must be between %d and %d", ageMin, ageMax)}
	}
	return nil
}

// ValidateClientCreate applies every rule and returns the full list of
// violations, never just the first one.
func ValidateClientCreate(name, email, password, phone string, age int) []string {
	var errs []string
	errs = append(errs, checkName(name)...)
	errs = append(errs, checkEmail(email)...)
	errs = append(errs, checkPassword(password)...)
	errs = append(errs, checkPhone(phone)...)
	errs = append(errs, checkAge(age)...)
	return errs
}

// ValidateClientUpdate validates only the fields present in the patch.
func ValidateClientUpdate(name, email, password, phone *string, age *int) []string {
	var errs []string
	if name != nil {
		errs = append(errs, checkName(*name)...)
	}
	if email != nil {
		errs = append(errs, checkEmail(*email)...)
	}
	if password != nil {
		errs = append(errs, checkPassword(*password)...)
	}
	if phone != nil {
		errs = append(errs, checkPhone(*phone)...)
	}
	if age != nil {
		errs = append(errs, checkAge(*age)...)
	}
	return errs
}
