package domain

import "regexp"

// +1234567890 OR 123-456-7890
var phoneRe = regexp.MustCompile(`^(\+\d{7,15}|\d{3}-\d{3}-\d{4})$`)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePhone checks the phone pattern. An absent phone is always valid.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateEmailFormat checks the email shape only. Uniqueness is a separate,
// point-in-time check against the store; the store's unique constraint
// remains the final authority under concurrent writers.
func ValidateEmailFormat(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
