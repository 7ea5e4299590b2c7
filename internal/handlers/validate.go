package handlers

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	patientIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	namePattern      = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// PasswordSpecials is the accepted special-character set for passwords.
const PasswordSpecials = "!@#$%^&*()-_+="

func ValidatePatientID(id string) error {
	if !patientIDPattern.MatchString(id) {
		return errors.New("Patient ID must contain only letters and digits")
	}
	return nil
}

func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.New("Name must contain only letters and spaces")
	}
	return nil
}

// ValidatePassword enforces length 8-16 with at least one uppercase
// letter, one digit and one special character from PasswordSpecials.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > 16 {
		return errors.New("Password must be 8-16 characters long")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("Password must contain an uppercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain a digit")
	}
	if !hasSpecial {
		return errors.New("Password must contain a special character")
	}
	return nil
}
