package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

var ErrWeakPassword = errors.New("weak password")

const MinPasswordLength = 8

const (
	MessagePasswordTooShort     = "Password must be at least 8 characters long."
	MessagePasswordNoUppercase  = "Password must contain an uppercase letter."
	MessagePasswordNoLowercase  = "Password must contain a lowercase letter."
	MessagePasswordNoDigit      = "Password must contain a number."
	MessagePasswordNoSpecialChr = "Password must contain a special character."
)

// PasswordChecks holds the five password requirements. It is always derived
// from a password by CheckPassword and never stored on its own.
type PasswordChecks struct {
	MinLength bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digit     bool `json:"digit"`
	Special   bool `json:"special"`
}

func CheckPassword(password string) PasswordChecks {
	checks := PasswordChecks{
		MinLength: utf8.RuneCountInString(password) >= MinPasswordLength,
	}
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			checks.Uppercase = true
		case unicode.IsLower(char):
			checks.Lowercase = true
		case unicode.IsDigit(char):
			checks.Digit = true
		case !unicode.IsLetter(char) && !unicode.IsSpace(char):
			checks.Special = true
		}
	}
	return checks
}

// Passed counts the satisfied requirements.
func (checks PasswordChecks) Passed() int {
	passed := 0
	for _, ok := range []bool{checks.MinLength, checks.Uppercase, checks.Lowercase, checks.Digit, checks.Special} {
		if ok {
			passed++
		}
	}
	return passed
}

func (checks PasswordChecks) AllPassed() bool {
	return checks.Passed() == 5
}

// FirstFailure returns the message of the first unmet requirement in the
// order length, uppercase, lowercase, digit, special; "" when all pass.
func (checks PasswordChecks) FirstFailure() string {
	switch {
	case !checks.MinLength:
		return MessagePasswordTooShort
	case !checks.Uppercase:
		return MessagePasswordNoUppercase
	case !checks.Lowercase:
		return MessagePasswordNoLowercase
	case !checks.Digit:
		return MessagePasswordNoDigit
	case !checks.Special:
		return MessagePasswordNoSpecialChr
	default:
		return ""
	}
}

func ValidatePasswordStrength(password string) error {
	if CheckPassword(password).AllPassed() {
		return nil
	}
	return ErrWeakPassword
}
