package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

const (
	MessageEmailRequired = "Email is required."
	MessageEmailInvalid  = "Invalid email format."
)

var (
	emailFormatRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
	otpDigitsRegex   = regexp.MustCompile(`^[0-9]*$`)
	otpCodeRegex     = regexp.MustCompile(`^[0-9]{6}$`)
)

// validateEmailInput checks presence on the trimmed value and the format on
// the value as typed.
func validateEmailInput(email string) string {
	if strings.TrimSpace(email) == "" {
		return MessageEmailRequired
	}
	if !emailFormatRegex.MatchString(email) {
		return MessageEmailInvalid
	}
	return ""
}

func isDigitsOnly(value string) bool {
	return otpDigitsRegex.MatchString(value)
}

func isValidOTPCode(value string) bool {
	return otpCodeRegex.MatchString(value)
}

// NormalizeAuthEmail returns the lower-cased address used as the account key,
// or "" when the address cannot be parsed.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}
