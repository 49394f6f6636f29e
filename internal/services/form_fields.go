package services

import "strings"

// FormField names an input of the login or signup form. The values double
// as the HTML form keys and the JSON keys of the API.
type FormField string

const (
	FieldFirstName       FormField = "firstName"
	FieldLastName        FormField = "lastName"
	FieldEmail           FormField = "email"
	FieldPhone           FormField = "phone"
	FieldOTP             FormField = "otp"
	FieldPassword        FormField = "password"
	FieldConfirmPassword FormField = "confirmPassword"
	FieldDateOfBirth     FormField = "dob"
	FieldGender          FormField = "gender"
)

// ParseFormField maps a raw form key to a known field.
func ParseFormField(raw string) (FormField, bool) {
	field := FormField(strings.TrimSpace(raw))
	switch field {
	case FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldOTP,
		FieldPassword, FieldConfirmPassword, FieldDateOfBirth, FieldGender:
		return field, true
	default:
		return "", false
	}
}

// FieldErrors maps a field to its validation message. A field without an
// error is absent; empty messages are never stored.
type FieldErrors map[FormField]string

func (errs FieldErrors) set(field FormField, message string) {
	if message == "" {
		return
	}
	errs[field] = message
}

// Message returns the error message of field, or "" when it has none.
func (errs FieldErrors) Message(field FormField) string {
	return errs[field]
}

func (errs FieldErrors) Has(field FormField) bool {
	_, ok := errs[field]
	return ok
}

func (errs FieldErrors) Clone() FieldErrors {
	cloned := make(FieldErrors, len(errs))
	for field, message := range errs {
		cloned[field] = message
	}
	return cloned
}

// Strings returns the errors keyed by plain strings, for templates and JSON.
func (errs FieldErrors) Strings() map[string]string {
	result := make(map[string]string, len(errs))
	for field, message := range errs {
		result[string(field)] = message
	}
	return result
}

// Gender is the profile gender choice. The zero value means unset.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (gender Gender) Valid() bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}
