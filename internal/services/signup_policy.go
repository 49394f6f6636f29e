package services

import (
	"strings"
	"time"
)

// SignupStep identifies the rule set and inputs of one wizard page.
type SignupStep string

const (
	StepPersonalInfo SignupStep = "personal_info"
	StepVerification SignupStep = "verification"
	StepSecurity     SignupStep = "security"
	StepProfile      SignupStep = "profile"
)

func (step SignupStep) known() bool {
	switch step {
	case StepPersonalInfo, StepVerification, StepSecurity, StepProfile:
		return true
	default:
		return false
	}
}

const (
	MessageFirstNameRequired       = "First name is required."
	MessageLastNameRequired        = "Last name is required."
	MessageOTPInvalid              = "Enter a valid 6-digit OTP."
	MessagePasswordRequired        = "Password is required."
	MessageConfirmPasswordRequired = "Please confirm your password."
	MessagePasswordsMismatch       = "Passwords do not match."
	MessageDateOfBirthRequired     = "Date of birth is required."
	MessageGenderRequired          = "Please select a gender."
)

// SignupFields is the full signup form state.
type SignupFields struct {
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	OTP             string     `json:"otp"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirmPassword"`
	DateOfBirth     *time.Time `json:"dob,omitempty"`
	Gender          Gender     `json:"gender"`
}

// Text returns the value of a text input. Date of birth and gender are not
// text inputs and report false.
func (fields SignupFields) Text(field FormField) (string, bool) {
	switch field {
	case FieldFirstName:
		return fields.FirstName, true
	case FieldLastName:
		return fields.LastName, true
	case FieldEmail:
		return fields.Email, true
	case FieldPhone:
		return fields.Phone, true
	case FieldOTP:
		return fields.OTP, true
	case FieldPassword:
		return fields.Password, true
	case FieldConfirmPassword:
		return fields.ConfirmPassword, true
	default:
		return "", false
	}
}

func (fields SignupFields) clone() SignupFields {
	if fields.DateOfBirth != nil {
		dob := *fields.DateOfBirth
		fields.DateOfBirth = &dob
	}
	return fields
}

// ValidateSignupStep runs every rule of step against fields and reports all
// failing fields at once. It never mutates anything.
func ValidateSignupStep(step SignupStep, fields SignupFields) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepPersonalInfo:
		if strings.TrimSpace(fields.FirstName) == "" {
			errs.set(FieldFirstName, MessageFirstNameRequired)
		}
		if strings.TrimSpace(fields.LastName) == "" {
			errs.set(FieldLastName, MessageLastNameRequired)
		}
		errs.set(FieldEmail, validateEmailInput(fields.Email))
	case StepVerification:
		if !isValidOTPCode(fields.OTP) {
			errs.set(FieldOTP, MessageOTPInvalid)
		}
	case StepSecurity:
		if fields.Password == "" {
			errs.set(FieldPassword, MessagePasswordRequired)
		} else {
			errs.set(FieldPassword, CheckPassword(fields.Password).FirstFailure())
		}
		switch {
		case fields.ConfirmPassword == "":
			errs.set(FieldConfirmPassword, MessageConfirmPasswordRequired)
		case fields.ConfirmPassword != fields.Password:
			errs.set(FieldConfirmPassword, MessagePasswordsMismatch)
		}
	case StepProfile:
		if fields.DateOfBirth == nil || fields.DateOfBirth.IsZero() {
			errs.set(FieldDateOfBirth, MessageDateOfBirthRequired)
		}
		if fields.Gender == "" {
			errs.set(FieldGender, MessageGenderRequired)
		}
	}
	return errs
}
