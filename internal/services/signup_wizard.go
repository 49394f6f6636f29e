package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownSignupField     = errors.New("unknown signup field")
	ErrSignupOTPNotDigits     = errors.New("otp must contain digits only")
	ErrSignupGenderInvalid    = errors.New("invalid gender")
	ErrSignupNotFinalStep     = errors.New("signup can only be submitted from the final step")
	ErrSignupValidationFailed = errors.New("signup validation failed")
	ErrSignupSnapshotInvalid  = errors.New("invalid signup snapshot")
)

// Direction records which way the last transition went. Only the page
// animation depends on it.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

var (
	// DefaultSignupSteps is the four page wizard with a password page.
	DefaultSignupSteps = []SignupStep{StepPersonalInfo, StepVerification, StepSecurity, StepProfile}
	// CompactSignupSteps is the three page wizard without a password page.
	CompactSignupSteps = []SignupStep{StepPersonalInfo, StepVerification, StepProfile}
)

// SignupPayload is what a completed wizard hands to the account backend.
type SignupPayload struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Password    string
	DateOfBirth time.Time
	Gender      Gender
}

// SignupWizard is the signup form controller. It is owned by one request at
// a time and is not safe for concurrent use.
type SignupWizard struct {
	sessionID string
	steps     []SignupStep
	step      int
	direction Direction
	fields    SignupFields
	errors    FieldErrors
	strength  PasswordStrength
}

// NewSignupWizard starts a wizard at step 1 with empty fields. Without steps
// it uses DefaultSignupSteps.
func NewSignupWizard(steps ...SignupStep) *SignupWizard {
	if len(steps) == 0 {
		steps = DefaultSignupSteps
	}
	layout := make([]SignupStep, len(steps))
	copy(layout, steps)

	return &SignupWizard{
		sessionID: uuid.NewString(),
		steps:     layout,
		step:      1,
		direction: DirectionForward,
		errors:    FieldErrors{},
		strength:  EvaluatePasswordStrength(""),
	}
}

func (wizard *SignupWizard) SessionID() string { return wizard.sessionID }

func (wizard *SignupWizard) Step() int { return wizard.step }

func (wizard *SignupWizard) StepCount() int { return len(wizard.steps) }

func (wizard *SignupWizard) CurrentStep() SignupStep { return wizard.steps[wizard.step-1] }

func (wizard *SignupWizard) IsFinalStep() bool { return wizard.step == len(wizard.steps) }

func (wizard *SignupWizard) Direction() Direction { return wizard.direction }

func (wizard *SignupWizard) Strength() PasswordStrength { return wizard.strength }

func (wizard *SignupWizard) Fields() SignupFields { return wizard.fields.clone() }

func (wizard *SignupWizard) Errors() FieldErrors { return wizard.errors.Clone() }

func (wizard *SignupWizard) Steps() []SignupStep {
	steps := make([]SignupStep, len(wizard.steps))
	copy(steps, wizard.steps)
	return steps
}

// SetField stores a text field and drops its error. Setting the password
// recomputes the strength meter. otp is routed through SetOTP.
func (wizard *SignupWizard) SetField(field FormField, value string) error {
	switch field {
	case FieldFirstName:
		wizard.fields.FirstName = value
	case FieldLastName:
		wizard.fields.LastName = value
	case FieldEmail:
		wizard.fields.Email = value
	case FieldPhone:
		wizard.fields.Phone = value
	case FieldPassword:
		wizard.fields.Password = value
		wizard.strength = EvaluatePasswordStrength(value)
	case FieldConfirmPassword:
		wizard.fields.ConfirmPassword = value
	case FieldOTP:
		return wizard.SetOTP(value)
	default:
		return ErrUnknownSignupField
	}
	delete(wizard.errors, field)
	return nil
}

// SetOTP accepts digit-only input, including "". Anything else is rejected
// and leaves the wizard untouched.
func (wizard *SignupWizard) SetOTP(value string) error {
	if !isDigitsOnly(value) {
		return ErrSignupOTPNotDigits
	}
	wizard.fields.OTP = value
	delete(wizard.errors, FieldOTP)
	return nil
}

// SetDateOfBirth stores the date, or clears it when dob is nil.
func (wizard *SignupWizard) SetDateOfBirth(dob *time.Time) {
	if dob == nil {
		wizard.fields.DateOfBirth = nil
	} else {
		value := *dob
		wizard.fields.DateOfBirth = &value
	}
	delete(wizard.errors, FieldDateOfBirth)
}

func (wizard *SignupWizard) SetGender(gender Gender) error {
	if !gender.Valid() {
		return ErrSignupGenderInvalid
	}
	wizard.fields.Gender = gender
	delete(wizard.errors, FieldGender)
	return nil
}

// Advance validates the current step. On failure the error map is replaced
// and the step is kept; on success errors are cleared and the wizard moves
// forward, never past the last step.
func (wizard *SignupWizard) Advance() bool {
	if !wizard.validateCurrentStep() {
		return false
	}
	wizard.direction = DirectionForward
	if wizard.step < len(wizard.steps) {
		wizard.step++
	}
	return true
}

// Retreat moves back one step, never before the first. Fields and errors
// are kept.
func (wizard *SignupWizard) Retreat() {
	wizard.direction = DirectionBackward
	if wizard.step > 1 {
		wizard.step--
	}
}

// Submit validates the final step and returns the account payload. The
// wizard is not reset.
func (wizard *SignupWizard) Submit() (SignupPayload, error) {
	if !wizard.IsFinalStep() {
		return SignupPayload{}, ErrSignupNotFinalStep
	}
	if !wizard.validateCurrentStep() {
		return SignupPayload{}, ErrSignupValidationFailed
	}

	payload := SignupPayload{
		FirstName: wizard.fields.FirstName,
		LastName:  wizard.fields.LastName,
		Email:     wizard.fields.Email,
		Phone:     wizard.fields.Phone,
		Password:  wizard.fields.Password,
		Gender:    wizard.fields.Gender,
	}
	if wizard.fields.DateOfBirth != nil {
		payload.DateOfBirth = *wizard.fields.DateOfBirth
	}
	return payload, nil
}

func (wizard *SignupWizard) validateCurrentStep() bool {
	wizard.errors = ValidateSignupStep(wizard.CurrentStep(), wizard.fields)
	return len(wizard.errors) == 0
}
