package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const snapshotDateLayout = "2006-01-02"

// SignupSnapshot is the serializable state of a wizard between requests.
type SignupSnapshot struct {
	SessionID       string            `msgpack:"sid"`
	Steps           []string          `msgpack:"steps"`
	Step            int               `msgpack:"step"`
	Direction       string            `msgpack:"dir"`
	FirstName       string            `msgpack:"first_name"`
	LastName        string            `msgpack:"last_name"`
	Email           string            `msgpack:"email"`
	Phone           string            `msgpack:"phone"`
	OTP             string            `msgpack:"otp"`
	Password        string            `msgpack:"password"`
	ConfirmPassword string            `msgpack:"confirm_password"`
	DateOfBirth     string            `msgpack:"dob,omitempty"`
	Gender          string            `msgpack:"gender,omitempty"`
	Errors          map[string]string `msgpack:"errors,omitempty"`
}

func (wizard *SignupWizard) Snapshot() SignupSnapshot {
	steps := make([]string, len(wizard.steps))
	for index, step := range wizard.steps {
		steps[index] = string(step)
	}

	snapshot := SignupSnapshot{
		SessionID:       wizard.sessionID,
		Steps:           steps,
		Step:            wizard.step,
		Direction:       string(wizard.direction),
		FirstName:       wizard.fields.FirstName,
		LastName:        wizard.fields.LastName,
		Email:           wizard.fields.Email,
		Phone:           wizard.fields.Phone,
		OTP:             wizard.fields.OTP,
		Password:        wizard.fields.Password,
		ConfirmPassword: wizard.fields.ConfirmPassword,
		Gender:          string(wizard.fields.Gender),
		Errors:          wizard.errors.Strings(),
	}
	if wizard.fields.DateOfBirth != nil {
		snapshot.DateOfBirth = wizard.fields.DateOfBirth.Format(snapshotDateLayout)
	}
	return snapshot
}

// RestoreSignupWizard rebuilds a wizard from a snapshot, rejecting any state
// the setters could not have produced.
func RestoreSignupWizard(snapshot SignupSnapshot) (*SignupWizard, error) {
	if len(snapshot.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrSignupSnapshotInvalid)
	}
	steps := make([]SignupStep, len(snapshot.Steps))
	for index, raw := range snapshot.Steps {
		step := SignupStep(raw)
		if !step.known() {
			return nil, fmt.Errorf("%w: unknown step %q", ErrSignupSnapshotInvalid, raw)
		}
		steps[index] = step
	}
	if snapshot.Step < 1 || snapshot.Step > len(steps) {
		return nil, fmt.Errorf("%w: step %d out of range", ErrSignupSnapshotInvalid, snapshot.Step)
	}

	direction := Direction(snapshot.Direction)
	switch direction {
	case "":
		direction = DirectionForward
	case DirectionForward, DirectionBackward:
	default:
		return nil, fmt.Errorf("%w: direction %q", ErrSignupSnapshotInvalid, snapshot.Direction)
	}

	gender := Gender(snapshot.Gender)
	if gender != "" && !gender.Valid() {
		return nil, fmt.Errorf("%w: gender %q", ErrSignupSnapshotInvalid, snapshot.Gender)
	}
	if !isDigitsOnly(snapshot.OTP) {
		return nil, fmt.Errorf("%w: otp", ErrSignupSnapshotInvalid)
	}

	fields := SignupFields{
		FirstName:       snapshot.FirstName,
		LastName:        snapshot.LastName,
		Email:           snapshot.Email,
		Phone:           snapshot.Phone,
		OTP:             snapshot.OTP,
		Password:        snapshot.Password,
		ConfirmPassword: snapshot.ConfirmPassword,
		Gender:          gender,
	}
	if snapshot.DateOfBirth != "" {
		dob, err := time.Parse(snapshotDateLayout, snapshot.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: dob: %v", ErrSignupSnapshotInvalid, err)
		}
		fields.DateOfBirth = &dob
	}

	errs := FieldErrors{}
	for raw, message := range snapshot.Errors {
		field, ok := ParseFormField(raw)
		if !ok {
			continue
		}
		errs.set(field, message)
	}

	sessionID := snapshot.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return &SignupWizard{
		sessionID: sessionID,
		steps:     steps,
		step:      snapshot.Step,
		direction: direction,
		fields:    fields,
		errors:    errs,
		strength:  EvaluatePasswordStrength(fields.Password),
	}, nil
}
