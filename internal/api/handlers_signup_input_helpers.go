package api

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const signupDateLayout = "2006-01-02"

var errInvalidSignupInput = errors.New("invalid signup input")

// parseSignupValues reads the posted signup inputs as raw key/value pairs,
// from a JSON object or a urlencoded form.
func parseSignupValues(c *fiber.Ctx) (map[string]string, error) {
	values := make(map[string]string)
	if isJSONBody(c) {
		if len(c.Body()) == 0 {
			return values, nil
		}
		if err := json.Unmarshal(c.Body(), &values); err != nil {
			return nil, errInvalidSignupInput
		}
		return values, nil
	}

	c.Request().PostArgs().VisitAll(func(key []byte, value []byte) {
		values[string(key)] = string(value)
	})
	return values, nil
}

// applySignupValues feeds posted inputs into the wizard. Only inputs whose
// value changed count as edits, so re-posting a page does not clear the
// errors of untouched fields. Unknown keys are ignored, and rejected otp or
// gender input keeps the previous value.
func applySignupValues(wizard *services.SignupWizard, values map[string]string) {
	current := wizard.Fields()
	for key, value := range values {
		field, ok := services.ParseFormField(key)
		if !ok {
			continue
		}

		switch field {
		case services.FieldDateOfBirth:
			applyDateOfBirth(wizard, current.DateOfBirth, value)
		case services.FieldGender:
			gender := services.Gender(strings.TrimSpace(value))
			if gender != current.Gender {
				_ = wizard.SetGender(gender)
			}
		default:
			if existing, _ := current.Text(field); existing != value {
				_ = wizard.SetField(field, value)
			}
		}
	}
}

func applyDateOfBirth(wizard *services.SignupWizard, current *time.Time, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if current != nil {
			wizard.SetDateOfBirth(nil)
		}
		return
	}

	dob, err := time.ParseInLocation(signupDateLayout, raw, time.UTC)
	if err != nil {
		return
	}
	if current != nil && current.Equal(dob) {
		return
	}
	wizard.SetDateOfBirth(&dob)
}

func wizardProgress(wizard *services.SignupWizard) fiber.Map {
	return fiber.Map{
		"ok":        true,
		"step":      wizard.Step(),
		"total":     wizard.StepCount(),
		"direction": string(wizard.Direction()),
	}
}
