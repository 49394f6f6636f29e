package api

import (
	"time"

	"github.com/customizeworkflow/portal/internal/services"
)

func formatTemplateDate(value *time.Time, layout string) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return value.Format(layout)
}

func templateFieldError(errors map[string]string, field string) string {
	return errors[field]
}

// templateStepAnimation picks the entrance animation of the current step.
func templateStepAnimation(direction services.Direction) string {
	if direction == services.DirectionBackward {
		return "slide-in-left"
	}
	return "slide-in-right"
}

func templateStrengthTone(label services.StrengthLabel) string {
	switch label {
	case services.StrengthStrong:
		return "strength-strong"
	case services.StrengthMedium:
		return "strength-medium"
	default:
		return "strength-weak"
	}
}

func templateIsActiveGender(current string, option string) bool {
	return current == option
}

// templateSeq returns 1..count for progress markers.
func templateSeq(count int) []int {
	values := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		values = append(values, i)
	}
	return values
}
