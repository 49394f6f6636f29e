package services

type StrengthLabel string

const (
	StrengthWeak   StrengthLabel = "Weak"
	StrengthMedium StrengthLabel = "Medium"
	StrengthStrong StrengthLabel = "Strong"
)

// PasswordStrength is the meter shown under the password input.
type PasswordStrength struct {
	Score  int            `json:"strength"`
	Label  StrengthLabel  `json:"label"`
	Checks PasswordChecks `json:"checks"`
}

// EvaluatePasswordStrength scores a password at 20 points per satisfied
// requirement.
func EvaluatePasswordStrength(password string) PasswordStrength {
	checks := CheckPassword(password)
	score := checks.Passed() * 20
	return PasswordStrength{
		Score:  score,
		Label:  strengthLabel(score),
		Checks: checks,
	}
}

func strengthLabel(score int) StrengthLabel {
	switch {
	case score < 40:
		return StrengthWeak
	case score < 80:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
