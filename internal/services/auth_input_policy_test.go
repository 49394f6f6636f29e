package services

import "testing"

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "normalizes case and spaces", raw: " USER@EXAMPLE.COM ", want: "user@example.com"},
		{name: "invalid email returns empty", raw: "not-email", want: ""},
		{name: "display name form returns empty", raw: "User <user@example.com>", want: ""},
		{name: "empty returns empty", raw: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestValidateEmailInput(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "a@b.co", want: ""},
		{email: "abc", want: MessageEmailInvalid},
		{email: "", want: MessageEmailRequired},
		{email: "   ", want: MessageEmailRequired},
		{email: "a@b", want: MessageEmailInvalid},
	}

	for _, testCase := range tests {
		if got := validateEmailInput(testCase.email); got != testCase.want {
			t.Fatalf("validateEmailInput(%q) = %q, want %q", testCase.email, got, testCase.want)
		}
	}
}

func TestOTPFormat(t *testing.T) {
	if !isValidOTPCode("123456") {
		t.Fatal("expected 123456 to be a valid code")
	}
	for _, code := range []string{"12a456", "1234", "1234567", ""} {
		if isValidOTPCode(code) {
			t.Fatalf("expected %q to be rejected", code)
		}
	}

	if !isDigitsOnly("") || !isDigitsOnly("0042") {
		t.Fatal("expected digit-only input to be accepted")
	}
	if isDigitsOnly("12a") || isDigitsOnly("12 3") {
		t.Fatal("expected non-digit input to be rejected")
	}
}
