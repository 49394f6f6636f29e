package services

import "testing"

func TestEvaluatePasswordStrengthScoresAndLabels(t *testing.T) {
	tests := []struct {
		password  string
		wantScore int
		wantLabel StrengthLabel
	}{
		{password: "", wantScore: 0, wantLabel: StrengthWeak},
		{password: "abc", wantScore: 20, wantLabel: StrengthWeak},
		{password: "aB", wantScore: 40, wantLabel: StrengthMedium},
		{password: "aB1", wantScore: 60, wantLabel: StrengthMedium},
		{password: "aB1!", wantScore: 80, wantLabel: StrengthStrong},
		{password: "Abcdef1!", wantScore: 100, wantLabel: StrengthStrong},
	}

	for _, testCase := range tests {
		got := EvaluatePasswordStrength(testCase.password)
		if got.Score != testCase.wantScore {
			t.Fatalf("score(%q) = %d, want %d", testCase.password, got.Score, testCase.wantScore)
		}
		if got.Label != testCase.wantLabel {
			t.Fatalf("label(%q) = %q, want %q", testCase.password, got.Label, testCase.wantLabel)
		}
		if got.Score != got.Checks.Passed()*20 {
			t.Fatalf("score(%q) = %d does not follow %d passed checks", testCase.password, got.Score, got.Checks.Passed())
		}
	}
}

func TestEvaluatePasswordStrengthIsDeterministic(t *testing.T) {
	first := EvaluatePasswordStrength("abc")
	second := EvaluatePasswordStrength("abc")
	if first != second {
		t.Fatalf("expected equal results for equal input, got %+v and %+v", first, second)
	}
}

func TestStrengthLabelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  StrengthLabel
	}{
		{score: 0, want: StrengthWeak},
		{score: 39, want: StrengthWeak},
		{score: 40, want: StrengthMedium},
		{score: 79, want: StrengthMedium},
		{score: 80, want: StrengthStrong},
		{score: 100, want: StrengthStrong},
	}

	for _, testCase := range tests {
		if got := strengthLabel(testCase.score); got != testCase.want {
			t.Fatalf("strengthLabel(%d) = %q, want %q", testCase.score, got, testCase.want)
		}
	}
}
