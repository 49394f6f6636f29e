package security

import (
	"strings"
	"testing"
)

func TestRandomStringUsesOnlyAlphabet(t *testing.T) {
	const alphabet = "abc!"
	value, err := RandomString(200, alphabet)
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	if len(value) != 200 {
		t.Fatalf("expected 200 symbols, got %d", len(value))
	}
	for _, symbol := range value {
		if !strings.ContainsRune(alphabet, symbol) {
			t.Fatalf("symbol %q is outside alphabet", symbol)
		}
	}
}

func TestRandomStringCoversAlphabet(t *testing.T) {
	value, err := RandomString(2000, "xyz")
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	for _, symbol := range "xyz" {
		if !strings.ContainsRune(value, symbol) {
			t.Fatalf("expected %q to appear in 2000 draws", symbol)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("expected empty string for zero length, got %q, %v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
	if _, err := RandomString(4, strings.Repeat("a", 257)); err == nil {
		t.Fatal("expected error for oversized alphabet")
	}
}
