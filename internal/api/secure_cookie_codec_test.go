package api

import (
	"errors"
	"strings"
	"testing"

	"github.com/customizeworkflow/portal/internal/services"
)

func TestSecureCookieCodecRoundTrip(t *testing.T) {
	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("init codec: %v", err)
	}

	wizard := services.NewSignupWizard()
	_ = wizard.SetField(services.FieldFirstName, "Jane")
	sealed, err := codec.seal(signupCookiePurpose, wizard.Snapshot())
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if strings.Contains(sealed, "Jane") {
		t.Fatal("expected sealed value to hide the payload")
	}

	snapshot := services.SignupSnapshot{}
	if err := codec.open(signupCookiePurpose, sealed, &snapshot); err != nil {
		t.Fatalf("open: %v", err)
	}
	if snapshot.FirstName != "Jane" || snapshot.SessionID != wizard.SessionID() {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestSecureCookieCodecRejectsForeignValues(t *testing.T) {
	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("init codec: %v", err)
	}
	other, err := newSecureCookieCodec([]byte("another-secret-key-0123456789abcdef"))
	if err != nil {
		t.Fatalf("init other codec: %v", err)
	}

	sealed, err := codec.seal(signupCookiePurpose, services.NewSignupWizard().Snapshot())
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	snapshot := services.SignupSnapshot{}
	cases := map[string]func() error{
		"wrong purpose": func() error { return codec.open("flash", sealed, &snapshot) },
		"wrong key":     func() error { return other.open(signupCookiePurpose, sealed, &snapshot) },
		"bad version":   func() error { return codec.open(signupCookiePurpose, "v2"+sealed[2:], &snapshot) },
		"truncated":     func() error { return codec.open(signupCookiePurpose, sealed[:len(sealed)-4], &snapshot) },
		"garbage":       func() error { return codec.open(signupCookiePurpose, "not-a-cookie", &snapshot) },
	}
	for name, open := range cases {
		if err := open(); !errors.Is(err, errInvalidSecureCookieValue) {
			t.Fatalf("%s: expected errInvalidSecureCookieValue, got %v", name, err)
		}
	}

	if _, err := newSecureCookieCodec(nil); err == nil {
		t.Fatal("expected empty secret to fail")
	}
}
