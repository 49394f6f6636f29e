package api

import (
	"log"
	"strings"
	"time"

	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const signupCookiePurpose = "signup-wizard"

// loadSignupWizard restores the wizard of this browser, or starts a new one
// when the cookie is missing, expired, tampered with or malformed.
func (handler *Handler) loadSignupWizard(c *fiber.Ctx) *services.SignupWizard {
	raw := strings.TrimSpace(c.Cookies(signupCookieName))
	if raw == "" {
		return services.NewSignupWizard(handler.signupSteps...)
	}

	snapshot := services.SignupSnapshot{}
	if err := handler.cookieCodec.open(signupCookiePurpose, raw, &snapshot); err != nil {
		handler.clearSignupCookie(c)
		return services.NewSignupWizard(handler.signupSteps...)
	}

	wizard, err := services.RestoreSignupWizard(snapshot)
	if err != nil {
		log.Printf("discarding signup session: %v", err)
		handler.clearSignupCookie(c)
		return services.NewSignupWizard(handler.signupSteps...)
	}
	return wizard
}

func (handler *Handler) saveSignupWizard(c *fiber.Ctx, wizard *services.SignupWizard) error {
	value, err := handler.cookieCodec.seal(signupCookiePurpose, wizard.Snapshot())
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     signupCookieName,
		Value:    value,
		Path:     "/signup",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(signupSessionTTL),
	})
	return nil
}

func (handler *Handler) clearSignupCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     signupCookieName,
		Value:    "",
		Path:     "/signup",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
