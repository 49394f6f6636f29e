package api

import (
	"errors"
	"log"

	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	signupPath = "/signup"

	messageEmailTaken       = "An account with this email already exists."
	messageSignupIncomplete = "Please complete every step before creating your account."
	messageSignupFailed     = "Could not create your account. Please try again."
)

func (handler *Handler) ShowSignupPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedAccount(c) != nil {
		return redirectToPath(c, postAuthPath)
	}

	var wizard *services.SignupWizard
	if c.Query("restart") == "1" {
		wizard = services.NewSignupWizard(handler.signupSteps...)
	} else {
		wizard = handler.loadSignupWizard(c)
	}
	if err := handler.saveSignupWizard(c, wizard); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save signup session")
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "signup", buildSignupPageData(wizard, flash.FormError))
}

func (handler *Handler) SignupNext(c *fiber.Ctx) error {
	wizard, err := handler.loadSignupInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	advanced := wizard.Advance()
	if err := handler.saveSignupWizard(c, wizard); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save signup session")
	}

	if acceptsJSON(c) {
		if !advanced {
			return validationError(c, wizard.Errors().Strings(), fiber.Map{"step": wizard.Step()})
		}
		return c.JSON(wizardProgress(wizard))
	}
	return redirectToPath(c, signupPath)
}

func (handler *Handler) SignupBack(c *fiber.Ctx) error {
	wizard, err := handler.loadSignupInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	wizard.Retreat()
	if err := handler.saveSignupWizard(c, wizard); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save signup session")
	}

	if acceptsJSON(c) {
		return c.JSON(wizardProgress(wizard))
	}
	return redirectToPath(c, signupPath)
}

func (handler *Handler) SignupSubmit(c *fiber.Ctx) error {
	wizard, err := handler.loadSignupInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	payload, err := wizard.Submit()
	if err != nil {
		if saveErr := handler.saveSignupWizard(c, wizard); saveErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save signup session")
		}
		if errors.Is(err, services.ErrSignupNotFinalStep) {
			return handler.respondSignupFormError(c, fiber.StatusBadRequest, messageSignupIncomplete)
		}
		if acceptsJSON(c) {
			return validationError(c, wizard.Errors().Strings(), fiber.Map{"step": wizard.Step()})
		}
		return redirectToPath(c, signupPath)
	}

	handler.ensureDependencies()
	account, err := handler.accounts.Register(payload)
	if err != nil {
		if saveErr := handler.saveSignupWizard(c, wizard); saveErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to save signup session")
		}
		switch {
		case errors.Is(err, services.ErrAccountEmailExists):
			return handler.respondSignupFormError(c, fiber.StatusConflict, messageEmailTaken)
		case errors.Is(err, services.ErrAccountEmailInvalid):
			return handler.respondSignupFormError(c, fiber.StatusUnprocessableEntity, services.MessageEmailInvalid)
		case errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrAccountProfile):
			return handler.respondSignupFormError(c, fiber.StatusUnprocessableEntity, messageSignupIncomplete)
		default:
			log.Printf("signup %s: register account: %v", wizard.SessionID(), err)
			return handler.respondSignupFormError(c, fiber.StatusInternalServerError, messageSignupFailed)
		}
	}

	handler.clearSignupCookie(c)
	if err := handler.setAuthCookie(c, &account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	log.Printf("signup %s: created account %d", wizard.SessionID(), account.ID)

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "redirect": postAuthPath})
	}
	return redirectToPath(c, postAuthPath)
}

// PasswordStrength scores a password without touching any wizard.
func (handler *Handler) PasswordStrength(c *fiber.Ctx) error {
	input := passwordStrengthInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return c.JSON(services.EvaluatePasswordStrength(input.Password))
}

func (handler *Handler) loadSignupInput(c *fiber.Ctx) (*services.SignupWizard, error) {
	values, err := parseSignupValues(c)
	if err != nil {
		return nil, err
	}
	wizard := handler.loadSignupWizard(c)
	applySignupValues(wizard, values)
	return wizard, nil
}

func (handler *Handler) respondSignupFormError(c *fiber.Ctx, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	handler.setFlashCookie(c, FlashPayload{FormError: message})
	return redirectToPath(c, signupPath)
}
