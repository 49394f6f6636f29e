package api

import (
	"errors"
	"log"

	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	messageLoginFailed      = "Invalid email or password."
	messageLoginRateLimited = "Too many login attempts. Try again later."
	messageLoginUnavailable = "Sign in is temporarily unavailable. Try again later."
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondLoginError(c, fiber.StatusBadRequest, FlashPayload{FormError: "invalid input"})
	}

	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey) {
		return handler.respondLoginError(c, fiber.StatusTooManyRequests, FlashPayload{
			FormError:  messageLoginRateLimited,
			LoginEmail: input.Email,
		})
	}

	form := services.NewLoginForm()
	form.SetEmail(input.Email)
	form.SetPassword(input.Password)
	credentials, ok := form.Submit()
	if !ok {
		if acceptsJSON(c) {
			return validationError(c, form.Errors().Strings(), nil)
		}
		handler.setFlashCookie(c, FlashPayload{
			LoginEmail:  form.Email(),
			FieldErrors: form.Errors().Strings(),
		})
		return redirectToPath(c, "/")
	}

	handler.ensureDependencies()
	account, err := handler.accounts.Authenticate(credentials)
	if err != nil && !errors.Is(err, services.ErrAuthCredentialsInvalid) {
		log.Printf("login: authenticate: %v", err)
		return handler.respondLoginError(c, fiber.StatusInternalServerError, FlashPayload{
			FormError:  messageLoginUnavailable,
			LoginEmail: credentials.Email,
		})
	}
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey)
		return handler.respondLoginError(c, fiber.StatusUnauthorized, FlashPayload{
			FormError:  messageLoginFailed,
			LoginEmail: credentials.Email,
		})
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, postAuthPath)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	handler.clearSignupCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) respondLoginError(c *fiber.Ctx, status int, payload FlashPayload) error {
	if acceptsJSON(c) || isHTMX(c) {
		return apiError(c, status, payload.FormError)
	}
	handler.setFlashCookie(c, payload)
	return redirectToPath(c, "/")
}
