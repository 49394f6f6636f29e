package api

import (
	"github.com/customizeworkflow/portal/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName    = "portal_auth"
	flashCookieName   = "portal_flash"
	signupCookieName  = "portal_signup"
	contextAccountKey = "current_account"
)

func currentAccount(c *fiber.Ctx) (*models.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(*models.Account)
	return account, ok
}
