package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) || isHTMX(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	primaryPath, primaryLabel := "/", "Back to login"
	if account := handler.optionalAuthenticatedAccount(c); account != nil {
		c.Locals(contextAccountKey, account)
		primaryPath, primaryLabel = postAuthPath, "Back to your account"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":        pageTitle("Page Not Found"),
		"PrimaryPath":  primaryPath,
		"PrimaryLabel": primaryLabel,
	})
}
