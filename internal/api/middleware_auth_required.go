package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	account, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	c.Locals(contextAccountKey, account)
	return c.Next()
}
