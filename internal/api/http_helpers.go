package api

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func redirectToPath(c *fiber.Ctx, path string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", path)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func redirectOrJSON(c *fiber.Ctx, path string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true, "redirect": path})
	}
	return redirectToPath(c, path)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	if isHTMX(c) {
		return c.Status(status).SendString(fmt.Sprintf("<div class=\"status-error\">%s</div>", template.HTMLEscapeString(message)))
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, errors map[string]string, extra fiber.Map) error {
	body := fiber.Map{"errors": errors}
	for key, value := range extra {
		body[key] = value
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func isJSONBody(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Content-Type")), "application/json")
}

func isHTMX(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get("HX-Request"), "true")
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}
