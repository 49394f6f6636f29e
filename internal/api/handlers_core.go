package api

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthCheckTimeout = 2 * time.Second

// Health reports whether the account database answers.
func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Printf("health check failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// render executes a page through the shared "base" layout.
func (handler *Handler) render(c *fiber.Ctx, page string, data fiber.Map) error {
	tmpl, ok := handler.templates[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}

	payload := fiber.Map{
		"SiteName":  siteName,
		"CSRFToken": csrfToken(c),
	}
	for key, value := range data {
		payload[key] = value
	}

	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		log.Printf("render %s: %v", page, err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}
