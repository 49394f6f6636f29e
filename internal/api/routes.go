package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)

	app.Get("/signup", handler.ShowSignupPage)
	app.Post("/signup/next", handler.SignupNext)
	app.Post("/signup/back", handler.SignupBack)
	app.Post("/signup/submit", handler.SignupSubmit)

	app.Get("/welcome", handler.AuthRequired, handler.ShowWelcomePage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	signup := api.Group("/signup")
	signup.Post("/password-strength", handler.PasswordStrength)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
