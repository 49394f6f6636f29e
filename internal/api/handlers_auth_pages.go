package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalAuthenticatedAccount(c) != nil {
		return redirectToPath(c, postAuthPath)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", buildLoginPageData(flash))
}

func (handler *Handler) ShowWelcomePage(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "welcome", fiber.Map{
		"Title":   pageTitle("Welcome"),
		"Account": account,
		"Name":    account.DisplayName(),
	})
}
