package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with middleware and all routes.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	h.Routes(app)
	return app
}

func (h *Handler) Routes(app *fiber.App) {
	app.Get("/health", h.Health)
	app.Get("/templates", h.Templates)

	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)

	app.Get("/wizard", h.RequireUser, h.ShowWizard)
	app.Post("/wizard", h.RequireUser, h.AdvanceWizard)
	app.Get("/profiles/:id/pdf", h.RequireUser, h.RenderPDF)
}
