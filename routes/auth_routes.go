package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lataberna/reservations-backend/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Post("/auth/login", h.Login)
}
