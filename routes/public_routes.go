package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lataberna/reservations-backend/handlers"
	"github.com/lataberna/reservations-backend/middleware"
)

func PublicRoutes(app *fiber.App, h *handlers.Handler, rl *middleware.RateLimiter) {
	api := app.Group("/api")

	api.Get("/available-slots", h.GetAvailableSlots)
	api.Post("/send-reservation", rl.Limit(), h.CreateReservation)
	api.Get("/health", h.Health)
}
