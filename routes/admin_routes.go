package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lataberna/reservations-backend/handlers"
	"github.com/lataberna/reservations-backend/middleware"
	wshub "github.com/lataberna/reservations-backend/websocket"
)

func AdminRoutes(app *fiber.App, h *handlers.Handler, hub *wshub.Hub) {
	api := app.Group("/api")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/config", h.GetConfig)
	admin.Put("/config", h.UpdateConfig)
	admin.Get("/reservations", h.ListReservations)
	admin.Put("/reservations/:id", h.UpdateReservation)
	admin.Delete("/reservations/:id", h.DeleteReservation)
	admin.Get("/stats", h.GetStats)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	// The feed carries full reservation records, so it needs the same
	// staff JWT as the REST admin surface.
	app.Get("/ws/admin", middleware.Protected(), middleware.AdminRequired(), websocket.New(hub.ServeWs))
}
