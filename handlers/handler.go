package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/lataberna/reservations-backend/notifications"
	"github.com/lataberna/reservations-backend/state"
	"github.com/lataberna/reservations-backend/websocket"
)

var validate = validator.New()

// Handler carries the application context into request handlers.
type Handler struct {
	App  *state.App
	Mail *notifications.EmailService
	Hub  *websocket.Hub
}

func New(app *state.App, mail *notifications.EmailService, hub *websocket.Hub) *Handler {
	return &Handler{App: app, Mail: mail, Hub: hub}
}
