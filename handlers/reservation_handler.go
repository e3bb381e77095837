package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/lataberna/reservations-backend/configs"
	"github.com/lataberna/reservations-backend/models"
	"github.com/lataberna/reservations-backend/notifications"
	"github.com/lataberna/reservations-backend/websocket"
)

// Presence-only validation: format and range checks are left to the
// front-end forms.
type CreateReservationRequest struct {
	Name   string        `json:"name" validate:"required"`
	Phone  string        `json:"phone" validate:"required"`
	Email  string        `json:"email" validate:"required"`
	Guests models.Guests `json:"guests" validate:"required"`
	Date   string        `json:"date" validate:"required"`
	Time   string        `json:"time" validate:"required"`
}

// CreateReservation persists a booking and notifies restaurant and
// customer by email. The reservation is durable before the emails go out:
// a mail failure returns 500 but nothing is rolled back.
func (h *Handler) CreateReservation(c *fiber.Ctx) error {
	var req CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing required fields"})
	}

	reservation := models.Reservation{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Guests:         req.Guests,
		Date:           req.Date,
		Time:           req.Time,
		Status:         "pending",
		AssignedTables: models.IntList{},
		CreatedAt:      time.Now().UTC(),
	}

	if err := h.App.CreateReservation(reservation); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save the reservation",
			"error":   err.Error(),
		})
	}

	h.Hub.Broadcast(websocket.Event{Type: websocket.EventReservationCreated, Reservation: &reservation})

	if err := h.sendReservationEmails(reservation); err != nil {
		log.Printf("🔥 Error sending reservation emails: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to process the reservation",
			"error":   err.Error(),
		})
	}

	log.Printf("✅ Reservation confirmed: %s - %s %s - ID: %s", reservation.Name, reservation.Date, reservation.Time, reservation.ID)

	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "Reservation submitted successfully",
		"reservationId": reservation.ID,
	})
}

func (h *Handler) sendReservationEmails(r models.Reservation) error {
	baseURL := config.Config("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	restaurantEmail := config.Config("RESTAURANT_EMAIL")

	data := notifications.NewReservationEmailData(r, baseURL, restaurantEmail)

	restaurantBody, err := notifications.RestaurantEmailBody(data)
	if err != nil {
		return err
	}
	if err := h.Mail.Send("", restaurantEmail, notifications.RestaurantEmailSubject(data), restaurantBody); err != nil {
		return err
	}

	customerBody, err := notifications.CustomerEmailBody(data)
	if err != nil {
		return err
	}
	return h.Mail.Send(r.Name, r.Email, notifications.CustomerEmailSubject(data), customerBody)
}
