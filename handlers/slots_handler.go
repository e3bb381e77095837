package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lataberna/reservations-backend/services"
)

// GetAvailableSlots returns the bookable slots for a date with per-slot
// remaining capacity. A date outside the operating days yields an empty
// list and a message, not an error.
func (h *Handler) GetAvailableSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Date is required",
		})
	}

	cfg, reservations := h.App.Snapshot()

	if !services.IsOperatingDay(cfg.OperatingDays, date) {
		return c.JSON(fiber.Map{
			"success": true,
			"slots":   []services.SlotAvailability{},
			"message": "The restaurant is closed on this day",
		})
	}

	slots := services.GenerateTimeSlots(
		cfg.LunchStart,
		cfg.LunchEnd,
		cfg.DinnerStart,
		cfg.DinnerEnd,
		cfg.TimeSlotInterval,
	)

	return c.JSON(fiber.Map{
		"success": true,
		"slots":   services.EvaluateSlots(date, reservations, slots, cfg.TotalCapacity),
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
