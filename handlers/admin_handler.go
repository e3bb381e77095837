package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lataberna/reservations-backend/models"
	"github.com/lataberna/reservations-backend/services"
	"github.com/lataberna/reservations-backend/store"
	"github.com/lataberna/reservations-backend/websocket"
)

func (h *Handler) GetConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "config": h.App.Config()})
}

// Pointer fields distinguish "absent" from a legitimate zero or empty
// value, so a partial update can clear or zero a field explicitly.
type UpdateConfigRequest struct {
	OpeningTime      *string `json:"openingTime"`
	ClosingTime      *string `json:"closingTime"`
	LunchStart       *string `json:"lunchStart"`
	LunchEnd         *string `json:"lunchEnd"`
	DinnerStart      *string `json:"dinnerStart"`
	DinnerEnd        *string `json:"dinnerEnd"`
	OperatingDays    *[]int  `json:"operatingDays"`
	TimeSlotInterval *int    `json:"timeSlotInterval"`
	TotalTables      *int    `json:"totalTables"`
	TotalCapacity    *int    `json:"totalCapacity"`
}

// UpdateConfig merges the provided fields over the current configuration
// and validates the result before applying it. A changed table count
// regenerates the whole table inventory from the tier rule, discarding any
// per-table edits.
func (h *Handler) UpdateConfig(c *fiber.Ctx) error {
	var req UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	merged := h.App.Config()
	if req.OpeningTime != nil {
		merged.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		merged.ClosingTime = *req.ClosingTime
	}
	if req.LunchStart != nil {
		merged.LunchStart = *req.LunchStart
	}
	if req.LunchEnd != nil {
		merged.LunchEnd = *req.LunchEnd
	}
	if req.DinnerStart != nil {
		merged.DinnerStart = *req.DinnerStart
	}
	if req.DinnerEnd != nil {
		merged.DinnerEnd = *req.DinnerEnd
	}
	if req.OperatingDays != nil {
		merged.OperatingDays = models.IntList(*req.OperatingDays)
	}
	if req.TimeSlotInterval != nil {
		merged.TimeSlotInterval = *req.TimeSlotInterval
	}
	if req.TotalCapacity != nil {
		merged.TotalCapacity = *req.TotalCapacity
	}
	if req.TotalTables != nil {
		merged.TotalTables = *req.TotalTables
		if *req.TotalTables != len(merged.Tables) {
			merged.Tables = models.GenerateTables(*req.TotalTables)
		}
	}

	if err := services.ValidateConfig(merged); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := h.App.SetConfig(merged); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "config": merged})
}

func (h *Handler) ListReservations(c *fiber.Ctx) error {
	reservations := h.App.Reservations()

	if date := c.Query("date"); date != "" {
		filtered := make([]models.Reservation, 0, len(reservations))
		for _, r := range reservations {
			if r.Date == date {
				filtered = append(filtered, r)
			}
		}
		reservations = filtered
	}

	return c.JSON(fiber.Map{"success": true, "reservations": reservations})
}

type UpdateReservationRequest struct {
	Status         *string `json:"status"`
	AssignedTables *[]int  `json:"assignedTables"`
}

func (h *Handler) UpdateReservation(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	reservation, err := h.App.UpdateReservation(id, req.Status, req.AssignedTables)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Reservation not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	h.Hub.Broadcast(websocket.Event{Type: websocket.EventReservationUpdated, Reservation: &reservation})

	return c.JSON(fiber.Map{"success": true, "reservation": reservation})
}

func (h *Handler) DeleteReservation(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.App.DeleteReservation(id)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Reservation not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	h.Hub.Broadcast(websocket.Event{Type: websocket.EventReservationDeleted, ID: id})

	return c.JSON(fiber.Map{"success": true, "message": "Reservation deleted"})
}

func (h *Handler) GetStats(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	cfg, reservations := h.App.Snapshot()

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   services.ComputeDayStats(date, reservations, cfg),
	})
}
