package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lataberna/reservations-backend/models"
)

// SlotAvailability is the derived per-slot view returned to clients. It is
// never persisted.
type SlotAvailability struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// GenerateTimeSlots expands the lunch and dinner windows into "HH:MM"
// slots, stepping by interval minutes and including each window's end when
// it is reachable exactly. The two windows are walked independently: no
// de-duplication or sorting happens across them, so a dinner window that
// overlaps lunch produces out-of-order slots. That configuration is
// rejected at the admin boundary, not here.
func GenerateTimeSlots(lunchStart, lunchEnd, dinnerStart, dinnerEnd string, interval int) []string {
	var slots []string

	for cur, end := timeToMinutes(lunchStart), timeToMinutes(lunchEnd); cur <= end; cur += interval {
		slots = append(slots, minutesToTime(cur))
	}
	for cur, end := timeToMinutes(dinnerStart), timeToMinutes(dinnerEnd); cur <= end; cur += interval {
		slots = append(slots, minutesToTime(cur))
	}
	return slots
}

// EvaluateSlots computes per-slot availability for a date: reservations on
// that date and slot are summed (the "10+" sentinel counting as ten) and
// checked against the restaurant's total guest capacity. Table-level
// seating feasibility is not considered.
func EvaluateSlots(date string, reservations []models.Reservation, slots []string, totalCapacity int) []SlotAvailability {
	var dateReservations []models.Reservation
	for _, r := range reservations {
		if r.Date == date {
			dateReservations = append(dateReservations, r)
		}
	}

	evaluated := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		totalGuests := 0
		for _, r := range dateReservations {
			if r.Time == slot {
				totalGuests += r.Guests.Count()
			}
		}
		remaining := totalCapacity - totalGuests
		if remaining < 0 {
			remaining = 0
		}
		evaluated = append(evaluated, SlotAvailability{
			Time:              slot,
			Available:         totalGuests < totalCapacity,
			RemainingCapacity: remaining,
		})
	}
	return evaluated
}

// IsOperatingDay reports whether the date (YYYY-MM-DD) falls on one of the
// configured weekdays. Unparseable dates count as closed.
func IsOperatingDay(operatingDays []int, date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	weekday := int(t.Weekday())
	for _, d := range operatingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ParseClock validates an "HH:MM" wall-clock string and returns it as
// minutes since midnight. Slot generation itself stays lenient; admin
// configuration updates go through this.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	return hours*60 + minutes, nil
}

func timeToMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
