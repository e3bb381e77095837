package services

import (
	"math"

	"github.com/lataberna/reservations-backend/models"
)

// DayStats is the admin dashboard aggregate for a single calendar day.
type DayStats struct {
	TotalReservations     int `json:"totalReservations"`
	TotalGuests           int `json:"totalGuests"`
	RemainingCapacity     int `json:"remainingCapacity"`
	CapacityUsed          int `json:"capacityUsed"`
	LargeGroups           int `json:"largeGroups"`
	ConfirmedReservations int `json:"confirmedReservations"`
	TotalTables           int `json:"totalTables"`
}

// ComputeDayStats aggregates the reservations for a date against the
// configured capacity. CapacityUsed is a percentage capped at 100.
func ComputeDayStats(date string, reservations []models.Reservation, cfg models.RestaurantConfig) DayStats {
	stats := DayStats{TotalTables: cfg.TotalTables}

	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		stats.TotalReservations++
		stats.TotalGuests += r.Guests.Count()
		if r.Guests.IsLargeGroup() {
			stats.LargeGroups++
		}
		if r.Status == "confirmed" {
			stats.ConfirmedReservations++
		}
	}

	stats.RemainingCapacity = cfg.TotalCapacity - stats.TotalGuests
	if stats.RemainingCapacity < 0 {
		stats.RemainingCapacity = 0
	}

	if stats.TotalGuests > 0 {
		if cfg.TotalCapacity > 0 {
			used := int(math.Round(float64(stats.TotalGuests) / float64(cfg.TotalCapacity) * 100))
			if used > 100 {
				used = 100
			}
			stats.CapacityUsed = used
		} else {
			stats.CapacityUsed = 100
		}
	}
	return stats
}
