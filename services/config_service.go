package services

import (
	"errors"
	"fmt"

	"github.com/lataberna/reservations-backend/models"
)

// ValidateConfig checks a merged configuration before it is applied. The
// slot generator deliberately passes misconfigured windows through, so bad
// schedules have to be rejected here: each boundary must be a valid HH:MM,
// windows must be well-formed, and dinner may not start before lunch ends.
func ValidateConfig(cfg models.RestaurantConfig) error {
	boundaries := map[string]string{
		"openingTime": cfg.OpeningTime,
		"closingTime": cfg.ClosingTime,
		"lunchStart":  cfg.LunchStart,
		"lunchEnd":    cfg.LunchEnd,
		"dinnerStart": cfg.DinnerStart,
		"dinnerEnd":   cfg.DinnerEnd,
	}
	for field, value := range boundaries {
		if _, err := ParseClock(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	lunchStart, _ := ParseClock(cfg.LunchStart)
	lunchEnd, _ := ParseClock(cfg.LunchEnd)
	dinnerStart, _ := ParseClock(cfg.DinnerStart)
	dinnerEnd, _ := ParseClock(cfg.DinnerEnd)

	if lunchStart > lunchEnd {
		return errors.New("lunchStart must not be after lunchEnd")
	}
	if dinnerStart > dinnerEnd {
		return errors.New("dinnerStart must not be after dinnerEnd")
	}
	if dinnerStart < lunchEnd {
		return errors.New("dinner window must not precede or overlap the lunch window")
	}

	if cfg.TimeSlotInterval <= 0 {
		return errors.New("timeSlotInterval must be greater than zero")
	}
	if cfg.TotalTables < 0 {
		return errors.New("totalTables must not be negative")
	}
	if cfg.TotalCapacity < 0 {
		return errors.New("totalCapacity must not be negative")
	}

	if len(cfg.OperatingDays) == 0 {
		return errors.New("operatingDays must not be empty")
	}
	for _, d := range cfg.OperatingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("operatingDays contains invalid weekday %d", d)
		}
	}
	return nil
}
