package store

import (
	"errors"

	"github.com/lataberna/reservations-backend/models"
)

// ErrNotFound is returned when a reservation id does not exist.
var ErrNotFound = errors.New("reservation not found")

// Store is the durable record of configuration and reservations. The
// postgres implementation issues targeted writes; the file implementation
// rewrites a single JSON document wholesale on every mutation.
type Store interface {
	// Load returns the persisted configuration (nil when nothing has been
	// saved yet) and all reservations.
	Load() (*models.RestaurantConfig, []models.Reservation, error)
	SaveConfig(cfg models.RestaurantConfig) error
	InsertReservation(r models.Reservation) error
	UpdateReservation(r models.Reservation) error
	DeleteReservation(id string) error
}
