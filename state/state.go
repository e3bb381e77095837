// Package state holds the process-wide reservation and configuration
// cache. It is loaded from the backing store at most once per process,
// behind a single in-flight barrier, and written back synchronously after
// each mutation.
package state

import (
	"log"
	"sync"

	"github.com/lataberna/reservations-backend/models"
	"github.com/lataberna/reservations-backend/store"
)

// App is the application context handed to request handlers instead of
// package globals. Mutations are serialized by a mutex; the booking
// capacity check itself stays check-then-insert with no transactional
// guarantee.
type App struct {
	Store store.Store

	loadOnce sync.Once

	mu           sync.Mutex
	config       models.RestaurantConfig
	reservations []models.Reservation
}

func New(st store.Store) *App {
	return &App{
		Store:        st,
		config:       models.DefaultConfig(),
		reservations: []models.Reservation{},
	}
}

// Ensure performs the one-time load from the store. Concurrent early
// callers block on the same load rather than issuing duplicates. A load
// failure is logged and the defaults kept; it is not retried.
func (a *App) Ensure() {
	a.loadOnce.Do(func() {
		cfg, reservations, err := a.Store.Load()
		if err != nil {
			log.Printf("⚠️ Could not load persisted data, using defaults: %v", err)
			return
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		if cfg != nil {
			a.config = *cfg
		}
		if reservations != nil {
			a.reservations = reservations
		}
		log.Println("✅ Persisted data loaded")
	})
}

// Snapshot returns copies of the current configuration and reservations.
func (a *App) Snapshot() (models.RestaurantConfig, []models.Reservation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	reservations := make([]models.Reservation, len(a.reservations))
	copy(reservations, a.reservations)
	return a.config, reservations
}

func (a *App) Config() models.RestaurantConfig {
	cfg, _ := a.Snapshot()
	return cfg
}

func (a *App) Reservations() []models.Reservation {
	_, reservations := a.Snapshot()
	return reservations
}

// SetConfig replaces the configuration and persists it.
func (a *App) SetConfig(cfg models.RestaurantConfig) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.Store.SaveConfig(cfg); err != nil {
		return err
	}
	a.config = cfg
	return nil
}

// CreateReservation persists a new reservation and appends it to the
// cache.
func (a *App) CreateReservation(r models.Reservation) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.Store.InsertReservation(r); err != nil {
		return err
	}
	a.reservations = append(a.reservations, r)
	return nil
}

// GetReservation looks a reservation up by id.
func (a *App) GetReservation(id string) (models.Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reservation{}, store.ErrNotFound
}

// UpdateReservation applies a partial staff update: status and/or assigned
// tables. Nil fields are left unchanged.
func (a *App) UpdateReservation(id string, status *string, assignedTables *[]int) (models.Reservation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.reservations {
		if a.reservations[i].ID != id {
			continue
		}
		updated := a.reservations[i]
		if status != nil {
			updated.Status = *status
		}
		if assignedTables != nil {
			updated.AssignedTables = models.IntList(*assignedTables)
		}
		if err := a.Store.UpdateReservation(updated); err != nil {
			return models.Reservation{}, err
		}
		a.reservations[i] = updated
		return updated, nil
	}
	return models.Reservation{}, store.ErrNotFound
}

// DeleteReservation removes a reservation by id.
func (a *App) DeleteReservation(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.reservations {
		if a.reservations[i].ID != id {
			continue
		}
		if err := a.Store.DeleteReservation(id); err != nil {
			return err
		}
		a.reservations = append(a.reservations[:i], a.reservations[i+1:]...)
		return nil
	}
	return store.ErrNotFound
}
