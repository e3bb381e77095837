package state

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lataberna/reservations-backend/models"
	"github.com/lataberna/reservations-backend/store"
)

// stubStore counts loads and records mutations in memory.
type stubStore struct {
	loads int32
	cfg   *models.RestaurantConfig
	rows  []models.Reservation
	mu    sync.Mutex
	fail  bool
}

func (s *stubStore) Load() (*models.RestaurantConfig, []models.Reservation, error) {
	atomic.AddInt32(&s.loads, 1)
	if s.fail {
		return nil, nil, errors.New("store unavailable")
	}
	return s.cfg, s.rows, nil
}

func (s *stubStore) SaveConfig(cfg models.RestaurantConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = &cfg
	return nil
}

func (s *stubStore) InsertReservation(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, r)
	return nil
}

func (s *stubStore) UpdateReservation(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == r.ID {
			s.rows[i] = r
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubStore) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func TestEnsureLoadsOnce(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.TotalCapacity = 50
	st := &stubStore{cfg: &cfg}
	app := New(st)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.Ensure()
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&st.loads); got != 1 {
		t.Errorf("Load called %d times, want exactly 1", got)
	}
	if app.Config().TotalCapacity != 50 {
		t.Errorf("loaded capacity = %d, want 50", app.Config().TotalCapacity)
	}
}

func TestEnsureLoadFailureKeepsDefaults(t *testing.T) {
	st := &stubStore{fail: true}
	app := New(st)

	app.Ensure()
	app.Ensure()

	if got := atomic.LoadInt32(&st.loads); got != 1 {
		t.Errorf("failed load retried: Load called %d times", got)
	}
	if app.Config().TotalCapacity != 80 {
		t.Errorf("capacity = %d, want the default 80", app.Config().TotalCapacity)
	}
}

func TestCreateThenReadRoundTrip(t *testing.T) {
	app := New(&stubStore{})

	r := models.Reservation{
		ID:             "res-1",
		Name:           "Marta Ruiz",
		Phone:          "655000111",
		Email:          "marta@example.com",
		Guests:         "10+",
		Date:           "2026-09-08",
		Time:           "19:00",
		Status:         "pending",
		AssignedTables: models.IntList{},
	}
	if err := app.CreateReservation(r); err != nil {
		t.Fatal(err)
	}

	got, err := app.GetReservation("res-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != r.Name || got.Phone != r.Phone || got.Email != r.Email ||
		got.Guests != r.Guests || got.Date != r.Date || got.Time != r.Time ||
		got.Status != r.Status || len(got.AssignedTables) != 0 {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestUpdateReservationPartial(t *testing.T) {
	app := New(&stubStore{})
	if err := app.CreateReservation(models.Reservation{ID: "res-1", Status: "pending"}); err != nil {
		t.Fatal(err)
	}

	status := "confirmed"
	updated, err := app.UpdateReservation("res-1", &status, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}

	tables := []int{2, 7}
	updated, err = app.UpdateReservation("res-1", nil, &tables)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "confirmed" {
		t.Error("status should survive a tables-only update")
	}
	if len(updated.AssignedTables) != 2 || updated.AssignedTables[0] != 2 {
		t.Errorf("assigned tables = %v, want [2 7]", updated.AssignedTables)
	}

	if _, err := app.UpdateReservation("missing", &status, nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDeleteReservation(t *testing.T) {
	app := New(&stubStore{})
	if err := app.CreateReservation(models.Reservation{ID: "res-1"}); err != nil {
		t.Fatal(err)
	}

	if err := app.DeleteReservation("res-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := app.GetReservation("res-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("read after delete: got %v, want ErrNotFound", err)
	}
	if err := app.DeleteReservation("res-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("double delete: got %v, want ErrNotFound", err)
	}
}
