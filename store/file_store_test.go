package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lataberna/reservations-backend/models"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	return NewFileStore(path), path
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	s, _ := tempStore(t)

	cfg, reservations, err := s.Load()
	if err != nil {
		t.Fatalf("load of a missing file should not error: %v", err)
	}
	if cfg != nil {
		t.Error("expected nil config for a fresh store")
	}
	if len(reservations) != 0 {
		t.Errorf("expected no reservations, got %d", len(reservations))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s, path := tempStore(t)
	if _, _, err := s.Load(); err != nil {
		t.Fatal(err)
	}

	cfg := models.DefaultConfig()
	cfg.TotalCapacity = 120
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	r := models.Reservation{
		ID:             "res-1",
		Name:           "Ana Torres",
		Phone:          "600123123",
		Email:          "ana@example.com",
		Guests:         "4",
		Date:           "2026-09-08",
		Time:           "19:00",
		Status:         "pending",
		AssignedTables: models.IntList{},
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	if err := s.InsertReservation(r); err != nil {
		t.Fatal(err)
	}

	// A fresh store reading the same file sees everything back.
	reloaded := NewFileStore(path)
	gotCfg, gotReservations, err := reloaded.Load()
	if err != nil {
		t.Fatal(err)
	}
	if gotCfg == nil || gotCfg.TotalCapacity != 120 {
		t.Errorf("reloaded config = %+v, want capacity 120", gotCfg)
	}
	if len(gotReservations) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(gotReservations))
	}
	got := gotReservations[0]
	if got.ID != r.ID || got.Name != r.Name || got.Phone != r.Phone || got.Email != r.Email ||
		got.Guests != r.Guests || got.Date != r.Date || got.Time != r.Time || got.Status != r.Status {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, r)
	}
	if len(got.AssignedTables) != 0 {
		t.Errorf("assigned tables = %v, want empty", got.AssignedTables)
	}
}

func TestFileStoreUpdateAndDelete(t *testing.T) {
	s, _ := tempStore(t)
	if _, _, err := s.Load(); err != nil {
		t.Fatal(err)
	}

	r := models.Reservation{ID: "res-1", Name: "Ana", Guests: "2", Date: "2026-09-08", Time: "12:00", Status: "pending"}
	if err := s.InsertReservation(r); err != nil {
		t.Fatal(err)
	}

	r.Status = "confirmed"
	r.AssignedTables = models.IntList{3}
	if err := s.UpdateReservation(r); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateReservation(models.Reservation{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("updating an unknown id: got %v, want ErrNotFound", err)
	}

	if err := s.DeleteReservation("res-1"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteReservation("res-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting twice: got %v, want ErrNotFound", err)
	}
}
