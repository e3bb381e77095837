package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/lataberna/reservations-backend/models"
)

type document struct {
	Config       *models.RestaurantConfig `json:"config"`
	Reservations []models.Reservation     `json:"reservations"`
}

// FileStore keeps everything in a single JSON document on disk, rewritten
// wholesale after each mutation. It is the fallback when no database is
// configured.
type FileStore struct {
	path string
	mu   sync.Mutex
	doc  document
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*models.RestaurantConfig, []models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, nil, err
	}
	if s.doc.Reservations == nil {
		s.doc.Reservations = []models.Reservation{}
	}
	reservations := make([]models.Reservation, len(s.doc.Reservations))
	copy(reservations, s.doc.Reservations)
	return s.doc.Config, reservations, nil
}

func (s *FileStore) SaveConfig(cfg models.RestaurantConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Config = &cfg
	return s.flush()
}

func (s *FileStore) InsertReservation(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Reservations = append(s.doc.Reservations, r)
	return s.flush()
}

func (s *FileStore) UpdateReservation(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Reservations {
		if s.doc.Reservations[i].ID == r.ID {
			s.doc.Reservations[i] = r
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Reservations {
		if s.doc.Reservations[i].ID == id {
			s.doc.Reservations = append(s.doc.Reservations[:i], s.doc.Reservations[i+1:]...)
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) flush() error {
	if s.doc.Reservations == nil {
		s.doc.Reservations = []models.Reservation{}
	}
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
