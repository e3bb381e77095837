package store

import (
	"errors"

	"github.com/lataberna/reservations-backend/models"
	"gorm.io/gorm"
)

// GormStore persists configuration, tables and reservations in postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load() (*models.RestaurantConfig, []models.Reservation, error) {
	var cfg models.RestaurantConfig
	err := s.db.First(&cfg, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Nothing saved yet: the caller falls back to defaults.
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var tables []models.Table
	if err := s.db.Order("number").Find(&tables).Error; err != nil {
		return nil, nil, err
	}
	cfg.Tables = tables

	var reservations []models.Reservation
	if err := s.db.Order("created_at desc").Find(&reservations).Error; err != nil {
		return nil, nil, err
	}
	return &cfg, reservations, nil
}

func (s *GormStore) SaveConfig(cfg models.RestaurantConfig) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		cfg.ID = 1
		tables := cfg.Tables
		cfg.Tables = nil
		if err := tx.Save(&cfg).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Table{}).Error; err != nil {
			return err
		}
		if len(tables) == 0 {
			return nil
		}
		return tx.Create(&tables).Error
	})
}

func (s *GormStore) InsertReservation(r models.Reservation) error {
	return s.db.Create(&r).Error
}

func (s *GormStore) UpdateReservation(r models.Reservation) error {
	res := s.db.Model(&models.Reservation{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
		"status":          r.Status,
		"assigned_tables": r.AssignedTables,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteReservation(id string) error {
	res := s.db.Delete(&models.Reservation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
