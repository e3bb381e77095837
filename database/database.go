package database

import (
	"github.com/lataberna/reservations-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RestaurantConfig{},
		&models.Table{},
		&models.Reservation{},
	)
}
