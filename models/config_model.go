package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// IntList is stored as its JSON encoding in a single text column so the
// same model works for both the postgres and the file-backed store.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = IntList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for IntList")
	}
}

// RestaurantConfig is the single-row restaurant setup: serving windows,
// operating days, slot interval and seating totals. All times are
// wall-clock "HH:MM" strings with no timezone.
type RestaurantConfig struct {
	ID               uint    `gorm:"primaryKey" json:"-"`
	OpeningTime      string  `gorm:"size:5" json:"openingTime"`
	ClosingTime      string  `gorm:"size:5" json:"closingTime"`
	LunchStart       string  `gorm:"size:5" json:"lunchStart"`
	LunchEnd         string  `gorm:"size:5" json:"lunchEnd"`
	DinnerStart      string  `gorm:"size:5" json:"dinnerStart"`
	DinnerEnd        string  `gorm:"size:5" json:"dinnerEnd"`
	OperatingDays    IntList `gorm:"type:text" json:"operatingDays"`
	TimeSlotInterval int     `json:"timeSlotInterval"`
	TotalTables      int     `json:"totalTables"`
	TotalCapacity    int     `json:"totalCapacity"`
	Tables           []Table `gorm:"-" json:"tables"`
	UpdatedAt        time.Time `json:"-"`
}

func (RestaurantConfig) TableName() string {
	return "restaurant_config"
}

type Table struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Number   int    `json:"number"`
	Capacity int    `gorm:"not null" json:"capacity"`
	Status   string `gorm:"size:20;default:'available'" json:"status"`
}

func (Table) TableName() string {
	return "restaurant_tables"
}

// GenerateTables builds the table inventory for a given count. Capacities
// are tiered by position: tables 1-8 seat 2, 9-14 seat 4, 15-18 seat 6 and
// everything above seats 8.
func GenerateTables(count int) []Table {
	tables := make([]Table, 0, count)
	for i := 1; i <= count; i++ {
		capacity := 8
		switch {
		case i <= 8:
			capacity = 2
		case i <= 14:
			capacity = 4
		case i <= 18:
			capacity = 6
		}
		tables = append(tables, Table{
			ID:       i,
			Number:   i,
			Capacity: capacity,
			Status:   "available",
		})
	}
	return tables
}

// DefaultConfig is used until an admin saves their own setup.
func DefaultConfig() RestaurantConfig {
	return RestaurantConfig{
		ID:               1,
		OpeningTime:      "12:00",
		ClosingTime:      "23:00",
		LunchStart:       "12:00",
		LunchEnd:         "16:00",
		DinnerStart:      "19:00",
		DinnerEnd:        "23:00",
		OperatingDays:    IntList{1, 2, 3, 4, 5, 6, 0},
		TimeSlotInterval: 30,
		TotalTables:      20,
		TotalCapacity:    80,
		Tables:           GenerateTables(20),
	}
}
