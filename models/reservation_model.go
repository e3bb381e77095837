package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// LargeGroup is the sentinel the booking form submits for parties of ten
// or more. It aggregates as exactly ten guests for capacity math.
const LargeGroup = "10+"

// Guests is a party size as submitted by the booking form: a JSON number,
// a numeric string, or the "10+" large-group sentinel.
type Guests string

func (g *Guests) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*g = Guests(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*g = Guests(strconv.Itoa(n))
	return nil
}

func (g Guests) IsLargeGroup() bool {
	return string(g) == LargeGroup
}

// Count returns the guest total used for capacity aggregation, treating
// the large-group sentinel as exactly ten.
func (g Guests) Count() int {
	if g.IsLargeGroup() {
		return 10
	}
	n, _ := strconv.Atoi(string(g))
	return n
}

type Reservation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:120" json:"name"`
	Phone          string    `gorm:"size:32" json:"phone"`
	Email          string    `gorm:"size:160" json:"email"`
	Guests         Guests    `gorm:"size:8" json:"guests"`
	Date           string    `gorm:"size:10;index" json:"date"`
	Time           string    `gorm:"size:5" json:"time"`
	Status         string    `gorm:"size:20;default:'pending'" json:"status"`
	AssignedTables IntList   `gorm:"type:text" json:"assignedTables"`
	CreatedAt      time.Time `json:"createdAt"`
}
