package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal type tags accepted on the wire.
const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

// Macros is one logged meal. Note: "protien" is the spelling the
// frontend ships with, so it stays the JSON field name.
type Macros struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	UserID   string    `gorm:"index;not null" json:"userId"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protien  float64   `json:"protien"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Type     string    `gorm:"size:16" json:"type"` // "BREAKFAST"|"LUNCH"|"DINNER"|"SNACK"
}

func (m *Macros) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
