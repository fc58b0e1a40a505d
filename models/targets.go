package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Targets holds each user's daily intake and activity goals.
// At most one row per user.
type Targets struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	UserID   string  `gorm:"uniqueIndex;not null" json:"userId"`
	Calories float64 `json:"calories"` // e.g. 2200 kcal
	Protien  float64 `json:"protien"`  // e.g. 120 g
	Carbs    float64 `json:"carbs"`    // e.g. 275 g
	Fat      float64 `json:"fat"`      // e.g. 70 g
	Steps    int     `json:"steps"`    // e.g. 10000
	Weight   float64 `json:"weight"`   // goal weight, kg
}

func (t *Targets) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
