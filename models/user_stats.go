package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity level tags accepted on the wire.
const (
	ActivitySedentary  = "SEDENTARY"
	ActivityLight      = "LIGHT"
	ActivityModerate   = "MODERATE"
	ActivityActive     = "ACTIVE"
	ActivityVeryActive = "VERY_ACTIVE"
)

// UserStats holds a user's body measurements and the maintenance
// calories derived from them. At most one row per user.
type UserStats struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	UserID       string  `gorm:"uniqueIndex;not null" json:"userId"`
	Height       float64 `json:"height"` // centimeters
	Weight       float64 `json:"weight"` // kilograms
	Activity     string  `gorm:"size:16" json:"activity"` // "SEDENTARY"|"LIGHT"|…
	Maintainance float64 `json:"maintainance"`            // kcal/day
}

func (s *UserStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
