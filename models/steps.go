package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Steps is one step-count entry. A user may log several per day; the
// daily total is the sum across entries for that date.
type Steps struct {
	ID     string    `gorm:"primaryKey" json:"id"`
	UserID string    `gorm:"index;not null" json:"userId"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Steps  int       `json:"steps"`
}

func (s *Steps) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
