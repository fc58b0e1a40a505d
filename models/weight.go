package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Weight struct {
	ID     string    `gorm:"primaryKey" json:"id"`
	UserID string    `gorm:"index;not null" json:"userId"`
	Date   time.Time `gorm:"index;not null" json:"date"`
	Weight float64   `json:"weight"` // kilograms
}

func (w *Weight) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
