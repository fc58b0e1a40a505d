package models

import "time"

// User mirrors the identity provider's user record. The ID is the
// subject identifier issued by the provider, not a generated key.
type User struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Name               string    `json:"name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
