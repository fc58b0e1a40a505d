package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/identity"
	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/utils"
)

// OnboardingRequest is the payload of the explicit onboarding call.
// Maintainance may be omitted, in which case it is computed from the
// other measurements.
type OnboardingRequest struct {
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	Activity     string  `json:"activity"`
	Maintainance float64 `json:"maintainance"`
	Calories     float64 `json:"calories"`
	Protien      float64 `json:"protien"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Steps        int     `json:"steps"`
	TargetWeight float64 `json:"targetWeight"`
}

// OnboardingResult carries the three rows a completed onboarding
// creates.
type OnboardingResult struct {
	User    models.User      `json:"user"`
	Stats   models.UserStats `json:"stats"`
	Targets models.Targets   `json:"targets"`
}

type OnboardingService struct {
	db       *gorm.DB
	provider identity.Provider
}

func NewOnboardingService(db *gorm.DB, provider identity.Provider) *OnboardingService {
	return &OnboardingService{db: db, provider: provider}
}

// Onboard fetches the caller's profile from the identity provider and
// creates the User, UserStats and Targets rows in one transaction. A
// failure at any step leaves nothing behind; a partially onboarded
// profile is never observable.
func (s *OnboardingService) Onboard(ctx context.Context, subjectID string, req OnboardingRequest) (OnboardingResult, error) {
	profile, err := s.provider.FetchProfile(ctx, subjectID)
	if err != nil {
		return OnboardingResult{}, fmt.Errorf("failed to fetch caller profile: %w", err)
	}

	maintainance := req.Maintainance
	if maintainance <= 0 {
		maintainance, err = utils.MaintenanceCalories(req.Height, req.Weight, req.Activity)
		if err != nil {
			return OnboardingResult{}, fmt.Errorf("cannot derive maintenance calories: %w", err)
		}
	}

	result := OnboardingResult{
		User: models.User{
			ID:                 subjectID,
			Name:               profile.Name,
			Email:              profile.Email,
			OnboardingComplete: true,
		},
		Stats: models.UserStats{
			UserID:       subjectID,
			Height:       req.Height,
			Weight:       req.Weight,
			Activity:     req.Activity,
			Maintainance: maintainance,
		},
		Targets: models.Targets{
			UserID:   subjectID,
			Calories: req.Calories,
			Protien:  req.Protien,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
			Steps:    req.Steps,
			Weight:   req.TargetWeight,
		},
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result.User).Error; err != nil {
			return err
		}
		if err := tx.Create(&result.Stats).Error; err != nil {
			return err
		}
		return tx.Create(&result.Targets).Error
	})
	if err != nil {
		return OnboardingResult{}, err
	}
	return result, nil
}
