package utils

import (
	"errors"
	"math"

	"github.com/mgamergo/MacroMate/models"
)

// MaintenanceCalories estimates daily maintenance intake from height
// (cm), weight (kg) and activity level. The profile carries neither
// age nor sex, so the Mifflin-St Jeor equation is evaluated with
// neutral constants.
func MaintenanceCalories(heightCm, weightKg float64, activity string) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 228
	return math.Round(bmr * activityFactor(activity)), nil
}

func activityFactor(activity string) float64 {
	switch activity {
	case models.ActivityLight:
		return 1.375
	case models.ActivityModerate:
		return 1.55
	case models.ActivityActive:
		return 1.725
	case models.ActivityVeryActive:
		return 1.9
	default: // SEDENTARY and anything unrecognized
		return 1.2
	}
}
