package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/mgamergo/MacroMate/models"
	"github.com/mgamergo/MacroMate/store"
)

// MetricProgress pairs what was consumed today against the daily
// target, with the percentage the dashboard's radial charts plot.
type MetricProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  int     `json:"percent"`
}

// DailyProgress is the server-side aggregation of today's entries
// against the user's targets.
type DailyProgress struct {
	Date     string         `json:"date"`
	Calories MetricProgress `json:"calories"`
	Protien  MetricProgress `json:"protien"`
	Carbs    MetricProgress `json:"carbs"`
	Fat      MetricProgress `json:"fat"`
	Steps    MetricProgress `json:"steps"`
}

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Today sums the caller's meals and step entries for the current
// calendar day and derives the percent of each target. Absent targets
// count as zero.
func (s *ProgressService) Today(userID string) (DailyProgress, error) {
	scope := store.ForUser(s.db, userID)

	var macros []models.Macros
	if err := scope.Today(&macros); err != nil {
		return DailyProgress{}, err
	}
	var steps []models.Steps
	if err := scope.Today(&steps); err != nil {
		return DailyProgress{}, err
	}

	var targets models.Targets
	if err := scope.One(&targets); err != nil && !store.IsNotFound(err) {
		return DailyProgress{}, err
	}

	var calories, protien, carbs, fat float64
	for _, m := range macros {
		calories += m.Calories
		protien += m.Protien
		carbs += m.Carbs
		fat += m.Fat
	}
	var stepsTotal int
	for _, e := range steps {
		stepsTotal += e.Steps
	}

	return DailyProgress{
		Date:     time.Now().Format("2006-01-02"),
		Calories: metric(calories, targets.Calories),
		Protien:  metric(protien, targets.Protien),
		Carbs:    metric(carbs, targets.Carbs),
		Fat:      metric(fat, targets.Fat),
		Steps:    metric(float64(stepsTotal), float64(targets.Steps)),
	}, nil
}

func metric(consumed, target float64) MetricProgress {
	return MetricProgress{
		Consumed: consumed,
		Target:   target,
		Percent:  PercentOfTarget(consumed, target),
	}
}

// PercentOfTarget is the chart normalization rule: nothing consumed
// against no target reads 0, anything consumed against no target reads
// 100, otherwise the rounded-up percentage capped at 100.
func PercentOfTarget(consumed, target float64) int {
	if target <= 0 {
		if consumed > 0 {
			return 100
		}
		return 0
	}
	pct := int(math.Ceil(consumed / target * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
