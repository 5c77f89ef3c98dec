package store

import (
	"encoding/json"
	"fmt"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/storage"
)

// GoalsStore is the singleton variant of the entity stores: exactly one
// UserGoals document, always complete, defaults filled in for any field a
// persisted document does not carry.
type GoalsStore struct {
	adapter storage.Adapter
	goals   model.UserGoals
}

func DefaultGoals() model.UserGoals {
	return model.UserGoals{
		DailyCalories: 2000,
		DailyProtein:  150,
		DailyCarbs:    200,
		DailyFat:      65,
		ActivityLevel: model.ActivityLightlyActive,
		Goal:          model.GoalMaintain,
	}
}

func NewGoalsStore(adapter storage.Adapter) *GoalsStore {
	return &GoalsStore{adapter: adapter, goals: DefaultGoals()}
}

type GoalsPatch struct {
	DailyCalories *float64
	DailyProtein  *float64
	DailyCarbs    *float64
	DailyFat      *float64
	TargetWeight  *float64
	ActivityLevel *float64
	Goal          *model.GoalDirection
}

// goalsDoc is the decode shape at the persistence boundary: every field is
// optional so documents written by older versions merge onto defaults.
type goalsDoc struct {
	DailyCalories *float64             `json:"dailyCalories"`
	DailyProtein  *float64             `json:"dailyProtein"`
	DailyCarbs    *float64             `json:"dailyCarbs"`
	DailyFat      *float64             `json:"dailyFat"`
	TargetWeight  *float64             `json:"targetWeight"`
	ActivityLevel *float64             `json:"activityLevel"`
	Goal          *model.GoalDirection `json:"goal"`
}

func (s *GoalsStore) Load() error {
	data, ok, err := s.adapter.Get(storage.KeyUserGoals)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	if !ok {
		return nil
	}
	var doc goalsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	merged := DefaultGoals()
	applyGoalsDoc(&merged, doc)
	s.goals = merged
	return nil
}

// Update merges the patch onto current goals and persists the full object.
func (s *GoalsStore) Update(patch GoalsPatch) error {
	if err := validateOptionalNonNegative("daily calories", patch.DailyCalories); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("daily protein", patch.DailyProtein); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("daily carbs", patch.DailyCarbs); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("daily fat", patch.DailyFat); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("target weight", patch.TargetWeight); err != nil {
		return err
	}
	if patch.ActivityLevel != nil && *patch.ActivityLevel <= 0 {
		return validationError("activity level must be > 0")
	}
	if patch.Goal != nil && !patch.Goal.Valid() {
		return validationError("goal must be one of lose, maintain, gain")
	}

	updated := s.goals
	if patch.DailyCalories != nil {
		updated.DailyCalories = *patch.DailyCalories
	}
	if patch.DailyProtein != nil {
		updated.DailyProtein = *patch.DailyProtein
	}
	if patch.DailyCarbs != nil {
		updated.DailyCarbs = *patch.DailyCarbs
	}
	if patch.DailyFat != nil {
		updated.DailyFat = *patch.DailyFat
	}
	if patch.TargetWeight != nil {
		updated.TargetWeight = copyFloat(patch.TargetWeight)
	}
	if patch.ActivityLevel != nil {
		updated.ActivityLevel = *patch.ActivityLevel
	}
	if patch.Goal != nil {
		updated.Goal = *patch.Goal
	}

	prev := s.goals
	s.goals = updated
	if err := s.persist(); err != nil {
		s.goals = prev
		return err
	}
	return nil
}

func (s *GoalsStore) Goals() model.UserGoals {
	return s.goals
}

func (s *GoalsStore) persist() error {
	data, err := json.Marshal(s.goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	if err := s.adapter.Set(storage.KeyUserGoals, data); err != nil {
		return persistError("goals", err)
	}
	return nil
}

func applyGoalsDoc(goals *model.UserGoals, doc goalsDoc) {
	if doc.DailyCalories != nil {
		goals.DailyCalories = *doc.DailyCalories
	}
	if doc.DailyProtein != nil {
		goals.DailyProtein = *doc.DailyProtein
	}
	if doc.DailyCarbs != nil {
		goals.DailyCarbs = *doc.DailyCarbs
	}
	if doc.DailyFat != nil {
		goals.DailyFat = *doc.DailyFat
	}
	if doc.TargetWeight != nil {
		goals.TargetWeight = copyFloat(doc.TargetWeight)
	}
	if doc.ActivityLevel != nil {
		goals.ActivityLevel = *doc.ActivityLevel
	}
	if doc.Goal != nil {
		goals.Goal = *doc.Goal
	}
}
