package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/storage"
)

type MealStore struct {
	adapter storage.Adapter
	meals   []model.Meal
}

func NewMealStore(adapter storage.Adapter) *MealStore {
	return &MealStore{adapter: adapter}
}

type MealInput struct {
	Date     string
	Type     model.MealType
	FoodName string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type MealPatch struct {
	Date     *string
	Type     *model.MealType
	FoodName *string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// Load replaces in-memory state with the persisted collection. An absent or
// malformed blob leaves current state untouched and is not an error.
func (s *MealStore) Load() error {
	data, ok, err := s.adapter.Get(storage.KeyMeals)
	if err != nil {
		return fmt.Errorf("load meals: %w", err)
	}
	if !ok {
		return nil
	}
	var meals []model.Meal
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil
	}
	s.meals = meals
	return nil
}

func (s *MealStore) Add(in MealInput) (model.Meal, error) {
	if err := validateDay("date", in.Date); err != nil {
		return model.Meal{}, err
	}
	if !in.Type.Valid() {
		return model.Meal{}, validationError("invalid meal type %q", in.Type)
	}
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.FoodName == "" {
		return model.Meal{}, validationError("food name is required")
	}
	if in.Calories <= 0 {
		return model.Meal{}, validationError("calories must be > 0")
	}
	if err := validateNonNegative("protein", in.Protein); err != nil {
		return model.Meal{}, err
	}
	if err := validateNonNegative("carbs", in.Carbs); err != nil {
		return model.Meal{}, err
	}
	if err := validateNonNegative("fat", in.Fat); err != nil {
		return model.Meal{}, err
	}

	meal := model.Meal{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Type:      in.Type,
		FoodName:  in.FoodName,
		Calories:  in.Calories,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		CreatedAt: time.Now(),
	}
	prev := s.meals
	s.meals = append(s.meals, meal)
	if err := s.persist(); err != nil {
		s.meals = prev
		return model.Meal{}, err
	}
	return meal, nil
}

// Update merges the patch into the meal with the given id and persists.
// An unknown id is a silent no-op.
func (s *MealStore) Update(id string, patch MealPatch) error {
	if err := validateMealPatch(patch); err != nil {
		return err
	}
	for i := range s.meals {
		if s.meals[i].ID != id {
			continue
		}
		updated := s.meals[i]
		if patch.Date != nil {
			updated.Date = *patch.Date
		}
		if patch.Type != nil {
			updated.Type = *patch.Type
		}
		if patch.FoodName != nil {
			updated.FoodName = strings.TrimSpace(*patch.FoodName)
		}
		if patch.Calories != nil {
			updated.Calories = *patch.Calories
		}
		if patch.Protein != nil {
			updated.Protein = *patch.Protein
		}
		if patch.Carbs != nil {
			updated.Carbs = *patch.Carbs
		}
		if patch.Fat != nil {
			updated.Fat = *patch.Fat
		}
		before := s.meals[i]
		s.meals[i] = updated
		if err := s.persist(); err != nil {
			s.meals[i] = before
			return err
		}
		return nil
	}
	return nil
}

// Remove deletes the meal with the given id; an unknown id is a no-op.
func (s *MealStore) Remove(id string) error {
	prev := s.meals
	kept := make([]model.Meal, 0, len(s.meals))
	for _, m := range s.meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.meals = kept
	if err := s.persist(); err != nil {
		s.meals = prev
		return err
	}
	return nil
}

// Meals returns the collection in insertion order.
func (s *MealStore) Meals() []model.Meal {
	out := make([]model.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

func (s *MealStore) ByDate(date string) []model.Meal {
	out := make([]model.Meal, 0)
	for _, m := range s.meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

func (s *MealStore) persist() error {
	data, err := json.Marshal(s.meals)
	if err != nil {
		return fmt.Errorf("encode meals: %w", err)
	}
	if err := s.adapter.Set(storage.KeyMeals, data); err != nil {
		return persistError("meals", err)
	}
	return nil
}

func validateMealPatch(patch MealPatch) error {
	if patch.Date != nil {
		if err := validateDay("date", *patch.Date); err != nil {
			return err
		}
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return validationError("invalid meal type %q", *patch.Type)
	}
	if patch.FoodName != nil && strings.TrimSpace(*patch.FoodName) == "" {
		return validationError("food name is required")
	}
	if err := validateOptionalNonNegative("calories", patch.Calories); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("protein", patch.Protein); err != nil {
		return err
	}
	if err := validateOptionalNonNegative("carbs", patch.Carbs); err != nil {
		return err
	}
	return validateOptionalNonNegative("fat", patch.Fat)
}
