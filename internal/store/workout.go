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

type WorkoutStore struct {
	adapter  storage.Adapter
	workouts []model.Workout
}

func NewWorkoutStore(adapter storage.Adapter) *WorkoutStore {
	return &WorkoutStore{adapter: adapter}
}

type ExerciseInput struct {
	Name    string
	Sets    int
	Reps    []int
	Weights []float64
	Notes   string
}

type WorkoutInput struct {
	Date      string
	Type      model.WorkoutType
	Exercises []ExerciseInput
	Duration  int
	Notes     string
}

type WorkoutPatch struct {
	Date      *string
	Type      *model.WorkoutType
	Exercises *[]ExerciseInput
	Duration  *int
	Notes     *string
}

func (s *WorkoutStore) Load() error {
	data, ok, err := s.adapter.Get(storage.KeyWorkouts)
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	if !ok {
		return nil
	}
	var workouts []model.Workout
	if err := json.Unmarshal(data, &workouts); err != nil {
		return nil
	}
	s.workouts = workouts
	return nil
}

func (s *WorkoutStore) Add(in WorkoutInput) (model.Workout, error) {
	if err := validateDay("date", in.Date); err != nil {
		return model.Workout{}, err
	}
	if !in.Type.Valid() {
		return model.Workout{}, validationError("invalid workout type %q", in.Type)
	}
	if in.Duration < 0 {
		return model.Workout{}, validationError("duration must be >= 0")
	}
	exercises, err := buildExercises(in.Exercises)
	if err != nil {
		return model.Workout{}, err
	}

	workout := model.Workout{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Type:      in.Type,
		Exercises: exercises,
		Duration:  in.Duration,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: time.Now(),
	}
	prev := s.workouts
	s.workouts = append(s.workouts, workout)
	if err := s.persist(); err != nil {
		s.workouts = prev
		return model.Workout{}, err
	}
	return workout, nil
}

func (s *WorkoutStore) Update(id string, patch WorkoutPatch) error {
	if patch.Date != nil {
		if err := validateDay("date", *patch.Date); err != nil {
			return err
		}
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return validationError("invalid workout type %q", *patch.Type)
	}
	if patch.Duration != nil && *patch.Duration < 0 {
		return validationError("duration must be >= 0")
	}
	var exercises []model.Exercise
	if patch.Exercises != nil {
		built, err := buildExercises(*patch.Exercises)
		if err != nil {
			return err
		}
		exercises = built
	}
	for i := range s.workouts {
		if s.workouts[i].ID != id {
			continue
		}
		updated := s.workouts[i]
		if patch.Date != nil {
			updated.Date = *patch.Date
		}
		if patch.Type != nil {
			updated.Type = *patch.Type
		}
		if patch.Exercises != nil {
			updated.Exercises = exercises
		}
		if patch.Duration != nil {
			updated.Duration = *patch.Duration
		}
		if patch.Notes != nil {
			updated.Notes = strings.TrimSpace(*patch.Notes)
		}
		before := s.workouts[i]
		s.workouts[i] = updated
		if err := s.persist(); err != nil {
			s.workouts[i] = before
			return err
		}
		return nil
	}
	return nil
}

func (s *WorkoutStore) Remove(id string) error {
	prev := s.workouts
	kept := make([]model.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.workouts = kept
	if err := s.persist(); err != nil {
		s.workouts = prev
		return err
	}
	return nil
}

func (s *WorkoutStore) Workouts() []model.Workout {
	out := make([]model.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

func (s *WorkoutStore) ByDate(date string) []model.Workout {
	out := make([]model.Workout, 0)
	for _, w := range s.workouts {
		if w.Date == date {
			out = append(out, w)
		}
	}
	return out
}

func (s *WorkoutStore) persist() error {
	data, err := json.Marshal(s.workouts)
	if err != nil {
		return fmt.Errorf("encode workouts: %w", err)
	}
	if err := s.adapter.Set(storage.KeyWorkouts, data); err != nil {
		return persistError("workouts", err)
	}
	return nil
}

// buildExercises validates inputs and assigns ids, preserving order. Reps
// and weights may be empty, a single value for every set, or one value per
// set; any other length is rejected.
func buildExercises(inputs []ExerciseInput) ([]model.Exercise, error) {
	exercises := make([]model.Exercise, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, validationError("exercise name is required")
		}
		if in.Sets < 0 {
			return nil, validationError("exercise %q: sets must be >= 0", name)
		}
		if len(in.Reps) > 1 && len(in.Reps) != in.Sets {
			return nil, validationError("exercise %q: reps count %d does not match %d sets", name, len(in.Reps), in.Sets)
		}
		for _, r := range in.Reps {
			if r < 0 {
				return nil, validationError("exercise %q: reps must be >= 0", name)
			}
		}
		if len(in.Weights) > 1 && len(in.Weights) != in.Sets {
			return nil, validationError("exercise %q: weights count %d does not match %d sets", name, len(in.Weights), in.Sets)
		}
		for _, w := range in.Weights {
			if w < 0 {
				return nil, validationError("exercise %q: weights must be >= 0", name)
			}
		}
		exercises = append(exercises, model.Exercise{
			ID:      uuid.NewString(),
			Name:    name,
			Sets:    in.Sets,
			Reps:    model.IntList(in.Reps),
			Weights: model.FloatList(in.Weights),
			Notes:   strings.TrimSpace(in.Notes),
		})
	}
	return exercises, nil
}
