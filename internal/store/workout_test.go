package store_test

import (
	"errors"
	"testing"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/storage"
	"github.com/fittrack/fittrack-cli/internal/store"
)

func validWorkout() store.WorkoutInput {
	return store.WorkoutInput{
		Date: "2024-03-04",
		Type: model.WorkoutPush,
		Exercises: []store.ExerciseInput{
			{Name: "Bench Press", Sets: 3, Reps: []int{8, 8, 6}, Weights: []float64{80, 80, 85}},
			{Name: "Overhead Press", Sets: 3, Reps: []int{10}},
		},
		Duration: 55,
	}
}

func TestWorkoutAddPreservesExerciseOrder(t *testing.T) {
	t.Parallel()
	workouts := store.NewWorkoutStore(storage.NewMemory())

	added, err := workouts.Add(validWorkout())
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if len(added.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(added.Exercises))
	}
	if added.Exercises[0].Name != "Bench Press" || added.Exercises[1].Name != "Overhead Press" {
		t.Fatalf("exercise order must match insertion order: %+v", added.Exercises)
	}
	for _, ex := range added.Exercises {
		if ex.ID == "" {
			t.Fatalf("expected exercise id assigned")
		}
	}
}

func TestWorkoutAddValidation(t *testing.T) {
	t.Parallel()
	workouts := store.NewWorkoutStore(storage.NewMemory())

	cases := []struct {
		name   string
		mutate func(*store.WorkoutInput)
	}{
		{"missing date", func(in *store.WorkoutInput) { in.Date = "" }},
		{"unknown type", func(in *store.WorkoutInput) { in.Type = "Arms" }},
		{"negative duration", func(in *store.WorkoutInput) { in.Duration = -5 }},
		{"empty exercise name", func(in *store.WorkoutInput) { in.Exercises[0].Name = "" }},
		{"reps/sets mismatch", func(in *store.WorkoutInput) { in.Exercises[0].Reps = []int{8, 8} }},
		{"weights/sets mismatch", func(in *store.WorkoutInput) { in.Exercises[0].Weights = []float64{80, 85} }},
		{"negative reps", func(in *store.WorkoutInput) { in.Exercises[1].Reps = []int{-1} }},
	}
	for _, tc := range cases {
		in := validWorkout()
		tc.mutate(&in)
		if _, err := workouts.Add(in); !errors.Is(err, store.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestWorkoutRestDayWithoutExercises(t *testing.T) {
	t.Parallel()
	workouts := store.NewWorkoutStore(storage.NewMemory())
	added, err := workouts.Add(store.WorkoutInput{Date: "2024-03-05", Type: model.WorkoutRest})
	if err != nil {
		t.Fatalf("add rest day: %v", err)
	}
	if len(added.Exercises) != 0 {
		t.Fatalf("expected no exercises, got %d", len(added.Exercises))
	}
}

func TestWorkoutUpdateReplacesExercises(t *testing.T) {
	t.Parallel()
	workouts := store.NewWorkoutStore(storage.NewMemory())
	added, err := workouts.Add(validWorkout())
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}

	replacement := []store.ExerciseInput{{Name: "Dips", Sets: 4, Reps: []int{12}}}
	duration := 40
	err = workouts.Update(added.ID, store.WorkoutPatch{Exercises: &replacement, Duration: &duration})
	if err != nil {
		t.Fatalf("update workout: %v", err)
	}
	got := workouts.Workouts()[0]
	if len(got.Exercises) != 1 || got.Exercises[0].Name != "Dips" {
		t.Fatalf("expected exercises replaced, got %+v", got.Exercises)
	}
	if got.Duration != 40 {
		t.Fatalf("expected duration 40, got %d", got.Duration)
	}
	if got.Date != added.Date || got.Type != added.Type {
		t.Fatalf("unpatched fields must be preserved")
	}
}

func TestWorkoutUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	t.Parallel()
	workouts := store.NewWorkoutStore(storage.NewMemory())
	if _, err := workouts.Add(validWorkout()); err != nil {
		t.Fatalf("add workout: %v", err)
	}
	duration := 10
	if err := workouts.Update("missing", store.WorkoutPatch{Duration: &duration}); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if workouts.Workouts()[0].Duration != 55 {
		t.Fatalf("unknown-id update must not touch other workouts")
	}
}

func TestWorkoutRemoveThenReload(t *testing.T) {
	t.Parallel()
	adapter := storage.NewMemory()
	workouts := store.NewWorkoutStore(adapter)
	first, err := workouts.Add(validWorkout())
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second := validWorkout()
	second.Date = "2024-03-06"
	if _, err := workouts.Add(second); err != nil {
		t.Fatalf("add second: %v", err)
	}

	if err := workouts.Remove(first.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	reloaded := store.NewWorkoutStore(adapter)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := reloaded.Workouts()
	if len(got) != 1 || got[0].Date != "2024-03-06" {
		t.Fatalf("expected only second workout persisted, got %+v", got)
	}
}

func TestWorkoutLoadNormalizesScalarReps(t *testing.T) {
	t.Parallel()
	adapter := storage.NewMemory()
	legacy := `[{"id":"w1","date":"2024-01-10","type":"Legs","duration":45,"createdAt":"2024-01-10T18:00:00Z",` +
		`"exercises":[{"id":"e1","name":"Squat","sets":5,"reps":5,"weights":100}]}]`
	if err := adapter.Set(storage.KeyWorkouts, []byte(legacy)); err != nil {
		t.Fatalf("seed legacy blob: %v", err)
	}

	workouts := store.NewWorkoutStore(adapter)
	if err := workouts.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := workouts.Workouts()
	if len(got) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(got))
	}
	ex := got[0].Exercises[0]
	if len(ex.Reps) != 1 || ex.Reps[0] != 5 {
		t.Fatalf("expected scalar reps normalized to [5], got %v", ex.Reps)
	}
	if len(ex.Weights) != 1 || ex.Weights[0] != 100 {
		t.Fatalf("expected scalar weight normalized to [100], got %v", ex.Weights)
	}
}
