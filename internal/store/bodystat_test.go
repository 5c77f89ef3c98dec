package store_test

import (
	"errors"
	"testing"

	"github.com/fittrack/fittrack-cli/internal/storage"
	"github.com/fittrack/fittrack-cli/internal/store"
)

func floatPtr(v float64) *float64 { return &v }

func TestBodyStatAddWithMeasurements(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())

	added, err := stats.Add(store.BodyStatInput{
		Date:    "2024-02-10",
		Weight:  floatPtr(82.4),
		BodyFat: floatPtr(18.5),
		Waist:   floatPtr(86),
		Notes:   "morning, fasted",
	})
	if err != nil {
		t.Fatalf("add body stat: %v", err)
	}
	if added.Weight == nil || *added.Weight != 82.4 {
		t.Fatalf("expected weight stored, got %+v", added.Weight)
	}
	if added.Muscle != nil {
		t.Fatalf("unset measurements must stay nil")
	}
}

func TestBodyStatAddAllEmptyIsAccepted(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())
	if _, err := stats.Add(store.BodyStatInput{Date: "2024-02-11", Notes: "photo only"}); err != nil {
		t.Fatalf("all-empty stat must be accepted: %v", err)
	}
	if len(stats.ByDate("2024-02-11")) != 1 {
		t.Fatalf("expected stat stored")
	}
}

func TestBodyStatValidation(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())

	cases := []struct {
		name string
		in   store.BodyStatInput
	}{
		{"missing date", store.BodyStatInput{}},
		{"negative weight", store.BodyStatInput{Date: "2024-02-10", Weight: floatPtr(-1)}},
		{"body fat over 100", store.BodyStatInput{Date: "2024-02-10", BodyFat: floatPtr(120)}},
		{"negative waist", store.BodyStatInput{Date: "2024-02-10", Waist: floatPtr(-3)}},
	}
	for _, tc := range cases {
		if _, err := stats.Add(tc.in); !errors.Is(err, store.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestBodyStatUpdatePreservesOtherMeasurements(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())
	added, err := stats.Add(store.BodyStatInput{
		Date:   "2024-02-10",
		Weight: floatPtr(82.4),
		Waist:  floatPtr(86),
	})
	if err != nil {
		t.Fatalf("add body stat: %v", err)
	}

	if err := stats.Update(added.ID, store.BodyStatPatch{Weight: floatPtr(81.9)}); err != nil {
		t.Fatalf("update body stat: %v", err)
	}
	got := stats.Stats()[0]
	if got.Weight == nil || *got.Weight != 81.9 {
		t.Fatalf("expected weight 81.9, got %+v", got.Weight)
	}
	if got.Waist == nil || *got.Waist != 86 {
		t.Fatalf("waist must be preserved, got %+v", got.Waist)
	}
}

func TestBodyStatMeasurementsDetachedFromCallerPointers(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())

	weight := 82.4
	added, err := stats.Add(store.BodyStatInput{Date: "2024-02-10", Weight: &weight})
	if err != nil {
		t.Fatalf("add body stat: %v", err)
	}
	weight = 70
	if got := stats.Stats()[0]; got.Weight == nil || *got.Weight != 82.4 {
		t.Fatalf("stored weight must not track the input pointer, got %+v", got.Weight)
	}

	waist := 86.0
	if err := stats.Update(added.ID, store.BodyStatPatch{Waist: &waist}); err != nil {
		t.Fatalf("update body stat: %v", err)
	}
	waist = 1
	if got := stats.Stats()[0]; got.Waist == nil || *got.Waist != 86 {
		t.Fatalf("stored waist must not track the patch pointer, got %+v", got.Waist)
	}
}

func TestBodyStatRemoveUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()
	stats := store.NewBodyStatStore(storage.NewMemory())
	if _, err := stats.Add(store.BodyStatInput{Date: "2024-02-10", Weight: floatPtr(80)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := stats.Remove("missing"); err != nil {
		t.Fatalf("remove unknown id: %v", err)
	}
	if len(stats.Stats()) != 1 {
		t.Fatalf("collection must be unchanged")
	}
}
