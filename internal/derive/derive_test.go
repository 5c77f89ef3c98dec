package derive_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/derive"
	"github.com/fittrack/fittrack-cli/internal/model"
)

func meal(date string, calories, protein, carbs, fat float64) model.Meal {
	return model.Meal{Date: date, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
}

func TestDailyMacroTotalsEmptyIsZero(t *testing.T) {
	t.Parallel()
	totals := derive.DailyMacroTotals(nil, "2024-03-01")
	if totals != (derive.MacroTotals{}) {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}

func TestDailyMacroTotalsSumsExactDateOnly(t *testing.T) {
	t.Parallel()
	meals := []model.Meal{
		meal("2024-03-01", 300, 20, 30, 10),
		meal("2024-03-01", 450, 35, 40, 15),
		meal("2024-03-01", 250, 18, 25, 8),
		meal("2024-03-02", 900, 60, 80, 30),
	}
	totals := derive.DailyMacroTotals(meals, "2024-03-01")
	if totals.Calories != 1000 {
		t.Fatalf("expected 1000 calories, got %v", totals.Calories)
	}
	if totals.Protein != 73 || totals.Carbs != 95 || totals.Fat != 33 {
		t.Fatalf("unexpected macro sums: %+v", totals)
	}
}

func TestWeeklyWorkoutCountInclusiveBounds(t *testing.T) {
	t.Parallel()
	workouts := []model.Workout{
		{Date: "2024-01-01"}, // Monday, week start
		{Date: "2024-01-04"},
		{Date: "2024-01-07"}, // Sunday, week end
		{Date: "2024-01-08"}, // next week
		{Date: "2023-12-31"}, // previous week
	}
	if got := derive.WeeklyWorkoutCount(workouts, "2024-01-01", "2024-01-07"); got != 3 {
		t.Fatalf("expected 3 workouts in week, got %d", got)
	}
}

func TestWeekBoundsMondayStart(t *testing.T) {
	t.Parallel()
	// 2024-01-03 is a Wednesday.
	start, end, err := derive.WeekBounds("2024-01-03")
	if err != nil {
		t.Fatalf("week bounds: %v", err)
	}
	if start != "2024-01-01" || end != "2024-01-07" {
		t.Fatalf("expected 2024-01-01..2024-01-07, got %s..%s", start, end)
	}
	// A Monday is its own week start.
	start, end, err = derive.WeekBounds("2024-01-01")
	if err != nil {
		t.Fatalf("week bounds: %v", err)
	}
	if start != "2024-01-01" || end != "2024-01-07" {
		t.Fatalf("monday must anchor its own week, got %s..%s", start, end)
	}
}

func TestGoalProgress(t *testing.T) {
	t.Parallel()
	cases := []struct {
		actual, goal float64
		want         int
	}{
		{1500, 2000, 75},
		{2200, 2000, 110}, // raw, unclamped
		{0, 2000, 0},
		{100, 0, 0},
		{1001, 2000, 50},
	}
	for _, tc := range cases {
		if got := derive.GoalProgress(tc.actual, tc.goal); got != tc.want {
			t.Fatalf("GoalProgress(%v, %v) = %d, want %d", tc.actual, tc.goal, got, tc.want)
		}
	}
}
