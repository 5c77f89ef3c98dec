package derive_test

import (
	"testing"

	"github.com/fittrack/fittrack-cli/internal/derive"
	"github.com/fittrack/fittrack-cli/internal/model"
)

func TestDashboardAggregates(t *testing.T) {
	t.Parallel()
	meals := []model.Meal{
		meal("2024-01-03", 500, 40, 50, 15),
		meal("2024-01-03", 700, 45, 60, 25),
		meal("2024-01-02", 2000, 0, 0, 0),
	}
	workouts := []model.Workout{
		{Date: "2024-01-01"},
		{Date: "2024-01-03"},
		{Date: "2024-01-08"}, // next week
	}
	stats := []model.BodyStat{
		weighIn("2023-12-28", 84),
		weighIn("2024-01-02", 83),
	}

	dash, err := derive.Dashboard(meals, workouts, stats, "2024-01-03")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.TodayMacros.Calories != 1200 || dash.TodayMacros.Protein != 85 {
		t.Fatalf("unexpected today macros: %+v", dash.TodayMacros)
	}
	if dash.WeeklyWorkouts != 2 {
		t.Fatalf("expected 2 workouts this week, got %d", dash.WeeklyWorkouts)
	}
	if dash.CurrentWeight == nil || *dash.CurrentWeight != 83 {
		t.Fatalf("expected current weight 83, got %+v", dash.CurrentWeight)
	}
	if dash.WeightTrend != derive.TrendDown {
		t.Fatalf("expected down trend, got %s", dash.WeightTrend)
	}
}

func TestDashboardEmptyLedger(t *testing.T) {
	t.Parallel()
	dash, err := derive.Dashboard(nil, nil, nil, "2024-01-03")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.TodayMacros != (derive.MacroTotals{}) || dash.WeeklyWorkouts != 0 {
		t.Fatalf("expected zero aggregates, got %+v", dash)
	}
	if dash.CurrentWeight != nil || dash.WeightTrend != derive.TrendStable {
		t.Fatalf("expected no weight and stable trend, got %+v", dash)
	}
}

func TestCalorieTargetMifflinStJeor(t *testing.T) {
	t.Parallel()
	// Male, 80kg, 180cm, 30y: BMR = 800 + 1125 - 150 + 5 = 1780.
	got, err := derive.CalorieTarget(80, 180, 30, derive.SexMale, 1.0, model.GoalMaintain)
	if err != nil {
		t.Fatalf("calorie target: %v", err)
	}
	if got != 1780 {
		t.Fatalf("expected 1780, got %d", got)
	}

	lose, err := derive.CalorieTarget(80, 180, 30, derive.SexMale, 1.0, model.GoalLose)
	if err != nil {
		t.Fatalf("calorie target lose: %v", err)
	}
	if lose != 1280 {
		t.Fatalf("expected 1280 for lose, got %d", lose)
	}

	female, err := derive.CalorieTarget(60, 165, 25, derive.SexFemale, 1.375, model.GoalMaintain)
	if err != nil {
		t.Fatalf("calorie target female: %v", err)
	}
	// BMR = 600 + 1031.25 - 125 - 161 = 1345.25; TDEE = 1849.72 -> 1850.
	if female != 1850 {
		t.Fatalf("expected 1850, got %d", female)
	}

	if _, err := derive.CalorieTarget(80, 180, 30, "other", 1.0, model.GoalMaintain); err == nil {
		t.Fatalf("expected error for invalid sex")
	}
}

func TestBMI(t *testing.T) {
	t.Parallel()
	got := derive.BMI(80, 180)
	if got < 24.6 || got > 24.8 {
		t.Fatalf("expected BMI around 24.7, got %v", got)
	}
	if derive.BMI(80, 0) != 0 {
		t.Fatalf("zero height must yield 0")
	}
}

func TestMacroTargetsDefaultSplit(t *testing.T) {
	t.Parallel()
	protein, carbs, fat := derive.MacroTargets(2000)
	if protein != 150 || carbs != 200 || fat != 67 {
		t.Fatalf("expected 150/200/67, got %v/%v/%v", protein, carbs, fat)
	}
}
