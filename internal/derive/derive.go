// Package derive computes display-ready aggregates over ledger snapshots.
// Every function is pure: identical inputs yield identical outputs and
// nothing here reads or writes stores.
package derive

import (
	"fmt"
	"math"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
)

const dayFormat = "2006-01-02"

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyMacroTotals sums macros over meals logged on the given day. No meals
// means all-zero totals, never an error.
func DailyMacroTotals(meals []model.Meal, date string) MacroTotals {
	var totals MacroTotals
	for _, m := range meals {
		if m.Date != date {
			continue
		}
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fat += m.Fat
	}
	return totals
}

// WeeklyWorkoutCount counts workouts inside the closed interval
// [weekStart, weekEnd]. The fixed date format makes lexicographic and
// calendar comparison agree.
func WeeklyWorkoutCount(workouts []model.Workout, weekStart, weekEnd string) int {
	count := 0
	for _, w := range workouts {
		if w.Date >= weekStart && w.Date <= weekEnd {
			count++
		}
	}
	return count
}

// GoalProgress returns the raw rounded percentage of actual against goal,
// deliberately unclamped; display layers clamp as they see fit. A zero goal
// yields 0 rather than a division by zero.
func GoalProgress(actual, goal float64) int {
	if goal == 0 {
		return 0
	}
	return int(math.Round(actual / goal * 100))
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date string) (string, string, error) {
	day, err := time.Parse(dayFormat, date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(dayFormat), sunday.Format(dayFormat), nil
}
