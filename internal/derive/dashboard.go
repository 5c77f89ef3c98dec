package derive

import (
	"fmt"
	"math"

	"github.com/fittrack/fittrack-cli/internal/model"
)

type DashboardStats struct {
	Date           string      `json:"date"`
	TodayMacros    MacroTotals `json:"todayMacros"`
	WeeklyWorkouts int         `json:"weeklyWorkouts"`
	CurrentWeight  *float64    `json:"currentWeight,omitempty"`
	WeightTrend    Trend       `json:"weightTrend"`
}

// Dashboard assembles the headline aggregates for one day: that day's macro
// totals, the workout count of its Monday-start week, and the latest weight
// with its trend.
func Dashboard(meals []model.Meal, workouts []model.Workout, stats []model.BodyStat, date string) (DashboardStats, error) {
	weekStart, weekEnd, err := WeekBounds(date)
	if err != nil {
		return DashboardStats{}, err
	}
	out := DashboardStats{
		Date:           date,
		TodayMacros:    DailyMacroTotals(meals, date),
		WeeklyWorkouts: WeeklyWorkoutCount(workouts, weekStart, weekEnd),
		WeightTrend:    WeightTrend(stats),
	}
	if weight, ok := LatestWeight(stats); ok {
		out.CurrentWeight = &weight
	}
	return out, nil
}

// BMI computes body mass index from weight in kg and height in cm.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	return weightKg / (heightCm * heightCm) * 10000
}

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// CalorieTarget estimates a daily calorie target from the Mifflin-St Jeor
// equation, scaled by activity level and shifted 500 kcal for a lose or
// gain goal (about one pound per week).
func CalorieTarget(weightKg, heightCm float64, age int, sex Sex, activityLevel float64, goal model.GoalDirection) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("weight, height, and age must be > 0")
	}
	if activityLevel <= 0 {
		return 0, fmt.Errorf("activity level must be > 0")
	}
	var bmr float64
	switch sex {
	case SexMale:
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	case SexFemale:
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	default:
		return 0, fmt.Errorf("invalid sex %q (use male or female)", sex)
	}
	tdee := bmr * activityLevel
	switch goal {
	case model.GoalLose:
		tdee -= 500
	case model.GoalGain:
		tdee += 500
	case model.GoalMaintain:
	default:
		return 0, fmt.Errorf("invalid goal %q", goal)
	}
	return int(math.Round(tdee)), nil
}

// Default macro split: 30% protein, 40% carbs, 30% fat.
const (
	proteinRatio = 0.3
	carbsRatio   = 0.4
	fatRatio     = 0.3
)

// MacroTargets converts a calorie target into gram targets using the
// default split at 4/4/9 kcal per gram.
func MacroTargets(calories float64) (proteinG, carbsG, fatG float64) {
	proteinG = math.Round(calories * proteinRatio / 4)
	carbsG = math.Round(calories * carbsRatio / 4)
	fatG = math.Round(calories * fatRatio / 9)
	return proteinG, carbsG, fatG
}
