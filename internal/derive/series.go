package derive

import (
	"fmt"
	"time"

	"github.com/fittrack/fittrack-cli/internal/model"
)

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CalorieDay struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// WorkoutHeatmap buckets workouts into windowDays consecutive days ending
// at anchorDate, oldest first. Days without workouts appear with a zero
// count, so the result always has exactly windowDays entries.
func WorkoutHeatmap(workouts []model.Workout, windowDays int, anchorDate string) ([]HeatmapDay, error) {
	if windowDays <= 0 {
		return nil, fmt.Errorf("window must be > 0 days")
	}
	anchor, err := time.Parse(dayFormat, anchorDate)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor date %q (expected YYYY-MM-DD)", anchorDate)
	}

	counts := make(map[string]int, len(workouts))
	for _, w := range workouts {
		counts[w.Date]++
	}

	days := make([]HeatmapDay, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		date := anchor.AddDate(0, 0, -i).Format(dayFormat)
		days = append(days, HeatmapDay{Date: date, Count: counts[date]})
	}
	return days, nil
}

// SevenDayCalorieSeries sums calories per day over the 7-day trailing
// window ending at anchorDate, zero-filled for unlogged days.
func SevenDayCalorieSeries(meals []model.Meal, anchorDate string) ([]CalorieDay, error) {
	anchor, err := time.Parse(dayFormat, anchorDate)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor date %q (expected YYYY-MM-DD)", anchorDate)
	}

	calories := make(map[string]float64, len(meals))
	for _, m := range meals {
		calories[m.Date] += m.Calories
	}

	days := make([]CalorieDay, 0, 7)
	for i := 6; i >= 0; i-- {
		date := anchor.AddDate(0, 0, -i).Format(dayFormat)
		days = append(days, CalorieDay{Date: date, Calories: calories[date]})
	}
	return days, nil
}
