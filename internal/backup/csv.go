package backup

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/fittrack/fittrack-cli/internal/model"
)

// MealsCSV renders meals as CSV with one row per meal. An empty collection
// yields empty output rather than a lone header row.
func MealsCSV(meals []model.Meal) ([]byte, error) {
	if len(meals) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "type", "foodName", "calories", "protein", "carbs", "fat"}); err != nil {
		return nil, fmt.Errorf("write meals csv header: %w", err)
	}
	for _, m := range meals {
		record := []string{
			m.Date,
			string(m.Type),
			m.FoodName,
			strconv.FormatFloat(m.Calories, 'f', -1, 64),
			strconv.FormatFloat(m.Protein, 'f', -1, 64),
			strconv.FormatFloat(m.Carbs, 'f', -1, 64),
			strconv.FormatFloat(m.Fat, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write meals csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush meals csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkoutsCSV renders workouts as CSV with one row per workout. Exercises
// are flattened into a single column as "name(setsxreps @weightskg)" with
// per-set values joined by "/" and exercises joined by "|".
func WorkoutsCSV(workouts []model.Workout) ([]byte, error) {
	if len(workouts) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "type", "duration", "exercises", "notes"}); err != nil {
		return nil, fmt.Errorf("write workouts csv header: %w", err)
	}
	for _, wk := range workouts {
		record := []string{
			wk.Date,
			string(wk.Type),
			strconv.Itoa(wk.Duration),
			flattenExercises(wk.Exercises),
			wk.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write workouts csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush workouts csv: %w", err)
	}
	return buf.Bytes(), nil
}

func flattenExercises(exercises []model.Exercise) string {
	parts := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		reps := make([]string, len(ex.Reps))
		for i, r := range ex.Reps {
			reps[i] = strconv.Itoa(r)
		}
		cell := fmt.Sprintf("%s(%dx%s", ex.Name, ex.Sets, strings.Join(reps, "/"))
		if len(ex.Weights) > 0 {
			weights := make([]string, len(ex.Weights))
			for i, wt := range ex.Weights {
				weights[i] = strconv.FormatFloat(wt, 'f', -1, 64)
			}
			cell += " @" + strings.Join(weights, "/") + "kg"
		}
		cell += ")"
		parts = append(parts, cell)
	}
	return strings.Join(parts, "|")
}
