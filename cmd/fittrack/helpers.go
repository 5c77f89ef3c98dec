package fittrack

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fittrack/fittrack-cli/internal/app"
	"github.com/fittrack/fittrack-cli/internal/backup"
	"github.com/fittrack/fittrack-cli/internal/storage"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// ledger bundles the four stores and the backup engine over one adapter.
type ledger struct {
	dbPath    string
	meals     *store.MealStore
	workouts  *store.WorkoutStore
	bodyStats *store.BodyStatStore
	goals     *store.GoalsStore
	backup    *backup.Engine
}

func withLedger(run func(*ledger) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	adapter, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer adapter.Close()

	l := &ledger{
		dbPath:    path,
		meals:     store.NewMealStore(adapter),
		workouts:  store.NewWorkoutStore(adapter),
		bodyStats: store.NewBodyStatStore(adapter),
		goals:     store.NewGoalsStore(adapter),
		backup:    backup.NewEngine(adapter),
	}
	if err := l.meals.Load(); err != nil {
		return err
	}
	if err := l.workouts.Load(); err != nil {
		return err
	}
	if err := l.bodyStats.Load(); err != nil {
		return err
	}
	if err := l.goals.Load(); err != nil {
		return err
	}
	slog.Debug("ledger loaded", "db", path)
	return run(l)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func dayOrToday(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}

// parseExerciseSpec parses "name:sets:reps[@weights]", where reps and
// weights are comma-separated per-set lists (a single value applies to
// every set). Example: "Bench Press:3:8,8,6@80,80,85".
func parseExerciseSpec(spec string) (store.ExerciseInput, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return store.ExerciseInput{}, fmt.Errorf("invalid exercise %q (expected name:sets:reps[@weights])", spec)
	}
	name := strings.TrimSpace(parts[0])
	sets, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return store.ExerciseInput{}, fmt.Errorf("invalid sets in exercise %q", spec)
	}

	repsPart := parts[2]
	weightsPart := ""
	if at := strings.Index(repsPart, "@"); at >= 0 {
		weightsPart = repsPart[at+1:]
		repsPart = repsPart[:at]
	}
	reps, err := parseIntList(repsPart)
	if err != nil {
		return store.ExerciseInput{}, fmt.Errorf("invalid reps in exercise %q", spec)
	}
	var weights []float64
	if strings.TrimSpace(weightsPart) != "" {
		weights, err = parseFloatList(weightsPart)
		if err != nil {
			return store.ExerciseInput{}, fmt.Errorf("invalid weights in exercise %q", spec)
		}
	}
	return store.ExerciseInput{Name: name, Sets: sets, Reps: reps, Weights: weights}, nil
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
