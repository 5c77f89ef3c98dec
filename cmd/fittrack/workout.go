package fittrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and manage workouts",
}

var (
	workoutDate      string
	workoutType      string
	workoutExercises []string
	workoutDuration  int
	workoutNotes     string
	workoutID        string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := parseExerciseSpecs(workoutExercises)
		if err != nil {
			return err
		}
		return withLedger(func(l *ledger) error {
			workout, err := l.workouts.Add(store.WorkoutInput{
				Date:      dayOrToday(workoutDate),
				Type:      model.WorkoutType(workoutType),
				Exercises: exercises,
				Duration:  workoutDuration,
				Notes:     workoutNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s workout on %s (%d min, %d exercises)\n",
				workout.Type, workout.Date, workout.Duration, len(workout.Exercises))
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", workout.ID)
			return nil
		})
	},
}

var workoutListDate string

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			date := dayOrToday(workoutListDate)
			workouts := l.workouts.ByDate(date)
			if len(workouts) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No workouts logged on %s\n", date)
				return nil
			}
			for _, w := range workouts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d min\t%s\n", w.ID, w.Type, w.Duration, w.Notes)
				for _, ex := range w.Exercises {
					line := fmt.Sprintf("  %s: %d sets x %s", ex.Name, ex.Sets, formatReps(ex.Reps))
					if len(ex.Weights) > 0 {
						line += " @ " + formatWeights(ex.Weights)
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		})
	},
}

var workoutUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a logged workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutID == "" {
			return fmt.Errorf("--id is required")
		}
		patch := store.WorkoutPatch{}
		if cmd.Flags().Changed("date") {
			patch.Date = &workoutDate
		}
		if cmd.Flags().Changed("type") {
			t := model.WorkoutType(workoutType)
			patch.Type = &t
		}
		if cmd.Flags().Changed("exercise") {
			exercises, err := parseExerciseSpecs(workoutExercises)
			if err != nil {
				return err
			}
			patch.Exercises = &exercises
		}
		if cmd.Flags().Changed("duration") {
			patch.Duration = &workoutDuration
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = &workoutNotes
		}
		return withLedger(func(l *ledger) error {
			if err := l.workouts.Update(workoutID, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated workout %s\n", workoutID)
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a logged workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutID == "" {
			return fmt.Errorf("--id is required")
		}
		return withLedger(func(l *ledger) error {
			if err := l.workouts.Remove(workoutID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", workoutID)
			return nil
		})
	},
}

func parseExerciseSpecs(specs []string) ([]store.ExerciseInput, error) {
	out := make([]store.ExerciseInput, 0, len(specs))
	for _, spec := range specs {
		ex, err := parseExerciseSpec(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}

func formatReps(reps []int) string {
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = fmt.Sprintf("%d", r)
	}
	return strings.Join(parts, ",")
}

func formatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprintf("%g", w)
	}
	return strings.Join(parts, ",")
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutUpdateCmd, workoutDeleteCmd)

	for _, c := range []*cobra.Command{workoutAddCmd, workoutUpdateCmd} {
		c.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
		c.Flags().StringVar(&workoutType, "type", string(model.WorkoutFullBody), "Workout type (Push, Pull, Legs, Upper, Lower, Full Body, Cardio, Rest)")
		c.Flags().StringArrayVar(&workoutExercises, "exercise", nil, "Exercise spec name:sets:reps[@weights], repeatable")
		c.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
		c.Flags().StringVar(&workoutNotes, "notes", "", "Notes")
	}
	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutUpdateCmd.Flags().StringVar(&workoutID, "id", "", "Workout id")
	workoutDeleteCmd.Flags().StringVar(&workoutID, "id", "", "Workout id")
}
