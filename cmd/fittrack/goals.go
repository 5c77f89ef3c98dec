package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/derive"
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage daily nutrition and weight goals",
}

var (
	goalsCalories     float64
	goalsProtein      float64
	goalsCarbs        float64
	goalsFat          float64
	goalsTargetWeight float64
	goalsActivity     float64
	goalsDirection    string
)

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			g := l.goals.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f kcal/day\n", g.DailyCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0fg | Carbs: %.0fg | Fat: %.0fg\n", g.DailyProtein, g.DailyCarbs, g.DailyFat)
			if g.TargetWeight != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg\n", *g.TargetWeight)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activity level: %.3f\n", g.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", g.Goal)
			return nil
		})
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update goals (only the flags you pass change)",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := store.GoalsPatch{}
		if cmd.Flags().Changed("calories") {
			patch.DailyCalories = &goalsCalories
		}
		if cmd.Flags().Changed("protein") {
			patch.DailyProtein = &goalsProtein
		}
		if cmd.Flags().Changed("carbs") {
			patch.DailyCarbs = &goalsCarbs
		}
		if cmd.Flags().Changed("fat") {
			patch.DailyFat = &goalsFat
		}
		if cmd.Flags().Changed("target-weight") {
			patch.TargetWeight = &goalsTargetWeight
		}
		if cmd.Flags().Changed("activity") {
			patch.ActivityLevel = &goalsActivity
		}
		if cmd.Flags().Changed("goal") {
			d := model.GoalDirection(goalsDirection)
			patch.Goal = &d
		}
		return withLedger(func(l *ledger) error {
			if err := l.goals.Update(patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated")
			return nil
		})
	},
}

var (
	suggestWeight   float64
	suggestHeight   float64
	suggestAge      int
	suggestSex      string
	suggestActivity float64
	suggestGoal     string
	suggestApply    bool
)

var goalsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest calorie and macro goals from body data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			current := l.goals.Goals()
			activity := suggestActivity
			if !cmd.Flags().Changed("activity") {
				activity = current.ActivityLevel
			}
			direction := model.GoalDirection(suggestGoal)
			if !cmd.Flags().Changed("goal") {
				direction = current.Goal
			}
			weight := suggestWeight
			if !cmd.Flags().Changed("weight") {
				latest, ok := derive.LatestWeight(l.bodyStats.Stats())
				if !ok {
					return fmt.Errorf("--weight is required (no logged weight found)")
				}
				weight = latest
			}

			calories, err := derive.CalorieTarget(weight, suggestHeight, suggestAge, derive.Sex(suggestSex), activity, direction)
			if err != nil {
				return err
			}
			protein, carbs, fat := derive.MacroTargets(float64(calories))
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f\n", derive.BMI(weight, suggestHeight))
			fmt.Fprintf(cmd.OutOrStdout(), "Suggested: %d kcal | P %.0fg | C %.0fg | F %.0fg (%s)\n",
				calories, protein, carbs, fat, direction)

			if suggestApply {
				c := float64(calories)
				if err := l.goals.Update(store.GoalsPatch{
					DailyCalories: &c,
					DailyProtein:  &protein,
					DailyCarbs:    &carbs,
					DailyFat:      &fat,
				}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Applied as daily goals")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsShowCmd, goalsSetCmd, goalsSuggestCmd)

	goalsSetCmd.Flags().Float64Var(&goalsCalories, "calories", 0, "Daily calorie goal")
	goalsSetCmd.Flags().Float64Var(&goalsProtein, "protein", 0, "Daily protein grams")
	goalsSetCmd.Flags().Float64Var(&goalsCarbs, "carbs", 0, "Daily carb grams")
	goalsSetCmd.Flags().Float64Var(&goalsFat, "fat", 0, "Daily fat grams")
	goalsSetCmd.Flags().Float64Var(&goalsTargetWeight, "target-weight", 0, "Target weight in kg")
	goalsSetCmd.Flags().Float64Var(&goalsActivity, "activity", 0, "Activity multiplier (1.2-1.9)")
	goalsSetCmd.Flags().StringVar(&goalsDirection, "goal", "", "Goal direction (lose, maintain, gain)")

	goalsSuggestCmd.Flags().Float64Var(&suggestWeight, "weight", 0, "Weight in kg (default: latest logged)")
	goalsSuggestCmd.Flags().Float64Var(&suggestHeight, "height", 0, "Height in cm")
	goalsSuggestCmd.Flags().IntVar(&suggestAge, "age", 0, "Age in years")
	goalsSuggestCmd.Flags().StringVar(&suggestSex, "sex", "", "Sex (male or female)")
	goalsSuggestCmd.Flags().Float64Var(&suggestActivity, "activity", 0, "Activity multiplier (default: current goals)")
	goalsSuggestCmd.Flags().StringVar(&suggestGoal, "goal", "", "Goal direction (default: current goals)")
	goalsSuggestCmd.Flags().BoolVar(&suggestApply, "apply", false, "Save the suggestion as daily goals")
}
