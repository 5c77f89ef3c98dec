package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and manage meals",
}

var (
	mealDate     string
	mealType     string
	mealFood     string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealID       string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			meal, err := l.meals.Add(store.MealInput{
				Date:     dayOrToday(mealDate),
				Type:     model.MealType(mealType),
				FoodName: mealFood,
				Calories: mealCalories,
				Protein:  mealProtein,
				Carbs:    mealCarbs,
				Fat:      mealFat,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s, %.0f kcal) on %s\n", meal.FoodName, meal.Type, meal.Calories, meal.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", meal.ID)
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			date := dayOrToday(mealListDate)
			meals := l.meals.ByDate(date)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTYPE\tFOOD\tKCAL\tP\tC\tF")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					m.ID, m.Type, m.FoodName, m.Calories, m.Protein, m.Carbs, m.Fat)
			}
			if len(meals) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No meals logged on %s\n", date)
			}
			return nil
		})
	},
}

var mealUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of a logged meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mealID == "" {
			return fmt.Errorf("--id is required")
		}
		patch := store.MealPatch{}
		if cmd.Flags().Changed("date") {
			patch.Date = &mealDate
		}
		if cmd.Flags().Changed("type") {
			t := model.MealType(mealType)
			patch.Type = &t
		}
		if cmd.Flags().Changed("food") {
			patch.FoodName = &mealFood
		}
		if cmd.Flags().Changed("calories") {
			patch.Calories = &mealCalories
		}
		if cmd.Flags().Changed("protein") {
			patch.Protein = &mealProtein
		}
		if cmd.Flags().Changed("carbs") {
			patch.Carbs = &mealCarbs
		}
		if cmd.Flags().Changed("fat") {
			patch.Fat = &mealFat
		}
		return withLedger(func(l *ledger) error {
			if err := l.meals.Update(mealID, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal %s\n", mealID)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a logged meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mealID == "" {
			return fmt.Errorf("--id is required")
		}
		return withLedger(func(l *ledger) error {
			if err := l.meals.Remove(mealID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", mealID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealDeleteCmd)

	for _, c := range []*cobra.Command{mealAddCmd, mealUpdateCmd} {
		c.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
		c.Flags().StringVar(&mealType, "type", string(model.MealSnack), "Meal type (Breakfast, Lunch, Dinner, Snack)")
		c.Flags().StringVar(&mealFood, "food", "", "Food name")
		c.Flags().Float64Var(&mealCalories, "calories", 0, "Calories")
		c.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams")
		c.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams")
		c.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams")
	}
	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealUpdateCmd.Flags().StringVar(&mealID, "id", "", "Meal id")
	mealDeleteCmd.Flags().StringVar(&mealID, "id", "", "Meal id")
}
