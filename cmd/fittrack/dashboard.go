package fittrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/derive"
)

var (
	dashboardDate string
	heatmapDays   int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's stats, goal progress, and trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dayOrToday(dashboardDate)
		return withLedger(func(l *ledger) error {
			meals := l.meals.Meals()
			workouts := l.workouts.Workouts()
			stats := l.bodyStats.Stats()
			goals := l.goals.Goals()

			dash, err := derive.Dashboard(meals, workouts, stats, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", dash.Date)
			fmt.Fprintf(out, "Calories: %.0f / %.0f kcal (%d%%)\n",
				dash.TodayMacros.Calories, goals.DailyCalories, clampPercent(derive.GoalProgress(dash.TodayMacros.Calories, goals.DailyCalories)))
			fmt.Fprintf(out, "Protein: %.1fg / %.0fg (%d%%)\n",
				dash.TodayMacros.Protein, goals.DailyProtein, clampPercent(derive.GoalProgress(dash.TodayMacros.Protein, goals.DailyProtein)))
			fmt.Fprintf(out, "Carbs: %.1fg / %.0fg (%d%%)\n",
				dash.TodayMacros.Carbs, goals.DailyCarbs, clampPercent(derive.GoalProgress(dash.TodayMacros.Carbs, goals.DailyCarbs)))
			fmt.Fprintf(out, "Fat: %.1fg / %.0fg (%d%%)\n",
				dash.TodayMacros.Fat, goals.DailyFat, clampPercent(derive.GoalProgress(dash.TodayMacros.Fat, goals.DailyFat)))
			fmt.Fprintf(out, "Workouts this week: %d\n", dash.WeeklyWorkouts)
			if dash.CurrentWeight != nil {
				fmt.Fprintf(out, "Weight: %.1f kg (%s)\n", *dash.CurrentWeight, dash.WeightTrend)
			} else {
				fmt.Fprintln(out, "Weight: not logged")
			}

			series, err := derive.SevenDayCalorieSeries(meals, date)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nLast 7 days (kcal):")
			for _, day := range series {
				fmt.Fprintf(out, "  %s  %5.0f  %s\n", day.Date, day.Calories, calorieBar(day.Calories, goals.DailyCalories))
			}

			heatmap, err := derive.WorkoutHeatmap(workouts, heatmapDays, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nWorkout streak (last %d days):\n", heatmapDays)
			printHeatmap(out, heatmap)
			return nil
		})
	},
}

func clampPercent(p int) int {
	if p > 100 {
		return 100
	}
	return p
}

func calorieBar(calories, goal float64) string {
	if goal <= 0 {
		return ""
	}
	width := int(calories / goal * 20)
	if width > 20 {
		width = 20
	}
	return strings.Repeat("#", width)
}

var heatmapLevels = []rune{'.', '-', '+', '*', '#'}

func heatmapCell(count int) rune {
	switch {
	case count == 0:
		return heatmapLevels[0]
	case count == 1:
		return heatmapLevels[1]
	case count <= 2:
		return heatmapLevels[2]
	case count <= 4:
		return heatmapLevels[3]
	default:
		return heatmapLevels[4]
	}
}

// printHeatmap renders one line per week, oldest first, labeled with the
// line's first date.
func printHeatmap(out io.Writer, days []derive.HeatmapDay) {
	for start := 0; start < len(days); start += 7 {
		end := start + 7
		if end > len(days) {
			end = len(days)
		}
		var cells strings.Builder
		for _, day := range days[start:end] {
			cells.WriteRune(heatmapCell(day.Count))
			cells.WriteByte(' ')
		}
		fmt.Fprintf(out, "  %s  %s\n", days[start].Date, cells.String())
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "Date YYYY-MM-DD (default today)")
	dashboardCmd.Flags().IntVar(&heatmapDays, "days", 90, "Heatmap window in days")
}
