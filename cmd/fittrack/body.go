package fittrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/app"
	"github.com/fittrack/fittrack-cli/internal/photo"
	"github.com/fittrack/fittrack-cli/internal/store"
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Log and manage body measurements",
}

var (
	bodyDate    string
	bodyWeight  float64
	bodyFatPct  float64
	bodyMuscle  float64
	bodyWaist   float64
	bodyChest   float64
	bodyArms    float64
	bodyThighs  float64
	bodyNotes   string
	bodyPhoto   string
	bodyStatID  string
	bodyListAll bool
)

func bodyInputFromFlags(cmd *cobra.Command) store.BodyStatInput {
	in := store.BodyStatInput{Date: dayOrToday(bodyDate), Notes: bodyNotes}
	if cmd.Flags().Changed("weight") {
		in.Weight = &bodyWeight
	}
	if cmd.Flags().Changed("body-fat") {
		in.BodyFat = &bodyFatPct
	}
	if cmd.Flags().Changed("muscle") {
		in.Muscle = &bodyMuscle
	}
	if cmd.Flags().Changed("waist") {
		in.Waist = &bodyWaist
	}
	if cmd.Flags().Changed("chest") {
		in.Chest = &bodyChest
	}
	if cmd.Flags().Changed("arms") {
		in.Arms = &bodyArms
	}
	if cmd.Flags().Changed("thighs") {
		in.Thighs = &bodyThighs
	}
	return in
}

var bodyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			in := bodyInputFromFlags(cmd)
			if bodyPhoto != "" {
				raw, err := os.ReadFile(bodyPhoto)
				if err != nil {
					return fmt.Errorf("read photo %q: %w", bodyPhoto, err)
				}
				encoder := photo.NewEncoder(app.PhotosDir(l.dbPath))
				path, err := encoder.Encode(raw)
				if err != nil {
					return err
				}
				in.PhotoPath = path
			}
			stat, err := l.bodyStats.Add(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged body stats on %s\n", stat.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", stat.ID)
			if stat.PhotoPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Photo: %s\n", stat.PhotoPath)
			}
			return nil
		})
	},
}

var bodyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List body measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			stats := l.bodyStats.Stats()
			if !bodyListAll {
				stats = l.bodyStats.ByDate(dayOrToday(bodyDate))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT\tBF%\tMUSCLE\tWAIST\tCHEST\tARMS\tTHIGHS")
			for _, s := range stats {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.Date,
					formatOptional(s.Weight), formatOptional(s.BodyFat), formatOptional(s.Muscle),
					formatOptional(s.Waist), formatOptional(s.Chest), formatOptional(s.Arms), formatOptional(s.Thighs))
			}
			return nil
		})
	},
}

var bodyUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bodyStatID == "" {
			return fmt.Errorf("--id is required")
		}
		patch := store.BodyStatPatch{}
		if cmd.Flags().Changed("date") {
			patch.Date = &bodyDate
		}
		if cmd.Flags().Changed("weight") {
			patch.Weight = &bodyWeight
		}
		if cmd.Flags().Changed("body-fat") {
			patch.BodyFat = &bodyFatPct
		}
		if cmd.Flags().Changed("muscle") {
			patch.Muscle = &bodyMuscle
		}
		if cmd.Flags().Changed("waist") {
			patch.Waist = &bodyWaist
		}
		if cmd.Flags().Changed("chest") {
			patch.Chest = &bodyChest
		}
		if cmd.Flags().Changed("arms") {
			patch.Arms = &bodyArms
		}
		if cmd.Flags().Changed("thighs") {
			patch.Thighs = &bodyThighs
		}
		if cmd.Flags().Changed("notes") {
			patch.Notes = &bodyNotes
		}
		return withLedger(func(l *ledger) error {
			if err := l.bodyStats.Update(bodyStatID, patch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated body stat %s\n", bodyStatID)
			return nil
		})
	},
}

var bodyDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bodyStatID == "" {
			return fmt.Errorf("--id is required")
		}
		return withLedger(func(l *ledger) error {
			if err := l.bodyStats.Remove(bodyStatID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted body stat %s\n", bodyStatID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(bodyCmd)
	bodyCmd.AddCommand(bodyAddCmd, bodyListCmd, bodyUpdateCmd, bodyDeleteCmd)

	for _, c := range []*cobra.Command{bodyAddCmd, bodyUpdateCmd} {
		c.Flags().StringVar(&bodyDate, "date", "", "Date YYYY-MM-DD (default today)")
		c.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg")
		c.Flags().Float64Var(&bodyFatPct, "body-fat", 0, "Body fat percentage")
		c.Flags().Float64Var(&bodyMuscle, "muscle", 0, "Muscle mass in kg")
		c.Flags().Float64Var(&bodyWaist, "waist", 0, "Waist in cm")
		c.Flags().Float64Var(&bodyChest, "chest", 0, "Chest in cm")
		c.Flags().Float64Var(&bodyArms, "arms", 0, "Arms in cm")
		c.Flags().Float64Var(&bodyThighs, "thighs", 0, "Thighs in cm")
		c.Flags().StringVar(&bodyNotes, "notes", "", "Notes")
	}
	bodyAddCmd.Flags().StringVar(&bodyPhoto, "photo", "", "Path to a progress photo to encode and attach")
	bodyListCmd.Flags().StringVar(&bodyDate, "date", "", "Date YYYY-MM-DD (default today)")
	bodyListCmd.Flags().BoolVar(&bodyListAll, "all", false, "List every measurement")
	bodyUpdateCmd.Flags().StringVar(&bodyStatID, "id", "", "Body stat id")
	bodyDeleteCmd.Flags().StringVar(&bodyStatID, "id", "", "Body stat id")
}
