package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/app"
	"github.com/fittrack/fittrack-cli/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fittrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittrack database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
