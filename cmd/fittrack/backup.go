package fittrack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrack/fittrack-cli/internal/backup"
	"github.com/fittrack/fittrack-cli/internal/storage"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import the full ledger",
}

var (
	backupOut     string
	importFile    string
	importKeys    string
	importPreview bool
)

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all persisted data to a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			snap, err := l.backup.ExportSnapshot()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			out := backupOut
			if out == "" {
				out = fmt.Sprintf("fittrack-backup-%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s\n", out)
			return nil
		})
	},
}

var csvDir string

var backupExportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Export meals and workouts as CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger) error {
			date := time.Now().Format("2006-01-02")
			files := []struct {
				name   string
				render func() ([]byte, error)
			}{
				{fmt.Sprintf("meals-%s.csv", date), func() ([]byte, error) { return backup.MealsCSV(l.meals.Meals()) }},
				{fmt.Sprintf("workouts-%s.csv", date), func() ([]byte, error) { return backup.WorkoutsCSV(l.workouts.Workouts()) }},
			}
			for _, f := range files {
				data, err := f.render()
				if err != nil {
					return err
				}
				path := filepath.Join(csvDir, f.name)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write export csv: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			}
			return nil
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a snapshot, replacing the selected keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("--file is required")
		}
		raw, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withLedger(func(l *ledger) error {
			preview, err := l.backup.ImportPreview(raw)
			if err != nil {
				return err
			}
			if len(preview) == 0 {
				return fmt.Errorf("no known keys found in %s", importFile)
			}

			keys := make([]string, 0, len(preview))
			for key := range preview {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			if importKeys != "" {
				keys = nil
				for _, key := range strings.Split(importKeys, ",") {
					keys = append(keys, strings.TrimSpace(key))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tCONTENTS")
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, describeValue(preview[key]))
			}
			if importPreview {
				return nil
			}

			if err := l.backup.ApplyImport(keys, preview); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d key(s); data replaced for the selected keys\n", len(keys))
			return nil
		})
	},
}

func describeValue(raw json.RawMessage) string {
	if raw == nil {
		return "not in preview"
	}
	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		return fmt.Sprintf("%d entries", len(asList))
	}
	return "object"
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupExportCSVCmd, backupImportCmd)

	backupExportCmd.Flags().StringVar(&backupOut, "out", "", "Output file (default fittrack-backup-<date>.json)")
	backupExportCSVCmd.Flags().StringVar(&csvDir, "dir", ".", "Directory to write meals-<date>.csv and workouts-<date>.csv")
	backupImportCmd.Flags().StringVar(&importFile, "file", "", "Snapshot file to import")
	backupImportCmd.Flags().StringVar(&importKeys, "keys", "", fmt.Sprintf("Comma-separated keys to import (default: all present; known keys: %s)", strings.Join(storage.Keys(), ", ")))
	backupImportCmd.Flags().BoolVar(&importPreview, "preview", false, "Show what the snapshot contains without importing")
}
