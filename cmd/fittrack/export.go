// ABOUTME: CLI commands for exporting and importing fittrack data.
// ABOUTME: Supports JSON, YAML, and Markdown formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/repo"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export all fittrack data.

FORMATS:

  json       Full fidelity; use this for backups and re-import
  yaml       Human-readable summary
  markdown   Workout history as markdown tables

EXAMPLES:

  fittrack export > backup.json
  fittrack export --format markdown --since 2026-01-01
  fittrack export --format yaml -o fittrack.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []byte
		var err error

		switch exportFormat {
		case "json":
			out, err = dataRepo.ExportJSON()
		case "yaml":
			out, err = dataRepo.ExportYAML()
		case "markdown", "md":
			var since *time.Time
			if exportSince != "" {
				t, perr := parseTime(exportSince)
				if perr != nil {
					return fmt.Errorf("invalid --since: %s", exportSince)
				}
				since = &t
			}
			out = []byte(dataRepo.ExportMarkdown(since))
		default:
			return fmt.Errorf("unknown format: %s (want json, yaml, or markdown)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import data from a JSON export file.

Imported rows merge into existing tables by ID; rows that already
exist locally are updated, others are appended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var data repo.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("invalid export file: %w", err)
		}

		if err := dataRepo.ImportData(&data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		fmt.Printf("  Routines: %d  Sessions: %d  Exercises: %d  Measurements: %d\n",
			len(data.Workouts), len(data.History), len(data.Exercises), len(data.Measurements))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "markdown only: include sessions from this date")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
