// ABOUTME: CLI commands for body measurements.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	measureAt    string
	measureNotes string
	measureType  string
	measureLimit int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Track body measurements",
	Long: `Track body measurements over time.

TYPES:

  weight, body_fat, chest, waist, hips, bicep, thigh, neck, calf,
  forearm, shoulders

Measurements stay on this device; they are not synced.

Examples:
  fittrack measure add weight 82.5
  fittrack measure add waist 84 --at "2026-08-01"
  fittrack measure list --type weight`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add <type> <value>",
	Short: "Record a measurement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMeasurementType(args[0]) {
			return fmt.Errorf("unknown measurement type: %s\nValid types: %s",
				args[0], joinMeasurementTypes())
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		m := models.NewBodyMeasurement(models.MeasurementType(args[0]), value)
		if measureAt != "" {
			t, err := parseTime(measureAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", measureAt)
			}
			m.WithRecordedAt(t)
		}
		if measureNotes != "" {
			m.WithNotes(measureNotes)
		}

		saved, err := dataRepo.SaveMeasurement(m)
		if err != nil {
			return fmt.Errorf("failed to save measurement: %w", err)
		}

		color.Green("✓ Added %s", saved.Type)
		fmt.Printf("  %s %.2f %s\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			saved.Value, saved.Unit)
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		var mt *models.MeasurementType
		if measureType != "" {
			if !models.IsValidMeasurementType(measureType) {
				return fmt.Errorf("unknown measurement type: %s", measureType)
			}
			v := models.MeasurementType(measureType)
			mt = &v
		}

		measurements := dataRepo.ListMeasurements(mt, measureLimit)
		if len(measurements) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range measurements {
			notes := ""
			if m.Notes != nil && *m.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*m.Notes, 30))
			}
			fmt.Printf("%s %s %s %.2f %s%s\n",
				faint.Sprint(shortID(m.ID)),
				faint.Sprint(m.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(m.Type), 12),
				m.Value,
				m.Unit,
				notes)
		}
		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a measurement",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Allow ID prefixes like the list output shows.
		measurements := dataRepo.ListMeasurements(nil, 0)
		for _, m := range measurements {
			if strings.HasPrefix(m.ID, args[0]) {
				if err := dataRepo.DeleteMeasurement(m.ID); err != nil {
					return fmt.Errorf("failed to delete measurement: %w", err)
				}
				color.Green("✓ Deleted %s", m.Type)
				return nil
			}
		}
		return fmt.Errorf("measurement not found: %s", args[0])
	},
}

func joinMeasurementTypes() string {
	names := make([]string, len(models.AllMeasurementTypes))
	for i, mt := range models.AllMeasurementTypes {
		names[i] = string(mt)
	}
	return strings.Join(names, ", ")
}

func init() {
	measureAddCmd.Flags().StringVar(&measureAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	measureAddCmd.Flags().StringVar(&measureNotes, "notes", "", "notes for the measurement")
	measureListCmd.Flags().StringVarP(&measureType, "type", "t", "", "filter by measurement type")
	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max number of results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
