// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Supports list and add subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseCategory string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"e", "ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the exercise catalog.

Exercises named in routines and logged sessions are matched against
this catalog to keep their IDs stable across devices.

Examples:
  fittrack exercise add "Bench Press" --category push
  fittrack exercise list`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises := dataRepo.ListExercises()
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(shortID(e.ID)),
				padRight(e.Name, 24),
				faint.Sprint(e.Category))
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := models.NewExercise(args[0], exerciseCategory)

		saved, err := dataRepo.SaveExercise(e)
		if err != nil {
			return fmt.Errorf("failed to save exercise: %w", err)
		}

		color.Green("✓ Added %s", saved.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(saved.ID)))
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseCategory, "category", "", "exercise category (push, pull, legs, core, cardio)")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	rootCmd.AddCommand(exerciseCmd)
}
