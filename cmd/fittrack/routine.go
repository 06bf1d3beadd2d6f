// ABOUTME: CLI commands for managing routine templates.
// ABOUTME: Supports list, show, add, and delete subcommands.
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
	routineExercises []string
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage routine templates",
	Long: `Manage saved routine templates.

A routine is a named list of exercises with target sets and reps. Use
routines as a starting point for logging sessions.

COMMANDS:

  list     List saved routines
  show     View a routine's exercises
  add      Create a routine
  delete   Delete a routine

Each --exercise flag is "Name:SETSxREPS", optionally with property
tags after a comma:

  "Bench Press:3x8"
  "Pull-up:3x10,bodyweight"
  "Plank:3x60,duration"`,
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines := dataRepo.GetWorkouts()
		if len(routines) == 0 {
			fmt.Println("No routines found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range routines {
			fmt.Printf("%s %s %d exercises\n",
				faint.Sprint(shortID(w.ID)),
				padRight(w.Name, 20),
				len(w.Exercises))
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findRoutine(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", w.Name, color.New(color.Faint).Sprint(shortID(w.ID)))
		for _, ex := range w.Exercises {
			tags := ""
			if len(ex.Properties) > 0 {
				tags = color.New(color.Faint).Sprintf(" [%s]", strings.Join(ex.Properties, ","))
			}
			fmt.Printf("  %s %dx%d%s\n", padRight(ex.Name, 20), ex.Sets, ex.Reps, tags)
		}
		return nil
	},
}

var routineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a routine",
	Long: `Create a routine template.

Examples:
  fittrack routine add "Push Day" --exercise "Bench Press:3x8" --exercise "Dips:3x12,bodyweight"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(routineExercises) == 0 {
			return fmt.Errorf("at least one --exercise is required")
		}

		w := models.NewWorkout(args[0])
		for _, spec := range routineExercises {
			es, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			if found, err := dataRepo.FindExercise(es.Name); err == nil {
				es.ID = found.ID
			}
			w.Exercises = append(w.Exercises, es)
		}

		saved, err := dataRepo.SaveWorkout(w)
		if err != nil {
			return fmt.Errorf("failed to save routine: %w", err)
		}

		color.Green("✓ Added routine %s", saved.Name)
		fmt.Printf("  %s %d exercises\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			len(saved.Exercises))
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a routine",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findRoutine(args[0])
		if err != nil {
			return err
		}
		if err := dataRepo.DeleteWorkout(w.ID); err != nil {
			return fmt.Errorf("failed to delete routine: %w", err)
		}
		color.Green("✓ Deleted routine %s", w.Name)
		return nil
	},
}

// findRoutine resolves an ID prefix or exact name to a routine.
func findRoutine(idOrName string) (*models.Workout, error) {
	routines := dataRepo.GetWorkouts()
	for i := range routines {
		if strings.HasPrefix(routines[i].ID, idOrName) || strings.EqualFold(routines[i].Name, idOrName) {
			return &routines[i], nil
		}
	}
	return nil, fmt.Errorf("routine not found: %s", idOrName)
}

// parseExerciseSpec parses "Name:SETSxREPS[,tag,...]" into an exercise spec.
func parseExerciseSpec(spec string) (models.ExerciseSpec, error) {
	var es models.ExerciseSpec

	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return es, fmt.Errorf("invalid exercise spec: %q (want \"Name:3x8\")", spec)
	}
	es.Name = strings.TrimSpace(spec[:idx])

	rest := strings.Split(spec[idx+1:], ",")
	parts := strings.SplitN(rest[0], "x", 2)
	if len(parts) != 2 {
		return es, fmt.Errorf("invalid sets/reps in %q", spec)
	}

	sets, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return es, fmt.Errorf("invalid sets in %q", spec)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return es, fmt.Errorf("invalid reps in %q", spec)
	}
	es.Sets = sets
	es.Reps = reps

	for _, tag := range rest[1:] {
		es.Properties = append(es.Properties, strings.TrimSpace(tag))
	}
	return es, nil
}

func init() {
	routineAddCmd.Flags().StringArrayVar(&routineExercises, "exercise", nil, "exercise spec, e.g. \"Bench Press:3x8\" (repeatable)")

	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	rootCmd.AddCommand(routineCmd)
}
