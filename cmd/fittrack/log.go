// ABOUTME: CLI command for logging a finished workout session.
// ABOUTME: Parses --set specs like "Squat:100x5" into set entries.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	logSets     []string
	logDuration int
	logNote     string
	logAt       string
)

var logCmd = &cobra.Command{
	Use:     "log <name>",
	Aliases: []string{"l"},
	Short:   "Log a finished workout session",
	Long: `Log a finished workout session with its sets.

Each --set flag records one set, in one of these forms:

  "Squat:100x5"       weighted: 100 (kg/lb) for 5 reps
  "Pull-up:x12"       bodyweight: 12 reps
  "Plank:60s"         duration: 60 seconds
  "Run:5.2km"         distance: 5.2 km

Repeat --set for multiple sets; sets with the same exercise name are
grouped together.

Examples:
  fittrack log "Leg Day" --set "Squat:100x5" --set "Squat:100x5"
  fittrack log "Morning Run" --set "Run:5.2km" --duration 1800
  fittrack log "Core" --set "Plank:60s" --note "felt strong"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(logSets) == 0 {
			return fmt.Errorf("at least one --set is required")
		}

		l := &models.WorkoutLog{
			Name:     args[0],
			Duration: logDuration,
		}
		if logNote != "" {
			l.WithNote(logNote)
		}
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			l.Date = t
		}

		// Group sets by exercise name, preserving first-seen order.
		var order []string
		grouped := make(map[string][]models.SetEntry)
		for _, spec := range logSets {
			name, entry, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			if _, seen := grouped[name]; !seen {
				order = append(order, name)
			}
			grouped[name] = append(grouped[name], entry)
		}

		for _, name := range order {
			exLog := models.ExerciseLog{
				Name:          name,
				Logs:          grouped[name],
				CompletedSets: len(grouped[name]),
			}
			if found, err := dataRepo.FindExercise(name); err == nil {
				exLog.ID = found.ID
			}
			l.Exercises = append(l.Exercises, exLog)
		}

		saved, err := dataRepo.SaveLog(l)
		if err != nil {
			return fmt.Errorf("failed to save log: %w", err)
		}

		color.Green("✓ Logged %s", saved.Name)
		fmt.Printf("  %s %d exercises, %d sets\n",
			color.New(color.Faint).Sprint(shortID(saved.ID)),
			len(saved.Exercises), len(logSets))

		return nil
	},
}

// parseSetSpec parses "Exercise:100x5", "Exercise:x12", "Exercise:60s",
// or "Exercise:5.2km" into an exercise name and a set entry.
func parseSetSpec(spec string) (string, models.SetEntry, error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return "", models.SetEntry{}, fmt.Errorf("invalid set spec: %q (want \"Exercise:100x5\")", spec)
	}
	name := strings.TrimSpace(spec[:idx])
	rest := strings.TrimSpace(spec[idx+1:])

	var entry models.SetEntry
	switch {
	case strings.HasSuffix(rest, "s") && !strings.Contains(rest, "x"):
		secs, err := strconv.Atoi(strings.TrimSuffix(rest, "s"))
		if err != nil {
			return "", entry, fmt.Errorf("invalid duration in %q", spec)
		}
		entry.Duration = &secs
	case strings.HasSuffix(rest, "km") || strings.HasSuffix(rest, "mi"):
		dist, err := strconv.ParseFloat(rest[:len(rest)-2], 64)
		if err != nil {
			return "", entry, fmt.Errorf("invalid distance in %q", spec)
		}
		entry.Distance = &dist
	case strings.HasPrefix(rest, "x"):
		reps, err := strconv.Atoi(rest[1:])
		if err != nil {
			return "", entry, fmt.Errorf("invalid reps in %q", spec)
		}
		entry.Reps = &reps
	case strings.Contains(rest, "x"):
		parts := strings.SplitN(rest, "x", 2)
		weight, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return "", entry, fmt.Errorf("invalid weight in %q", spec)
		}
		reps, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", entry, fmt.Errorf("invalid reps in %q", spec)
		}
		entry.Weight = &weight
		entry.Reps = &reps
	default:
		return "", entry, fmt.Errorf("invalid set spec: %q", spec)
	}

	return name, entry, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringArrayVar(&logSets, "set", nil, "set spec, e.g. \"Squat:100x5\" (repeatable)")
	logCmd.Flags().IntVar(&logDuration, "duration", 0, "session duration in seconds")
	logCmd.Flags().StringVar(&logNote, "note", "", "free-text note for the session")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(logCmd)
}
