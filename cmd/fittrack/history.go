// ABOUTME: CLI command for listing workout history.
// ABOUTME: Supports a detail view per session and a result limit.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyFull  bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List workout history",
	Long: `List logged workout sessions, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  NAME  EXERCISES  SETS

  The ID is an 8-character prefix. Use --full to expand each session
  into its exercises and sets.

EXAMPLES:

  fittrack history              # Last 20 sessions
  fittrack history -n 5         # Last 5 sessions
  fittrack history --full       # Expand sets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := dataRepo.GetHistory()
		if len(history) == 0 {
			fmt.Println("No workout history found.")
			return nil
		}
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, l := range history {
			sets := 0
			for _, ex := range l.Exercises {
				sets += len(ex.Logs)
			}
			fmt.Printf("%s %s %s %d exercises, %d sets\n",
				faint.Sprint(shortID(l.ID)),
				faint.Sprint(l.Date.Format("2006-01-02 15:04")),
				padRight(l.Name, 20),
				len(l.Exercises), sets)

			if !historyFull {
				continue
			}
			for _, ex := range l.Exercises {
				fmt.Printf("    %s\n", ex.Name)
				for _, s := range ex.Logs {
					fmt.Printf("      %s\n", formatSet(s))
				}
			}
			if l.Note != nil && *l.Note != "" {
				fmt.Printf("    %s\n", faint.Sprintf("note: %s", truncate(*l.Note, 60)))
			}
		}

		return nil
	},
}

// formatSet renders one set entry as a short human-readable string.
func formatSet(s models.SetEntry) string {
	switch {
	case s.Weight != nil && s.Reps != nil:
		return fmt.Sprintf("%.1f x %d", *s.Weight, *s.Reps)
	case s.Bodyweight != nil && s.Reps != nil:
		return fmt.Sprintf("bw %.1f x %d", *s.Bodyweight, *s.Reps)
	case s.Reps != nil:
		return fmt.Sprintf("x %d", *s.Reps)
	case s.Duration != nil:
		return fmt.Sprintf("%ds", *s.Duration)
	case s.Distance != nil:
		return fmt.Sprintf("%.2f km", *s.Distance)
	case s.Bodyweight != nil:
		return fmt.Sprintf("bw %.1f", *s.Bodyweight)
	default:
		return "-"
	}
}

// shortID trims IDs for display. Server-assigned IDs can be shorter
// than the usual UUID, so only truncate when there is room.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of sessions")
	historyCmd.Flags().BoolVar(&historyFull, "full", false, "show exercises and sets per session")
	rootCmd.AddCommand(historyCmd)
}
