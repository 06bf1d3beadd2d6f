// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers parseTime, set/exercise spec parsing, and formatting helpers.
package main

import (
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/repo"
	"github.com/harperreed/fittrack/internal/store"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2026-08-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-08-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-08-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2026-08-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-08-2026",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseSetSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		check    func(t *testing.T, e models.SetEntry)
		wantErr  bool
	}{
		{
			name:     "weighted set",
			input:    "Squat:100x5",
			wantName: "Squat",
			check: func(t *testing.T, e models.SetEntry) {
				if e.Weight == nil || *e.Weight != 100 {
					t.Errorf("Weight = %v, want 100", e.Weight)
				}
				if e.Reps == nil || *e.Reps != 5 {
					t.Errorf("Reps = %v, want 5", e.Reps)
				}
			},
		},
		{
			name:     "bodyweight set",
			input:    "Pull-up:x12",
			wantName: "Pull-up",
			check: func(t *testing.T, e models.SetEntry) {
				if e.Weight != nil {
					t.Errorf("Weight = %v, want nil", e.Weight)
				}
				if e.Reps == nil || *e.Reps != 12 {
					t.Errorf("Reps = %v, want 12", e.Reps)
				}
			},
		},
		{
			name:     "duration set",
			input:    "Plank:60s",
			wantName: "Plank",
			check: func(t *testing.T, e models.SetEntry) {
				if e.Duration == nil || *e.Duration != 60 {
					t.Errorf("Duration = %v, want 60", e.Duration)
				}
			},
		},
		{
			name:     "distance set",
			input:    "Run:5.2km",
			wantName: "Run",
			check: func(t *testing.T, e models.SetEntry) {
				if e.Distance == nil || *e.Distance != 5.2 {
					t.Errorf("Distance = %v, want 5.2", e.Distance)
				}
			},
		},
		{
			name:     "decimal weight",
			input:    "Bench Press:82.5x8",
			wantName: "Bench Press",
			check: func(t *testing.T, e models.SetEntry) {
				if e.Weight == nil || *e.Weight != 82.5 {
					t.Errorf("Weight = %v, want 82.5", e.Weight)
				}
			},
		},
		{
			name:    "missing colon",
			input:   "Squat 100x5",
			wantErr: true,
		},
		{
			name:    "empty value",
			input:   "Squat:",
			wantErr: true,
		},
		{
			name:    "garbage value",
			input:   "Squat:heavy",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, entry, err := parseSetSpec(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseSetSpec(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseSetSpec(%q) unexpected error: %v", tt.input, err)
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			tt.check(t, entry)
		})
	}
}

func TestParseExerciseSpec(t *testing.T) {
	es, err := parseExerciseSpec("Bench Press:3x8")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if es.Name != "Bench Press" {
		t.Errorf("Name = %q, want Bench Press", es.Name)
	}
	if es.Sets != 3 || es.Reps != 8 {
		t.Errorf("Sets/Reps = %d/%d, want 3/8", es.Sets, es.Reps)
	}

	es, err = parseExerciseSpec("Pull-up:3x10,bodyweight")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(es.Properties) != 1 || es.Properties[0] != "bodyweight" {
		t.Errorf("Properties = %v, want [bodyweight]", es.Properties)
	}

	if _, err := parseExerciseSpec("Bench Press"); err == nil {
		t.Error("Expected error for spec without colon")
	}
	if _, err := parseExerciseSpec("Bench Press:3"); err == nil {
		t.Error("Expected error for spec without reps")
	}
}

func TestFormatSet(t *testing.T) {
	w := 100.0
	bw := 75.5
	reps := 5
	dur := 60
	dist := 5.2

	tests := []struct {
		name  string
		entry models.SetEntry
		want  string
	}{
		{"weighted", models.SetEntry{Weight: &w, Reps: &reps}, "100.0 x 5"},
		{"reps only", models.SetEntry{Reps: &reps}, "x 5"},
		{"bodyweight with reps", models.SetEntry{Bodyweight: &bw, Reps: &reps}, "bw 75.5 x 5"},
		{"bodyweight only", models.SetEntry{Bodyweight: &bw}, "bw 75.5"},
		{"duration", models.SetEntry{Duration: &dur}, "60s"},
		{"distance", models.SetEntry{Distance: &dist}, "5.20 km"},
		{"empty", models.SetEntry{}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSet(tt.entry); got != tt.want {
				t.Errorf("formatSet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0b1c2d3e-4f50-6172-8394-a5b6c7d8e9f0"); got != "0b1c2d3e" {
		t.Errorf("shortID = %q, want 0b1c2d3e", got)
	}
	// Server-assigned IDs can be shorter than eight characters.
	if got := shortID("srv-42"); got != "srv-42" {
		t.Errorf("shortID = %q, want srv-42", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q, want short", got)
	}
	if got := truncate("a very long note that keeps going", 10); got != "a very ..." {
		t.Errorf("truncate = %q, want %q", got, "a very ...")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight = %q, want %q", got, "abcdef")
	}
}

func TestFindRoutine(t *testing.T) {
	dataRepo = repo.New(store.NewMemory(), nil)

	saved, err := dataRepo.SaveWorkout(models.NewWorkout("Push Day"))
	if err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	// By ID prefix
	w, err := findRoutine(saved.ID[:8])
	if err != nil {
		t.Fatalf("findRoutine by prefix failed: %v", err)
	}
	if w.ID != saved.ID {
		t.Errorf("ID = %s, want %s", w.ID, saved.ID)
	}

	// By name, case-insensitive
	w, err = findRoutine("push day")
	if err != nil {
		t.Fatalf("findRoutine by name failed: %v", err)
	}
	if w.Name != "Push Day" {
		t.Errorf("Name = %s, want Push Day", w.Name)
	}

	if _, err := findRoutine("nonexistent"); err == nil {
		t.Error("Expected error for unknown routine")
	}
}

func TestUnderCommand(t *testing.T) {
	if !underCommand(syncNowCmd, "sync") {
		t.Error("Expected syncNowCmd to be under sync")
	}
	if underCommand(historyCmd, "sync") {
		t.Error("Did not expect historyCmd under sync")
	}
}
