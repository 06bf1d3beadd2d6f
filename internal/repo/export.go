// ABOUTME: Export and import functionality for fittrack data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fittrack data.
type ExportData struct {
	Version      string                   `json:"version" yaml:"version"`
	ExportedAt   time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool         string                   `json:"tool" yaml:"tool"`
	Workouts     []models.Workout         `json:"workouts" yaml:"workouts"`
	History      []models.WorkoutLog      `json:"history" yaml:"history"`
	Exercises    []models.Exercise        `json:"exercises" yaml:"exercises"`
	Measurements []models.BodyMeasurement `json:"measurements" yaml:"measurements"`
}

// GetAllData retrieves all data for export.
func (r *Repository) GetAllData() *ExportData {
	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "fittrack",
		Workouts:     r.GetWorkouts(),
		History:      r.GetHistory(),
		Exercises:    r.ListExercises(),
		Measurements: r.ListMeasurements(nil, 0),
	}
}

// ImportData imports data from an export file. Imported rows are merged
// into existing tables by ID: a row that already exists locally is replaced,
// others are appended. Sync metadata comes through unchanged so re-importing
// an export of synced data does not queue it for another push.
func (r *Repository) ImportData(data *ExportData) error {
	for i := range data.Exercises {
		if _, err := r.SaveExercise(&data.Exercises[i]); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for i := range data.Workouts {
		w := data.Workouts[i]
		fillImportDefaults(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.SyncStatus)
		if _, err := Upsert(r, TableWorkouts, w); err != nil {
			return fmt.Errorf("import workout: %w", err)
		}
	}
	if err := r.importHistory(data.History); err != nil {
		return fmt.Errorf("import log: %w", err)
	}
	for i := range data.Measurements {
		if _, err := r.SaveMeasurement(&data.Measurements[i]); err != nil {
			return fmt.Errorf("import measurement: %w", err)
		}
	}
	return nil
}

// importHistory merges incoming logs into the existing history by ID and
// rewrites both history tables. Replacing a log wholesale discards its old
// set rows, so a re-import cannot accumulate duplicate sets.
func (r *Repository) importHistory(incoming []models.WorkoutLog) error {
	if len(incoming) == 0 {
		return nil
	}

	merged := r.GetHistory()
	index := make(map[string]int, len(merged))
	for i, l := range merged {
		index[l.ID] = i
	}

	for _, l := range incoming {
		fillImportDefaults(&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.SyncStatus)
		if l.Date.IsZero() {
			l.Date = l.CreatedAt
		}
		if i, ok := index[l.ID]; ok {
			merged[i] = l
		} else {
			index[l.ID] = len(merged)
			merged = append(merged, l)
		}
	}

	return r.SaveHistory(merged)
}

// fillImportDefaults assigns identity and sync metadata only where the
// imported row left them blank.
func fillImportDefaults(id *string, createdAt, updatedAt *time.Time, status *models.SyncStatus) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
	if *status == "" {
		*status = models.SyncPending
	}
}

// ExportJSON exports all data as JSON.
func (r *Repository) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r.GetAllData(), "", "  ")
}

// ExportYAML exports all data as YAML.
func (r *Repository) ExportYAML() ([]byte, error) {
	data := r.GetAllData()

	yamlData := struct {
		Version      string            `yaml:"version"`
		ExportedAt   string            `yaml:"exported_at"`
		Tool         string            `yaml:"tool"`
		Routines     []yamlRoutine     `yaml:"routines"`
		Sessions     []yamlSession     `yaml:"sessions"`
		Measurements []yamlMeasurement `yaml:"measurements"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
	}

	for _, w := range data.Workouts {
		yr := yamlRoutine{
			ID:   shortID(w.ID),
			Name: w.Name,
		}
		for _, ex := range w.Exercises {
			yr.Exercises = append(yr.Exercises, yamlRoutineExercise{
				Name: ex.Name,
				Sets: ex.Sets,
				Reps: ex.Reps,
			})
		}
		yamlData.Routines = append(yamlData.Routines, yr)
	}

	for _, l := range data.History {
		ys := yamlSession{
			ID:   shortID(l.ID),
			Name: l.Name,
			Date: l.Date.Format(time.RFC3339),
		}
		if l.Note != nil {
			ys.Note = *l.Note
		}
		for _, ex := range l.Exercises {
			yse := yamlSessionExercise{Name: ex.Name}
			for _, s := range ex.Logs {
				yse.Sets = append(yse.Sets, yamlSet{
					Weight:   s.Weight,
					Reps:     s.Reps,
					Duration: s.Duration,
					Distance: s.Distance,
				})
			}
			ys.Exercises = append(ys.Exercises, yse)
		}
		yamlData.Sessions = append(yamlData.Sessions, ys)
	}

	for _, m := range data.Measurements {
		ym := yamlMeasurement{
			ID:         shortID(m.ID),
			Type:       string(m.Type),
			Value:      m.Value,
			Unit:       m.Unit,
			RecordedAt: m.RecordedAt.Format(time.RFC3339),
		}
		if m.Notes != nil {
			ym.Notes = *m.Notes
		}
		yamlData.Measurements = append(yamlData.Measurements, ym)
	}

	return yaml.Marshal(yamlData)
}

type yamlRoutine struct {
	ID        string                `yaml:"id"`
	Name      string                `yaml:"name"`
	Exercises []yamlRoutineExercise `yaml:"exercises,omitempty"`
}

type yamlRoutineExercise struct {
	Name string `yaml:"name"`
	Sets int    `yaml:"sets"`
	Reps int    `yaml:"reps"`
}

type yamlSession struct {
	ID        string                `yaml:"id"`
	Name      string                `yaml:"name"`
	Date      string                `yaml:"date"`
	Note      string                `yaml:"note,omitempty"`
	Exercises []yamlSessionExercise `yaml:"exercises,omitempty"`
}

type yamlSessionExercise struct {
	Name string    `yaml:"name"`
	Sets []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Weight   *float64 `yaml:"weight,omitempty"`
	Reps     *int     `yaml:"reps,omitempty"`
	Duration *int     `yaml:"duration,omitempty"`
	Distance *float64 `yaml:"distance,omitempty"`
}

type yamlMeasurement struct {
	ID         string  `yaml:"id"`
	Type       string  `yaml:"type"`
	Value      float64 `yaml:"value"`
	Unit       string  `yaml:"unit"`
	RecordedAt string  `yaml:"recorded_at"`
	Notes      string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports workout history as Markdown, optionally
// filtered to sessions on or after since.
func (r *Repository) ExportMarkdown(since *time.Time) string {
	history := r.GetHistory()
	if since != nil {
		var filtered []models.WorkoutLog
		for _, l := range history {
			if l.Date.After(*since) || l.Date.Equal(*since) {
				filtered = append(filtered, l)
			}
		}
		history = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Fittrack Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(history) == 0 {
		sb.WriteString("No workout history.\n")
		return sb.String()
	}

	for _, l := range history {
		sb.WriteString(fmt.Sprintf("## %s - %s\n\n", l.Date.Format("2006-01-02"), l.Name))
		if l.Duration > 0 {
			sb.WriteString(fmt.Sprintf("Duration: %d min\n\n", l.Duration/60))
		}
		if l.Note != nil && *l.Note != "" {
			sb.WriteString(fmt.Sprintf("> %s\n\n", *l.Note))
		}
		for _, ex := range l.Exercises {
			sb.WriteString(fmt.Sprintf("### %s\n\n", ex.Name))
			sb.WriteString("| Set | Weight | Reps | Duration | Distance |\n")
			sb.WriteString("|-----|--------|------|----------|----------|\n")
			for i, s := range ex.Logs {
				sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
					i+1,
					formatOptFloat(s.Weight),
					formatOptInt(s.Reps),
					formatOptInt(s.Duration),
					formatOptFloat(s.Distance)))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// shortID trims IDs for display. Server-assigned IDs can be shorter
// than the usual UUID, so only truncate when there is room.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatOptInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
