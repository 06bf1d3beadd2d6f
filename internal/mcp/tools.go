// ABOUTME: MCP tool implementations for workouts, history, and measurements.
// ABOUTME: Thin wrappers over the data repository and the sync engine.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a finished workout session with its sets",
	}, s.handleLogWorkout)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "List workout history, most recent first",
	}, s.handleGetHistory)

	// list_routines
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_routines",
		Description: "List saved routine templates",
	}, s.handleListRoutines)

	// save_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_routine",
		Description: "Create or update a routine template",
	}, s.handleSaveRoutine)

	// delete_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_routine",
		Description: "Delete a routine template by ID",
	}, s.handleDeleteRoutine)

	// record_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_measurement",
		Description: "Record a body measurement (weight, body_fat, waist, etc.)",
	}, s.handleRecordMeasurement)

	// sync_now
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sync_now",
		Description: "Run one push-then-pull sync cycle against the remote store",
	}, s.handleSyncNow)
}

// Tool input/output types

type setInput struct {
	Weight     float64 `json:"weight,omitempty" jsonschema:"Weight used"`
	Reps       int     `json:"reps,omitempty" jsonschema:"Reps completed"`
	Duration   int     `json:"duration,omitempty" jsonschema:"Duration in seconds"`
	Distance   float64 `json:"distance,omitempty" jsonschema:"Distance covered"`
	Bodyweight float64 `json:"bodyweight,omitempty" jsonschema:"Bodyweight at time of set"`
}

type exerciseInput struct {
	Name string     `json:"name" jsonschema:"Exercise name"`
	Sets []setInput `json:"sets" jsonschema:"Completed sets"`
}

type logWorkoutInput struct {
	Name      string          `json:"name" jsonschema:"Session name (e.g. Leg Day)"`
	Duration  int             `json:"duration,omitempty" jsonschema:"Session duration in seconds"`
	Date      string          `json:"date,omitempty" jsonschema:"Session timestamp (ISO 8601), defaults to now"`
	Note      string          `json:"note,omitempty" jsonschema:"Optional free-text note"`
	Exercises []exerciseInput `json:"exercises" jsonschema:"Exercises performed"`
}

type logWorkoutOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type getHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type saveRoutineInput struct {
	ID        string             `json:"id,omitempty" jsonschema:"Routine ID to update; omit to create"`
	Name      string             `json:"name" jsonschema:"Routine name"`
	Exercises []routineSpecInput `json:"exercises" jsonschema:"Exercises in the routine"`
}

type routineSpecInput struct {
	Name       string   `json:"name" jsonschema:"Exercise name"`
	Sets       int      `json:"sets" jsonschema:"Target sets"`
	Reps       int      `json:"reps" jsonschema:"Target reps"`
	Properties []string `json:"properties,omitempty" jsonschema:"Tags: weighted, bodyweight, duration, distance"`
}

type deleteRoutineInput struct {
	ID string `json:"id" jsonschema:"Routine ID"`
}

type recordMeasurementInput struct {
	Type  string  `json:"type" jsonschema:"Measurement type (weight, body_fat, chest, waist, hips, bicep, thigh, neck, calf, forearm, shoulders)"`
	Value float64 `json:"value" jsonschema:"The measured value"`
	Notes string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	l := &models.WorkoutLog{
		Name:     input.Name,
		Duration: input.Duration,
	}
	if input.Date != "" {
		t, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		l.Date = t
	}
	if input.Note != "" {
		l.WithNote(input.Note)
	}

	for _, ex := range input.Exercises {
		exLog := models.ExerciseLog{Name: ex.Name}
		if found, err := s.repo.FindExercise(ex.Name); err == nil {
			exLog.ID = found.ID
		}
		for _, set := range ex.Sets {
			entry := models.SetEntry{}
			if set.Weight != 0 {
				w := set.Weight
				entry.Weight = &w
			}
			if set.Reps != 0 {
				r := set.Reps
				entry.Reps = &r
			}
			if set.Duration != 0 {
				d := set.Duration
				entry.Duration = &d
			}
			if set.Distance != 0 {
				d := set.Distance
				entry.Distance = &d
			}
			if set.Bodyweight != 0 {
				b := set.Bodyweight
				entry.Bodyweight = &b
			}
			exLog.Logs = append(exLog.Logs, entry)
			exLog.CompletedSets++
		}
		l.Exercises = append(l.Exercises, exLog)
	}

	saved, err := s.repo.SaveLog(l)
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to save log: %w", err)
	}

	return nil, logWorkoutOutput{
		ID:      saved.ID,
		Message: fmt.Sprintf("Logged %s with %d exercises (ID: %s)", saved.Name, len(saved.Exercises), shortID(saved.ID)),
	}, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	history := s.repo.GetHistory()
	if len(history) > input.Limit {
		history = history[:input.Limit]
	}
	if len(history) == 0 {
		return nil, map[string]any{"message": "No workout history found."}, nil
	}
	return nil, history, nil
}

func (s *Server) handleListRoutines(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	routines := s.repo.GetWorkouts()
	if len(routines) == 0 {
		return nil, map[string]any{"message": "No routines found."}, nil
	}
	return nil, routines, nil
}

func (s *Server) handleSaveRoutine(ctx context.Context, req *mcp.CallToolRequest, input saveRoutineInput) (*mcp.CallToolResult, simpleOutput, error) {
	w := &models.Workout{ID: input.ID, Name: input.Name}
	for _, spec := range input.Exercises {
		es := models.ExerciseSpec{
			Name:       spec.Name,
			Sets:       spec.Sets,
			Reps:       spec.Reps,
			Properties: spec.Properties,
		}
		if found, err := s.repo.FindExercise(spec.Name); err == nil {
			es.ID = found.ID
		}
		w.Exercises = append(w.Exercises, es)
	}

	saved, err := s.repo.SaveWorkout(w)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save routine: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved routine %s (ID: %s)", saved.Name, shortID(saved.ID)),
	}, nil
}

func (s *Server) handleDeleteRoutine(ctx context.Context, req *mcp.CallToolRequest, input deleteRoutineInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete routine: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted routine: %s", input.ID),
	}, nil
}

func (s *Server) handleRecordMeasurement(ctx context.Context, req *mcp.CallToolRequest, input recordMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidMeasurementType(input.Type) {
		return nil, simpleOutput{}, fmt.Errorf("unknown measurement type: %s", input.Type)
	}

	m := models.NewBodyMeasurement(models.MeasurementType(input.Type), input.Value)
	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}

	saved, err := s.repo.SaveMeasurement(m)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record measurement: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s: %.2f %s (ID: %s)", saved.Type, saved.Value, saved.Unit, shortID(saved.ID)),
	}, nil
}

func (s *Server) handleSyncNow(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if s.syncer == nil {
		return nil, simpleOutput{Message: "Sync is not configured. Run 'fittrack sync login' first."}, nil
	}
	s.syncer.Sync(ctx)
	return nil, simpleOutput{Message: "Sync cycle completed."}, nil
}

// shortID trims IDs for display. Server-assigned IDs can be shorter
// than the usual UUID, so only truncate when there is room.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
