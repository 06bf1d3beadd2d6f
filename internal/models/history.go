// ABOUTME: History models: normalized workout_logs/set_logs rows and the rich view.
// ABOUTME: Rich logs are derived by joining the two row tables, never stored directly.
package models

import "time"

// SetEntry records what actually happened in one set. Fields are pointers so
// that absent measurements stay absent through the round-trip rather than
// collapsing to zero.
type SetEntry struct {
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *int     `json:"reps,omitempty"`
	Duration   *int     `json:"duration,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
	Bodyweight *float64 `json:"bodyweight,omitempty"`
}

// SetDetails is the payload stored on a set_logs row: the set entry plus the
// owning exercise's identity, denormalized so the history join can regroup
// rows without consulting the exercise catalog.
type SetDetails struct {
	SetEntry
	ExerciseID   string `json:"exercise_id,omitempty"`
	ExerciseName string `json:"exercise_name,omitempty"`
}

// WorkoutLogRow is a history header row in the workout_logs table.
type WorkoutLogRow struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	WorkoutID  string     `json:"workout_id,omitempty"`
	Name       string     `json:"name"`
	Date       time.Time  `json:"date"`
	Duration   int        `json:"duration"`
	Note       *string    `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	SyncStatus SyncStatus `json:"sync_status"`
}

// SetLogRow is a history detail row in the set_logs table. WorkoutLogID
// references the owning WorkoutLogRow.
type SetLogRow struct {
	ID           string     `json:"id"`
	WorkoutLogID string     `json:"workout_log_id"`
	ExerciseID   string     `json:"exercise_id"`
	Details      SetDetails `json:"details"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ExerciseLog is one exercise's slice of a rich history log.
type ExerciseLog struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Sets          int        `json:"sets"`
	Reps          int        `json:"reps"`
	CompletedSets int        `json:"completed_sets"`
	Logs          []SetEntry `json:"logs"`
}

// WorkoutLog is the denormalized rich history document the UI consumes.
// It is reconstructed from workout_logs + set_logs on every read and
// decomposed back into those tables on every write.
type WorkoutLog struct {
	ID         string        `json:"id"`
	WorkoutID  string        `json:"workout_id,omitempty"`
	UserID     string        `json:"user_id"`
	Name       string        `json:"name"`
	Date       time.Time     `json:"date"`
	Duration   int           `json:"duration"`
	Note       *string       `json:"note,omitempty"`
	Exercises  []ExerciseLog `json:"exercises"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	SyncStatus SyncStatus    `json:"sync_status"`
}

// WithNote sets the free-text note on the log.
func (l *WorkoutLog) WithNote(note string) *WorkoutLog {
	l.Note = &note
	return l
}
