// ABOUTME: Workout routine template model with soft delete and sync metadata.
// ABOUTME: Templates are what the user builds; finished sessions become history logs.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a routine template: a named, ordered list of exercise specs.
// Deletion is soft (DeletedAt set) so a pending delete can still be pushed
// to the remote store.
type Workout struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Exercises  []ExerciseSpec `json:"exercises"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	SyncStatus SyncStatus     `json:"sync_status"`
	DeletedAt  *time.Time     `json:"deleted_at,omitempty"`
}

// NewWorkout creates a routine template with a generated ID, marked pending.
func NewWorkout(name string) *Workout {
	now := time.Now()
	return &Workout{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: SyncPending,
	}
}

// WithExercise appends an exercise spec to the template.
func (w *Workout) WithExercise(spec ExerciseSpec) *Workout {
	w.Exercises = append(w.Exercises, spec)
	return w
}

// Deleted reports whether the template has been soft-deleted.
func (w *Workout) Deleted() bool {
	return w.DeletedAt != nil
}
