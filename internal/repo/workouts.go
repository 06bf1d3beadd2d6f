// ABOUTME: Routine template CRUD with soft delete and one-time legacy migration.
// ABOUTME: Deletes stay in the table as pending tombstones until pushed.
package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// GetWorkouts returns all routine templates, excluding soft-deleted rows.
// On first run it migrates the legacy single-blob format into the table.
func (r *Repository) GetWorkouts() []models.Workout {
	rows := Table[models.Workout](r, TableWorkouts)
	if len(rows) == 0 && r.migrateLegacyWorkouts() {
		rows = Table[models.Workout](r, TableWorkouts)
	}

	visible := make([]models.Workout, 0, len(rows))
	for _, w := range rows {
		if w.Deleted() {
			continue
		}
		visible = append(visible, w)
	}
	return visible
}

// AllWorkouts returns the raw table contents, soft-deleted rows included.
// The sync engine uses this to see pending tombstones.
func (r *Repository) AllWorkouts() []models.Workout {
	return Table[models.Workout](r, TableWorkouts)
}

// SaveWorkouts overwrites the whole table. Used by the sync pull to install
// authoritative state; callers pass the complete desired contents.
func (r *Repository) SaveWorkouts(all []models.Workout) error {
	lock := r.tableLock(TableWorkouts)
	lock.Lock()
	defer lock.Unlock()
	return saveTable(r, TableWorkouts, all)
}

// WorkoutPushResult records the outcome of pushing one template: the row's
// id before the push and the row as confirmed by the remote, which may carry
// a different, server-assigned id.
type WorkoutPushResult struct {
	LocalID string
	Workout models.Workout
}

// ApplyWorkoutPushResults replaces the pushed rows with their confirmed
// state, matching by pre-push id. The table is re-read under its lock, so
// rows written while the push was in flight are kept as-is.
func (r *Repository) ApplyWorkoutPushResults(results []WorkoutPushResult) error {
	if len(results) == 0 {
		return nil
	}

	lock := r.tableLock(TableWorkouts)
	lock.Lock()
	defer lock.Unlock()

	rows := Table[models.Workout](r, TableWorkouts)
	index := make(map[string]int, len(rows))
	for i, w := range rows {
		index[w.ID] = i
	}
	for _, res := range results {
		if i, ok := index[res.LocalID]; ok {
			rows[i] = res.Workout
		}
	}
	return saveTable(r, TableWorkouts, rows)
}

// SaveWorkout upserts one template, stamping it modified and pending.
func (r *Repository) SaveWorkout(w *models.Workout) (*models.Workout, error) {
	w.UpdatedAt = time.Now()
	w.SyncStatus = models.SyncPending
	if w.CreatedAt.IsZero() {
		w.CreatedAt = w.UpdatedAt
	}

	saved, err := Upsert(r, TableWorkouts, *w)
	if err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	return &saved[0], nil
}

// DeleteWorkout soft-deletes a template: the row stays in the table with
// DeletedAt set and status pending so the delete can still be pushed.
func (r *Repository) DeleteWorkout(id string) error {
	lock := r.tableLock(TableWorkouts)
	lock.Lock()
	defer lock.Unlock()

	rows := Table[models.Workout](r, TableWorkouts)
	now := time.Now()
	found := false
	for i := range rows {
		if rows[i].ID != id {
			continue
		}
		rows[i].DeletedAt = &now
		rows[i].UpdatedAt = now
		rows[i].SyncStatus = models.SyncPending
		found = true
		break
	}
	if !found {
		return fmt.Errorf("delete workout: not found: %s", id)
	}
	return saveTable(r, TableWorkouts, rows)
}

// legacyWorkout is the pre-normalization saved-workouts shape: templates
// without sync metadata.
type legacyWorkout struct {
	ID        string                `json:"id,omitempty"`
	Name      string                `json:"name"`
	Exercises []models.ExerciseSpec `json:"exercises,omitempty"`
}

// migrateLegacyWorkouts copies the legacy saved-workouts blob into the
// workouts table. Returns true if any rows were produced. The legacy key is
// not consulted again once the table is non-empty.
func (r *Repository) migrateLegacyWorkouts() bool {
	data, err := r.kv.GetItem(legacyWorkoutsKey)
	if err != nil || len(data) == 0 {
		return false
	}

	var legacy []legacyWorkout
	if err := json.Unmarshal(data, &legacy); err != nil {
		r.logger.Warn("corrupt legacy workouts blob, skipping migration", "err", err)
		return false
	}
	if len(legacy) == 0 {
		return false
	}

	r.logger.Info("migrating legacy saved workouts", "count", len(legacy))

	now := time.Now()
	rows := make([]models.Workout, 0, len(legacy))
	for _, lw := range legacy {
		w := models.Workout{
			ID:         lw.ID,
			Name:       lw.Name,
			Exercises:  lw.Exercises,
			CreatedAt:  now,
			UpdatedAt:  now,
			SyncStatus: models.SyncPending,
		}
		rows = append(rows, w)
	}

	if _, err := Upsert(r, TableWorkouts, rows...); err != nil {
		r.logger.Warn("migrate legacy workouts", "err", err)
		return false
	}
	return true
}
