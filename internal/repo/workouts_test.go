// ABOUTME: Tests for routine template CRUD, soft delete, and legacy migration.
// ABOUTME: Soft-deleted rows must stay in the raw table until pushed.
package repo

import (
	"encoding/json"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestSaveWorkoutStampsPending(t *testing.T) {
	r := newTestRepo(t)

	w := models.NewWorkout("Leg Day")
	w.SyncStatus = models.SyncSynced // SaveWorkout must re-mark it

	saved, err := r.SaveWorkout(w)
	if err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	if saved.SyncStatus != models.SyncPending {
		t.Errorf("SyncStatus = %q, want pending", saved.SyncStatus)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestDeleteWorkoutIsSoft(t *testing.T) {
	r := newTestRepo(t)

	w := models.NewWorkout("Push Day")
	if _, err := r.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	if err := r.DeleteWorkout(w.ID); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	// Filtered out of the visible list.
	for _, got := range r.GetWorkouts() {
		if got.ID == w.ID {
			t.Error("deleted workout still visible via GetWorkouts")
		}
	}

	// Still present in the raw table with a tombstone, pending push.
	raw := Table[models.Workout](r, TableWorkouts)
	if len(raw) != 1 {
		t.Fatalf("expected 1 raw row, got %d", len(raw))
	}
	if raw[0].DeletedAt == nil {
		t.Error("DeletedAt not set")
	}
	if raw[0].SyncStatus != models.SyncPending {
		t.Errorf("SyncStatus = %q, want pending", raw[0].SyncStatus)
	}
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	r := newTestRepo(t)

	if err := r.DeleteWorkout("missing"); err == nil {
		t.Error("expected error for missing workout")
	}
}

func TestGetWorkoutsMigratesLegacyBlob(t *testing.T) {
	r := newTestRepo(t)

	legacy := []map[string]any{
		{"name": "Old Routine", "exercises": []map[string]any{
			{"id": "ex1", "name": "Squat", "sets": 3, "reps": 5},
		}},
	}
	blob, _ := json.Marshal(legacy)
	if err := r.kv.SetItem(legacyWorkoutsKey, blob); err != nil {
		t.Fatalf("seed legacy blob: %v", err)
	}

	workouts := r.GetWorkouts()
	if len(workouts) != 1 {
		t.Fatalf("expected 1 migrated workout, got %d", len(workouts))
	}
	if workouts[0].Name != "Old Routine" {
		t.Errorf("Name = %q", workouts[0].Name)
	}
	if workouts[0].ID == "" {
		t.Error("migrated workout has no id")
	}
	if workouts[0].SyncStatus != models.SyncPending {
		t.Errorf("SyncStatus = %q, want pending", workouts[0].SyncStatus)
	}

	// Legacy key is not consulted once the table is populated.
	if err := r.kv.SetItem(legacyWorkoutsKey, []byte(`[{"name":"Sneaky"}]`)); err != nil {
		t.Fatalf("mutate legacy blob: %v", err)
	}
	again := r.GetWorkouts()
	if len(again) != 1 || again[0].Name != "Old Routine" {
		t.Errorf("legacy blob was re-read: %+v", again)
	}
}

func TestGetWorkoutsCorruptLegacyBlob(t *testing.T) {
	r := newTestRepo(t)

	if err := r.kv.SetItem(legacyWorkoutsKey, []byte("{broken")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	if got := r.GetWorkouts(); len(got) != 0 {
		t.Errorf("expected no workouts from corrupt blob, got %d", len(got))
	}
}
