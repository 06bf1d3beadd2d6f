// ABOUTME: Tests for generic table access and upsert merge semantics.
// ABOUTME: Uses the in-memory KV store for deterministic fixtures.
package repo

import (
	"testing"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/store"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return New(store.NewMemory(), nil)
}

func TestTableMissingKeyIsEmpty(t *testing.T) {
	r := newTestRepo(t)

	rows := Table[models.Exercise](r, TableExercises)
	if len(rows) != 0 {
		t.Errorf("expected empty table, got %d rows", len(rows))
	}
}

func TestTableCorruptDataIsEmpty(t *testing.T) {
	r := newTestRepo(t)

	if err := r.kv.SetItem(TableExercises, []byte("{not json")); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	rows := Table[models.Exercise](r, TableExercises)
	if len(rows) != 0 {
		t.Errorf("expected empty table for corrupt data, got %d rows", len(rows))
	}
}

func TestUpsertAssignsID(t *testing.T) {
	r := newTestRepo(t)

	saved, err := Upsert(r, TableExercises, models.Exercise{Name: "Squat"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if saved[0].ID == "" {
		t.Error("expected generated id")
	}

	rows := Table[models.Exercise](r, TableExercises)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ID != saved[0].ID {
		t.Errorf("stored id %q != returned id %q", rows[0].ID, saved[0].ID)
	}
}

func TestUpsertIdempotentByID(t *testing.T) {
	r := newTestRepo(t)

	first := models.Exercise{ID: "ex1", Name: "Squat", Category: "legs"}
	if _, err := Upsert(r, TableExercises, first); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	// Same id, new name, no category: name overrides, category is retained.
	second := models.Exercise{ID: "ex1", Name: "Back Squat"}
	if _, err := Upsert(r, TableExercises, second); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	rows := Table[models.Exercise](r, TableExercises)
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(rows))
	}
	if rows[0].Name != "Back Squat" {
		t.Errorf("Name not overridden: got %q", rows[0].Name)
	}
	if rows[0].Category != "legs" {
		t.Errorf("Category not retained: got %q", rows[0].Category)
	}
}

func TestUpsertAppendsNewIDs(t *testing.T) {
	r := newTestRepo(t)

	if _, err := Upsert(r, TableExercises,
		models.Exercise{ID: "ex1", Name: "Squat"},
		models.Exercise{ID: "ex2", Name: "Bench"},
	); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rows := Table[models.Exercise](r, TableExercises)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}
