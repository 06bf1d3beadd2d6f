// ABOUTME: Tests for KV store backends using temp directories.
// ABOUTME: Verifies missing-key nil semantics and wholesale overwrite.
package store

import (
	"path/filepath"
	"testing"
)

func testKV(t *testing.T, kv KV) {
	t.Helper()

	got, err := kv.GetItem("missing")
	if err != nil {
		t.Fatalf("GetItem missing key: %v", err)
	}
	if got != nil {
		t.Errorf("missing key should return nil, got %q", got)
	}

	if err := kv.SetItem("workouts", []byte(`[{"id":"w1"}]`)); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	got, err = kv.GetItem("workouts")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if string(got) != `[{"id":"w1"}]` {
		t.Errorf("GetItem = %q", got)
	}

	// Overwrite is wholesale.
	if err := kv.SetItem("workouts", []byte(`[]`)); err != nil {
		t.Fatalf("SetItem overwrite failed: %v", err)
	}
	got, _ = kv.GetItem("workouts")
	if string(got) != `[]` {
		t.Errorf("after overwrite GetItem = %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	kv := NewMemory()
	defer kv.Close()
	testKV(t, kv)
}

func TestBadgerStore(t *testing.T) {
	kv, err := OpenBadger(filepath.Join(t.TempDir(), "tables"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestSQLiteStore(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "fittrack.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	kv := NewMemory()
	defer kv.Close()

	value := []byte(`[1,2,3]`)
	if err := kv.SetItem("t", value); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	value[1] = 'X'

	got, _ := kv.GetItem("t")
	if string(got) != `[1,2,3]` {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
}
