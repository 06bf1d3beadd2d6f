// ABOUTME: Tests for model constructors and enum helpers.
// ABOUTME: Verifies id generation, pending defaults, and property tags.
package models

import (
	"encoding/json"
	"testing"
)

func TestNewWorkoutDefaults(t *testing.T) {
	w := NewWorkout("Leg Day")

	if w.ID == "" {
		t.Error("expected generated id")
	}
	if w.SyncStatus != SyncPending {
		t.Errorf("SyncStatus = %q, want pending", w.SyncStatus)
	}
	if w.Deleted() {
		t.Error("new workout should not be deleted")
	}
}

func TestExerciseSpecHasProperty(t *testing.T) {
	spec := ExerciseSpec{Name: "Squat", Properties: []string{PropertyWeighted}}

	if !spec.HasProperty(PropertyWeighted) {
		t.Error("expected weighted property")
	}
	if spec.HasProperty(PropertyDistance) {
		t.Error("unexpected distance property")
	}
}

func TestIsValidMeasurementType(t *testing.T) {
	if !IsValidMeasurementType("weight") {
		t.Error("weight should be valid")
	}
	if IsValidMeasurementType("mood") {
		t.Error("mood is not a body measurement")
	}
}

func TestNewBodyMeasurementUnit(t *testing.T) {
	m := NewBodyMeasurement(MeasurementBodyFat, 18.2)

	if m.Unit != "%" {
		t.Errorf("Unit = %q, want %%", m.Unit)
	}
	if m.ID == "" {
		t.Error("expected generated id")
	}
}

func TestSetEntryOmitsAbsentFields(t *testing.T) {
	weight := 100.0
	data, err := json.Marshal(SetEntry{Weight: &weight})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"weight":100}` {
		t.Errorf("marshal = %s", data)
	}
}
