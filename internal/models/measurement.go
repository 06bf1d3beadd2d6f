// ABOUTME: Body measurement model and MeasurementType enum.
// ABOUTME: Local-only CRUD; measurements do not participate in sync.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementType identifies what a body measurement records.
type MeasurementType string

const (
	MeasurementWeight    MeasurementType = "weight"
	MeasurementBodyFat   MeasurementType = "body_fat"
	MeasurementChest     MeasurementType = "chest"
	MeasurementWaist     MeasurementType = "waist"
	MeasurementHips      MeasurementType = "hips"
	MeasurementBicep     MeasurementType = "bicep"
	MeasurementThigh     MeasurementType = "thigh"
	MeasurementNeck      MeasurementType = "neck"
	MeasurementCalf      MeasurementType = "calf"
	MeasurementForearm   MeasurementType = "forearm"
	MeasurementShoulders MeasurementType = "shoulders"
)

// MeasurementUnits maps measurement types to their default units.
var MeasurementUnits = map[MeasurementType]string{
	MeasurementWeight:    "kg",
	MeasurementBodyFat:   "%",
	MeasurementChest:     "cm",
	MeasurementWaist:     "cm",
	MeasurementHips:      "cm",
	MeasurementBicep:     "cm",
	MeasurementThigh:     "cm",
	MeasurementNeck:      "cm",
	MeasurementCalf:      "cm",
	MeasurementForearm:   "cm",
	MeasurementShoulders: "cm",
}

// AllMeasurementTypes returns all valid measurement types.
var AllMeasurementTypes = []MeasurementType{
	MeasurementWeight, MeasurementBodyFat,
	MeasurementChest, MeasurementWaist, MeasurementHips,
	MeasurementBicep, MeasurementThigh, MeasurementNeck,
	MeasurementCalf, MeasurementForearm, MeasurementShoulders,
}

// IsValidMeasurementType checks if a string names a valid measurement type.
func IsValidMeasurementType(s string) bool {
	for _, mt := range AllMeasurementTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// BodyMeasurement is a single body measurement entry.
type BodyMeasurement struct {
	ID         string          `json:"id"`
	Type       MeasurementType `json:"type"`
	Value      float64         `json:"value"`
	Unit       string          `json:"unit"`
	RecordedAt time.Time       `json:"recorded_at"`
	Notes      *string         `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewBodyMeasurement creates a measurement with a generated ID and the
// default unit for its type.
func NewBodyMeasurement(mt MeasurementType, value float64) *BodyMeasurement {
	now := time.Now()
	return &BodyMeasurement{
		ID:         uuid.NewString(),
		Type:       mt,
		Value:      value,
		Unit:       MeasurementUnits[mt],
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (m *BodyMeasurement) WithRecordedAt(t time.Time) *BodyMeasurement {
	m.RecordedAt = t
	return m
}

// WithNotes sets notes on the measurement.
func (m *BodyMeasurement) WithNotes(notes string) *BodyMeasurement {
	m.Notes = &notes
	return m
}
