// ABOUTME: Body measurement CRUD over the body_measurements table.
// ABOUTME: Simple local-only records; not touched by the sync engine.
package repo

import (
	"fmt"
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

// ListMeasurements returns measurements, most recent first, optionally
// filtered by type and limited.
func (r *Repository) ListMeasurements(mt *models.MeasurementType, limit int) []models.BodyMeasurement {
	rows := Table[models.BodyMeasurement](r, TableBodyMeasurements)

	var out []models.BodyMeasurement
	for _, m := range rows {
		if mt != nil && m.Type != *mt {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SaveMeasurement upserts a body measurement.
func (r *Repository) SaveMeasurement(m *models.BodyMeasurement) (*models.BodyMeasurement, error) {
	saved, err := Upsert(r, TableBodyMeasurements, *m)
	if err != nil {
		return nil, fmt.Errorf("save measurement: %w", err)
	}
	return &saved[0], nil
}

// DeleteMeasurement removes a measurement by id.
func (r *Repository) DeleteMeasurement(id string) error {
	lock := r.tableLock(TableBodyMeasurements)
	lock.Lock()
	defer lock.Unlock()

	rows := Table[models.BodyMeasurement](r, TableBodyMeasurements)
	kept := rows[:0]
	found := false
	for _, m := range rows {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return fmt.Errorf("delete measurement: not found: %s", id)
	}
	return saveTable(r, TableBodyMeasurements, kept)
}
