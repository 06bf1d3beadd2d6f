// ABOUTME: Exercise catalog operations over the exercises table.
// ABOUTME: Catalog entries are never deleted through sync.
package repo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/fittrack/internal/models"
)

// ListExercises returns the exercise catalog sorted by name.
func (r *Repository) ListExercises() []models.Exercise {
	rows := Table[models.Exercise](r, TableExercises)
	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
	return rows
}

// SaveExercise upserts a catalog exercise.
func (r *Repository) SaveExercise(e *models.Exercise) (*models.Exercise, error) {
	saved, err := Upsert(r, TableExercises, *e)
	if err != nil {
		return nil, fmt.Errorf("save exercise: %w", err)
	}
	return &saved[0], nil
}

// FindExercise looks up a catalog exercise by id or case-insensitive name.
func (r *Repository) FindExercise(idOrName string) (*models.Exercise, error) {
	for _, e := range Table[models.Exercise](r, TableExercises) {
		if e.ID == idOrName || strings.EqualFold(e.Name, idOrName) {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("exercise not found: %s", idOrName)
}
