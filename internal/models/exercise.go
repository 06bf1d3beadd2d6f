// ABOUTME: Exercise catalog entry and per-routine exercise specs.
// ABOUTME: Specs carry set/rep targets and property tags like weighted or distance.
package models

import "github.com/google/uuid"

// Exercise property tags describing how an exercise is measured.
const (
	PropertyWeighted   = "weighted"
	PropertyBodyweight = "bodyweight"
	PropertyDuration   = "duration"
	PropertyDistance   = "distance"
)

// Exercise is a catalog definition of a movement.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// NewExercise creates a catalog exercise with a generated ID.
func NewExercise(name, category string) *Exercise {
	return &Exercise{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
	}
}

// SetTarget is an optional per-set prescription within an ExerciseSpec.
type SetTarget struct {
	Reps     *int     `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

// ExerciseSpec is one exercise inside a routine template: the movement plus
// its target sets and reps.
type ExerciseSpec struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Sets       int         `json:"sets"`
	Reps       int         `json:"reps"`
	SetTargets []SetTarget `json:"set_targets,omitempty"`
	Properties []string    `json:"properties,omitempty"`
}

// HasProperty reports whether the spec carries the given property tag.
func (e *ExerciseSpec) HasProperty(p string) bool {
	for _, prop := range e.Properties {
		if prop == p {
			return true
		}
	}
	return false
}
