// Package session assembles one practice session's worth of problems from
// a ranked concept list, a due-review queue, and an external problem
// catalog. It never errors on sparse input: an empty catalog yields a
// short or empty plan.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// Problem is one catalog entry. The catalog is owned by the caller; the
// selector only reads it.
type Problem struct {
	ID         string
	ConceptTag string
	Difficulty practice.Difficulty
}

// Catalog exposes the caller's problem bank grouped by concept tag.
type Catalog interface {
	ProblemsForConcept(tag string) []Problem
}

// History answers whether (and how) a problem was previously attempted.
// The ok result is false for problems never tried.
type History interface {
	LastResult(problemID string) (score float64, at time.Time, ok bool)
}

// SlotCategory says why a slot was filled.
type SlotCategory string

const (
	CategoryReview   SlotCategory = "review"
	CategoryFrontier SlotCategory = "frontier"
)

// Slot is one selected problem within a plan.
type Slot struct {
	ProblemID  string
	ConceptTag string
	Category   SlotCategory

	IsNew                bool
	PreviousScore        *float64
	DaysSinceLastAttempt *float64
}

// Plan is one ordered practice session.
type Plan struct {
	ID        string
	CreatedAt time.Time
	Slots     []Slot
}

func newPlan(now time.Time) Plan {
	return Plan{ID: uuid.NewString(), CreatedAt: now}
}
