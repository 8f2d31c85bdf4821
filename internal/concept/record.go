// Package concept implements per-concept urgency and weakness scoring.
// Each learnable concept carries a baseUrgency that only practice reduces
// and a weaknessScore that tracks recent performance; the two combine into
// one priority used to rank what needs practice next.
package concept

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSequence is returned when a concept is created with a
// non-positive learning sequence.
var ErrInvalidSequence = errors.New("concept: learning sequence must be positive")

// Record holds all scoring state for a single concept. Created once when
// the concept is first taught, mutated on every practice attempt, and
// never deleted outside a full account reset.
type Record struct {
	ConceptID        string
	DisplayName      string
	LearningSequence int // rank in which the concept was first taught, 1-based

	BaseUrgency   float64 // 0-100, decays only via practice
	WeaknessScore float64 // 0-100, moves via performance

	PracticeCount        int
	SuccessCount         int
	FailureCount         int
	AverageSolveTimeSecs float64
	TotalHintsUsed       int
	LastPracticedAt      *time.Time

	ModuleID string // owning module, optional
}

// Starting values for a freshly taught concept.
const (
	InitialUrgency  = 100.0
	InitialWeakness = 50.0
)

// New creates a Record at the starting 100/50 values with all counters zero.
func New(conceptID, name string, learningSequence int, moduleID string) (*Record, error) {
	if learningSequence <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSequence, learningSequence)
	}
	return &Record{
		ConceptID:        conceptID,
		DisplayName:      name,
		LearningSequence: learningSequence,
		BaseUrgency:      InitialUrgency,
		WeaknessScore:    InitialWeakness,
		ModuleID:         moduleID,
	}, nil
}

// SuccessRate returns the all-time success ratio, or 0 with no attempts.
func (r *Record) SuccessRate() float64 {
	if r.PracticeCount == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.PracticeCount)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
