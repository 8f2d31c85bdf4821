// Package moduledecay tracks retention of completed learning modules.
// Each finished module sits at a position in the learner's sequence;
// the further they progress past it, the more its material decays unless
// practice pulls it back.
package moduledecay

import (
	"errors"
	"time"
)

// ErrNotFound is returned for lookups of modules never completed.
var ErrNotFound = errors.New("moduledecay: module not tracked")

// Record is the stored state for one completed module. Decay,
// current mastery and classification are derived on recompute, never
// persisted.
type Record struct {
	ModuleID       string
	ModuleName     string
	SequenceNumber int // 1-based position in completion order
	CompletedAt    time.Time
	InitialScore   float64 // score at completion, [0,100]
	PracticeCount  int     // successful practice touches since completion
	ProblemCount   int     // problems in the module at completion

	// Derived. Recomputed whenever the sequence advances or practice
	// lands; persisted snapshots drop these.
	DecayFactor    float64
	CurrentMastery float64
	Class          Classification
}

// Classification buckets a module's decay factor for display.
type Classification string

const (
	ClassFresh    Classification = "fresh"
	ClassStable   Classification = "stable"
	ClassFading   Classification = "fading"
	ClassDecayed  Classification = "decayed"
	ClassCritical Classification = "critical"
)
