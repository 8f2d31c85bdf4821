// Package spacedrep implements per-problem spaced repetition mastery using
// a modified SM-2 schedule. Stored records hold only the inputs to decay
// (score, decay rate, review interval); the live mastery value is always
// recomputed on read from elapsed time.
package spacedrep

import (
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// AttemptRecord is one bounded-history entry on a problem record.
type AttemptRecord struct {
	At       time.Time
	Success  bool
	Quality  int
	Hints    int
	Attempts int
}

// ProblemMastery holds the spaced repetition state for a single problem.
// Created on the first successful solve, updated on every attempt after
// that, never deleted.
type ProblemMastery struct {
	ProblemID  string
	Difficulty practice.Difficulty

	EaseFactor   float64 // clamped [1.3, 2.5]
	IntervalDays int     // clamped [1, MaxIntervalDays]
	Repetitions  int

	FirstSolvedAt  time.Time
	LastReviewedAt time.Time
	NextReviewAt   time.Time

	TotalAttempts      int
	SuccessfulAttempts int

	// MasteryScore is the score as of LastReviewedAt; CurrentMastery
	// applies decay on top of it. Never mutated by the passage of time.
	MasteryScore float64
	DecayRate    float64

	History []AttemptRecord // last HistoryLimit attempts, oldest first
}

// SuccessRate returns the all-time success ratio, or 0 with no attempts.
func (pm *ProblemMastery) SuccessRate() float64 {
	if pm.TotalAttempts == 0 {
		return 0
	}
	return float64(pm.SuccessfulAttempts) / float64(pm.TotalAttempts)
}

// recordAttempt appends to the bounded history and updates totals.
func (pm *ProblemMastery) recordAttempt(ar AttemptRecord, limit int) {
	pm.TotalAttempts++
	if ar.Success {
		pm.SuccessfulAttempts++
	}
	pm.History = append(pm.History, ar)
	if len(pm.History) > limit {
		pm.History = pm.History[len(pm.History)-limit:]
	}
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

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
