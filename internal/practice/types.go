// Package practice defines the inbound event types the engine consumes from
// the surrounding application: module completions, graded practice attempts,
// and session requests. The engine never produces these; it only reacts.
package practice

import (
	"errors"
	"fmt"
)

// Difficulty is the authored difficulty of a practice problem.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// ErrInvalidAttempt is returned when an attempt payload fails validation.
// The record under update is never partially mutated.
var ErrInvalidAttempt = errors.New("practice: invalid attempt")

// Attempt is the graded outcome of one practice problem attempt,
// as reported by the code-execution or quiz surface. All attempts are
// boolean success/failure; there is no partial credit.
type Attempt struct {
	ProblemID           string
	ConceptIDs          []string
	Success             bool
	HintsUsed           int
	SubmissionAttempts  int
	TimeSpentSeconds    float64
	ExpectedTimeSeconds float64
	Difficulty          Difficulty
}

// Validate rejects malformed attempt payloads at the call boundary.
func (a Attempt) Validate() error {
	if a.TimeSpentSeconds < 0 {
		return fmt.Errorf("%w: negative time spent (%f)", ErrInvalidAttempt, a.TimeSpentSeconds)
	}
	if a.ExpectedTimeSeconds < 0 {
		return fmt.Errorf("%w: negative expected time (%f)", ErrInvalidAttempt, a.ExpectedTimeSeconds)
	}
	if a.HintsUsed < 0 {
		return fmt.Errorf("%w: negative hints used (%d)", ErrInvalidAttempt, a.HintsUsed)
	}
	if a.SubmissionAttempts < 0 {
		return fmt.Errorf("%w: negative submission attempts (%d)", ErrInvalidAttempt, a.SubmissionAttempts)
	}
	if a.Difficulty != "" && !a.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidAttempt, a.Difficulty)
	}
	return nil
}

// ModuleCompleted is emitted by the course UI when a learning module is
// finished. Re-completing a module is a no-op for the engine.
type ModuleCompleted struct {
	ModuleID     string
	ModuleName   string
	InitialScore float64
	ProblemCount int
}

// SessionRequest asks the engine to assemble one practice session.
// An empty ConceptTags slice means "draw from every concept".
type SessionRequest struct {
	TargetCount int
	ConceptTags []string
}
