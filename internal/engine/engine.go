// Package engine is the aggregator tying the three decay models together:
// it routes inbound learning events into the concept, module, and problem
// models, merges their rankings, and assembles practice sessions. All
// mutating entry points persist nothing by themselves; callers snapshot
// explicitly via SaveSnapshot.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/concept"
	"github.com/charlieanna/idlecampus-engine/internal/config"
	"github.com/charlieanna/idlecampus-engine/internal/moduledecay"
	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/session"
	"github.com/charlieanna/idlecampus-engine/internal/spacedrep"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

var (
	// ErrInvalidInput wraps payload validation failures at the engine
	// boundary.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrProblemNotFound is returned for review queries on problems the
	// learner has never solved. Unlike first-seen concepts, these are
	// hard errors: there is nothing sensible to lazily initialize.
	ErrProblemNotFound = errors.New("engine: problem not found")
)

// Options configures engine construction. Snapshots and Events may be
// nil for pure in-memory use (tests, embedded library callers that do
// their own persistence).
type Options struct {
	Config    config.Config
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Logger    *zap.Logger
}

// Engine owns the three decay models and the session selector policy.
type Engine struct {
	concepts *concept.Service
	modules  *moduledecay.Service
	problems *spacedrep.Scheduler

	sessionCfg session.Config
	snapshots  store.SnapshotRepo
	events     store.EventRepo
	log        *zap.Logger
}

// New builds an engine, restoring state from the latest snapshot when a
// snapshot repo is supplied.
func New(ctx context.Context, opts Options) (*Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var data store.SnapshotData
	if opts.Snapshots != nil {
		snap, err := opts.Snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load latest snapshot: %w", err)
		}
		if snap != nil {
			data = snap.Data
			log.Info("restored state from snapshot",
				zap.Int("snapshot_id", snap.ID),
				zap.Int64("sequence", snap.Sequence))
		}
	}

	e := &Engine{
		concepts:   concept.NewService(data.Concepts, opts.Config.Concept, log),
		modules:    moduledecay.NewService(data.Modules, opts.Config.Module, log),
		problems:   spacedrep.NewScheduler(data.Problems, opts.Config.SpacedRep, log),
		sessionCfg: opts.Config.Session,
		snapshots:  opts.Snapshots,
		events:     opts.Events,
		log:        log,
	}
	return e, nil
}

// Concepts exposes the concept model for read-side callers.
func (e *Engine) Concepts() *concept.Service { return e.concepts }

// Modules exposes the module decay model for read-side callers.
func (e *Engine) Modules() *moduledecay.Service { return e.modules }

// Problems exposes the problem mastery model for read-side callers.
func (e *Engine) Problems() *spacedrep.Scheduler { return e.problems }

// TeachConcept registers a concept at the next learning sequence
// position, typically when its lesson is first shown. Idempotent.
func (e *Engine) TeachConcept(conceptID, displayName, moduleID string) (*concept.Record, error) {
	if conceptID == "" {
		return nil, fmt.Errorf("%w: empty concept id", ErrInvalidInput)
	}
	return e.concepts.Initialize(conceptID, displayName, e.concepts.NextSequence(), moduleID)
}

// HandleModuleCompleted registers a module completion: the module enters
// the decay model at the next sequence position and every earlier module
// decays one step further.
func (e *Engine) HandleModuleCompleted(ctx context.Context, ev practice.ModuleCompleted, now time.Time) error {
	if ev.ModuleID == "" {
		return fmt.Errorf("%w: empty module id", ErrInvalidInput)
	}
	rec := e.modules.CompleteModule(ev, now)

	if e.events != nil {
		err := e.events.AppendModuleEvent(ctx, store.ModuleEventData{
			ModuleID:       rec.ModuleID,
			ModuleName:     rec.ModuleName,
			SequenceNumber: rec.SequenceNumber,
			InitialScore:   rec.InitialScore,
			ProblemCount:   rec.ProblemCount,
		})
		if err != nil {
			return fmt.Errorf("append module event: %w", err)
		}
	}

	e.log.Info("module completed",
		zap.String("module_id", rec.ModuleID),
		zap.Int("sequence", rec.SequenceNumber))
	return nil
}

// HandlePracticeAttempt routes one graded attempt into all three models:
// every tagged concept updates its urgency/weakness, the owning module
// recovers on success, and the problem's spaced repetition record is
// created or reviewed.
func (e *Engine) HandlePracticeAttempt(ctx context.Context, att practice.Attempt, now time.Time) error {
	if att.ProblemID == "" {
		return fmt.Errorf("%w: empty problem id", ErrInvalidInput)
	}
	if err := att.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, conceptID := range att.ConceptIDs {
		// First-seen concepts are initialized lazily at the tail of the
		// learning sequence.
		if _, err := e.concepts.Record(conceptID); errors.Is(err, concept.ErrNotFound) {
			if _, err := e.concepts.Initialize(conceptID, conceptID, e.concepts.NextSequence(), ""); err != nil {
				return fmt.Errorf("initialize concept %s: %w", conceptID, err)
			}
			e.log.Debug("lazily initialized concept", zap.String("concept_id", conceptID))
		}
		if err := e.concepts.RecordAttempt(conceptID, att, now); err != nil {
			return fmt.Errorf("record concept attempt: %w", err)
		}

		rec, err := e.concepts.Record(conceptID)
		if err == nil && rec.ModuleID != "" {
			if err := e.modules.RecordPractice(rec.ModuleID, att.Success); err != nil &&
				!errors.Is(err, moduledecay.ErrNotFound) {
				return fmt.Errorf("record module practice: %w", err)
			}
		}
	}

	e.problems.RecordAttempt(att.ProblemID, att.Difficulty, att.Success,
		att.HintsUsed, att.SubmissionAttempts, now)

	if e.events != nil {
		err := e.events.AppendAttemptEvent(ctx, store.AttemptEventData{
			ProblemID:          att.ProblemID,
			ConceptIDs:         att.ConceptIDs,
			Success:            att.Success,
			HintsUsed:          att.HintsUsed,
			SubmissionAttempts: att.SubmissionAttempts,
			TimeSpentSecs:      att.TimeSpentSeconds,
			ExpectedTimeSecs:   att.ExpectedTimeSeconds,
			Difficulty:         string(att.Difficulty),
		})
		if err != nil {
			return fmt.Errorf("append attempt event: %w", err)
		}
	}
	return nil
}

// PrioritizedConcepts returns the ranked concept list, annotated with the
// owning module's health where it has visibly decayed. The two models
// stay numerically independent; module decay surfaces in the reason text
// and in ModuleHealth, never as a hidden priority adjustment.
func (e *Engine) PrioritizedConcepts() []concept.Ranked {
	ranked := e.concepts.Ranked()
	for i := range ranked {
		rec, err := e.concepts.Record(ranked[i].ConceptID)
		if err != nil || rec.ModuleID == "" {
			continue
		}
		mod, err := e.modules.Record(rec.ModuleID)
		if err != nil {
			continue
		}
		switch mod.Class {
		case moduledecay.ClassFading, moduledecay.ClassDecayed, moduledecay.ClassCritical:
			ranked[i].Reason = fmt.Sprintf("%s; module %s is %s",
				ranked[i].Reason, mod.ModuleName, mod.Class)
		}
	}
	return ranked
}

// ReviewRecommendations returns due/overdue/critical problems by review
// priority descending, capped to limit (0 = all).
func (e *Engine) ReviewRecommendations(now time.Time, limit int) []spacedrep.ReviewCandidate {
	return e.problems.DueReviews(now, limit)
}

// ProblemReviewStatus reports a tracked problem's live state.
func (e *Engine) ProblemReviewStatus(problemID string, now time.Time) (spacedrep.ReviewStatus, float64, error) {
	pm, err := e.problems.Record(problemID)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrProblemNotFound, problemID)
	}
	return spacedrep.Status(pm, now, e.problems.Config()), spacedrep.CurrentMastery(pm, now), nil
}

// ModuleHealth summarizes retention across completed modules.
func (e *Engine) ModuleHealth() moduledecay.HealthSummary {
	return e.modules.Health()
}

// Reset wipes all learner state across every model.
func (e *Engine) Reset() {
	e.concepts.Reset()
	e.modules.Reset()
	e.problems.Reset()
	e.log.Info("engine state reset")
}
