package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time as a
// record-of-records. Only the inputs to decay are persisted; every derived
// value (current mastery, decay percentage, classification, review status)
// is recomputed on read.
type SnapshotData struct {
	Version  int                            `json:"version"`
	Concepts map[string]*ConceptRecordData  `json:"concepts,omitempty"`
	Modules  *ModuleSnapshotData            `json:"modules,omitempty"`
	Problems map[string]*ProblemMasteryData `json:"problems,omitempty"`
}

// ConceptRecordData is the persisted form of a concept scoring record.
type ConceptRecordData struct {
	ConceptID            string  `json:"concept_id"`
	DisplayName          string  `json:"display_name"`
	LearningSequence     int     `json:"learning_sequence"`
	BaseUrgency          float64 `json:"base_urgency"`
	WeaknessScore        float64 `json:"weakness_score"`
	PracticeCount        int     `json:"practice_count"`
	SuccessCount         int     `json:"success_count"`
	FailureCount         int     `json:"failure_count"`
	AverageSolveTimeSecs float64 `json:"average_solve_time_secs"`
	TotalHintsUsed       int     `json:"total_hints_used"`
	LastPracticedAt      *string `json:"last_practiced_at,omitempty"` // RFC3339
	ModuleID             string  `json:"module_id,omitempty"`
}

// ModuleSnapshotData holds every module mastery record plus the global
// completion sequence counter the decay computation depends on.
type ModuleSnapshotData struct {
	CurrentSequence int                          `json:"current_sequence"`
	Modules         map[string]*ModuleRecordData `json:"modules"`
}

// ModuleRecordData is the persisted form of a module mastery record.
type ModuleRecordData struct {
	ModuleID       string  `json:"module_id"`
	ModuleName     string  `json:"module_name"`
	SequenceNumber int     `json:"sequence_number"`
	CompletedAt    string  `json:"completed_at"` // RFC3339
	InitialScore   float64 `json:"initial_score"`
	PracticeCount  int     `json:"practice_count"`
	ProblemCount   int     `json:"problem_count"`
}

// ProblemMasteryData is the persisted form of a spaced repetition record.
type ProblemMasteryData struct {
	ProblemID          string              `json:"problem_id"`
	Difficulty         string              `json:"difficulty"`
	EaseFactor         float64             `json:"ease_factor"`
	IntervalDays       int                 `json:"interval_days"`
	Repetitions        int                 `json:"repetitions"`
	FirstSolvedAt      string              `json:"first_solved_at"`  // RFC3339
	LastReviewedAt     string              `json:"last_reviewed_at"` // RFC3339
	NextReviewAt       string              `json:"next_review_at"`   // RFC3339
	TotalAttempts      int                 `json:"total_attempts"`
	SuccessfulAttempts int                 `json:"successful_attempts"`
	MasteryScore       float64             `json:"mastery_score"`
	DecayRate          float64             `json:"decay_rate"`
	History            []AttemptRecordData `json:"history,omitempty"`
}

// AttemptRecordData is one bounded-history entry on a problem record.
type AttemptRecordData struct {
	At       string `json:"at"` // RFC3339
	Success  bool   `json:"success"`
	Quality  int    `json:"quality"`
	Hints    int    `json:"hints"`
	Attempts int    `json:"attempts"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one graded practice attempt for the event log.
type AttemptEventData struct {
	ProblemID          string
	ConceptIDs         []string
	Success            bool
	HintsUsed          int
	SubmissionAttempts int
	TimeSpentSecs      float64
	ExpectedTimeSecs   float64
	Difficulty         string
}

// ModuleEventData captures one module completion for the event log.
type ModuleEventData struct {
	ModuleID       string
	ModuleName     string
	SequenceNumber int
	InitialScore   float64
	ProblemCount   int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records a graded practice attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendModuleEvent records a module completion.
	AppendModuleEvent(ctx context.Context, data ModuleEventData) error

	// LatestAttemptTime returns the timestamp of the most recent attempt
	// touching the given problem, or the zero time if none exists.
	LatestAttemptTime(ctx context.Context, problemID string) (time.Time, error)

	// RecentAttemptAccuracy returns the success ratio over the last N
	// attempts touching the given concept, plus how many were found.
	RecentAttemptAccuracy(ctx context.Context, conceptID string, lastN int) (float64, int, error)

	// LastSequence returns the most recently assigned global sequence
	// number, or 0 if no events have been appended.
	LastSequence(ctx context.Context) (int64, error)
}
