package spacedrep

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

// ErrNotFound is returned for review queries on problems the learner has
// never successfully solved.
var ErrNotFound = errors.New("spacedrep: problem not tracked")

// Scheduler manages every problem mastery record.
type Scheduler struct {
	records map[string]*ProblemMastery
	cfg     Config
	log     *zap.Logger
}

// NewScheduler creates a scheduler, loading and sanitizing records from
// the snapshot. Records with unparsable timestamps are dropped with a log
// line; numeric corruption is repaired in place.
func NewScheduler(data map[string]*store.ProblemMasteryData, cfg Config, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scheduler{
		records: make(map[string]*ProblemMastery),
		cfg:     cfg,
		log:     log,
	}
	for id, pd := range data {
		pm, err := s.sanitize(id, pd)
		if err != nil {
			s.log.Warn("dropped unreadable problem record",
				zap.String("problem_id", id), zap.Error(err))
			continue
		}
		s.records[id] = pm
	}
	return s
}

func (s *Scheduler) sanitize(id string, pd *store.ProblemMasteryData) (*ProblemMastery, error) {
	firstSolved, err := time.Parse(time.RFC3339, pd.FirstSolvedAt)
	if err != nil {
		return nil, fmt.Errorf("first_solved_at: %w", err)
	}
	lastReviewed, err := time.Parse(time.RFC3339, pd.LastReviewedAt)
	if err != nil {
		return nil, fmt.Errorf("last_reviewed_at: %w", err)
	}
	nextReview, err := time.Parse(time.RFC3339, pd.NextReviewAt)
	if err != nil {
		return nil, fmt.Errorf("next_review_at: %w", err)
	}

	pm := &ProblemMastery{
		ProblemID:          id,
		Difficulty:         practice.Difficulty(pd.Difficulty),
		EaseFactor:         pd.EaseFactor,
		IntervalDays:       pd.IntervalDays,
		Repetitions:        pd.Repetitions,
		FirstSolvedAt:      firstSolved,
		LastReviewedAt:     lastReviewed,
		NextReviewAt:       nextReview,
		TotalAttempts:      pd.TotalAttempts,
		SuccessfulAttempts: pd.SuccessfulAttempts,
		MasteryScore:       pd.MasteryScore,
		DecayRate:          pd.DecayRate,
	}

	repair := func(field string, old, def float64) float64 {
		s.log.Warn("repaired corrupted problem field",
			zap.String("problem_id", id),
			zap.String("field", field),
			zap.Float64("old", old),
			zap.Float64("new", def))
		return def
	}

	if math.IsNaN(pm.EaseFactor) || math.IsInf(pm.EaseFactor, 0) {
		pm.EaseFactor = repair("ease_factor", pm.EaseFactor, s.cfg.MaxEaseFactor)
	}
	pm.EaseFactor = clamp(pm.EaseFactor, s.cfg.MinEaseFactor, s.cfg.MaxEaseFactor)

	if math.IsNaN(pm.MasteryScore) || math.IsInf(pm.MasteryScore, 0) {
		pm.MasteryScore = repair("mastery_score", pm.MasteryScore, 40)
	}
	pm.MasteryScore = clamp(pm.MasteryScore, 0, 100)

	if math.IsNaN(pm.DecayRate) || math.IsInf(pm.DecayRate, 0) {
		pm.DecayRate = repair("decay_rate", pm.DecayRate, s.cfg.BaseDecayRate)
	}
	pm.DecayRate = clamp(pm.DecayRate, s.cfg.MinDecayRate, s.cfg.MaxDecayRate)

	pm.IntervalDays = clampInt(pm.IntervalDays, 1, s.cfg.MaxIntervalDays)
	if pm.Repetitions < 0 {
		pm.Repetitions = 0
	}
	if pm.TotalAttempts < pm.SuccessfulAttempts {
		pm.TotalAttempts = pm.SuccessfulAttempts
	}

	for _, h := range pd.History {
		at, err := time.Parse(time.RFC3339, h.At)
		if err != nil {
			continue
		}
		pm.History = append(pm.History, AttemptRecord{
			At:       at,
			Success:  h.Success,
			Quality:  h.Quality,
			Hints:    h.Hints,
			Attempts: h.Attempts,
		})
	}
	if len(pm.History) > s.cfg.HistoryLimit {
		pm.History = pm.History[len(pm.History)-s.cfg.HistoryLimit:]
	}
	return pm, nil
}

// RecordAttempt routes one graded attempt into the model. A first success
// creates the record; later attempts run the SM-2 review update. Failures
// before the first success are not tracked (records exist only for
// problems solved at least once) and return nil.
func (s *Scheduler) RecordAttempt(problemID string, difficulty practice.Difficulty, success bool, hintsUsed, attemptNumber int, now time.Time) *ProblemMastery {
	if pm, ok := s.records[problemID]; ok {
		Review(pm, success, hintsUsed, attemptNumber, difficulty, now, s.cfg)
		return pm
	}
	if !success {
		return nil
	}
	pm := NewMastery(problemID, difficulty, hintsUsed, attemptNumber, now, s.cfg)
	s.records[problemID] = pm
	return pm
}

// Record returns the mastery record for a problem, or ErrNotFound.
func (s *Scheduler) Record(problemID string) (*ProblemMastery, error) {
	pm, ok := s.records[problemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, problemID)
	}
	return pm, nil
}

// ReviewCandidate is one entry in a due-review listing.
type ReviewCandidate struct {
	ProblemID   string
	Priority    float64
	Status      ReviewStatus
	LiveMastery float64
}

// DueReviews returns problems with status due, overdue, or critical,
// sorted by review priority descending and capped to limit (0 = all).
// An empty record set yields an empty slice.
func (s *Scheduler) DueReviews(now time.Time, limit int) []ReviewCandidate {
	var due []ReviewCandidate
	for id, pm := range s.records {
		status := Status(pm, now, s.cfg)
		if status != StatusDue && status != StatusOverdue && status != StatusCritical {
			continue
		}
		due = append(due, ReviewCandidate{
			ProblemID:   id,
			Priority:    Priority(pm, pm.Difficulty, now, s.cfg),
			Status:      status,
			LiveMastery: CurrentMastery(pm, now),
		})
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Priority != due[j].Priority {
			return due[i].Priority > due[j].Priority
		}
		return due[i].ProblemID < due[j].ProblemID
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// Stats summarizes the live state of all records.
func (s *Scheduler) Stats(now time.Time) Stats {
	records := make([]*ProblemMastery, 0, len(s.records))
	for _, pm := range s.records {
		records = append(records, pm)
	}
	return ComputeStats(records, now, s.cfg)
}

// All returns every record keyed by problem ID.
func (s *Scheduler) All() map[string]*ProblemMastery {
	out := make(map[string]*ProblemMastery, len(s.records))
	for id, pm := range s.records {
		out[id] = pm
	}
	return out
}

// Len returns the number of tracked problems.
func (s *Scheduler) Len() int { return len(s.records) }

// Config returns the active tuning.
func (s *Scheduler) Config() Config { return s.cfg }

// Reset drops every record. Only a full account reset calls this.
func (s *Scheduler) Reset() {
	s.records = make(map[string]*ProblemMastery)
}

// SnapshotData exports the current state for persistence.
func (s *Scheduler) SnapshotData() map[string]*store.ProblemMasteryData {
	out := make(map[string]*store.ProblemMasteryData, len(s.records))
	for id, pm := range s.records {
		pd := &store.ProblemMasteryData{
			ProblemID:          pm.ProblemID,
			Difficulty:         string(pm.Difficulty),
			EaseFactor:         pm.EaseFactor,
			IntervalDays:       pm.IntervalDays,
			Repetitions:        pm.Repetitions,
			FirstSolvedAt:      pm.FirstSolvedAt.Format(time.RFC3339),
			LastReviewedAt:     pm.LastReviewedAt.Format(time.RFC3339),
			NextReviewAt:       pm.NextReviewAt.Format(time.RFC3339),
			TotalAttempts:      pm.TotalAttempts,
			SuccessfulAttempts: pm.SuccessfulAttempts,
			MasteryScore:       pm.MasteryScore,
			DecayRate:          pm.DecayRate,
		}
		for _, h := range pm.History {
			pd.History = append(pd.History, store.AttemptRecordData{
				At:       h.At.Format(time.RFC3339),
				Success:  h.Success,
				Quality:  h.Quality,
				Hints:    h.Hints,
				Attempts: h.Attempts,
			})
		}
		out[id] = pd
	}
	return out
}
