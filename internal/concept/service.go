package concept

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

// ErrNotFound is returned for operations referencing an unknown concept.
// Callers typically lazily initialize on first sight instead of failing.
var ErrNotFound = errors.New("concept: not found")

// Service owns all concept records and the scoring configuration.
type Service struct {
	concepts map[string]*Record
	cfg      Config
	log      *zap.Logger
}

// NewService creates a concept service, loading state from the snapshot.
// Corrupted numeric fields are repaired with documented defaults and each
// repair is logged; the read path never fails on bad numbers.
func NewService(data map[string]*store.ConceptRecordData, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		concepts: make(map[string]*Record),
		cfg:      cfg,
		log:      log,
	}
	for id, cd := range data {
		s.concepts[id] = s.sanitize(id, cd)
	}
	return s
}

// sanitize converts one persisted record, substituting defaults for any
// non-finite numeric field. Runs exactly once, at load time.
func (s *Service) sanitize(id string, cd *store.ConceptRecordData) *Record {
	rec := &Record{
		ConceptID:            id,
		DisplayName:          cd.DisplayName,
		LearningSequence:     cd.LearningSequence,
		BaseUrgency:          cd.BaseUrgency,
		WeaknessScore:        cd.WeaknessScore,
		PracticeCount:        cd.PracticeCount,
		SuccessCount:         cd.SuccessCount,
		FailureCount:         cd.FailureCount,
		AverageSolveTimeSecs: cd.AverageSolveTimeSecs,
		TotalHintsUsed:       cd.TotalHintsUsed,
		ModuleID:             cd.ModuleID,
	}

	repair := func(field string, old, def float64) float64 {
		s.log.Warn("repaired corrupted concept field",
			zap.String("concept_id", id),
			zap.String("field", field),
			zap.Float64("old", old),
			zap.Float64("new", def))
		return def
	}

	if !isFinite(rec.BaseUrgency) {
		rec.BaseUrgency = repair("base_urgency", rec.BaseUrgency, InitialUrgency)
	}
	if !isFinite(rec.WeaknessScore) {
		rec.WeaknessScore = repair("weakness_score", rec.WeaknessScore, InitialWeakness)
	}
	if !isFinite(rec.AverageSolveTimeSecs) || rec.AverageSolveTimeSecs < 0 {
		rec.AverageSolveTimeSecs = repair("average_solve_time_secs", rec.AverageSolveTimeSecs, 0)
	}
	rec.BaseUrgency = clamp(rec.BaseUrgency, 0, 100)
	rec.WeaknessScore = clamp(rec.WeaknessScore, 0, 100)

	if rec.PracticeCount < 0 {
		rec.PracticeCount = 0
	}
	// Keep the counter invariant: practiceCount = successCount + failureCount.
	if rec.SuccessCount+rec.FailureCount != rec.PracticeCount {
		s.log.Warn("repaired concept counters",
			zap.String("concept_id", id),
			zap.Int("practice_count", rec.PracticeCount),
			zap.Int("success_count", rec.SuccessCount),
			zap.Int("failure_count", rec.FailureCount))
		rec.PracticeCount = rec.SuccessCount + rec.FailureCount
	}

	if cd.LastPracticedAt != nil {
		if t, err := time.Parse(time.RFC3339, *cd.LastPracticedAt); err == nil {
			rec.LastPracticedAt = &t
		}
	}
	return rec
}

// Initialize creates the record for a newly taught concept. Returns the
// existing record unchanged if the concept was already initialized.
func (s *Service) Initialize(conceptID, name string, learningSequence int, moduleID string) (*Record, error) {
	if rec, ok := s.concepts[conceptID]; ok {
		return rec, nil
	}
	rec, err := New(conceptID, name, learningSequence, moduleID)
	if err != nil {
		return nil, err
	}
	s.concepts[conceptID] = rec
	return rec, nil
}

// Record returns the record for a concept, or ErrNotFound.
func (s *Service) Record(conceptID string) (*Record, error) {
	rec, ok := s.concepts[conceptID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, conceptID)
	}
	return rec, nil
}

// RecordAttempt applies a graded attempt to a known concept.
func (s *Service) RecordAttempt(conceptID string, att practice.Attempt, now time.Time) error {
	rec, err := s.Record(conceptID)
	if err != nil {
		return err
	}
	return Apply(rec, att, now, s.cfg)
}

// MaxSequence returns the highest learning sequence assigned so far,
// used as "total concepts learned" by the sequence urgency model.
func (s *Service) MaxSequence() int {
	max := 0
	for _, rec := range s.concepts {
		if rec.LearningSequence > max {
			max = rec.LearningSequence
		}
	}
	return max
}

// NextSequence returns the sequence to assign to the next new concept.
// Sequences are strictly increasing and never reused.
func (s *Service) NextSequence() int {
	return s.MaxSequence() + 1
}

// Ranked returns the prioritized concept list over all records.
// An empty record set yields an empty list, not an error.
func (s *Service) Ranked() []Ranked {
	records := make([]*Record, 0, len(s.concepts))
	for _, rec := range s.concepts {
		records = append(records, rec)
	}
	return Rank(records, s.MaxSequence(), s.cfg)
}

// All returns every concept record keyed by ID.
func (s *Service) All() map[string]*Record {
	out := make(map[string]*Record, len(s.concepts))
	for id, rec := range s.concepts {
		out[id] = rec
	}
	return out
}

// Len returns the number of tracked concepts.
func (s *Service) Len() int { return len(s.concepts) }

// Config returns the active scoring configuration.
func (s *Service) Config() Config { return s.cfg }

// Reset drops every record. Only a full account reset calls this.
func (s *Service) Reset() {
	s.concepts = make(map[string]*Record)
}

// SnapshotData exports the current state for persistence.
func (s *Service) SnapshotData() map[string]*store.ConceptRecordData {
	out := make(map[string]*store.ConceptRecordData, len(s.concepts))
	for id, rec := range s.concepts {
		cd := &store.ConceptRecordData{
			ConceptID:            rec.ConceptID,
			DisplayName:          rec.DisplayName,
			LearningSequence:     rec.LearningSequence,
			BaseUrgency:          rec.BaseUrgency,
			WeaknessScore:        rec.WeaknessScore,
			PracticeCount:        rec.PracticeCount,
			SuccessCount:         rec.SuccessCount,
			FailureCount:         rec.FailureCount,
			AverageSolveTimeSecs: rec.AverageSolveTimeSecs,
			TotalHintsUsed:       rec.TotalHintsUsed,
			ModuleID:             rec.ModuleID,
		}
		if rec.LastPracticedAt != nil {
			ts := rec.LastPracticedAt.Format(time.RFC3339)
			cd.LastPracticedAt = &ts
		}
		out[id] = cd
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
