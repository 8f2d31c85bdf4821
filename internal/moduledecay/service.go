package moduledecay

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

// Service manages the decay records of every completed module.
type Service struct {
	modules         map[string]*Record
	currentSequence int
	cfg             Config
	log             *zap.Logger
}

// NewService creates a service, loading and sanitizing records from the
// snapshot. Derived fields are recomputed after load so a stale or
// hand-edited snapshot cannot carry wrong mastery values in.
func NewService(data *store.ModuleSnapshotData, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		modules: make(map[string]*Record),
		cfg:     cfg,
		log:     log,
	}
	if data == nil {
		return s
	}
	s.currentSequence = data.CurrentSequence
	if s.currentSequence < 0 {
		s.currentSequence = 0
	}
	for id, md := range data.Modules {
		s.modules[id] = s.sanitize(id, md)
	}
	if max := s.maxSequence(); max > s.currentSequence {
		s.log.Warn("current sequence behind stored modules, advancing",
			zap.Int("stored", data.CurrentSequence), zap.Int("new", max))
		s.currentSequence = max
	}
	s.recomputeAll()
	return s
}

func (s *Service) sanitize(id string, md *store.ModuleRecordData) *Record {
	rec := &Record{
		ModuleID:       id,
		ModuleName:     md.ModuleName,
		SequenceNumber: md.SequenceNumber,
		InitialScore:   md.InitialScore,
		PracticeCount:  md.PracticeCount,
		ProblemCount:   md.ProblemCount,
	}
	if math.IsNaN(rec.InitialScore) || math.IsInf(rec.InitialScore, 0) {
		s.log.Warn("repaired corrupted module score",
			zap.String("module_id", id), zap.Float64("old", rec.InitialScore))
		rec.InitialScore = 100
	}
	if rec.InitialScore < 0 {
		rec.InitialScore = 0
	}
	if rec.InitialScore > 100 {
		rec.InitialScore = 100
	}
	if rec.SequenceNumber <= 0 {
		next := s.maxSequence() + 1
		s.log.Warn("repaired module sequence",
			zap.String("module_id", id),
			zap.Int("old", md.SequenceNumber), zap.Int("new", next))
		rec.SequenceNumber = next
	}
	if rec.PracticeCount < 0 {
		rec.PracticeCount = 0
	}
	if rec.ProblemCount < 0 {
		rec.ProblemCount = 0
	}
	at, err := time.Parse(time.RFC3339, md.CompletedAt)
	if err != nil {
		s.log.Warn("repaired module completion time",
			zap.String("module_id", id), zap.Error(err))
		at = time.Now()
	}
	rec.CompletedAt = at
	return rec
}

func (s *Service) maxSequence() int {
	max := 0
	for _, rec := range s.modules {
		if rec.SequenceNumber > max {
			max = rec.SequenceNumber
		}
	}
	return max
}

func (s *Service) recomputeAll() {
	for _, rec := range s.modules {
		Recompute(rec, s.currentSequence, s.cfg)
	}
}

// CompleteModule registers a module completion at the next sequence
// position and refreshes decay on everything completed earlier.
// Completing an already-tracked module again is a no-op: the original
// position and score stand.
func (s *Service) CompleteModule(ev practice.ModuleCompleted, now time.Time) *Record {
	if rec, ok := s.modules[ev.ModuleID]; ok {
		return rec
	}
	s.currentSequence++
	rec := &Record{
		ModuleID:       ev.ModuleID,
		ModuleName:     ev.ModuleName,
		SequenceNumber: s.currentSequence,
		CompletedAt:    now,
		InitialScore:   clampScore(ev.InitialScore),
		ProblemCount:   ev.ProblemCount,
	}
	s.modules[ev.ModuleID] = rec
	s.recomputeAll()
	return rec
}

// RecordPractice credits a successful practice touch against a module.
// Failed attempts exercise the material without demonstrating retention,
// so they do not recover decay.
func (s *Service) RecordPractice(moduleID string, success bool) error {
	rec, ok := s.modules[moduleID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, moduleID)
	}
	if !success {
		return nil
	}
	rec.PracticeCount++
	Recompute(rec, s.currentSequence, s.cfg)
	return nil
}

// Record returns the record for a module, or ErrNotFound.
func (s *Service) Record(moduleID string) (*Record, error) {
	rec, ok := s.modules[moduleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, moduleID)
	}
	return rec, nil
}

// CurrentSequence returns the learner's sequence head.
func (s *Service) CurrentSequence() int { return s.currentSequence }

// Len returns the number of tracked modules.
func (s *Service) Len() int { return len(s.modules) }

// HealthSummary aggregates module retention for dashboards.
type HealthSummary struct {
	TotalModules     int
	AverageRetention float64 // mean of (1 - decay) * 100
	Fresh            int
	Stable           int
	Fading           int
	Decayed          int
	Critical         int
	MostDecayed      []*Record // worst first, up to 3
}

// Health summarizes retention across all tracked modules.
func (s *Service) Health() HealthSummary {
	h := HealthSummary{TotalModules: len(s.modules)}
	if len(s.modules) == 0 {
		return h
	}
	recs := make([]*Record, 0, len(s.modules))
	sum := 0.0
	for _, rec := range s.modules {
		recs = append(recs, rec)
		sum += (1 - rec.DecayFactor) * 100
		switch rec.Class {
		case ClassFresh:
			h.Fresh++
		case ClassStable:
			h.Stable++
		case ClassFading:
			h.Fading++
		case ClassDecayed:
			h.Decayed++
		case ClassCritical:
			h.Critical++
		}
	}
	h.AverageRetention = sum / float64(len(s.modules))
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].DecayFactor != recs[j].DecayFactor {
			return recs[i].DecayFactor > recs[j].DecayFactor
		}
		return recs[i].SequenceNumber < recs[j].SequenceNumber
	})
	n := 3
	if len(recs) < n {
		n = len(recs)
	}
	h.MostDecayed = recs[:n]
	return h
}

// All returns every record keyed by module ID.
func (s *Service) All() map[string]*Record {
	out := make(map[string]*Record, len(s.modules))
	for id, rec := range s.modules {
		out[id] = rec
	}
	return out
}

// Reset drops all module state. Only a full account reset calls this.
func (s *Service) Reset() {
	s.modules = make(map[string]*Record)
	s.currentSequence = 0
}

// SnapshotData exports stored state for persistence. Derived fields are
// deliberately omitted; they are recomputed on the next load.
func (s *Service) SnapshotData() *store.ModuleSnapshotData {
	out := &store.ModuleSnapshotData{
		CurrentSequence: s.currentSequence,
		Modules:         make(map[string]*store.ModuleRecordData, len(s.modules)),
	}
	for id, rec := range s.modules {
		out.Modules[id] = &store.ModuleRecordData{
			ModuleID:       rec.ModuleID,
			ModuleName:     rec.ModuleName,
			SequenceNumber: rec.SequenceNumber,
			CompletedAt:    rec.CompletedAt.Format(time.RFC3339),
			InitialScore:   rec.InitialScore,
			PracticeCount:  rec.PracticeCount,
			ProblemCount:   rec.ProblemCount,
		}
	}
	return out
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 100
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
