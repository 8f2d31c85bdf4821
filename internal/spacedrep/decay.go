package spacedrep

import (
	"math"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

// ReviewStatus classifies a problem's review state. It is always computed
// from current numeric state, never stored, so it cannot drift.
type ReviewStatus string

const (
	StatusMastered ReviewStatus = "mastered"
	StatusFresh    ReviewStatus = "fresh"
	StatusDue      ReviewStatus = "due"
	StatusOverdue  ReviewStatus = "overdue"
	StatusCritical ReviewStatus = "critical"
)

// CurrentMastery returns the live mastery score after exponential decay
// since the last review, clamped to [0,100]. Pure read-time function;
// the stored record is never mutated.
func CurrentMastery(pm *ProblemMastery, now time.Time) float64 {
	days := now.Sub(pm.LastReviewedAt).Hours() / 24
	if days <= 0 {
		return clamp(pm.MasteryScore, 0, 100)
	}
	interval := float64(pm.IntervalDays)
	if interval < 1 {
		interval = 1
	}
	live := pm.MasteryScore * math.Exp(-pm.DecayRate*days/interval)
	return clamp(live, 0, 100)
}

// Status classifies the record at the given instant. Critically low live
// mastery wins over schedule position; "mastered" is a classification
// decay can revoke, not a terminal state.
func Status(pm *ProblemMastery, now time.Time, cfg Config) ReviewStatus {
	live := CurrentMastery(pm, now)
	switch {
	case live < cfg.CriticalMastery:
		return StatusCritical
	case now.After(pm.NextReviewAt.Add(time.Duration(cfg.OverdueGraceDays * 24 * float64(time.Hour)))):
		return StatusOverdue
	case !now.Before(pm.NextReviewAt):
		return StatusDue
	case live >= cfg.MasteredScore && pm.Repetitions >= cfg.MasteredRepetitions:
		return StatusMastered
	default:
		return StatusFresh
	}
}

// Priority ranks a problem's need for review independent of concept
// priority: weaker and more overdue problems score higher, with a bump
// for harder problems and another for critically low mastery.
// Clamped to [0,100].
func Priority(pm *ProblemMastery, difficulty practice.Difficulty, now time.Time, cfg Config) float64 {
	live := CurrentMastery(pm, now)

	daysPastDue := now.Sub(pm.NextReviewAt).Hours() / 24
	if daysPastDue < 0 {
		daysPastDue = 0
	}

	p := (100-live)*0.5 + math.Min(50, daysPastDue*5)
	switch difficulty {
	case practice.Hard:
		p += 10
	case practice.Medium:
		p += 5
	}
	if live < cfg.CriticalMastery {
		p += 20
	}
	return clamp(p, 0, 100)
}

// Stats aggregates review state across a record set for dashboards.
type Stats struct {
	Total          int
	Mastered       int
	Fresh          int
	Due            int
	Overdue        int
	Critical       int
	AverageMastery float64
}

// ComputeStats summarizes the live state of every record.
func ComputeStats(records []*ProblemMastery, now time.Time, cfg Config) Stats {
	st := Stats{Total: len(records)}
	if len(records) == 0 {
		return st
	}
	sum := 0.0
	for _, pm := range records {
		sum += CurrentMastery(pm, now)
		switch Status(pm, now, cfg) {
		case StatusMastered:
			st.Mastered++
		case StatusFresh:
			st.Fresh++
		case StatusDue:
			st.Due++
		case StatusOverdue:
			st.Overdue++
		case StatusCritical:
			st.Critical++
		}
	}
	st.AverageMastery = sum / float64(len(records))
	return st
}
