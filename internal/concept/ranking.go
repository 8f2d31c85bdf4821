package concept

import (
	"fmt"
	"math"
	"sort"
)

// ColorBucket is the three-way urgency color shown next to a concept.
type ColorBucket string

const (
	ColorRed    ColorBucket = "red"
	ColorYellow ColorBucket = "yellow"
	ColorGreen  ColorBucket = "green"
)

// Priority thresholds for the color buckets.
const (
	redThreshold    = 70.0
	yellowThreshold = 40.0
)

// Ranked is one entry of a prioritized concept list.
type Ranked struct {
	ConceptID        string
	DisplayName      string
	Priority         float64
	Urgency          float64 // un-clamped sequence urgency, used for ordering
	DisplayUrgency   float64 // clamped to [0,100] for presentation
	Weakness         float64
	PracticeCount    int
	LearningSequence int
	Reason           string
	Color            ColorBucket
}

// SequenceUrgency models forgetting by sequence position: concepts taught
// long ago, with a poor retention history, decay fastest. The returned
// value is deliberately un-clamped; callers rank on it raw and clamp only
// for display.
func SequenceUrgency(rec *Record, totalConceptsLearned int, cfg Config) float64 {
	gap := totalConceptsLearned - rec.LearningSequence
	if gap < 0 {
		gap = 0
	}
	weaknessMultiplier := rec.WeaknessScore / 50
	return rec.BaseUrgency + float64(gap)*cfg.SequenceDecayFactor*weaknessMultiplier
}

// CombinedPriority merges urgency and weakness into one ranking score.
func CombinedPriority(urgency, weakness float64, cfg Config) float64 {
	return urgency*cfg.UrgencyWeight + weakness*cfg.WeaknessWeight
}

// Rank produces the prioritized concept list, highest priority first.
// Ties within cfg.PriorityTieWindow prefer fewer practice attempts, then
// the older concept (lower learning sequence). The sort is stable so equal
// records keep their input order.
func Rank(records []*Record, totalConceptsLearned int, cfg Config) []Ranked {
	out := make([]Ranked, 0, len(records))
	for _, rec := range records {
		urgency := SequenceUrgency(rec, totalConceptsLearned, cfg)
		priority := CombinedPriority(urgency, rec.WeaknessScore, cfg)
		out = append(out, Ranked{
			ConceptID:        rec.ConceptID,
			DisplayName:      rec.DisplayName,
			Priority:         priority,
			Urgency:          urgency,
			DisplayUrgency:   clamp(urgency, 0, 100),
			Weakness:         rec.WeaknessScore,
			PracticeCount:    rec.PracticeCount,
			LearningSequence: rec.LearningSequence,
			Reason:           reason(rec, urgency),
			Color:            colorFor(priority),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if math.Abs(out[i].Priority-out[j].Priority) > cfg.PriorityTieWindow {
			return out[i].Priority > out[j].Priority
		}
		if out[i].PracticeCount != out[j].PracticeCount {
			return out[i].PracticeCount < out[j].PracticeCount
		}
		return out[i].LearningSequence < out[j].LearningSequence
	})
	return out
}

func colorFor(priority float64) ColorBucket {
	switch {
	case priority >= redThreshold:
		return ColorRed
	case priority >= yellowThreshold:
		return ColorYellow
	default:
		return ColorGreen
	}
}

// reason builds the human-readable explanation attached to each ranked entry.
func reason(rec *Record, urgency float64) string {
	switch {
	case rec.PracticeCount == 0:
		return "never practiced"
	case rec.WeaknessScore >= 70:
		return fmt.Sprintf("struggling recently (weakness %.0f)", rec.WeaknessScore)
	case urgency >= 70:
		return fmt.Sprintf("fading: learned at position %d, urgency %.0f", rec.LearningSequence, clamp(urgency, 0, 100))
	case rec.WeaknessScore <= 25:
		return "strong retention"
	default:
		return "steady"
	}
}
