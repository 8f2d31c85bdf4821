package concept

import "github.com/charlieanna/idlecampus-engine/internal/practice"

// Level is a named mastery band derived from combined priority.
type Level string

const (
	LevelNew       Level = "new"
	LevelLearning  Level = "learning"
	LevelImproving Level = "improving"
	LevelSolid     Level = "solid"
	LevelMastered  Level = "mastered"
)

// MasteryValue inverts combined priority into a 0-100 mastery figure.
func MasteryValue(rec *Record, totalConceptsLearned int, cfg Config) float64 {
	urgency := SequenceUrgency(rec, totalConceptsLearned, cfg)
	return clamp(100-CombinedPriority(urgency, rec.WeaknessScore, cfg), 0, 100)
}

// MasteryLevel buckets a record's mastery into one of five named bands.
func MasteryLevel(rec *Record, totalConceptsLearned int, cfg Config) Level {
	m := MasteryValue(rec, totalConceptsLearned, cfg)
	switch {
	case m < 20:
		return LevelNew
	case m < 40:
		return LevelLearning
	case m < 60:
		return LevelImproving
	case m < 80:
		return LevelSolid
	default:
		return LevelMastered
	}
}

// RecommendedDifficulty picks the practice difficulty for a concept:
// weak concepts drill easy problems, strong ones get stretched.
func RecommendedDifficulty(rec *Record, totalConceptsLearned int, cfg Config) practice.Difficulty {
	m := MasteryValue(rec, totalConceptsLearned, cfg)
	switch {
	case m < 40:
		return practice.Easy
	case m < 70:
		return practice.Medium
	default:
		return practice.Hard
	}
}
