package concept

import (
	"math"
	"testing"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

func TestSequenceUrgency_GrowsWithGap(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{LearningSequence: 3, BaseUrgency: 100, WeaknessScore: 50}

	prev := SequenceUrgency(rec, 3, cfg)
	for total := 4; total <= 20; total++ {
		got := SequenceUrgency(rec, total, cfg)
		if got <= prev {
			t.Fatalf("urgency not monotonic: total %d gave %v after %v", total, got, prev)
		}
		prev = got
	}
}

func TestSequenceUrgency_TwoPointersScenario(t *testing.T) {
	// Learned at position 3, ten concepts learned since, average weakness:
	// 100 + 10*5*(50/50) = 150 before any clamping.
	cfg := DefaultConfig()
	rec := &Record{LearningSequence: 3, BaseUrgency: 100, WeaknessScore: 50}

	got := SequenceUrgency(rec, 13, cfg)
	if got != 150 {
		t.Errorf("SequenceUrgency = %v, want 150", got)
	}
}

func TestSequenceUrgency_GapFloorsAtZero(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{LearningSequence: 8, BaseUrgency: 60, WeaknessScore: 50}

	// A record ahead of the counter contributes no sequence decay.
	if got := SequenceUrgency(rec, 5, cfg); got != 60 {
		t.Errorf("SequenceUrgency = %v, want 60", got)
	}
}

func TestSequenceUrgency_WeaknessScalesDecay(t *testing.T) {
	cfg := DefaultConfig()
	weak := &Record{LearningSequence: 1, BaseUrgency: 50, WeaknessScore: 100}
	strong := &Record{LearningSequence: 1, BaseUrgency: 50, WeaknessScore: 25}

	// gap 4: weak gains 4*5*2 = 40, strong gains 4*5*0.5 = 10.
	if got := SequenceUrgency(weak, 5, cfg); got != 90 {
		t.Errorf("weak urgency = %v, want 90", got)
	}
	if got := SequenceUrgency(strong, 5, cfg); got != 60 {
		t.Errorf("strong urgency = %v, want 60", got)
	}
}

func TestCombinedPriority_Weights(t *testing.T) {
	cfg := DefaultConfig()
	got := CombinedPriority(80, 60, cfg)
	want := 80*0.4 + 60*0.6
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CombinedPriority = %v, want %v", got, want)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	got := Rank(nil, 0, DefaultConfig())
	if len(got) != 0 {
		t.Errorf("Rank(nil) returned %d entries, want 0", len(got))
	}
}

func TestRank_HighestPriorityFirst(t *testing.T) {
	cfg := DefaultConfig()
	records := []*Record{
		{ConceptID: "solid", LearningSequence: 3, BaseUrgency: 20, WeaknessScore: 10, PracticeCount: 8},
		{ConceptID: "weak", LearningSequence: 2, BaseUrgency: 90, WeaknessScore: 85, PracticeCount: 4},
		{ConceptID: "faded", LearningSequence: 1, BaseUrgency: 70, WeaknessScore: 50, PracticeCount: 2},
	}

	got := Rank(records, 3, cfg)
	if got[0].ConceptID != "weak" {
		t.Errorf("top concept = %s, want weak", got[0].ConceptID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority+cfg.PriorityTieWindow {
			t.Errorf("ranking out of order at %d: %v after %v", i, got[i].Priority, got[i-1].Priority)
		}
	}
}

func TestRank_TieBreaksOnFewerAttemptsThenOlder(t *testing.T) {
	cfg := DefaultConfig()
	// Identical scores: priority ties exactly.
	records := []*Record{
		{ConceptID: "practiced", LearningSequence: 2, BaseUrgency: 50, WeaknessScore: 50, PracticeCount: 9},
		{ConceptID: "neglected", LearningSequence: 3, BaseUrgency: 50, WeaknessScore: 50, PracticeCount: 2},
		{ConceptID: "older", LearningSequence: 1, BaseUrgency: 50, WeaknessScore: 50, PracticeCount: 2},
	}

	got := Rank(records, 0, cfg)
	if got[0].ConceptID != "older" {
		t.Errorf("first tied concept = %s, want older", got[0].ConceptID)
	}
	if got[1].ConceptID != "neglected" {
		t.Errorf("second tied concept = %s, want neglected", got[1].ConceptID)
	}
	if got[2].ConceptID != "practiced" {
		t.Errorf("third tied concept = %s, want practiced", got[2].ConceptID)
	}
}

func TestRank_DisplayUrgencyClamped(t *testing.T) {
	cfg := DefaultConfig()
	records := []*Record{
		{ConceptID: "old", LearningSequence: 1, BaseUrgency: 100, WeaknessScore: 100},
	}

	got := Rank(records, 30, cfg)
	if got[0].Urgency <= 100 {
		t.Errorf("raw urgency = %v, want > 100", got[0].Urgency)
	}
	if got[0].DisplayUrgency != 100 {
		t.Errorf("DisplayUrgency = %v, want 100", got[0].DisplayUrgency)
	}
}

func TestRank_ColorBuckets(t *testing.T) {
	tests := []struct {
		priority float64
		want     ColorBucket
	}{
		{85, ColorRed},
		{70, ColorRed},
		{55, ColorYellow},
		{40, ColorYellow},
		{20, ColorGreen},
	}
	for _, tt := range tests {
		if got := colorFor(tt.priority); got != tt.want {
			t.Errorf("colorFor(%v) = %s, want %s", tt.priority, got, tt.want)
		}
	}
}

func TestRank_ReasonNeverPracticed(t *testing.T) {
	records := []*Record{
		{ConceptID: "fresh", LearningSequence: 1, BaseUrgency: 100, WeaknessScore: 50},
	}
	got := Rank(records, 1, DefaultConfig())
	if got[0].Reason != "never practiced" {
		t.Errorf("Reason = %q, want \"never practiced\"", got[0].Reason)
	}
}

func TestMasteryLevel_Bands(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		urgency, weakness float64
		want              Level
	}{
		{100, 100, LevelNew}, // mastery 0
		{100, 50, LevelLearning}, // mastery 30
		{50, 50, LevelImproving}, // mastery 50
		{25, 25, LevelSolid}, // mastery 75
		{0, 5, LevelMastered}, // mastery 97
	}
	for _, tt := range tests {
		rec := &Record{LearningSequence: 1, BaseUrgency: tt.urgency, WeaknessScore: tt.weakness}
		if got := MasteryLevel(rec, 1, cfg); got != tt.want {
			t.Errorf("MasteryLevel(urgency=%v, weakness=%v) = %s, want %s",
				tt.urgency, tt.weakness, got, tt.want)
		}
	}
}

func TestRecommendedDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		urgency, weakness float64
		want              practice.Difficulty
	}{
		{100, 100, practice.Easy}, // mastery 0
		{50, 50, practice.Medium}, // mastery 50
		{0, 10, practice.Hard}, // mastery 94
	}
	for _, tt := range tests {
		rec := &Record{LearningSequence: 1, BaseUrgency: tt.urgency, WeaknessScore: tt.weakness}
		if got := RecommendedDifficulty(rec, 1, cfg); got != tt.want {
			t.Errorf("RecommendedDifficulty(urgency=%v, weakness=%v) = %s, want %s",
				tt.urgency, tt.weakness, got, tt.want)
		}
	}
}
