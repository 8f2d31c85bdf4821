package spacedrep

import (
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestNewMastery_CleanSolve(t *testing.T) {
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, DefaultConfig())

	if pm.MasteryScore != 100 {
		t.Errorf("MasteryScore = %v, want 100", pm.MasteryScore)
	}
	if pm.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", pm.Repetitions)
	}
	if pm.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", pm.IntervalDays)
	}
	if pm.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5", pm.EaseFactor)
	}
	if pm.DecayRate != 0.1 {
		t.Errorf("DecayRate = %v, want 0.1", pm.DecayRate)
	}
	if !pm.NextReviewAt.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewAt = %v, want %v", pm.NextReviewAt, testNow.AddDate(0, 0, 1))
	}
	if pm.TotalAttempts != 1 || pm.SuccessfulAttempts != 1 {
		t.Errorf("attempts = %d/%d, want 1/1", pm.TotalAttempts, pm.SuccessfulAttempts)
	}
}

func TestNewMastery_HintsAndRetriesReduceScore(t *testing.T) {
	// 100 - 2*10 hints - 1*10 extra attempt = 70 on medium.
	pm := NewMastery("p1", practice.Medium, 2, 2, testNow, DefaultConfig())
	if pm.MasteryScore != 70 {
		t.Errorf("MasteryScore = %v, want 70", pm.MasteryScore)
	}

	// Heavy reliance floors at 40 even for a success.
	pm = NewMastery("p2", practice.Easy, 5, 5, testNow, DefaultConfig())
	if pm.MasteryScore != 40 {
		t.Errorf("floored MasteryScore = %v, want 40", pm.MasteryScore)
	}
}

func TestNewMastery_DifficultyAdjustsScoreAndDecay(t *testing.T) {
	hard := NewMastery("p1", practice.Hard, 1, 1, testNow, DefaultConfig())
	easy := NewMastery("p2", practice.Easy, 1, 1, testNow, DefaultConfig())

	if hard.MasteryScore != 100 { // 100 - 10 + 10
		t.Errorf("hard MasteryScore = %v, want 100", hard.MasteryScore)
	}
	if easy.MasteryScore != 85 { // 100 - 10 - 5
		t.Errorf("easy MasteryScore = %v, want 85", easy.MasteryScore)
	}
	if hard.DecayRate <= easy.DecayRate {
		t.Errorf("hard decay %v should exceed easy decay %v", hard.DecayRate, easy.DecayRate)
	}
}

func TestReview_FiveCleanSuccessesFollowSM2Intervals(t *testing.T) {
	cfg := DefaultConfig()
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)

	wantIntervals := []int{6, 15, 38, 95}
	now := testNow
	for i, want := range wantIntervals {
		now = now.AddDate(0, 0, pm.IntervalDays)
		Review(pm, true, 0, 1, practice.Medium, now, cfg)
		if pm.IntervalDays != want {
			t.Fatalf("review %d: IntervalDays = %d, want %d", i+1, pm.IntervalDays, want)
		}
	}

	if pm.Repetitions != 5 {
		t.Errorf("Repetitions = %d, want 5", pm.Repetitions)
	}
	if pm.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want 2.5 (clean successes keep max ease)", pm.EaseFactor)
	}
	if !pm.NextReviewAt.Equal(now.AddDate(0, 0, 95)) {
		t.Errorf("NextReviewAt = %v, want %v", pm.NextReviewAt, now.AddDate(0, 0, 95))
	}
}

func TestReview_FailureResetsRepetitionChain(t *testing.T) {
	cfg := DefaultConfig()
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)
	Review(pm, true, 0, 1, practice.Medium, testNow.AddDate(0, 0, 1), cfg)
	Review(pm, true, 0, 1, practice.Medium, testNow.AddDate(0, 0, 7), cfg)
	if pm.Repetitions != 3 {
		t.Fatalf("setup: Repetitions = %d, want 3", pm.Repetitions)
	}
	scoreBefore := pm.MasteryScore

	Review(pm, false, 0, 1, practice.Medium, testNow.AddDate(0, 0, 10), cfg)

	if pm.Repetitions != 0 {
		t.Errorf("Repetitions after failure = %d, want 0", pm.Repetitions)
	}
	if pm.IntervalDays != 1 {
		t.Errorf("IntervalDays after failure = %d, want 1", pm.IntervalDays)
	}
	if pm.MasteryScore != scoreBefore-20 {
		t.Errorf("MasteryScore = %v, want %v", pm.MasteryScore, scoreBefore-20)
	}
	if pm.EaseFactor >= 2.5 {
		t.Errorf("EaseFactor = %v, want reduced below 2.5", pm.EaseFactor)
	}
}

func TestReview_EaseFactorStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)

	for i := 0; i < 10; i++ {
		Review(pm, false, 0, 1, practice.Medium, testNow.AddDate(0, 0, i+1), cfg)
		if pm.EaseFactor < cfg.MinEaseFactor || pm.EaseFactor > cfg.MaxEaseFactor {
			t.Fatalf("EaseFactor out of bounds after failure %d: %v", i+1, pm.EaseFactor)
		}
	}
	if pm.EaseFactor != cfg.MinEaseFactor {
		t.Errorf("EaseFactor after repeated failures = %v, want %v", pm.EaseFactor, cfg.MinEaseFactor)
	}
}

func TestReview_IntervalCapped(t *testing.T) {
	cfg := DefaultConfig()
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)

	now := testNow
	for i := 0; i < 10; i++ {
		now = now.AddDate(0, 0, pm.IntervalDays)
		Review(pm, true, 0, 1, practice.Medium, now, cfg)
	}
	if pm.IntervalDays != cfg.MaxIntervalDays {
		t.Errorf("IntervalDays = %d, want capped at %d", pm.IntervalDays, cfg.MaxIntervalDays)
	}
}

func TestReview_SuccessRateSlowsDecay(t *testing.T) {
	cfg := DefaultConfig()
	steady := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)
	Review(steady, true, 0, 1, practice.Medium, testNow.AddDate(0, 0, 1), cfg)

	shaky := NewMastery("p2", practice.Medium, 0, 1, testNow, cfg)
	Review(shaky, false, 0, 1, practice.Medium, testNow.AddDate(0, 0, 1), cfg)

	if steady.DecayRate >= shaky.DecayRate {
		t.Errorf("steady decay %v should be below shaky decay %v", steady.DecayRate, shaky.DecayRate)
	}
}

func TestQualityFor(t *testing.T) {
	tests := []struct {
		success  bool
		hints    int
		attempts int
		want     int
	}{
		{true, 0, 1, 5},
		{true, 1, 1, 4},
		{true, 1, 2, 3},
		{true, 4, 3, 0},
		{false, 0, 1, 1},
		{false, 5, 5, 1},
	}
	for _, tt := range tests {
		got := qualityFor(tt.success, tt.hints, tt.attempts)
		if got != tt.want {
			t.Errorf("qualityFor(%v, %d, %d) = %d, want %d",
				tt.success, tt.hints, tt.attempts, got, tt.want)
		}
	}
}

func TestRecordAttempt_HistoryBounded(t *testing.T) {
	cfg := DefaultConfig()
	pm := NewMastery("p1", practice.Medium, 0, 1, testNow, cfg)
	for i := 0; i < 25; i++ {
		Review(pm, true, 0, 1, practice.Medium, testNow.AddDate(0, 0, i+1), cfg)
	}
	if len(pm.History) != cfg.HistoryLimit {
		t.Errorf("History length = %d, want %d", len(pm.History), cfg.HistoryLimit)
	}
	if pm.TotalAttempts != 26 {
		t.Errorf("TotalAttempts = %d, want 26", pm.TotalAttempts)
	}
}
