package spacedrep

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

func TestScheduler_FirstSuccessCreatesRecord(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)

	pm := s.RecordAttempt("p1", practice.Medium, true, 0, 1, testNow)
	if pm == nil {
		t.Fatal("RecordAttempt returned nil on first success")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if !pm.FirstSolvedAt.Equal(testNow) {
		t.Errorf("FirstSolvedAt = %v, want %v", pm.FirstSolvedAt, testNow)
	}
}

func TestScheduler_FailureBeforeFirstSuccessIsIgnored(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)

	if pm := s.RecordAttempt("p1", practice.Medium, false, 2, 1, testNow); pm != nil {
		t.Error("failure with no record should not create one")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if _, err := s.Record("p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Record error = %v, want ErrNotFound", err)
	}
}

func TestScheduler_FailureAfterCreationRunsReview(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)
	s.RecordAttempt("p1", practice.Medium, true, 0, 1, testNow)

	pm := s.RecordAttempt("p1", practice.Medium, false, 0, 1, testNow.AddDate(0, 0, 1))
	if pm == nil {
		t.Fatal("review of existing record returned nil")
	}
	if pm.MasteryScore != 80 {
		t.Errorf("MasteryScore = %v, want 80", pm.MasteryScore)
	}
	if pm.TotalAttempts != 2 || pm.SuccessfulAttempts != 1 {
		t.Errorf("attempts = %d/%d, want 2/1", pm.TotalAttempts, pm.SuccessfulAttempts)
	}
}

func TestScheduler_DueReviewsEmptyState(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)
	if got := s.DueReviews(testNow, 10); len(got) != 0 {
		t.Errorf("DueReviews on empty state returned %d entries", len(got))
	}
}

func TestScheduler_DueReviewsSortedAndCapped(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)
	// Three problems solved at staggered times, all past their review date.
	s.RecordAttempt("barely-due", practice.Easy, true, 0, 1, testNow.AddDate(0, 0, -1))
	s.RecordAttempt("long-overdue", practice.Hard, true, 3, 3, testNow.AddDate(0, 0, -20))
	s.RecordAttempt("mid", practice.Medium, true, 1, 1, testNow.AddDate(0, 0, -5))

	got := s.DueReviews(testNow, 0)
	if len(got) != 3 {
		t.Fatalf("DueReviews returned %d entries, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Priority > got[i-1].Priority {
			t.Errorf("reviews out of order at %d: %v after %v", i, got[i].Priority, got[i-1].Priority)
		}
	}
	if got[0].ProblemID != "long-overdue" {
		t.Errorf("top review = %s, want long-overdue", got[0].ProblemID)
	}

	capped := s.DueReviews(testNow, 2)
	if len(capped) != 2 {
		t.Errorf("capped DueReviews returned %d entries, want 2", len(capped))
	}
}

func TestScheduler_SanitizeRepairsCorruptedNumbers(t *testing.T) {
	data := map[string]*store.ProblemMasteryData{
		"broken": {
			ProblemID:      "broken",
			Difficulty:     "medium",
			EaseFactor:     math.NaN(),
			IntervalDays:   500,
			Repetitions:    -3,
			FirstSolvedAt:  testNow.Format(time.RFC3339),
			LastReviewedAt: testNow.Format(time.RFC3339),
			NextReviewAt:   testNow.AddDate(0, 0, 1).Format(time.RFC3339),
			MasteryScore:   math.Inf(1),
			DecayRate:      math.NaN(),
		},
	}
	cfg := DefaultConfig()
	s := NewScheduler(data, cfg, nil)

	pm, err := s.Record("broken")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if pm.EaseFactor != cfg.MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", pm.EaseFactor, cfg.MaxEaseFactor)
	}
	if pm.IntervalDays != cfg.MaxIntervalDays {
		t.Errorf("IntervalDays = %d, want %d", pm.IntervalDays, cfg.MaxIntervalDays)
	}
	if pm.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", pm.Repetitions)
	}
	if pm.MasteryScore < 0 || pm.MasteryScore > 100 || math.IsNaN(pm.MasteryScore) {
		t.Errorf("MasteryScore = %v, want finite in [0,100]", pm.MasteryScore)
	}
	if pm.DecayRate != cfg.BaseDecayRate {
		t.Errorf("DecayRate = %v, want %v", pm.DecayRate, cfg.BaseDecayRate)
	}
	// Live mastery over the repaired record must be finite.
	live := CurrentMastery(pm, testNow.AddDate(0, 0, 3))
	if math.IsNaN(live) || live < 0 || live > 100 {
		t.Errorf("CurrentMastery over repaired record = %v", live)
	}
}

func TestScheduler_DropsUnparsableRecords(t *testing.T) {
	data := map[string]*store.ProblemMasteryData{
		"bad-times": {
			ProblemID:     "bad-times",
			FirstSolvedAt: "not a timestamp",
		},
	}
	s := NewScheduler(data, DefaultConfig(), nil)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 (unreadable record dropped)", s.Len())
	}
}

func TestScheduler_SnapshotRoundTrip(t *testing.T) {
	s := NewScheduler(nil, DefaultConfig(), nil)
	s.RecordAttempt("p1", practice.Hard, true, 1, 2, testNow)
	s.RecordAttempt("p1", practice.Hard, true, 0, 1, testNow.AddDate(0, 0, 1))

	restored := NewScheduler(s.SnapshotData(), DefaultConfig(), nil)
	got, err := restored.Record("p1")
	if err != nil {
		t.Fatalf("restored Record: %v", err)
	}
	want, _ := s.Record("p1")

	if got.MasteryScore != want.MasteryScore {
		t.Errorf("MasteryScore = %v, want %v", got.MasteryScore, want.MasteryScore)
	}
	if got.EaseFactor != want.EaseFactor {
		t.Errorf("EaseFactor = %v, want %v", got.EaseFactor, want.EaseFactor)
	}
	if got.IntervalDays != want.IntervalDays || got.Repetitions != want.Repetitions {
		t.Errorf("schedule = %d/%d, want %d/%d",
			got.IntervalDays, got.Repetitions, want.IntervalDays, want.Repetitions)
	}
	if !got.NextReviewAt.Equal(want.NextReviewAt) {
		t.Errorf("NextReviewAt = %v, want %v", got.NextReviewAt, want.NextReviewAt)
	}
	if len(got.History) != len(want.History) {
		t.Errorf("History length = %d, want %d", len(got.History), len(want.History))
	}
}
