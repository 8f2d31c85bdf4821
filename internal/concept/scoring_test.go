package concept

import (
	"math"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestRecord(t *testing.T) *Record {
	t.Helper()
	rec, err := New("two-pointers", "Two Pointers", 3, "mod-arrays")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rec
}

func TestNew_StartingValues(t *testing.T) {
	rec := newTestRecord(t)
	if rec.BaseUrgency != 100 {
		t.Errorf("BaseUrgency = %v, want 100", rec.BaseUrgency)
	}
	if rec.WeaknessScore != 50 {
		t.Errorf("WeaknessScore = %v, want 50", rec.WeaknessScore)
	}
	if rec.PracticeCount != 0 || rec.SuccessCount != 0 || rec.FailureCount != 0 {
		t.Errorf("counters not zero: %d/%d/%d", rec.PracticeCount, rec.SuccessCount, rec.FailureCount)
	}
	if rec.LastPracticedAt != nil {
		t.Error("LastPracticedAt should start nil")
	}
}

func TestNew_RejectsNonPositiveSequence(t *testing.T) {
	for _, seq := range []int{0, -1} {
		if _, err := New("c", "C", seq, ""); err == nil {
			t.Errorf("New with sequence %d: expected error", seq)
		}
	}
}

func TestApply_FirstSuccessDropsUrgencyByFifteen(t *testing.T) {
	rec := newTestRecord(t)
	att := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1}
	if err := Apply(rec, att, testNow, DefaultConfig()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.BaseUrgency != 85 {
		t.Errorf("BaseUrgency after first success = %v, want 85", rec.BaseUrgency)
	}
}

func TestApply_FirstFailureDropsUrgencyByFive(t *testing.T) {
	rec := newTestRecord(t)
	att := practice.Attempt{ProblemID: "p1", Success: false, SubmissionAttempts: 1}
	if err := Apply(rec, att, testNow, DefaultConfig()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if rec.BaseUrgency != 95 {
		t.Errorf("BaseUrgency after first failure = %v, want 95", rec.BaseUrgency)
	}
}

func TestApply_LaterDropsShrinkWithUrgency(t *testing.T) {
	rec := newTestRecord(t)
	cfg := DefaultConfig()
	att := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1}

	if err := Apply(rec, att, testNow, cfg); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if err := Apply(rec, att, testNow, cfg); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	// 85 - 10*sqrt(0.85)
	want := 85 - 10*math.Sqrt(0.85)
	if math.Abs(rec.BaseUrgency-want) > 1e-9 {
		t.Errorf("BaseUrgency after second success = %v, want %v", rec.BaseUrgency, want)
	}
}

func TestApply_CleanFirstTrySuccessWeakness(t *testing.T) {
	rec := newTestRecord(t)
	att := practice.Attempt{
		ProblemID:           "p1",
		Success:             true,
		SubmissionAttempts:  1,
		HintsUsed:           0,
		TimeSpentSeconds:    10,
		ExpectedTimeSeconds: 20,
		Difficulty:          practice.Hard,
	}
	if err := Apply(rec, att, testNow, DefaultConfig()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// -5 base -10 first try -2 fast -3 no hints -2 hard = -22
	if rec.WeaknessScore != 28 {
		t.Errorf("WeaknessScore = %v, want 28", rec.WeaknessScore)
	}
}

func TestApply_StruggledFailureWeakness(t *testing.T) {
	rec := newTestRecord(t)
	att := practice.Attempt{
		ProblemID:          "p1",
		Success:            false,
		SubmissionAttempts: 3,
		HintsUsed:          3,
		Difficulty:         practice.Easy,
	}
	if err := Apply(rec, att, testNow, DefaultConfig()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// +10 base +9 attempts +5 many hints +3 easy = +27
	if rec.WeaknessScore != 77 {
		t.Errorf("WeaknessScore = %v, want 77", rec.WeaknessScore)
	}
}

func TestApply_ScoresStayInRange(t *testing.T) {
	rec := newTestRecord(t)
	cfg := DefaultConfig()

	fail := practice.Attempt{ProblemID: "p1", SubmissionAttempts: 9, HintsUsed: 9, Difficulty: practice.Easy}
	for i := 0; i < 20; i++ {
		if err := Apply(rec, fail, testNow, cfg); err != nil {
			t.Fatalf("Apply failure %d: %v", i, err)
		}
		if rec.WeaknessScore < 0 || rec.WeaknessScore > 100 {
			t.Fatalf("WeaknessScore out of range: %v", rec.WeaknessScore)
		}
		if rec.BaseUrgency < 0 || rec.BaseUrgency > 100 {
			t.Fatalf("BaseUrgency out of range: %v", rec.BaseUrgency)
		}
	}
	if rec.WeaknessScore != 100 {
		t.Errorf("WeaknessScore after repeated failures = %v, want clamped 100", rec.WeaknessScore)
	}

	succeed := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1, TimeSpentSeconds: 1, ExpectedTimeSeconds: 100}
	for i := 0; i < 60; i++ {
		if err := Apply(rec, succeed, testNow, cfg); err != nil {
			t.Fatalf("Apply success %d: %v", i, err)
		}
		if rec.WeaknessScore < 0 || rec.BaseUrgency < 0 {
			t.Fatalf("score went negative: urgency %v weakness %v", rec.BaseUrgency, rec.WeaknessScore)
		}
	}
}

func TestApply_InvalidAttemptLeavesRecordUntouched(t *testing.T) {
	rec := newTestRecord(t)
	before := *rec
	att := practice.Attempt{ProblemID: "p1", TimeSpentSeconds: -1}

	if err := Apply(rec, att, testNow, DefaultConfig()); err == nil {
		t.Fatal("expected validation error")
	}
	if *rec != before {
		t.Error("record mutated by invalid attempt")
	}
}

func TestApply_UpdatesCountersAndAverages(t *testing.T) {
	rec := newTestRecord(t)
	cfg := DefaultConfig()

	a1 := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1, TimeSpentSeconds: 30, HintsUsed: 1}
	a2 := practice.Attempt{ProblemID: "p2", Success: false, SubmissionAttempts: 2, TimeSpentSeconds: 60, HintsUsed: 2}
	if err := Apply(rec, a1, testNow, cfg); err != nil {
		t.Fatal(err)
	}
	if err := Apply(rec, a2, testNow.Add(time.Hour), cfg); err != nil {
		t.Fatal(err)
	}

	if rec.PracticeCount != 2 || rec.SuccessCount != 1 || rec.FailureCount != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", rec.PracticeCount, rec.SuccessCount, rec.FailureCount)
	}
	if rec.AverageSolveTimeSecs != 45 {
		t.Errorf("AverageSolveTimeSecs = %v, want 45", rec.AverageSolveTimeSecs)
	}
	if rec.TotalHintsUsed != 3 {
		t.Errorf("TotalHintsUsed = %d, want 3", rec.TotalHintsUsed)
	}
	if rec.LastPracticedAt == nil || !rec.LastPracticedAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("LastPracticedAt = %v, want %v", rec.LastPracticedAt, testNow.Add(time.Hour))
	}
	if rec.SuccessRate() != 0.5 {
		t.Errorf("SuccessRate = %v, want 0.5", rec.SuccessRate())
	}
}
