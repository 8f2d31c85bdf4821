package concept

import (
	"errors"
	"math"
	"testing"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

func TestNewService_SanitizesNonFiniteFields(t *testing.T) {
	data := map[string]*store.ConceptRecordData{
		"broken": {
			ConceptID:            "broken",
			LearningSequence:     1,
			BaseUrgency:          math.NaN(),
			WeaknessScore:        math.Inf(1),
			AverageSolveTimeSecs: -5,
			PracticeCount:        3,
			SuccessCount:         1,
			FailureCount:         1,
		},
	}
	svc := NewService(data, DefaultConfig(), nil)

	rec, err := svc.Record("broken")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.BaseUrgency != InitialUrgency {
		t.Errorf("BaseUrgency = %v, want %v", rec.BaseUrgency, InitialUrgency)
	}
	if rec.WeaknessScore != InitialWeakness {
		t.Errorf("WeaknessScore = %v, want %v", rec.WeaknessScore, InitialWeakness)
	}
	if rec.AverageSolveTimeSecs != 0 {
		t.Errorf("AverageSolveTimeSecs = %v, want 0", rec.AverageSolveTimeSecs)
	}
	// practiceCount repaired to successCount + failureCount.
	if rec.PracticeCount != 2 {
		t.Errorf("PracticeCount = %d, want 2", rec.PracticeCount)
	}
}

func TestService_InitializeIsIdempotent(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)

	first, err := svc.Initialize("c1", "Concept One", 1, "m1")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	first.WeaknessScore = 80

	again, err := svc.Initialize("c1", "renamed", 99, "m2")
	if err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if again != first {
		t.Error("second Initialize created a new record")
	}
	if again.WeaknessScore != 80 {
		t.Errorf("WeaknessScore = %v, want 80", again.WeaknessScore)
	}
	if svc.Len() != 1 {
		t.Errorf("Len = %d, want 1", svc.Len())
	}
}

func TestService_RecordNotFound(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	if _, err := svc.Record("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Record(ghost) error = %v, want ErrNotFound", err)
	}
	if err := svc.RecordAttempt("ghost", practice.Attempt{}, testNow); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordAttempt(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestService_SequenceCountersNeverReused(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)

	if _, err := svc.Initialize("a", "A", svc.NextSequence(), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Initialize("b", "B", svc.NextSequence(), ""); err != nil {
		t.Fatal(err)
	}
	if svc.MaxSequence() != 2 {
		t.Errorf("MaxSequence = %d, want 2", svc.MaxSequence())
	}
	if svc.NextSequence() != 3 {
		t.Errorf("NextSequence = %d, want 3", svc.NextSequence())
	}
}

func TestService_RankedEmptyState(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	if got := svc.Ranked(); len(got) != 0 {
		t.Errorf("Ranked on empty state returned %d entries", len(got))
	}
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	if _, err := svc.Initialize("c1", "Concept One", 1, "m1"); err != nil {
		t.Fatal(err)
	}
	att := practice.Attempt{ProblemID: "p1", Success: true, SubmissionAttempts: 1, TimeSpentSeconds: 42}
	if err := svc.RecordAttempt("c1", att, testNow); err != nil {
		t.Fatal(err)
	}

	restored := NewService(svc.SnapshotData(), DefaultConfig(), nil)
	got, err := restored.Record("c1")
	if err != nil {
		t.Fatalf("restored Record: %v", err)
	}
	want, _ := svc.Record("c1")
	if got.BaseUrgency != want.BaseUrgency || got.WeaknessScore != want.WeaknessScore {
		t.Errorf("restored scores %v/%v, want %v/%v",
			got.BaseUrgency, got.WeaknessScore, want.BaseUrgency, want.WeaknessScore)
	}
	if got.PracticeCount != 1 || got.SuccessCount != 1 {
		t.Errorf("restored counters %d/%d, want 1/1", got.PracticeCount, got.SuccessCount)
	}
	if got.LastPracticedAt == nil || !got.LastPracticedAt.Equal(testNow) {
		t.Errorf("restored LastPracticedAt = %v, want %v", got.LastPracticedAt, testNow)
	}
	if got.ModuleID != "m1" {
		t.Errorf("restored ModuleID = %q, want m1", got.ModuleID)
	}
}

func TestService_Reset(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	if _, err := svc.Initialize("c1", "C", 1, ""); err != nil {
		t.Fatal(err)
	}
	svc.Reset()
	if svc.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", svc.Len())
	}
}
