package moduledecay

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

var testNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func completeN(t *testing.T, s *Service, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		s.CompleteModule(practice.ModuleCompleted{
			ModuleID:     fmt.Sprintf("mod-%d", i),
			ModuleName:   fmt.Sprintf("Module %d", i),
			InitialScore: 70,
			ProblemCount: 10,
		}, testNow.AddDate(0, 0, i))
	}
}

func TestCompleteModule_AssignsIncreasingSequence(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	completeN(t, s, 3)

	for i := 1; i <= 3; i++ {
		rec, err := s.Record(fmt.Sprintf("mod-%d", i))
		if err != nil {
			t.Fatalf("Record mod-%d: %v", i, err)
		}
		if rec.SequenceNumber != i {
			t.Errorf("mod-%d SequenceNumber = %d, want %d", i, rec.SequenceNumber, i)
		}
	}
	if s.CurrentSequence() != 3 {
		t.Errorf("CurrentSequence = %d, want 3", s.CurrentSequence())
	}
}

func TestCompleteModule_EarlierModulesDecayStrictly(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	completeN(t, s, 3)

	a, _ := s.Record("mod-1")
	b, _ := s.Record("mod-2")
	c, _ := s.Record("mod-3")

	if !(a.DecayFactor > b.DecayFactor && b.DecayFactor > c.DecayFactor) {
		t.Errorf("decay not strictly decreasing with recency: %v, %v, %v",
			a.DecayFactor, b.DecayFactor, c.DecayFactor)
	}
	if c.DecayFactor != 0 {
		t.Errorf("newest module DecayFactor = %v, want 0", c.DecayFactor)
	}
}

func TestCompleteModule_Idempotent(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	completeN(t, s, 2)

	again := s.CompleteModule(practice.ModuleCompleted{
		ModuleID: "mod-1", ModuleName: "Renamed", InitialScore: 99,
	}, testNow.AddDate(0, 0, 30))

	if again.SequenceNumber != 1 {
		t.Errorf("SequenceNumber = %d, want original 1", again.SequenceNumber)
	}
	if again.InitialScore != 70 {
		t.Errorf("InitialScore = %v, want original 70", again.InitialScore)
	}
	if s.CurrentSequence() != 2 {
		t.Errorf("CurrentSequence = %d, want unchanged 2", s.CurrentSequence())
	}
}

func TestRecordPractice_SuccessOnlyRecovery(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	completeN(t, s, 3)

	before, _ := s.Record("mod-1")
	decayBefore := before.DecayFactor

	if err := s.RecordPractice("mod-1", false); err != nil {
		t.Fatalf("RecordPractice failure: %v", err)
	}
	mid, _ := s.Record("mod-1")
	if mid.DecayFactor != decayBefore {
		t.Errorf("failed practice changed decay: %v -> %v", decayBefore, mid.DecayFactor)
	}

	if err := s.RecordPractice("mod-1", true); err != nil {
		t.Fatalf("RecordPractice success: %v", err)
	}
	after, _ := s.Record("mod-1")
	if after.DecayFactor >= decayBefore {
		t.Errorf("successful practice did not recover decay: %v -> %v", decayBefore, after.DecayFactor)
	}
}

func TestRecordPractice_UnknownModule(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	if err := s.RecordPractice("ghost", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordPractice(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestHealth_Summary(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	h := s.Health()
	if h.TotalModules != 0 || h.AverageRetention != 0 {
		t.Errorf("empty health = %+v, want zeros", h)
	}

	completeN(t, s, 3)
	h = s.Health()
	if h.TotalModules != 3 {
		t.Errorf("TotalModules = %d, want 3", h.TotalModules)
	}
	if h.AverageRetention <= 0 || h.AverageRetention > 100 {
		t.Errorf("AverageRetention = %v out of range", h.AverageRetention)
	}
	if len(h.MostDecayed) == 0 || h.MostDecayed[0].ModuleID != "mod-1" {
		t.Errorf("MostDecayed[0] should be the oldest module, got %+v", h.MostDecayed)
	}
}

func TestNewService_SanitizesCorruptedSnapshot(t *testing.T) {
	data := &store.ModuleSnapshotData{
		CurrentSequence: 2,
		Modules: map[string]*store.ModuleRecordData{
			"ok": {
				ModuleID: "ok", SequenceNumber: 1, InitialScore: 80,
				CompletedAt: testNow.Format(time.RFC3339),
			},
			"broken": {
				ModuleID: "broken", SequenceNumber: 2,
				InitialScore:  math.NaN(),
				PracticeCount: -4,
				CompletedAt:   "garbage",
			},
		},
	}
	s := NewService(data, DefaultConfig(), nil)

	rec, err := s.Record("broken")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.InitialScore != 100 {
		t.Errorf("InitialScore = %v, want repaired 100", rec.InitialScore)
	}
	if rec.PracticeCount != 0 {
		t.Errorf("PracticeCount = %d, want 0", rec.PracticeCount)
	}
	if rec.CompletedAt.IsZero() {
		t.Error("CompletedAt not repaired")
	}
	if math.IsNaN(rec.CurrentMastery) || rec.CurrentMastery < 0 {
		t.Errorf("CurrentMastery = %v, want finite and non-negative", rec.CurrentMastery)
	}
}

func TestNewService_AdvancesLaggingSequence(t *testing.T) {
	data := &store.ModuleSnapshotData{
		CurrentSequence: 1, // behind the stored records
		Modules: map[string]*store.ModuleRecordData{
			"a": {ModuleID: "a", SequenceNumber: 1, InitialScore: 70, CompletedAt: testNow.Format(time.RFC3339)},
			"b": {ModuleID: "b", SequenceNumber: 3, InitialScore: 70, CompletedAt: testNow.Format(time.RFC3339)},
		},
	}
	s := NewService(data, DefaultConfig(), nil)
	if s.CurrentSequence() != 3 {
		t.Errorf("CurrentSequence = %d, want advanced to 3", s.CurrentSequence())
	}
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, DefaultConfig(), nil)
	completeN(t, s, 2)
	if err := s.RecordPractice("mod-1", true); err != nil {
		t.Fatal(err)
	}

	restored := NewService(s.SnapshotData(), DefaultConfig(), nil)
	if restored.CurrentSequence() != 2 {
		t.Errorf("restored CurrentSequence = %d, want 2", restored.CurrentSequence())
	}
	got, err := restored.Record("mod-1")
	if err != nil {
		t.Fatalf("restored Record: %v", err)
	}
	want, _ := s.Record("mod-1")
	if got.DecayFactor != want.DecayFactor || got.CurrentMastery != want.CurrentMastery {
		t.Errorf("restored derived values %v/%v, want %v/%v",
			got.DecayFactor, got.CurrentMastery, want.DecayFactor, want.CurrentMastery)
	}
	if got.PracticeCount != 1 {
		t.Errorf("restored PracticeCount = %d, want 1", got.PracticeCount)
	}
}
