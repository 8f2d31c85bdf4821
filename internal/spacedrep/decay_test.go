package spacedrep

import (
	"math"
	"testing"
	"time"

	"github.com/charlieanna/idlecampus-engine/internal/practice"
)

func TestCurrentMastery_DecaysExponentially(t *testing.T) {
	pm := &ProblemMastery{
		MasteryScore:   100,
		DecayRate:      0.1,
		IntervalDays:   1,
		LastReviewedAt: testNow,
	}

	got := CurrentMastery(pm, testNow.AddDate(0, 0, 7))
	want := 100 * math.Exp(-0.7)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CurrentMastery = %v, want %v", got, want)
	}
}

func TestCurrentMastery_PureAndIdempotent(t *testing.T) {
	pm := &ProblemMastery{
		MasteryScore:   80,
		DecayRate:      0.2,
		IntervalDays:   6,
		LastReviewedAt: testNow,
	}
	later := testNow.AddDate(0, 0, 30)

	first := CurrentMastery(pm, later)
	second := CurrentMastery(pm, later)
	if first != second {
		t.Errorf("repeated reads differ: %v then %v", first, second)
	}
	if pm.MasteryScore != 80 {
		t.Errorf("stored score mutated to %v", pm.MasteryScore)
	}
}

func TestCurrentMastery_NoDecayBeforeReviewTime(t *testing.T) {
	pm := &ProblemMastery{
		MasteryScore:   90,
		DecayRate:      0.5,
		IntervalDays:   1,
		LastReviewedAt: testNow,
	}
	if got := CurrentMastery(pm, testNow); got != 90 {
		t.Errorf("CurrentMastery at review time = %v, want 90", got)
	}
	if got := CurrentMastery(pm, testNow.Add(-time.Hour)); got != 90 {
		t.Errorf("CurrentMastery before review time = %v, want 90", got)
	}
}

func TestStatus_Classification(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		pm   *ProblemMastery
		now  time.Time
		want ReviewStatus
	}{
		{
			name: "critical live mastery wins over schedule",
			pm: &ProblemMastery{
				MasteryScore: 100, DecayRate: 0.5, IntervalDays: 1,
				LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 1),
				Repetitions: 5,
			},
			now:  testNow.AddDate(0, 0, 2), // 100*e^-1 ≈ 36.8
			want: StatusCritical,
		},
		{
			name: "overdue past grace",
			pm: &ProblemMastery{
				MasteryScore: 95, DecayRate: 0.01, IntervalDays: 30,
				LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 30),
			},
			now:  testNow.AddDate(0, 0, 38),
			want: StatusOverdue,
		},
		{
			name: "due just past review time",
			pm: &ProblemMastery{
				MasteryScore: 95, DecayRate: 0.01, IntervalDays: 30,
				LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 30),
			},
			now:  testNow.AddDate(0, 0, 31),
			want: StatusDue,
		},
		{
			name: "mastered needs score and repetitions",
			pm: &ProblemMastery{
				MasteryScore: 98, DecayRate: 0.01, IntervalDays: 90,
				LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 90),
				Repetitions: 4,
			},
			now:  testNow.AddDate(0, 0, 5),
			want: StatusMastered,
		},
		{
			name: "fresh when high score but few repetitions",
			pm: &ProblemMastery{
				MasteryScore: 98, DecayRate: 0.01, IntervalDays: 1,
				LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 1),
				Repetitions: 1,
			},
			now:  testNow,
			want: StatusFresh,
		},
	}
	for _, tt := range tests {
		if got := Status(tt.pm, tt.now, cfg); got != tt.want {
			t.Errorf("%s: Status = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestPriority_WeakerAndMoreOverdueScoreHigher(t *testing.T) {
	cfg := DefaultConfig()
	weak := &ProblemMastery{
		MasteryScore: 50, DecayRate: 0.1, IntervalDays: 1,
		LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 1),
	}
	strong := &ProblemMastery{
		MasteryScore: 95, DecayRate: 0.01, IntervalDays: 30,
		LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 30),
	}
	now := testNow.AddDate(0, 0, 3)

	pw := Priority(weak, practice.Medium, now, cfg)
	ps := Priority(strong, practice.Medium, now, cfg)
	if pw <= ps {
		t.Errorf("weak priority %v should exceed strong priority %v", pw, ps)
	}
	if pw < 0 || pw > 100 || ps < 0 || ps > 100 {
		t.Errorf("priorities out of range: %v, %v", pw, ps)
	}
}

func TestPriority_HardBonusOrdersEqualRecords(t *testing.T) {
	cfg := DefaultConfig()
	base := ProblemMastery{
		MasteryScore: 70, DecayRate: 0.05, IntervalDays: 6,
		LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 6),
	}
	hard, easy := base, base
	now := testNow.AddDate(0, 0, 7)

	if Priority(&hard, practice.Hard, now, cfg) <= Priority(&easy, practice.Easy, now, cfg) {
		t.Error("hard problem should outrank identical easy problem")
	}
}

func TestComputeStats(t *testing.T) {
	cfg := DefaultConfig()
	records := []*ProblemMastery{
		{ // fresh
			MasteryScore: 80, DecayRate: 0.01, IntervalDays: 6,
			LastReviewedAt: testNow, NextReviewAt: testNow.AddDate(0, 0, 6),
		},
		{ // due
			MasteryScore: 85, DecayRate: 0.01, IntervalDays: 1,
			LastReviewedAt: testNow.AddDate(0, 0, -2), NextReviewAt: testNow.AddDate(0, 0, -1),
		},
	}

	st := ComputeStats(records, testNow, cfg)
	if st.Total != 2 {
		t.Errorf("Total = %d, want 2", st.Total)
	}
	if st.Fresh != 1 || st.Due != 1 {
		t.Errorf("Fresh/Due = %d/%d, want 1/1", st.Fresh, st.Due)
	}
	if st.AverageMastery <= 0 || st.AverageMastery > 100 {
		t.Errorf("AverageMastery = %v out of range", st.AverageMastery)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	st := ComputeStats(nil, testNow, DefaultConfig())
	if st.Total != 0 || st.AverageMastery != 0 {
		t.Errorf("empty stats = %+v, want zeros", st)
	}
}
