package moduledecay

import (
	"math"
	"testing"
)

func TestRecompute_NewestModuleHasNoDecay(t *testing.T) {
	rec := &Record{SequenceNumber: 5, InitialScore: 75}
	Recompute(rec, 5, DefaultConfig())

	if rec.DecayFactor != 0 {
		t.Errorf("DecayFactor = %v, want 0", rec.DecayFactor)
	}
	if rec.CurrentMastery != 75 {
		t.Errorf("CurrentMastery = %v, want 75", rec.CurrentMastery)
	}
	if rec.Class != ClassFresh {
		t.Errorf("Class = %s, want fresh", rec.Class)
	}
}

func TestRecompute_DecayGrowsWithModulesAfter(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{SequenceNumber: 1, InitialScore: 70}

	prev := -1.0
	for seq := 1; seq <= 10; seq++ {
		Recompute(rec, seq, cfg)
		if rec.DecayFactor < prev {
			t.Fatalf("decay shrank at sequence %d: %v after %v", seq, rec.DecayFactor, prev)
		}
		prev = rec.DecayFactor
	}
	// 9 modules after, average strength: 9*0.05 = 0.45.
	if math.Abs(rec.DecayFactor-0.45) > 1e-9 {
		t.Errorf("DecayFactor = %v, want 0.45", rec.DecayFactor)
	}
}

func TestRecompute_StrengthSlowsDecay(t *testing.T) {
	cfg := DefaultConfig()
	strong := &Record{SequenceNumber: 1, InitialScore: 90}
	average := &Record{SequenceNumber: 1, InitialScore: 65}
	weak := &Record{SequenceNumber: 1, InitialScore: 40}

	Recompute(strong, 5, cfg)
	Recompute(average, 5, cfg)
	Recompute(weak, 5, cfg)

	// 4 modules after: 4*0.05 = 0.20 base; *0.6 strong, *1.4 weak.
	if math.Abs(strong.DecayFactor-0.12) > 1e-9 {
		t.Errorf("strong DecayFactor = %v, want 0.12", strong.DecayFactor)
	}
	if math.Abs(average.DecayFactor-0.20) > 1e-9 {
		t.Errorf("average DecayFactor = %v, want 0.20", average.DecayFactor)
	}
	if math.Abs(weak.DecayFactor-0.28) > 1e-9 {
		t.Errorf("weak DecayFactor = %v, want 0.28", weak.DecayFactor)
	}
}

func TestRecompute_PracticeRecoversDecay(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{SequenceNumber: 1, InitialScore: 65, PracticeCount: 3}
	Recompute(rec, 5, cfg)

	// 0.20 sequence decay - 3*0.03 recovery = 0.11.
	if math.Abs(rec.DecayFactor-0.11) > 1e-9 {
		t.Errorf("DecayFactor = %v, want 0.11", rec.DecayFactor)
	}

	// Enough practice floors at zero, never negative.
	rec.PracticeCount = 20
	Recompute(rec, 5, cfg)
	if rec.DecayFactor != 0 {
		t.Errorf("DecayFactor = %v, want 0 floor", rec.DecayFactor)
	}
	if rec.CurrentMastery != 65 {
		t.Errorf("CurrentMastery = %v, want 65 (never above initial)", rec.CurrentMastery)
	}
}

func TestRecompute_DecayCapped(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{SequenceNumber: 1, InitialScore: 30}
	Recompute(rec, 100, cfg)

	if rec.DecayFactor != cfg.MaxDecay {
		t.Errorf("DecayFactor = %v, want capped at %v", rec.DecayFactor, cfg.MaxDecay)
	}
	if rec.CurrentMastery != 30*(1-cfg.MaxDecay) {
		t.Errorf("CurrentMastery = %v, want %v", rec.CurrentMastery, 30*(1-cfg.MaxDecay))
	}
}

func TestClassify_Buckets(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		decay float64
		want  Classification
	}{
		{0, ClassFresh},
		{0.14, ClassFresh},
		{0.15, ClassStable},
		{0.34, ClassStable},
		{0.35, ClassFading},
		{0.55, ClassDecayed},
		{0.75, ClassCritical},
		{0.80, ClassCritical},
	}
	for _, tt := range tests {
		if got := Classify(tt.decay, cfg); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.decay, got, tt.want)
		}
	}
}
