package moduledecay

// Recompute refreshes the derived fields of a record given the current
// head of the learner's sequence. Decay grows with every module learned
// after this one, scaled by how well it was learned, and shrinks with
// successful practice. The floor is zero: practice cannot push mastery
// above the score the module was completed with.
func Recompute(rec *Record, currentSequence int, cfg Config) {
	modulesAfter := currentSequence - rec.SequenceNumber
	if modulesAfter < 0 {
		modulesAfter = 0
	}

	mult := 1.0
	switch {
	case rec.InitialScore >= cfg.StrengthThreshold:
		mult = cfg.StrengthMultiplier
	case rec.InitialScore < cfg.WeaknessThreshold:
		mult = cfg.WeaknessMultiplier
	}

	decay := float64(modulesAfter)*cfg.PerModuleDecay*mult -
		float64(rec.PracticeCount)*cfg.RecoveryRate
	if decay < 0 {
		decay = 0
	}
	if decay > cfg.MaxDecay {
		decay = cfg.MaxDecay
	}

	rec.DecayFactor = decay
	rec.CurrentMastery = rec.InitialScore * (1 - decay)
	if rec.CurrentMastery < 0 {
		rec.CurrentMastery = 0
	}
	rec.Class = Classify(decay, cfg)
}

// Classify buckets a decay factor.
func Classify(decay float64, cfg Config) Classification {
	switch {
	case decay < cfg.FreshBelow:
		return ClassFresh
	case decay < cfg.StableBelow:
		return ClassStable
	case decay < cfg.FadingBelow:
		return ClassFading
	case decay < cfg.DecayedBelow:
		return ClassDecayed
	default:
		return ClassCritical
	}
}
