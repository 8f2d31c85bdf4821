package spacedrep

// Config holds the tunable constants of the problem mastery model.
type Config struct {
	// BaseDecayRate is the per-day decay constant before multipliers.
	BaseDecayRate float64 `mapstructure:"base_decay_rate"`

	// MaxDecayRate caps the computed decay rate.
	MaxDecayRate float64 `mapstructure:"max_decay_rate"`

	// MinDecayRate keeps decay from vanishing entirely for very
	// consistent learners.
	MinDecayRate float64 `mapstructure:"min_decay_rate"`

	// MinEaseFactor and MaxEaseFactor bound the SM-2 ease factor.
	MinEaseFactor float64 `mapstructure:"min_ease_factor"`
	MaxEaseFactor float64 `mapstructure:"max_ease_factor"`

	// MaxIntervalDays caps the review interval.
	MaxIntervalDays int `mapstructure:"max_interval_days"`

	// OverdueGraceDays past nextReviewAt before a due problem counts
	// as overdue.
	OverdueGraceDays float64 `mapstructure:"overdue_grace_days"`

	// CriticalMastery is the live-mastery floor below which a problem
	// is critical regardless of schedule.
	CriticalMastery float64 `mapstructure:"critical_mastery"`

	// MasteredScore and MasteredRepetitions gate the read-time
	// "mastered" classification.
	MasteredScore       float64 `mapstructure:"mastered_score"`
	MasteredRepetitions int     `mapstructure:"mastered_repetitions"`

	// HistoryLimit bounds the per-record attempt history.
	HistoryLimit int `mapstructure:"history_limit"`
}

// DefaultConfig returns the shipped tuning of the problem mastery model.
func DefaultConfig() Config {
	return Config{
		BaseDecayRate:       0.10,
		MaxDecayRate:        0.5,
		MinDecayRate:        0.01,
		MinEaseFactor:       1.3,
		MaxEaseFactor:       2.5,
		MaxIntervalDays:     180,
		OverdueGraceDays:    7,
		CriticalMastery:     40,
		MasteredScore:       90,
		MasteredRepetitions: 3,
		HistoryLimit:        10,
	}
}

// difficultyDecayMultiplier scales decay by authored difficulty:
// hard problems are forgotten faster than easy ones.
func difficultyDecayMultiplier(d string) float64 {
	switch d {
	case "easy":
		return 0.7
	case "hard":
		return 1.4
	default:
		return 1.0
	}
}
