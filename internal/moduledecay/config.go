package moduledecay

// Config holds the tunable constants of the module decay model.
type Config struct {
	// PerModuleDecay is the decay added for every module completed
	// after this one.
	PerModuleDecay float64 `mapstructure:"per_module_decay"`

	// RecoveryRate is the decay removed per successful practice touch.
	RecoveryRate float64 `mapstructure:"recovery_rate"`

	// MaxDecay caps the decay factor; material never fully vanishes.
	MaxDecay float64 `mapstructure:"max_decay"`

	// StrengthMultiplier slows decay for modules completed with a
	// strong score; WeaknessMultiplier speeds it for weak ones.
	StrengthMultiplier float64 `mapstructure:"strength_multiplier"`
	WeaknessMultiplier float64 `mapstructure:"weakness_multiplier"`

	// StrengthThreshold and WeaknessThreshold are the initial-score
	// cutoffs that select the multipliers above.
	StrengthThreshold float64 `mapstructure:"strength_threshold"`
	WeaknessThreshold float64 `mapstructure:"weakness_threshold"`

	// Classification cutoffs on the decay factor.
	FreshBelow   float64 `mapstructure:"fresh_below"`
	StableBelow  float64 `mapstructure:"stable_below"`
	FadingBelow  float64 `mapstructure:"fading_below"`
	DecayedBelow float64 `mapstructure:"decayed_below"`
}

// DefaultConfig returns the shipped tuning of the module decay model.
func DefaultConfig() Config {
	return Config{
		PerModuleDecay:     0.05,
		RecoveryRate:       0.03,
		MaxDecay:           0.80,
		StrengthMultiplier: 0.6,
		WeaknessMultiplier: 1.4,
		StrengthThreshold:  80,
		WeaknessThreshold:  50,
		FreshBelow:         0.15,
		StableBelow:        0.35,
		FadingBelow:        0.55,
		DecayedBelow:       0.75,
	}
}
