package concept

// Config holds the tunable constants of the concept scoring model.
type Config struct {
	// FirstSuccessDrop and FirstFailureDrop are the fixed urgency drops
	// applied on a concept's very first practice attempt.
	FirstSuccessDrop float64 `mapstructure:"first_success_drop"`
	FirstFailureDrop float64 `mapstructure:"first_failure_drop"`

	// SuccessDecay and FailureDecay are the base urgency decays for later
	// attempts, scaled by sqrt(urgency/100) for diminishing returns.
	SuccessDecay float64 `mapstructure:"success_decay"`
	FailureDecay float64 `mapstructure:"failure_decay"`

	// SequenceDecayFactor is the urgency added per concept learned after
	// this one, before the weakness multiplier.
	SequenceDecayFactor float64 `mapstructure:"sequence_decay_factor"`

	// UrgencyWeight and WeaknessWeight combine the two scores into one
	// priority. Weakness dominates: struggling now matters more than
	// time elapsed.
	UrgencyWeight  float64 `mapstructure:"urgency_weight"`
	WeaknessWeight float64 `mapstructure:"weakness_weight"`

	// PriorityTieWindow is the priority distance within which two concepts
	// are considered tied and secondary ordering applies.
	PriorityTieWindow float64 `mapstructure:"priority_tie_window"`
}

// DefaultConfig returns the shipped tuning of the scoring model.
func DefaultConfig() Config {
	return Config{
		FirstSuccessDrop:    15,
		FirstFailureDrop:    5,
		SuccessDecay:        10,
		FailureDecay:        3,
		SequenceDecayFactor: 5,
		UrgencyWeight:       0.4,
		WeaknessWeight:      0.6,
		PriorityTieWindow:   0.01,
	}
}
