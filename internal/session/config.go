package session

// Config holds the selector's tunables.
type Config struct {
	// ReviewShare is the fraction of session slots reserved for due
	// reviews when any exist.
	ReviewShare float64 `mapstructure:"review_share"`

	// FallbackAttemptsFactor bounds the round-robin fill pass at
	// factor * conceptCount attempts, so a small catalog cannot spin
	// the selector forever.
	FallbackAttemptsFactor int `mapstructure:"fallback_attempts_factor"`
}

// DefaultConfig returns the shipped selector tuning.
func DefaultConfig() Config {
	return Config{
		ReviewShare:            0.30,
		FallbackAttemptsFactor: 3,
	}
}
