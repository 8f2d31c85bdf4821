// Package config loads the engine's tuning parameters. Every knob has a
// shipped default; an optional YAML file and IDLECAMPUS_* environment
// variables override them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/charlieanna/idlecampus-engine/internal/concept"
	"github.com/charlieanna/idlecampus-engine/internal/moduledecay"
	"github.com/charlieanna/idlecampus-engine/internal/session"
	"github.com/charlieanna/idlecampus-engine/internal/spacedrep"
)

// Config bundles the per-model tuning sections.
type Config struct {
	Concept   concept.Config     `mapstructure:"concept"`
	SpacedRep spacedrep.Config   `mapstructure:"spaced_rep"`
	Module    moduledecay.Config `mapstructure:"module"`
	Session   session.Config     `mapstructure:"session"`
}

// Default returns the shipped tuning for every model.
func Default() Config {
	return Config{
		Concept:   concept.DefaultConfig(),
		SpacedRep: spacedrep.DefaultConfig(),
		Module:    moduledecay.DefaultConfig(),
		Session:   session.DefaultConfig(),
	}
}

// Load reads tuning from an optional config file and the environment.
// A missing file is fine: defaults apply. Explicit paths that fail to
// parse are errors; silent fallback would hide a typo in a real override.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("idlecampus")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvPrefix("IDLECAMPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		// No config file anywhere on the search path: defaults apply.
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("concept.first_success_drop", d.Concept.FirstSuccessDrop)
	v.SetDefault("concept.first_failure_drop", d.Concept.FirstFailureDrop)
	v.SetDefault("concept.success_decay", d.Concept.SuccessDecay)
	v.SetDefault("concept.failure_decay", d.Concept.FailureDecay)
	v.SetDefault("concept.sequence_decay_factor", d.Concept.SequenceDecayFactor)
	v.SetDefault("concept.urgency_weight", d.Concept.UrgencyWeight)
	v.SetDefault("concept.weakness_weight", d.Concept.WeaknessWeight)
	v.SetDefault("concept.priority_tie_window", d.Concept.PriorityTieWindow)

	v.SetDefault("spaced_rep.base_decay_rate", d.SpacedRep.BaseDecayRate)
	v.SetDefault("spaced_rep.max_decay_rate", d.SpacedRep.MaxDecayRate)
	v.SetDefault("spaced_rep.min_decay_rate", d.SpacedRep.MinDecayRate)
	v.SetDefault("spaced_rep.min_ease_factor", d.SpacedRep.MinEaseFactor)
	v.SetDefault("spaced_rep.max_ease_factor", d.SpacedRep.MaxEaseFactor)
	v.SetDefault("spaced_rep.max_interval_days", d.SpacedRep.MaxIntervalDays)
	v.SetDefault("spaced_rep.overdue_grace_days", d.SpacedRep.OverdueGraceDays)
	v.SetDefault("spaced_rep.critical_mastery", d.SpacedRep.CriticalMastery)
	v.SetDefault("spaced_rep.mastered_score", d.SpacedRep.MasteredScore)
	v.SetDefault("spaced_rep.mastered_repetitions", d.SpacedRep.MasteredRepetitions)
	v.SetDefault("spaced_rep.history_limit", d.SpacedRep.HistoryLimit)

	v.SetDefault("module.per_module_decay", d.Module.PerModuleDecay)
	v.SetDefault("module.recovery_rate", d.Module.RecoveryRate)
	v.SetDefault("module.max_decay", d.Module.MaxDecay)
	v.SetDefault("module.strength_multiplier", d.Module.StrengthMultiplier)
	v.SetDefault("module.weakness_multiplier", d.Module.WeaknessMultiplier)
	v.SetDefault("module.strength_threshold", d.Module.StrengthThreshold)
	v.SetDefault("module.weakness_threshold", d.Module.WeaknessThreshold)
	v.SetDefault("module.fresh_below", d.Module.FreshBelow)
	v.SetDefault("module.stable_below", d.Module.StableBelow)
	v.SetDefault("module.fading_below", d.Module.FadingBelow)
	v.SetDefault("module.decayed_below", d.Module.DecayedBelow)

	v.SetDefault("session.review_share", d.Session.ReviewShare)
	v.SetDefault("session.fallback_attempts_factor", d.Session.FallbackAttemptsFactor)
}
