package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, Default(), cfg)
	require.Equal(t, 15.0, cfg.Concept.FirstSuccessDrop)
	require.Equal(t, 0.10, cfg.SpacedRep.BaseDecayRate)
	require.Equal(t, 0.05, cfg.Module.PerModuleDecay)
	require.Equal(t, 0.30, cfg.Session.ReviewShare)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	yaml := []byte(`
concept:
  first_success_drop: 20
spaced_rep:
  max_interval_days: 90
session:
  review_share: 0.5
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 20.0, cfg.Concept.FirstSuccessDrop)
	require.Equal(t, 90, cfg.SpacedRep.MaxIntervalDays)
	require.Equal(t, 0.5, cfg.Session.ReviewShare)

	// Untouched keys keep their defaults.
	require.Equal(t, 5.0, cfg.Concept.FirstFailureDrop)
	require.Equal(t, 0.80, cfg.Module.MaxDecay)
}

func TestLoad_ExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concept: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
