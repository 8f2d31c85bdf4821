package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charlieanna/idlecampus-engine/internal/config"
	"github.com/charlieanna/idlecampus-engine/internal/engine"
	"github.com/charlieanna/idlecampus-engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "idlecampus-engine",
	Short: "Decay and priority engine for practice scheduling",
	Long: "Inspection CLI for the idlecampus decay engine: concept urgency/weakness\n" +
		"scoring, per-problem spaced repetition, and module retention decay.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IDLECAMPUS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to tuning config file")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then IDLECAMPUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine wires a store-backed engine for a CLI invocation.
// The caller must Close the returned store.
func openEngine(ctx context.Context, cmd *cobra.Command, log *zap.Logger) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(ctx, engine.Options{
		Config:    cfg,
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Logger:    log,
	})
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}

// newLogger builds the CLI logger: human-readable, stderr only.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
