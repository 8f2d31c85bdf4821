package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show prioritized concepts, due reviews, and module health",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		eng, st, err := openEngine(ctx, cmd, log)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		limit, _ := cmd.Flags().GetInt("limit")

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "CONCEPT\tPRIORITY\tURGENCY\tWEAKNESS\tCOLOR\tREASON")
		ranked := eng.PrioritizedConcepts()
		if len(ranked) == 0 {
			fmt.Fprintln(w, "(no concepts tracked)\t\t\t\t\t")
		}
		for i, r := range ranked {
			if limit > 0 && i >= limit {
				break
			}
			fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
				r.ConceptID, r.Priority, r.DisplayUrgency, r.Weakness, r.Color, r.Reason)
		}
		fmt.Fprintln(w, "\t\t\t\t\t")

		fmt.Fprintln(w, "PROBLEM\tREVIEW PRIORITY\tSTATUS\tLIVE MASTERY")
		reviews := eng.ReviewRecommendations(now, limit)
		if len(reviews) == 0 {
			fmt.Fprintln(w, "(nothing due for review)\t\t\t")
		}
		for _, rc := range reviews {
			fmt.Fprintf(w, "%s\t%.1f\t%s\t%.1f\n",
				rc.ProblemID, rc.Priority, rc.Status, rc.LiveMastery)
		}
		fmt.Fprintln(w, "\t\t\t")

		health := eng.ModuleHealth()
		fmt.Fprintln(w, "MODULES\tRETENTION\tFRESH\tSTABLE\tFADING\tDECAYED\tCRITICAL")
		fmt.Fprintf(w, "%d\t%.1f%%\t%d\t%d\t%d\t%d\t%d\n",
			health.TotalModules, health.AverageRetention,
			health.Fresh, health.Stable, health.Fading, health.Decayed, health.Critical)
		for _, m := range health.MostDecayed {
			fmt.Fprintf(w, "  %s\t%s\tdecay %.0f%%\tmastery %.1f\t\t\t\n",
				m.ModuleID, m.Class, m.DecayFactor*100, m.CurrentMastery)
		}

		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Max rows per section (0 = all)")
}
