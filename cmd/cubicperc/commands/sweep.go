package commands

import (
	"fmt"

	"github.com/dlozano/cubicperc"
	"github.com/dlozano/cubicperc/internal/report"
	"github.com/dlozano/cubicperc/internal/stopwatch"
	"github.com/dlozano/cubicperc/internal/sweep"
	"github.com/spf13/cobra"
)

var sweepFlags struct {
	configPath string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a simulation for every probability in a sweep config and write one CSV per run",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := sweep.Load(sweepFlags.configPath)
		if err != nil {
			return err
		}

		jobs := spec.Jobs()
		if len(jobs) == 0 {
			return fmt.Errorf("cubicperc: sweep config %q produced no jobs (set probabilities or p_start/p_stop/p_step)", sweepFlags.configPath)
		}

		var sw stopwatch.Stopwatch
		for i, cfg := range jobs {
			sw.Restart()
			result, err := cubicperc.Simulate(cfg)
			if err != nil {
				return fmt.Errorf("cubicperc: sweep job %d/%d (p=%.10f): %w", i+1, len(jobs), cfg.Probability, err)
			}
			resolved := result.Config
			if err := report.WriteHistogram(spec.OutputDir, resolved, result.Histogram); err != nil {
				return err
			}
			fmt.Printf("[%d/%d] p=%.10f finished in %s, wrote %s\n",
				i+1, len(jobs), resolved.Probability, sw.Stop(), report.FileName(resolved))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepFlags.configPath, "config", "sweep.yaml", "path to the sweep config file")
}
