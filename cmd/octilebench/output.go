package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/octilebench/bench"
)

// printExperiment writes the §6.3 report for one experiment: one line of
// identification, then one block per algorithm that ran.
func printExperiment(w io.Writer, index int, result bench.ExperimentResult, verbose bool) {
	exp := result.Experiment
	fmt.Fprintf(w, "experiment %d: map=%s start=(%d,%d) goal=(%d,%d)\n",
		index, exp.Map, exp.StartX, exp.StartY, exp.GoalX, exp.GoalY)
	if verbose {
		fmt.Fprintf(w, "  bucket=%d\n", exp.Bucket)
	}

	for _, res := range result.Results {
		fmt.Fprintf(w, "  [%s] inserts=%d updates=%d extracts=%d",
			res.Algorithm, res.Counters.Inserts, res.Counters.Updates, res.Counters.Extracts)

		if !res.Reachable {
			fmt.Fprintf(w, " unreachable elapsed=%.6fs\n", res.Elapsed.Seconds())
			continue
		}

		diff := res.Distance - exp.OptimalCost
		fmt.Fprintf(w, " distance=%.1f optimal=%.1f diff=%+.1f elapsed=%.6fs",
			res.Distance, exp.OptimalCost, diff, res.Elapsed.Seconds())
		if verbose {
			fmt.Fprintf(w, " path_len=%d", len(res.Path))
		}
		fmt.Fprintln(w)
	}
}

// printSummary writes the --summary trailing aggregate table.
func printSummary(w io.Writer, summaries []bench.MapSummary) {
	fmt.Fprintln(w, "summary:")
	for _, s := range summaries {
		fmt.Fprintf(w, "  %s experiments=%d mean_abs_error=%.4f total_elapsed=%s mismatches=%d\n",
			s.Map, s.Experiments, s.MeanAbsError, s.TotalElapsed, s.MismatchCount)
	}
}
