package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/octilebench/bench"
	"github.com/katalvlaran/octilebench/octilesearch"
	"github.com/katalvlaran/octilebench/scenario"
)

var (
	verbose     bool
	summaryFlag bool
	configPath  string
)

// rootCmd is the single command: it takes one or more scenario-file paths
// and prints the §6.3 report directly, with no subcommands.
var rootCmd = &cobra.Command{
	Use:   "octilebench <scenario-file> [<scenario-file> ...]",
	Short: "Benchmark Dijkstra, A*, and JPS against octile scenario files",
	Long: `octilebench loads one or more .scen scenario files, resolves and caches
each referenced octile map, runs Dijkstra, A*, and JPS over every experiment,
and prints heap counters, computed distance, and the optimality cross-check
against the scenario's reference cost.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"also print each experiment's bucket number and reconstructed path length")
	rootCmd.Flags().BoolVar(&summaryFlag, "summary", false,
		"print a trailing per-map aggregate table after all scenario files are processed")
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"optional YAML file of default options, overridden by any flag given explicitly")
}

// Execute runs rootCmd, converting an internal invariant-violation panic
// from the search engine into a diagnostic and a non-zero exit (§7), since
// by definition such a panic indicates a defect rather than bad input.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "octilebench: internal invariant violated: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := defaultFileConfig()
	if configPath != "" {
		loaded, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("summary") {
		cfg.Summary = summaryFlag
	}

	var algos []octilesearch.Algorithm
	if cfg.Dijkstra {
		algos = append(algos, octilesearch.Dijkstra)
	}
	if cfg.Astar {
		algos = append(algos, octilesearch.Astar)
	}
	if cfg.JPS {
		algos = append(algos, octilesearch.JPS)
	}
	opts := []bench.Option{bench.WithAlgorithms(algos...)}
	if !cfg.CrossCheck {
		opts = append(opts, bench.WithoutCrossCheck())
	}

	diag := log.New(os.Stderr, "octilebench: ", 0)
	cache := bench.NewMapCache()
	agg := bench.NewAggregator()

	firstFileFailed := false
	for fileIdx, scenPath := range args {
		experiments, err := scenario.Load(scenPath)
		if err != nil {
			diag.Printf("scenario %s: %v", scenPath, err)
			if fileIdx == 0 {
				firstFileFailed = true
			}
			continue
		}

		baseDir := filepath.Dir(scenPath)
		for expIdx, exp := range experiments {
			result, err := bench.RunExperiment(cache, baseDir, exp, opts...)
			if err != nil {
				diag.Printf("scenario %s experiment %d: map %s: %v", scenPath, expIdx, exp.Map, err)
				continue
			}

			printExperiment(os.Stdout, expIdx, result, cfg.Verbose)
			agg.Add(filepath.Join(baseDir, exp.Map), result)
		}
	}

	if cfg.Summary {
		printSummary(os.Stdout, agg.Report())
	}

	if firstFileFailed {
		return fmt.Errorf("fatal: could not load first scenario file %s", args[0])
	}
	return nil
}
