package bench

import "github.com/katalvlaran/octilebench/octilesearch"

// Options configures which algorithms RunExperiment exercises and whether
// unreachable/mismatched experiments are tolerated or treated as errors by
// the caller. Mirrors the teacher's functional-options convention
// (dijkstra.Options, dijkstra.Option).
type Options struct {
	// Algorithms lists which algorithms to run, in report order. Defaults to
	// all three (Dijkstra, A*, JPS).
	Algorithms []octilesearch.Algorithm
	// CrossCheck enables the §8 optimality cross-check against
	// Experiment.OptimalCost; when false, ExperimentResult.Mismatch always
	// reports false.
	CrossCheck bool
}

// Option is a functional option for Options.
type Option func(*Options)

// WithAlgorithms restricts which algorithms RunExperiment runs, in the given order.
func WithAlgorithms(algos ...octilesearch.Algorithm) Option {
	return func(o *Options) {
		o.Algorithms = algos
	}
}

// WithoutCrossCheck disables the §8 optimality cross-check, useful when a
// scenario file's OptimalCost column is known to be stale or absent.
func WithoutCrossCheck() Option {
	return func(o *Options) {
		o.CrossCheck = false
	}
}

// DefaultOptions returns an Options value running all three algorithms with
// the optimality cross-check enabled.
func DefaultOptions() Options {
	return Options{
		Algorithms: []octilesearch.Algorithm{octilesearch.Dijkstra, octilesearch.Astar, octilesearch.JPS},
		CrossCheck: true,
	}
}
