package bench

import (
	"time"

	"github.com/katalvlaran/octilebench/octilegrid"
	"github.com/katalvlaran/octilebench/octilesearch"
	"github.com/katalvlaran/octilebench/scenario"
)

// AlgoResult is one algorithm's outcome for a single experiment.
type AlgoResult struct {
	Algorithm octilesearch.Algorithm
	Reachable bool
	// Distance is the display-rounded distance (octilegrid.ScaledDistance),
	// zero when unreachable.
	Distance float64
	Path     []octilegrid.CellID
	Counters octilesearch.Counters
	Elapsed  time.Duration
}

// ExperimentResult bundles the configured algorithms' outcomes for one
// scenario.Experiment, plus the optimality cross-check of §8.
type ExperimentResult struct {
	Experiment scenario.Experiment
	// Results holds one entry per Options.Algorithms, in that order.
	Results []AlgoResult
	// OutOfBounds is true when start or goal fell outside the map or on a
	// blocked cell; every Results entry is then synthesized as unreachable
	// without ever invoking the engine (§7).
	OutOfBounds bool
	// crossCheck mirrors the Options.CrossCheck this experiment ran under.
	crossCheck bool
}

// Result returns the AlgoResult for algo, or the zero value if this
// experiment did not run algo.
func (r ExperimentResult) Result(algo octilesearch.Algorithm) AlgoResult {
	for _, res := range r.Results {
		if res.Algorithm == algo {
			return res
		}
	}
	return AlgoResult{Algorithm: algo}
}

// Mismatch reports whether algo disagrees with the experiment's reference
// OptimalCost: either it failed to find a path at all, or its distance
// differs from OptimalCost by more than the §8 tolerance of 1e-6.
func (r ExperimentResult) Mismatch(algo octilesearch.Algorithm) bool {
	if !r.crossCheck {
		return false
	}
	res := r.Result(algo)
	if !res.Reachable {
		return true
	}
	diff := res.Distance - r.Experiment.OptimalCost
	if diff < 0 {
		diff = -diff
	}
	return diff > 1e-6
}
