package bench

import "time"

// mapStats accumulates per-map totals across every experiment referencing
// that map, keyed on the map path as resolved by RunExperiment.
type mapStats struct {
	experiments  int
	sumAbsError  float64
	totalElapsed time.Duration
}

// Aggregator accumulates per-map statistics across a run of experiments, for
// the CLI's --summary report (§4.11). Mean absolute error is judged against
// the first algorithm in each experiment's Options.Algorithms, since every
// algorithm is expected to agree on distance (§8 correctness property).
type Aggregator struct {
	order    []string
	perMap   map[string]*mapStats
	mismatch map[string]int
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{perMap: make(map[string]*mapStats), mismatch: make(map[string]int)}
}

// Add folds one experiment's result into mapPath's running totals.
func (a *Aggregator) Add(mapPath string, result ExperimentResult) {
	stats, ok := a.perMap[mapPath]
	if !ok {
		stats = &mapStats{}
		a.perMap[mapPath] = stats
		a.order = append(a.order, mapPath)
	}

	stats.experiments++
	if !result.OutOfBounds && len(result.Results) > 0 {
		reference := result.Results[0]
		err := reference.Distance - result.Experiment.OptimalCost
		if err < 0 {
			err = -err
		}
		stats.sumAbsError += err
	}
	for _, res := range result.Results {
		stats.totalElapsed += res.Elapsed
	}
	for _, res := range result.Results {
		if result.Mismatch(res.Algorithm) {
			a.mismatch[mapPath]++
		}
	}
}

// MapSummary is one map's aggregated statistics.
type MapSummary struct {
	Map           string
	Experiments   int
	MeanAbsError  float64
	TotalElapsed  time.Duration
	MismatchCount int
}

// Report returns one MapSummary per map, in first-seen order.
func (a *Aggregator) Report() []MapSummary {
	out := make([]MapSummary, 0, len(a.order))
	for _, mapPath := range a.order {
		stats := a.perMap[mapPath]
		mean := 0.0
		if stats.experiments > 0 {
			mean = stats.sumAbsError / float64(stats.experiments)
		}
		out = append(out, MapSummary{
			Map:           mapPath,
			Experiments:   stats.experiments,
			MeanAbsError:  mean,
			TotalElapsed:  stats.totalElapsed,
			MismatchCount: a.mismatch[mapPath],
		})
	}
	return out
}
