package bench

import (
	"path/filepath"
	"time"

	"github.com/katalvlaran/octilebench/octilegrid"
	"github.com/katalvlaran/octilebench/octilemap"
	"github.com/katalvlaran/octilebench/octilesearch"
	"github.com/katalvlaran/octilebench/scenario"
)

// cachedMap is a loaded map together with the node-state table sized for it;
// the table is reset on every Search call, so it is safe to reuse across
// every experiment that references the same map (§5).
type cachedMap struct {
	grid  *octilegrid.Grid
	table *octilesearch.Table
}

// MapCache loads each octile map at most once, keyed by its resolved path,
// so a scenario file referencing the same map across many experiments pays
// the load cost a single time.
type MapCache struct {
	maps map[string]*cachedMap
}

// NewMapCache returns an empty cache.
func NewMapCache() *MapCache {
	return &MapCache{maps: make(map[string]*cachedMap)}
}

// Load returns the grid and node table for the map at path, loading and
// converting it on first use.
func (c *MapCache) Load(path string) (*octilegrid.Grid, *octilesearch.Table, error) {
	if cm, ok := c.maps[path]; ok {
		return cm.grid, cm.table, nil
	}

	m, err := octilemap.Load(path)
	if err != nil {
		return nil, nil, err
	}
	grid, err := octilegrid.NewGrid(m.Width, m.Height, m.Passable)
	if err != nil {
		return nil, nil, err
	}
	table := octilesearch.NewTable(grid.Len())

	c.maps[path] = &cachedMap{grid: grid, table: table}
	return grid, table, nil
}

// RunExperiment resolves exp.Map relative to baseDir (the directory holding
// the scenario file, per §6.1's path convention), loads it through cache,
// and runs every algorithm opts.Algorithms names from (exp.StartX, exp.StartY)
// to (exp.GoalX, exp.GoalY). With no options, DefaultOptions applies.
func RunExperiment(cache *MapCache, baseDir string, exp scenario.Experiment, opts ...Option) (ExperimentResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	mapPath := filepath.Join(baseDir, exp.Map)
	grid, table, err := cache.Load(mapPath)
	if err != nil {
		return ExperimentResult{}, err
	}

	result := ExperimentResult{
		Experiment: exp,
		Results:    make([]AlgoResult, len(cfg.Algorithms)),
		crossCheck: cfg.CrossCheck,
	}

	if !grid.InBounds(exp.StartX, exp.StartY) || !grid.InBounds(exp.GoalX, exp.GoalY) ||
		grid.Blocked(exp.StartX, exp.StartY) || grid.Blocked(exp.GoalX, exp.GoalY) {
		result.OutOfBounds = true
		for i, algo := range cfg.Algorithms {
			result.Results[i] = AlgoResult{Algorithm: algo}
		}
		return result, nil
	}

	start := grid.ID(exp.StartX, exp.StartY)
	goal := grid.ID(exp.GoalX, exp.GoalY)

	for i, algo := range cfg.Algorithms {
		begin := time.Now()
		res, err := octilesearch.Search(grid, table, algo, start, goal)
		elapsed := time.Since(begin)
		if err != nil {
			return ExperimentResult{}, err
		}

		ar := AlgoResult{
			Algorithm: algo,
			Reachable: res.Reachable,
			Path:      res.Path,
			Counters:  res.Counters,
			Elapsed:   elapsed,
		}
		if res.Reachable {
			ar.Distance = octilegrid.ScaledDistance(res.Distance)
		}
		result.Results[i] = ar
	}

	return result, nil
}
