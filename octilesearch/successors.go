package octilesearch

import "github.com/katalvlaran/octilebench/octilegrid"

// Counters tallies heap activity for a single query, used both for
// reproducibility testing (§8 Determinism) and for the CLI's reporting
// (§6.3).
type Counters struct {
	Inserts  int
	Updates  int
	Extracts int
}

// SuccessorFunc emits and relaxes the successors of a just-extracted cell u,
// inserting newly-discovered cells into heap and decreasing the key of
// cells already present, updating counters accordingly.
type SuccessorFunc func(u octilegrid.CellID, grid *octilegrid.Grid, table *Table, heap *Heap, counters *Counters)

// relax updates v's tentative distance, parent, and arrival direction if
// dist strictly improves on v's current distance, then inserts v into heap
// (first visit) or decreases its key (already Grey). Black cells are never
// relaxed, matching §4.5's "skip if already done" rule.
func relax(v octilegrid.CellID, from octilegrid.CellID, dist float64, arrival octilegrid.Direction, table *Table, heap *Heap, counters *Counters) {
	if table.ColourOf(v) == Black {
		return
	}
	if dist >= table.Dist(v) {
		return
	}

	st := table.at(v)
	st.dist = dist
	st.parent = from
	st.from = arrival

	if st.colour == White {
		st.colour = Grey
		heap.Insert(v)
		counters.Inserts++
	} else {
		heap.DecreaseKey(v)
		counters.Updates++
	}
}

// GridSuccessors is the successor generator shared by Dijkstra and A*: it
// relaxes every admissible octile neighbour of u (§4.5).
func GridSuccessors() SuccessorFunc {
	return func(u octilegrid.CellID, grid *octilegrid.Grid, table *Table, heap *Heap, counters *Counters) {
		for _, nb := range grid.NeighboursID(u) {
			dist := table.Dist(u) + octilegrid.EuclideanCost(grid, u, nb.To)
			relax(nb.To, u, dist, nb.Dir, table, heap, counters)
		}
	}
}
