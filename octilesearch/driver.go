package octilesearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/octilebench/octilegrid"
)

// Algorithm selects which (comparator, successor generator) pair the driver
// runs. It is a closed, plain-switch dispatch rather than an interface
// hierarchy (§9 design notes).
type Algorithm int

const (
	// Dijkstra explores in order of increasing g, visiting every admissible
	// octile neighbour of each popped cell.
	Dijkstra Algorithm = iota
	// Astar explores in order of increasing f = g + h, visiting every
	// admissible octile neighbour of each popped cell.
	Astar
	// JPS explores in order of increasing f = g + h, visiting only jump
	// points discovered by the recursive jump rules of §4.6.
	JPS
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "Dijkstra"
	case Astar:
		return "A*"
	case JPS:
		return "JPS"
	default:
		return "Algorithm(invalid)"
	}
}

// ErrDimensionMismatch indicates the Table passed to Search was not sized
// for grid.Len() cells; this is a caller bug, not a data problem.
var ErrDimensionMismatch = errors.New("octilesearch: table length does not match grid length")

// Result is the outcome of one Search call.
type Result struct {
	// Reachable is false when goal's parent chain never reaches start.
	Reachable bool
	// Distance is the unscaled shortest-path cost; zero when unreachable.
	Distance float64
	// Path is the start-to-goal cell sequence inclusive; for JPS this is
	// sparse (jump points only). Empty when unreachable. Use Interpolate
	// to expand a JPS path to every intermediate cell.
	Path []octilegrid.CellID
	// Counters tallies heap inserts, decrease-keys, and extracts.
	Counters Counters
}

// Search resets table, then runs algo from start to goal over grid,
// returning the shortest octile distance, its path, and heap activity
// counters (§4.7). start and goal must be valid cell IDs for grid; Table
// must have been sized with NewTable(grid.Len()).
func Search(grid *octilegrid.Grid, table *Table, algo Algorithm, start, goal octilegrid.CellID) (Result, error) {
	if table.Len() != grid.Len() {
		return Result{}, fmt.Errorf("%w: table has %d cells, grid has %d", ErrDimensionMismatch, table.Len(), grid.Len())
	}

	table.Reset(start)

	var comparator Comparator
	var successors SuccessorFunc
	switch algo {
	case Dijkstra:
		comparator = DijkstraComparator(table)
		successors = GridSuccessors()
	case Astar:
		comparator = AstarComparator(grid, table, goal)
		successors = GridSuccessors()
	case JPS:
		comparator = AstarComparator(grid, table, goal)
		successors = NewJPSSuccessors(start, goal)
	default:
		panic(fmt.Sprintf("octilesearch: unknown algorithm %d", algo))
	}

	heap := NewHeap(table, comparator)
	var counters Counters

	table.at(start).colour = Grey
	heap.Insert(start)
	counters.Inserts++

	for !heap.Empty() {
		u, _ := heap.ExtractMin()
		counters.Extracts++
		table.at(u).colour = Black
		if u == goal {
			break
		}
		successors(u, grid, table, heap, &counters)
	}

	if _, hasParent := table.Parent(goal); !hasParent && goal != start {
		return Result{Reachable: false, Counters: counters}, nil
	}

	path := reconstructPath(table, start, goal)

	return Result{
		Reachable: true,
		Distance:  table.Dist(goal),
		Path:      path,
		Counters:  counters,
	}, nil
}
