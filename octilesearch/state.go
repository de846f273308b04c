package octilesearch

import (
	"math"

	"github.com/katalvlaran/octilebench/octilegrid"
)

// Colour is a cell's search status within the lifetime of a single query.
type Colour int

const (
	// White marks a cell never seen by the current query.
	White Colour = iota
	// Grey marks a cell currently sitting in the heap.
	Grey
	// Black marks a cell whose shortest distance is finalized.
	Black
)

func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Grey:
		return "grey"
	case Black:
		return "black"
	default:
		return "colour(invalid)"
	}
}

// NoParent is the sentinel Parent value for a cell with no predecessor yet.
const NoParent = octilegrid.CellID(-1)

// nodeState is the per-cell mutable search state reset between queries.
type nodeState struct {
	dist      float64
	parent    octilegrid.CellID
	colour    Colour
	heapIndex int
	from      octilegrid.Direction
}

// Table is the node state table: one nodeState per cell of a Grid, reused
// across every query run against that grid. A Table is only ever owned by
// one query at a time (see §5); Reset prepares it for the next one.
type Table struct {
	states []nodeState
}

// NewTable allocates a Table sized for n cells (typically grid.Len()).
func NewTable(n int) *Table {
	return &Table{states: make([]nodeState, n)}
}

// Len returns the number of cells this table tracks.
func (t *Table) Len() int { return len(t.states) }

// Reset prepares the table for a fresh query: every cell goes to
// dist=+Inf, parent=NoParent, colour=White, heapIndex=-1, then start is
// set to dist=0. Complexity: O(len(t.states)).
func (t *Table) Reset(start octilegrid.CellID) {
	for i := range t.states {
		t.states[i] = nodeState{dist: math.Inf(1), parent: NoParent, colour: White, heapIndex: -1}
	}
	t.states[start].dist = 0
}

// at returns the mutable state for id. Internal only: callers outside the
// package use the accessors below, which return copies of the relevant field.
func (t *Table) at(id octilegrid.CellID) *nodeState {
	return &t.states[id]
}

// Dist returns the current tentative distance of id from the query's start.
func (t *Table) Dist(id octilegrid.CellID) float64 {
	return t.states[id].dist
}

// Parent returns id's predecessor and whether one is set.
func (t *Table) Parent(id octilegrid.CellID) (octilegrid.CellID, bool) {
	p := t.states[id].parent
	return p, p != NoParent
}

// ColourOf returns id's current search colour.
func (t *Table) ColourOf(id octilegrid.CellID) Colour {
	return t.states[id].colour
}

// HeapIndexOf returns id's current position in whichever heap last touched
// it; only meaningful while id is Grey.
func (t *Table) HeapIndexOf(id octilegrid.CellID) int {
	return t.states[id].heapIndex
}

// ArrivalDirection returns the direction JPS last arrived at id from; only
// meaningful during a JPS search.
func (t *Table) ArrivalDirection(id octilegrid.CellID) octilegrid.Direction {
	return t.states[id].from
}
