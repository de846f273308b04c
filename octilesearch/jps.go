package octilesearch

import "github.com/katalvlaran/octilebench/octilegrid"

// forcedCheck pairs the orthogonal side that must be blocked with the
// diagonal neighbour forced into existence by that block, for one arrival
// direction. Table from §4.6, encoded once per arrival direction below.
type forcedCheck struct {
	side octilegrid.Direction
	emit octilegrid.Direction
}

var forcedTable = map[octilegrid.Direction][]forcedCheck{
	octilegrid.East: {
		{side: octilegrid.North, emit: octilegrid.NorthEast},
		{side: octilegrid.South, emit: octilegrid.SouthEast},
	},
	octilegrid.West: {
		{side: octilegrid.North, emit: octilegrid.NorthWest},
		{side: octilegrid.South, emit: octilegrid.SouthWest},
	},
	octilegrid.North: {
		{side: octilegrid.East, emit: octilegrid.NorthEast},
		{side: octilegrid.West, emit: octilegrid.NorthWest},
	},
	octilegrid.South: {
		{side: octilegrid.East, emit: octilegrid.SouthEast},
		{side: octilegrid.West, emit: octilegrid.SouthWest},
	},
	octilegrid.NorthEast: {
		{side: octilegrid.West, emit: octilegrid.NorthWest},
		{side: octilegrid.South, emit: octilegrid.SouthEast},
	},
	octilegrid.SouthEast: {
		{side: octilegrid.West, emit: octilegrid.SouthWest},
		{side: octilegrid.North, emit: octilegrid.NorthEast},
	},
	octilegrid.SouthWest: {
		{side: octilegrid.East, emit: octilegrid.SouthEast},
		{side: octilegrid.North, emit: octilegrid.NorthWest},
	},
	octilegrid.NorthWest: {
		{side: octilegrid.East, emit: octilegrid.NorthEast},
		{side: octilegrid.South, emit: octilegrid.SouthWest},
	},
}

// forcedNeighbours returns the forced neighbour directions of the cell at
// id, given it was reached while travelling in direction arrival (§4.6).
func forcedNeighbours(grid *octilegrid.Grid, id octilegrid.CellID, arrival octilegrid.Direction) []octilegrid.Direction {
	x, y := grid.Coord(id)
	var out []octilegrid.Direction
	for _, fc := range forcedTable[arrival] {
		if !grid.Admissible(x, y, fc.side) {
			out = append(out, fc.emit)
		}
	}
	return out
}

// hasForcedNeighbour reports whether id (reached via arrival) has any
// forced neighbour, one of the three conditions that makes id a jump point.
func hasForcedNeighbour(grid *octilegrid.Grid, id octilegrid.CellID, arrival octilegrid.Direction) bool {
	return len(forcedNeighbours(grid, id, arrival)) > 0
}

// naturalNeighbours returns the natural neighbour directions of a cell
// reached while travelling in direction arrival (§4.6). For a diagonal
// arrival the two orthogonal components are listed before the diagonal
// itself; this ordering is load-bearing for tie-break reproducibility.
func naturalNeighbours(arrival octilegrid.Direction) []octilegrid.Direction {
	if !arrival.Diagonal() {
		return []octilegrid.Direction{arrival}
	}
	h, v := arrival.Components()
	return []octilegrid.Direction{h, v, arrival}
}

// jump performs the recursive jump-point search of §4.6 starting one step
// past from in direction d, stopping at goal, at a forced-neighbour cell,
// or (for diagonals) at a cell from which an orthogonal jump finds one.
// The straight, non-diagonal continuation is iterative; only the two
// diagonal component probes recurse.
func jump(grid *octilegrid.Grid, from octilegrid.CellID, d octilegrid.Direction, goal octilegrid.CellID) (octilegrid.CellID, bool) {
	for {
		n, ok := grid.StepID(from, d)
		if !ok {
			return 0, false
		}
		if n == goal {
			return n, true
		}
		if hasForcedNeighbour(grid, n, d) {
			return n, true
		}
		if d.Diagonal() {
			h, v := d.Components()
			if _, ok := jump(grid, n, h, goal); ok {
				return n, true
			}
			if _, ok := jump(grid, n, v, goal); ok {
				return n, true
			}
		}
		from = n
	}
}

// NewJPSSuccessors builds the JPS successor generator for one (start, goal)
// query (§4.6). The closure captures start/goal because jump's termination
// test needs goal and successor direction selection needs to recognise u as
// the query's start.
func NewJPSSuccessors(start, goal octilegrid.CellID) SuccessorFunc {
	return func(u octilegrid.CellID, grid *octilegrid.Grid, table *Table, heap *Heap, counters *Counters) {
		for _, d := range jpsDirections(grid, table, u, u == start) {
			v, ok := jump(grid, u, d, goal)
			if !ok {
				continue
			}
			dist := table.Dist(u) + octilegrid.EuclideanCost(grid, u, v)
			relax(v, u, dist, d, table, heap, counters)
		}
	}
}

// jpsDirections returns the directions JPS should attempt to jump in from
// u: every direction when u is the query's start, otherwise the natural and
// forced neighbours of u given its arrival direction (§4.6).
func jpsDirections(grid *octilegrid.Grid, table *Table, u octilegrid.CellID, isStart bool) []octilegrid.Direction {
	if isStart {
		all := octilegrid.AllDirections()
		return all[:]
	}
	arrival := table.ArrivalDirection(u)
	dirs := naturalNeighbours(arrival)
	dirs = append(dirs, forcedNeighbours(grid, u, arrival)...)
	return dirs
}
