package octilesearch

import "github.com/katalvlaran/octilebench/octilegrid"

// reconstructPath walks table's parent chain from goal back to start and
// returns the cells in start-to-goal order, inclusive of both endpoints.
func reconstructPath(table *Table, start, goal octilegrid.CellID) []octilegrid.CellID {
	rev := []octilegrid.CellID{goal}
	cur := goal
	for cur != start {
		parent, _ := table.Parent(cur)
		cur = parent
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Interpolate expands a (possibly sparse) path into every intermediate
// cell, walking each hop's straight-line segment in its constant direction.
// A Dijkstra/A* path is already dense, so Interpolate is a no-op for those;
// it exists for JPS consumers that need a cell-by-cell path (§9 design
// notes: interpolation is never implicit inside the search).
func Interpolate(grid *octilegrid.Grid, path []octilegrid.CellID) []octilegrid.CellID {
	if len(path) == 0 {
		return nil
	}

	out := []octilegrid.CellID{path[0]}
	for i := 1; i < len(path); i++ {
		px, py := grid.Coord(path[i-1])
		nx, ny := grid.Coord(path[i])
		dx, dy := sign(nx-px), sign(ny-py)
		cx, cy := px, py
		for cx != nx || cy != ny {
			cx += dx
			cy += dy
			out = append(out, grid.ID(cx, cy))
		}
	}

	return out
}
