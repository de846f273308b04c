package crosscheck

import (
	"fmt"

	"github.com/katalvlaran/octilebench/gridgraph"
	"github.com/katalvlaran/octilebench/octilegrid"
)

// toCellValues converts an octilegrid.Grid into the [][]int shape
// gridgraph.NewGridGraph expects: 1 for a passable cell, 0 (water, below
// gridgraph's default LandThreshold) for a blocked one.
func toCellValues(g *octilegrid.Grid) [][]int {
	values := make([][]int, g.Height())
	for y := 0; y < g.Height(); y++ {
		row := make([]int, g.Width())
		for x := 0; x < g.Width(); x++ {
			if !g.Blocked(x, y) {
				row[x] = 1
			}
		}
		values[y] = row
	}

	return values
}

// componentLabel identifies one connected component returned by
// gridgraph.ConnectedComponents: the cell value its members share, plus
// that value's index among same-valued components. Since toCellValues only
// ever produces the value 1, value is always 1 here, but the index alone
// is not unique across distinct values in general.
type componentLabel struct {
	value int
	index int
}

// SameComponent reports whether a and b lie in the same 8-connected
// component of passable cells, ignoring corner-cutting. A blocked cell is
// never in the same component as anything, including itself.
//
// Complexity: O(width*height) per call, since gridgraph recomputes
// components from scratch; callers checking many pairs on the same grid
// should build one *Checker with New and reuse it instead.
func SameComponent(g *octilegrid.Grid, a, b octilegrid.CellID) (bool, error) {
	c, err := New(g)
	if err != nil {
		return false, err
	}

	return c.SameComponent(a, b)
}

// Checker caches the component partition of one octilegrid.Grid so repeated
// SameComponent queries against it don't repeat the O(width*height) BFS.
type Checker struct {
	grid       *octilegrid.Grid
	components map[octilegrid.CellID]componentLabel
}

// New builds a Checker for g, partitioning its passable cells into
// 8-connected components via gridgraph.ConnectedComponents.
func New(g *octilegrid.Grid) (*Checker, error) {
	gg, err := gridgraph.NewGridGraph(toCellValues(g), gridgraph.GridOptions{
		LandThreshold: 1,
		Conn:          gridgraph.Conn8,
	})
	if err != nil {
		return nil, fmt.Errorf("crosscheck: %w", err)
	}

	labels := make(map[octilegrid.CellID]componentLabel)
	for value, comps := range gg.ConnectedComponents() {
		for index, comp := range comps {
			for _, cell := range comp {
				labels[g.ID(cell.X, cell.Y)] = componentLabel{value: value, index: index}
			}
		}
	}

	return &Checker{grid: g, components: labels}, nil
}

// SameComponent reports whether a and b were assigned the same component
// label. A blocked cell never appears in the label map, so it never
// matches anything.
func (c *Checker) SameComponent(a, b octilegrid.CellID) (bool, error) {
	if int(a) < 0 || int(a) >= c.grid.Len() || int(b) < 0 || int(b) >= c.grid.Len() {
		return false, fmt.Errorf("crosscheck: cell id out of range")
	}
	labelA, okA := c.components[a]
	if !okA {
		return false, nil
	}
	labelB, okB := c.components[b]
	if !okB {
		return false, nil
	}

	return labelA == labelB, nil
}
