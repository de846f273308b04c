package crosscheck_test

import (
	"testing"

	"github.com/katalvlaran/octilebench/crosscheck"
	"github.com/katalvlaran/octilebench/octilegrid"
	"github.com/katalvlaran/octilebench/octilesearch"
)

// gridFromRows builds a Grid from ASCII rows, '.' passable and '#' blocked,
// mirroring the layout style used throughout octilesearch's own tests.
func gridFromRows(t *testing.T, rows []string) *octilegrid.Grid {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	passable := make([]bool, width*height)
	for y, row := range rows {
		if len(row) != width {
			t.Fatalf("row %d has length %d; want %d", y, len(row), width)
		}
		for x, r := range row {
			passable[y*width+x] = r == '.'
		}
	}
	g, err := octilegrid.NewGrid(width, height, passable)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	return g
}

func TestSameComponent_OpenGrid(t *testing.T) {
	g := gridFromRows(t, []string{"...", "...", "..."})
	same, err := crosscheck.SameComponent(g, g.ID(0, 0), g.ID(2, 2))
	if err != nil {
		t.Fatalf("SameComponent: %v", err)
	}
	if !same {
		t.Errorf("SameComponent = false; want true on a fully open grid")
	}
}

func TestSameComponent_SplitBySolidWall(t *testing.T) {
	g := gridFromRows(t, []string{"..#..", "..#..", "..#..", "..#.."})
	same, err := crosscheck.SameComponent(g, g.ID(0, 0), g.ID(4, 0))
	if err != nil {
		t.Fatalf("SameComponent: %v", err)
	}
	if same {
		t.Errorf("SameComponent = true; want false, the wall leaves no 8-connected route")
	}
}

func TestSameComponent_BlockedCellMatchesNothing(t *testing.T) {
	g := gridFromRows(t, []string{".#", ".."})
	same, err := crosscheck.SameComponent(g, g.ID(1, 0), g.ID(1, 0))
	if err != nil {
		t.Fatalf("SameComponent: %v", err)
	}
	if same {
		t.Errorf("SameComponent = true; want false, a blocked cell is never in a component")
	}
}

// TestSameComponent_NecessaryCondition exercises the property documented in
// the package comment: wherever octilesearch.Search reports a cell pair
// reachable, SameComponent must report true. The converse need not hold,
// since SameComponent ignores corner-cutting.
func TestSameComponent_NecessaryCondition(t *testing.T) {
	layouts := [][]string{
		{"...", "...", "..."},
		{"..#..", "..#..", "..#..", "..#.."},
		{".#.", "#.#", ".#."},
		{".#.", "#..", "..."},
	}

	for _, rows := range layouts {
		g := gridFromRows(t, rows)
		checker, err := crosscheck.New(g)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		table := octilesearch.NewTable(g.Len())
		start := g.ID(0, 0)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.Blocked(x, y) || g.Blocked(0, 0) {
					continue
				}
				goal := g.ID(x, y)
				res, err := octilesearch.Search(g, table, octilesearch.Dijkstra, start, goal)
				if err != nil {
					t.Fatalf("Search: %v", err)
				}
				same, err := checker.SameComponent(start, goal)
				if err != nil {
					t.Fatalf("SameComponent: %v", err)
				}
				if res.Reachable && !same {
					t.Errorf("layout %v: Search reports reachable %v->%v but SameComponent disagrees", rows, start, goal)
				}
			}
		}
	}
}
