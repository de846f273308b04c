package octilesearch

import "github.com/katalvlaran/octilebench/octilegrid"

// DijkstraComparator orders cells by tentative distance alone: less(a, b) =
// a.dist < b.dist.
func DijkstraComparator(table *Table) Comparator {
	return func(a, b octilegrid.CellID) bool {
		return table.Dist(a) < table.Dist(b)
	}
}

// AstarComparator orders cells by f = g + h, where h is the octile
// Euclidean distance to goal, tie-breaking in favor of the smaller h (the
// cell closer to goal). Ties are compared with exact float equality, per
// §4.4: this is deliberate, it is what makes expansion counts reproducible
// against the reference implementation.
func AstarComparator(grid *octilegrid.Grid, table *Table, goal octilegrid.CellID) Comparator {
	return func(a, b octilegrid.CellID) bool {
		ha := octilegrid.EuclideanCost(grid, a, goal)
		hb := octilegrid.EuclideanCost(grid, b, goal)
		fa := table.Dist(a) + ha
		fb := table.Dist(b) + hb
		if fa != fb {
			return fa < fb
		}
		return ha < hb
	}
}
