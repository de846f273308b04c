// Package gridgraph treats a 2D grid of cells as a graph, enabling
// connected-component analysis over it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//
// Why:
//
//   - octilebench's crosscheck package treats passable octile-grid cells as
//     "land" (value 1) and blocked cells as "water" (value 0) under Conn8, so
//     ConnectedComponents gives a cheap necessary condition for reachability:
//     if two cells land in different components here, octilesearch.Search
//     must report them unreachable.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
