// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/octilebench/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous "islands" of non-zero cells in a 2D grid.
// Scenario:
//
//   - Grid values: 0 = water, 1,2,3 = different land/resource IDs
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three islands, one per distinct land value.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, _ := gridgraph.NewGridGraph(grid, opts)

	comps := gg.ConnectedComponents()
	values := make([]int, 0, len(comps))
	for v := range comps {
		values = append(values, v)
	}
	sort.Ints(values)

	total := 0
	for _, v := range values {
		total += len(comps[v])
	}
	fmt.Println("components:", total)
	for _, v := range values {
		for _, comp := range comps[v] {
			fmt.Printf("value %d:", v)
			for _, c := range comp {
				fmt.Printf(" (%d,%d)", c.X, c.Y)
			}
			fmt.Println()
		}
	}

	// Output:
	// components: 3
	// value 1: (1,0) (2,0) (1,1) (0,1)
	// value 2: (4,0) (4,1) (3,1) (3,2) (2,2)
	// value 3: (0,2)
}
