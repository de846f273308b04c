package octilegrid_test

import (
	"fmt"

	"github.com/katalvlaran/octilebench/octilegrid"
)

// ExampleGrid_Neighbours builds a 3x3 grid with one blocked cell and lists
// the admissible steps out of a corner.
func ExampleGrid_Neighbours() {
	// 1) Passability, row-major: center cell (1,1) is blocked.
	passable := []bool{
		true, true, true,
		true, false, true,
		true, true, true,
	}
	g, err := octilegrid.NewGrid(3, 3, passable)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) From the top-left corner, only East and South reach in-bounds,
	//    passable cells; SouthEast is blocked because the center cell is.
	nbs := g.Neighbours(0, 0)
	fmt.Println("neighbour count:", len(nbs))
	// Output: neighbour count: 2
}
