package octilegrid

import (
	"errors"
	"math"
	"testing"
)

func allPassable(n int) []bool {
	p := make([]bool, n)
	for i := range p {
		p[i] = true
	}
	return p
}

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		passable      []bool
		want          error
	}{
		{"ZeroWidth", 0, 3, nil, ErrInvalidDimensions},
		{"NegativeHeight", 3, -1, nil, ErrInvalidDimensions},
		{"ShortSlice", 3, 3, allPassable(5), ErrPassableLength},
		{"LongSlice", 3, 3, allPassable(10), ErrPassableLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.width, tc.height, tc.passable)
			if !errors.Is(err, tc.want) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.width, tc.height, err, tc.want)
			}
		})
	}
}

func TestGrid_IDCoordRoundTrip(t *testing.T) {
	g, err := NewGrid(4, 3, allPassable(12))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			id := g.ID(x, y)
			gotX, gotY := g.Coord(id)
			if gotX != x || gotY != y {
				t.Errorf("Coord(ID(%d,%d)) = (%d,%d); want (%d,%d)", x, y, gotX, gotY, x, y)
			}
		}
	}
}

func TestGrid_InBounds(t *testing.T) {
	g, _ := NewGrid(3, 2, allPassable(6))
	valid := [][2]int{{0, 0}, {2, 1}, {1, 0}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", xy[0], xy[1])
		}
	}
}

// TestGrid_CornerCutting verifies that a diagonal step is blocked when both
// orthogonal components it would cut are blocked (§4.1).
//
// Grid (X = blocked):
//
//	. X
//	X .
func TestGrid_CornerCutting(t *testing.T) {
	passable := []bool{true, false, false, true}
	g, err := NewGrid(2, 2, passable)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	if g.Admissible(0, 0, SouthEast) {
		t.Error("Admissible(0,0,SE) = true; want false (both E and S sides blocked)")
	}
	if g.Admissible(0, 0, East) {
		t.Error("Admissible(0,0,East) = true; want false (destination blocked)")
	}
}

// TestGrid_CornerCutting_OneSideOpen verifies a diagonal is admissible when
// at least one orthogonal component step is itself admissible.
//
// Grid:
//
//	. .
//	X .
func TestGrid_CornerCutting_OneSideOpen(t *testing.T) {
	passable := []bool{true, true, false, true}
	g, err := NewGrid(2, 2, passable)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if !g.Admissible(0, 0, SouthEast) {
		t.Error("Admissible(0,0,SE) = false; want true (East side open)")
	}
}

func TestGrid_Neighbours_OpenGrid(t *testing.T) {
	g, _ := NewGrid(3, 3, allPassable(9))
	nbs := g.Neighbours(1, 1)
	if len(nbs) != 8 {
		t.Fatalf("Neighbours(1,1) count = %d; want 8 on an open 3x3 grid", len(nbs))
	}
}

func TestGrid_Neighbours_Corner(t *testing.T) {
	g, _ := NewGrid(3, 3, allPassable(9))
	nbs := g.Neighbours(0, 0)
	if len(nbs) != 3 {
		t.Fatalf("Neighbours(0,0) count = %d; want 3 (E, SE, S)", len(nbs))
	}
}

func TestEuclideanCost(t *testing.T) {
	g, _ := NewGrid(3, 3, allPassable(9))
	a, b := g.ID(0, 0), g.ID(1, 0)
	if got := EuclideanCost(g, a, b); got != 1 {
		t.Errorf("EuclideanCost(orthogonal) = %v; want 1", got)
	}
	c := g.ID(1, 1)
	if got := EuclideanCost(g, a, c); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("EuclideanCost(diagonal) = %v; want sqrt(2)", got)
	}
}

func TestScaledDistance(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{5.65685, 5.7},
		{9.65685, 9.7},
		{1.41421, 1.4},
		{0, 0},
	}
	for _, tc := range cases {
		if got := ScaledDistance(tc.in); got != tc.want {
			t.Errorf("ScaledDistance(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
