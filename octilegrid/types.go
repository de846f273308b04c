// Package octilegrid defines the immutable rectangular passability grid and
// the eight-direction octile step rules shared by every search strategy in
// octilesearch. A Grid never changes once built: search state lives in the
// sibling octilesearch package, indexed by the same CellID space this
// package defines.
package octilegrid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("octilegrid: width and height must be positive")
	// ErrPassableLength indicates the passability slice does not have width*height entries.
	ErrPassableLength = errors.New("octilegrid: passable slice length must equal width*height")
)

// CellID identifies a cell by its row-major index y*width + x.
type CellID int

// Grid is a rectangular passability map addressed by CellID = y*width + x.
// It is immutable after construction; the same Grid may be reused across
// any number of sequential searches.
type Grid struct {
	width, height int
	passable      []bool
}
