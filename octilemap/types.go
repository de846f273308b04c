// Package octilemap loads octile text maps (§6.2) into the passability
// slice octilegrid.NewGrid expects.
package octilemap

import "errors"

// Sentinel errors for map loading.
var (
	// ErrUnreadable indicates the map file could not be opened.
	ErrUnreadable = errors.New("octilemap: file unreadable")
	// ErrMalformedHeader indicates one of the first four header lines did
	// not match the expected keyword.
	ErrMalformedHeader = errors.New("octilemap: malformed header")
	// ErrRowLength indicates a map row's length did not match the declared width.
	ErrRowLength = errors.New("octilemap: row length does not match declared width")
	// ErrRowCount indicates fewer data rows were present than the declared height.
	ErrRowCount = errors.New("octilemap: fewer rows than declared height")
)

// passableChars lists the characters that mark a cell as passable; every
// other character (@, O, T, or anything else) is blocked (§6.2).
const passableChars = ".G"

// Map is a loaded octile map, ready to seed an octilegrid.Grid.
type Map struct {
	Width, Height int
	// Passable is row-major, length Width*Height: Passable[y*Width+x].
	Passable []bool
}
