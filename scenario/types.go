// Package scenario loads octile benchmark scenario files: ordered lists of
// (start, goal, optimal cost, map name) experiments used to cross-check the
// octilesearch engine's output (§6.1, §8).
package scenario

import "errors"

// Sentinel errors for scenario loading.
var (
	// ErrUnreadable indicates the scenario file could not be opened.
	ErrUnreadable = errors.New("scenario: file unreadable")
	// ErrMalformed indicates a record did not parse under either known version.
	ErrMalformed = errors.New("scenario: malformed record")
)

// Experiment is one (start, goal, optimal cost, map) record from a scenario
// file.
type Experiment struct {
	// Bucket is an informational grouping number; not consulted by the engine.
	Bucket int
	// Map is the map path as written in the scenario file, relative to it.
	Map string
	// ScaleWidth and ScaleHeight are the version-1.0 scale columns, or -1 if
	// the scenario is version 0.0 and carries no scale columns. Informational
	// only (§9 open question): the authoritative width/height always comes
	// from loading Map itself.
	ScaleWidth, ScaleHeight int
	StartX, StartY          int
	GoalX, GoalY            int
	// OptimalCost is the reference shortest-path length used for the
	// optimality cross-check in §8.
	OptimalCost float64
}
