// Package octilebench is a benchmark and correctness harness for
// octile-grid pathfinding: Dijkstra, A*, and Jump Point Search over the
// Moving AI Lab's .map/.scen grid format.
//
// Organized under several subpackages:
//
//	octilegrid/   — grid geometry, admissibility, and the corner-cutting rule
//	octilesearch/ — the search engine: Dijkstra, A*, and JPS over a Grid
//	octilemap/    — .map file loader
//	scenario/     — .scen experiment-file loader
//	bench/        — runs all three algorithms per experiment and aggregates results
//	crosscheck/   — a connectivity-based sanity check on reachability verdicts
//	gridgraph/    — grid-to-component-graph conversion backing crosscheck
//	cmd/octilebench/ — the CLI entry point
//
// See cmd/octilebench for the command-line interface, and SPEC_FULL.md for
// the full specification this repository implements.
package octilebench
