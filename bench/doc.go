// Package bench is the statistics and benchmark harness described in
// §4.10: it runs Dijkstra, A*, and JPS over one scenario experiment,
// collects heap activity counters and elapsed time per algorithm, and
// cross-checks the computed distance against the experiment's reference
// optimal cost. It is a pure consumer of octilesearch's public API and
// never reaches into the engine's internals.
package bench
