// Command octilebench runs Dijkstra, A*, and JPS against scenario files and
// reports per-experiment counters, distances, and optimality cross-checks.
package main

func main() {
	Execute()
}
