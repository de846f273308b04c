// Package octilesearch implements the best-first search engine shared by
// Dijkstra, A*, and Jump Point Search over an octilegrid.Grid: the node
// state table, the indexed binary min-heap with decrease-key, the two
// comparators, the two successor generators, and the generic driver that
// ties them together.
//
// These pieces are kept in one package rather than split per-concern
// because they are tightly coupled: the heap's back-reference bookkeeping
// writes directly into the same per-cell state the driver and successor
// generators read and mutate, and splitting them would mean threading a
// mutable table through three package boundaries for no real decoupling.
package octilesearch
