// Package crosscheck provides an independent, cheaper sanity check on
// octilesearch's reachability verdicts. It adapts the gridgraph package's
// connected-components analysis to answer one narrow question: could two
// cells possibly be connected at all, ignoring corner-cutting and octile
// step costs entirely?
//
// Treating the grid as 8-connected and ignoring the corner-cutting rule is a
// relaxation of octilesearch's own admissibility test, so SameComponent can
// only ever be a necessary condition for reachability, never a sufficient
// one: if SameComponent reports false, octilesearch must report unreachable,
// but SameComponent reporting true does not guarantee a path exists once
// corner-cutting is taken into account. The package's tests use this as a
// regression check against the search engine silently reporting the wrong
// verdict.
package crosscheck
