// Package graph implements the traversal engine the GN solver and the
// Monte-Carlo simulator plan moves over: a thread-safe site adjacency, a
// single generalized best-first search with caller-supplied per-edge costs
// and a per-node step callback, and the derived operations built on it —
// shortest path, longest journey, and Girvan-Newman edge betweenness.
//
// The adjacency itself is immutable once built (FromMap and FromIter are
// the only constructors); all mutable traversal state — priority queue, finalized
// set, path arena — lives in a caller-provided Cache that GenericBFS
// clears on entry, so repeated calls across a game don't reallocate.
package graph
