// SPDX-License-Identifier: MIT
//
// Package toposort produces linear orderings of directed acyclic views.
//
// Sort returns a sequence of node indices such that for every edge
// (u, v), u precedes v. When several orderings are valid, ties are
// broken by ascending node index; SortBy accepts a rank function and
// breaks ties by ascending rank first, index second. For the same view
// and rank the output is bit-identical across runs.
//
// The implementation is Kahn's algorithm: in-degrees are counted, a
// min-heap holds the ready (zero in-degree) vertices, and extraction
// repeatedly appends the least ready vertex while decrementing its
// successors. If fewer than NodeCount vertices are emitted the view
// contains a directed cycle and ErrCycleDetected is returned; the
// partial ordering is discarded.
//
// Complexity:
//
//   - Time:   O((V + E) log V) (each vertex passes through the heap once)
//   - Memory: O(V)
//
// Both full graphs and sub-views are accepted.
package toposort
