// SPDX-License-Identifier: MIT
//
// Package scc partitions a directed view into its strongly connected
// components using D.J. Pearce's memory-efficient algorithm
// (Information Processing Letters 116 (2016) 47–52).
//
// The implementation is the iterative variant: the classical recursion
// is replaced by three explicit heap-allocated stacks — the call stack
// of in-progress vertices, the component stack of vertices awaiting a
// label, and the per-frame successor cursor — so component discovery on
// a path graph of hundreds of thousands of vertices cannot overflow the
// native call stack. All other per-vertex state lives in flat arrays
// indexed by node id, the fastest layout for cache reuse.
//
// Components returns the partition with each component's members in
// ascending index order. The outer slice is ordered by reverse
// topological order of the condensation: sink components first, source
// components last. That ordering falls out of Pearce's descending
// component counter; clients that only need membership should not
// depend on it.
//
// The engine is total: it cannot fail on any well-formed view, full
// graph or sub-view alike.
//
// Complexity:
//
//   - Time:   O(V + E) (every vertex and edge is touched a constant
//     number of times)
//   - Memory: O(V) beyond the view
package scc
