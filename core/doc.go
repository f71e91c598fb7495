// SPDX-License-Identifier: MIT
//
// Package core defines the immutable, adjacency-indexed graph views that
// every algorithm in this module consumes.
//
// A Graph is built once from a list of node keys and a list of edges and
// never mutated afterwards. Each node carries a user-supplied key and a
// stable internal index in [0, n) assigned in key insertion order; the
// algorithms operate exclusively on indices, keys surface only at the
// boundary (KeyOf).
//
// Adjacency is stored in CSR form (offsets + flat targets), so
// Successors(v) is a zero-allocation sub-slice lookup and iteration is
// cache-friendly. Successor order is the first-occurrence order of edges
// in the build input and is stable across calls: many algorithms are
// sensitive to successor order for determinism of their output, so the
// ordering is part of the contract, not an implementation detail.
//
// A SubView hides a subset of nodes (and incident edges) behind a bitset
// mask without copying the underlying storage. Sub-views satisfy the same
// View contract; Successors filters the base CSR row on the fly. Deriving
// a sub-view from a sub-view intersects masks and never builds a chain of
// views, so lookups stay O(degree) regardless of derivation depth.
//
// Error policy: views cannot fail. All lookups for in-view indices
// succeed; an out-of-view index is a programmer error and panics.
//
// Concurrency: views carry no mutable state after construction and may be
// read concurrently by any number of goroutines without locks.
package core
