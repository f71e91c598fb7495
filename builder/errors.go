// SPDX-License-Identifier: MIT
// Package: ade/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition
//     site; call sites attach context (the offending key) via %w.

package builder

import "errors"

// ErrDuplicateKey indicates that the node key list handed to Build
// contains the same key twice. Every node key must be unique.
// Usage: if errors.Is(err, ErrDuplicateKey) { /* reject input */ }.
var ErrDuplicateKey = errors.New("builder: duplicate node key")

// ErrUnknownKey indicates that an edge references a key absent from the
// node key list.
// Usage: if errors.Is(err, ErrUnknownKey) { /* reject input */ }.
var ErrUnknownKey = errors.New("builder: unknown node key")

// ErrTooFewVertices indicates that the vertex count n is smaller than
// the minimum the requested edges need.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* fix n */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadEdgeCount indicates that a requested edge count cannot be
// satisfied for the given vertex count (m < n-1 for a connected graph,
// or m above the n·(n-1) simple-digraph maximum).
// Usage: if errors.Is(err, ErrBadEdgeCount) { /* fix m */ }.
var ErrBadEdgeCount = errors.New("builder: edge count out of range")
