// SPDX-License-Identifier: MIT
//
// Package builder constructs immutable core graph views from user data
// and provides deterministic topology generators.
//
// Build is the single entry point from the outside world: it takes a
// list of node keys and a list of edges expressed in key pairs, assigns
// dense indices in key insertion order, and returns a *core.Graph.
// Construction is O(V + E) and fails only on malformed input:
//
//	ErrDuplicateKey — a key occurs twice in the node list.
//	ErrUnknownKey   — an edge endpoint is not in the node list.
//
// Callers branch with errors.Is; the offending key is attached to the
// returned error via %w wrapping.
//
// The *Data generators hand back (keys, edges) pairs in exactly the
// shape Build consumes — complete graphs, cycles, paths, and seeded
// random topologies. They are pure data producers: same parameters and
// seed, same output, always.
package builder
