// Package ade is a library of algorithms over finite directed graphs,
// built around two non-recursive workhorses: Pearce's strongly connected
// components and Johnson's elementary circuits enumeration.
//
// What's inside:
//
//	core/      — immutable, adjacency-indexed graph views and sub-views
//	builder/   — construct views from (keys, edges); deterministic generators
//	toposort/  — Kahn topological sort with a configurable tie-break
//	scc/       — strongly connected components (Pearce, iterative)
//	circuits/  — all elementary circuits (Johnson, iterative)
//	multisort/ — stable multi-key sorting of arbitrary slices
//
// Why this shape:
//
//   - Deterministic – successor order is part of the view contract, so
//     every engine produces bit-identical output for identical input
//   - Deep-graph safe – recursion is replaced by explicit heap stacks;
//     hundreds of thousands of vertices will not overflow the call stack
//   - Share freely – views are immutable after construction and can be
//     read concurrently by any number of algorithm invocations
//
// Quick ASCII example:
//
//	    0──▶1
//	    ▲   │
//	    └─2◀┘
//
//	is the directed triangle, one strongly connected component and
//	one elementary circuit [0 1 2 0].
//
// Dive into the package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/riccardoscalco/ade
package ade
