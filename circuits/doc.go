// SPDX-License-Identifier: MIT
//
// Package circuits enumerates all elementary circuits of a directed
// view using Johnson's algorithm ("Finding all the elementary circuits
// of a directed graph", SIAM J. Comput. 4(1), 1975).
//
// An elementary circuit is a closed path whose vertex sequence repeats
// no vertex except the shared first/last one. Each circuit is emitted
// as an index sequence closed by repeating its starting vertex, e.g.
// [1 2 1]; a self-loop yields [v v]. Every circuit appears exactly once,
// in its canonical rotation: the one starting at the circuit's least
// vertex. Self-loops on vertices inside larger components are emitted as
// their own length-1 circuits in addition to the longer circuits through
// the same vertex.
//
// The engine composes the scc package: a root candidate s walks upward
// through the vertex range; at each step the sub-view induced by
// {v : v ≥ s} is decomposed into strongly connected components, the
// non-trivial component with the least minimum vertex is selected, and
// Johnson's CIRCUIT procedure runs rooted at that minimum, confined to
// that component. The blocked set and B-lists implement the un-blocking
// rule that keeps the search output-sensitive.
//
// Like the scc engine, the search is non-recursive: the CIRCUIT
// recursion and the UNBLOCK recursion both run on explicit
// heap-allocated stacks, so deep graphs cannot overflow the native call
// stack. Emission order is deterministic given the view's successor
// order.
//
// Complexity: O((V + E)·(C + 1)) where C is the number of elementary
// circuits, matching Johnson's bound.
package circuits
