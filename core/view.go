// SPDX-License-Identifier: MIT
// Package: ade/core
//
// view.go — the View capability set shared by Graph and SubView.

package core

// View is the read-only capability set required by the traversal engines:
// node enumeration, successor lookup, and node-set filtering. Both *Graph
// and *SubView satisfy it.
//
// Implementations must guarantee:
//
//   - Nodes() ascends and is stable across calls.
//   - Successors(v) order is stable across calls.
//   - Filter never exposes a node hidden by the receiver.
//
// Callers must treat every returned slice as read-only.
type View interface {
	// NodeCount reports the number of visible nodes.
	// Complexity: O(1).
	NodeCount() int

	// Nodes returns the visible node indices in ascending order, which
	// for a freshly built graph coincides with key insertion order.
	// Complexity: O(1); the slice is shared, not copied.
	Nodes() []int

	// HasNode reports whether index v is visible in this view.
	// Complexity: O(1).
	HasNode(v int) bool

	// Successors returns the indices w with a visible edge v→w, in the
	// stable successor order of the underlying graph.
	// Panics if v is not visible in this view.
	// Complexity: O(1) for a Graph, O(degree(v)) for a SubView.
	Successors(v int) []int

	// Span reports the exclusive upper bound of node indices in the
	// underlying storage. Visible indices always lie in [0, Span());
	// engines size flat per-node scratch arrays by Span, which keeps
	// array indexing valid even on sub-views with sparse node sets.
	// Complexity: O(1).
	Span() int

	// Filter derives the sub-view that exposes exactly the visible
	// nodes of the receiver that appear in nodes. Indices outside the
	// receiver are ignored, never exposed.
	// Complexity: O(Span/64 + len(nodes)).
	Filter(nodes []int) View
}
