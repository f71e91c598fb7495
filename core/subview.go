// SPDX-License-Identifier: MIT
// Package: ade/core
//
// subview.go — bitset-masked sub-views over a base Graph.
//
// Contract:
//   • A hidden node never appears in Nodes() nor in any Successors(·).
//   • Filtering a SubView intersects masks against the same base Graph;
//     derivation depth never grows beyond one level.
//   • Construction is O(Span + len(nodes)); lookups stay O(degree).

package core

import (
	"cmp"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// SubView presents the sub-graph of a base Graph induced by a subset of
// its nodes. It satisfies View; hidden nodes and their incident edges are
// invisible through every accessor.
type SubView[K cmp.Ordered] struct {
	base    *Graph[K]
	visible *bitset.BitSet // bit v set ⇔ index v is exposed
	nodes   []int          // ascending visible indices, precomputed
}

// newSubView masks base down to the given nodes. When within is non-nil
// (deriving from an existing sub-view) only nodes already visible there
// survive, so invariants compose under repeated filtering.
func newSubView[K cmp.Ordered](base *Graph[K], nodes []int, within *bitset.BitSet) *SubView[K] {
	visible := bitset.New(uint(base.Span()))
	for _, v := range nodes {
		if !base.HasNode(v) {
			continue
		}
		if within != nil && !within.Test(uint(v)) {
			continue
		}
		visible.Set(uint(v))
	}

	s := &SubView[K]{
		base:    base,
		visible: visible,
		nodes:   make([]int, 0, visible.Count()),
	}
	// Walk set bits in ascending order once; Nodes() then shares the slice.
	for v, ok := visible.NextSet(0); ok; v, ok = visible.NextSet(v + 1) {
		s.nodes = append(s.nodes, int(v))
	}

	return s
}

// NodeCount reports the number of visible nodes.
func (s *SubView[K]) NodeCount() int { return len(s.nodes) }

// Nodes returns the visible node indices in ascending order. The slice
// is shared; callers must not mutate it.
func (s *SubView[K]) Nodes() []int { return s.nodes }

// HasNode reports whether v is visible in this sub-view.
func (s *SubView[K]) HasNode(v int) bool {
	return v >= 0 && v < s.base.Span() && s.visible.Test(uint(v))
}

// Successors returns the visible successors of v, filtering the base CSR
// row on the fly. The result is freshly allocated per call; engines that
// iterate a frame repeatedly capture it once per frame. Panics if v is
// hidden or out of range.
func (s *SubView[K]) Successors(v int) []int {
	s.check(v)
	row := s.base.Successors(v)
	out := make([]int, 0, len(row))
	for _, w := range row {
		if s.visible.Test(uint(w)) {
			out = append(out, w)
		}
	}

	return out
}

// Span reports the index bound of the base Graph, so flat scratch arrays
// indexed by node id remain valid on sub-views.
func (s *SubView[K]) Span() int { return s.base.Span() }

// KeyOf returns the user key of visible index v. Panics if v is hidden.
func (s *SubView[K]) KeyOf(v int) K {
	s.check(v)
	return s.base.KeyOf(v)
}

// Filter derives a further-restricted sub-view over the same base,
// exposing exactly the visible nodes of s that appear in nodes.
func (s *SubView[K]) Filter(nodes []int) View {
	return newSubView(s.base, nodes, s.visible)
}

func (s *SubView[K]) check(v int) {
	if !s.HasNode(v) {
		panic(fmt.Sprintf("core: node %d not in sub-view", v))
	}
}
