// SPDX-License-Identifier: MIT
// Package: ade/toposort
//
// types.go — sentinel errors and the ready-vertex heap.

package toposort

import (
	"cmp"
	"errors"
)

// ErrCycleDetected indicates that the view contains at least one
// directed cycle, so no topological ordering exists.
// Usage: if errors.Is(err, ErrCycleDetected) { /* handle cycle */ }.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// readyItem pairs a ready vertex with its precomputed rank.
type readyItem[K cmp.Ordered] struct {
	v    int // node index
	rank K   // tie-break rank; equal ranks fall back to index order
}

// readyHeap is a min-heap of ready vertices ordered by (rank, index).
// It implements container/heap.Interface; determinism of Sort rests on
// this ordering being total.
type readyHeap[K cmp.Ordered] struct {
	items []readyItem[K]
}

func (h *readyHeap[K]) Len() int { return len(h.items) }

func (h *readyHeap[K]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.rank != b.rank {
		return a.rank < b.rank
	}

	return a.v < b.v
}

func (h *readyHeap[K]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *readyHeap[K]) Push(x any) {
	h.items = append(h.items, x.(readyItem[K]))
}

func (h *readyHeap[K]) Pop() any {
	last := len(h.items) - 1
	it := h.items[last]
	h.items = h.items[:last]

	return it
}
