// SPDX-License-Identifier: MIT
// Package: ade/toposort
//
// toposort.go — Kahn's algorithm with a heap-backed tie-break.

package toposort

import (
	"cmp"
	"container/heap"

	"github.com/riccardoscalco/ade/core"
)

// Sort returns a topological ordering of g with ties broken by
// ascending node index. See SortBy for the general contract.
func Sort(g core.View) ([]int, error) {
	return SortBy(g, func(v int) int { return v })
}

// SortBy returns a topological ordering of g: for every visible edge
// (u, v), u precedes v in the result. Among simultaneously ready
// vertices the one with the least rank(v) is emitted first; equal ranks
// fall back to ascending index, so the ordering is total and the output
// is bit-identical for the same (g, rank).
//
// rank is evaluated once per vertex. A nil rank is a programmer error
// and panics.
//
// Errors:
//   - ErrCycleDetected when g contains a directed cycle; the partial
//     ordering is discarded.
//
// Complexity: O((V + E) log V) time, O(V) space.
func SortBy[K cmp.Ordered](g core.View, rank func(v int) K) ([]int, error) {
	if rank == nil {
		panic("toposort: SortBy(nil rank)")
	}

	nodes := g.Nodes()

	// 1. Count in-degrees over the visible edge set. The table is sized
	//    by Span so sub-view indices land in range.
	indeg := make([]int, g.Span())
	for _, u := range nodes {
		for _, w := range g.Successors(u) {
			indeg[w]++
		}
	}

	// 2. Seed the ready heap with every zero-in-degree vertex.
	h := &readyHeap[K]{items: make([]readyItem[K], 0, len(nodes))}
	for _, v := range nodes {
		if indeg[v] == 0 {
			h.items = append(h.items, readyItem[K]{v: v, rank: rank(v)})
		}
	}
	heap.Init(h)

	// 3. Extract the least ready vertex, emit it, and release its
	//    successors as their in-degrees reach zero.
	order := make([]int, 0, len(nodes))
	for h.Len() > 0 {
		v := heap.Pop(h).(readyItem[K]).v
		order = append(order, v)
		for _, w := range g.Successors(v) {
			indeg[w]--
			if indeg[w] == 0 {
				heap.Push(h, readyItem[K]{v: w, rank: rank(w)})
			}
		}
	}

	// 4. A deficit means some vertices never became ready: a cycle.
	if len(order) < len(nodes) {
		return nil, ErrCycleDetected
	}

	return order, nil
}
