// SPDX-License-Identifier: MIT
// Package: ade/core
//
// graph.go — the immutable CSR-backed Graph.
//
// Contract:
//   • Indices are dense in [0, n) and follow key insertion order.
//   • Successor order is the first-occurrence order of edges in the
//     build input; parallel edges are coalesced, self-loops are kept.
//   • All methods are pure reads; a Graph never changes after NewGraph.

package core

import (
	"cmp"
	"fmt"
)

// Graph is an immutable directed graph over nodes identified by a
// totally-orderable key type K. Adjacency is CSR: the successors of node
// v occupy targets[offsets[v]:offsets[v+1]].
type Graph[K cmp.Ordered] struct {
	keys    []K   // keys[v] is the user key of index v
	offsets []int // len n+1, CSR row boundaries
	targets []int // flat successor indices
	nodes   []int // cached [0, 1, …, n-1] returned by Nodes
}

// NewGraph builds a Graph from one key per node and edges given as index
// pairs (u, v). It trusts its input: callers resolve keys to indices and
// reject duplicates beforehand (see builder.Build). An edge endpoint
// outside [0, len(keys)) is a programmer error and panics.
//
// Parallel edges are coalesced to their first occurrence; self-loops are
// kept. Complexity: O(V + E) time and space.
func NewGraph[K cmp.Ordered](keys []K, edges [][2]int) *Graph[K] {
	n := len(keys)

	// 1. Bucket edge targets per source, validating index ranges.
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			panic(fmt.Sprintf("core: edge (%d,%d) out of range [0,%d)", u, v, n))
		}
		adj[u] = append(adj[u], v)
	}

	// 2. Coalesce parallel edges in place, preserving first-occurrence
	//    order. mark[w] == u+1 records that w was already kept for u.
	mark := make([]int, n)
	total := 0
	for u, row := range adj {
		kept := row[:0]
		for _, w := range row {
			if mark[w] != u+1 {
				mark[w] = u + 1
				kept = append(kept, w)
			}
		}
		adj[u] = kept
		total += len(kept)
	}

	// 3. Flatten into CSR.
	g := &Graph[K]{
		keys:    append([]K(nil), keys...),
		offsets: make([]int, n+1),
		targets: make([]int, 0, total),
		nodes:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		g.nodes[v] = v
		g.offsets[v+1] = g.offsets[v] + len(adj[v])
		g.targets = append(g.targets, adj[v]...)
	}

	return g
}

// NodeCount reports the number of nodes.
func (g *Graph[K]) NodeCount() int { return len(g.keys) }

// Nodes returns all node indices in insertion (== ascending) order.
// The slice is shared; callers must not mutate it.
func (g *Graph[K]) Nodes() []int { return g.nodes }

// HasNode reports whether v is a node index of g.
func (g *Graph[K]) HasNode(v int) bool { return v >= 0 && v < len(g.keys) }

// Successors returns the successor indices of v in stable order as a
// sub-slice of the CSR storage (zero allocations). Panics if v is out of
// range. Callers must not mutate the result.
func (g *Graph[K]) Successors(v int) []int {
	g.check(v)
	return g.targets[g.offsets[v]:g.offsets[v+1]]
}

// Span reports the exclusive upper bound of node indices; for a Graph it
// equals NodeCount.
func (g *Graph[K]) Span() int { return len(g.keys) }

// KeyOf returns the user key of index v. Panics if v is out of range.
func (g *Graph[K]) KeyOf(v int) K {
	g.check(v)
	return g.keys[v]
}

// EdgeCount reports the number of distinct edges after coalescing.
func (g *Graph[K]) EdgeCount() int { return len(g.targets) }

// HasEdge reports whether the edge u→v exists. Panics if u is out of
// range. Complexity: O(degree(u)).
func (g *Graph[K]) HasEdge(u, v int) bool {
	for _, w := range g.Successors(u) {
		if w == v {
			return true
		}
	}

	return false
}

// Filter derives the sub-view exposing exactly the nodes of g that
// appear in nodes; out-of-range indices are ignored.
func (g *Graph[K]) Filter(nodes []int) View {
	return newSubView(g, nodes, nil)
}

// check panics on an out-of-range index: the caller violated a view
// invariant, a programmer error rather than a recoverable condition.
func (g *Graph[K]) check(v int) {
	if v < 0 || v >= len(g.keys) {
		panic(fmt.Sprintf("core: node %d out of range [0,%d)", v, len(g.keys)))
	}
}
