// SPDX-License-Identifier: MIT
// Package: ade/scc
//
// scc.go — Pearce's iterative strongly connected components.
//
// Accounting invariants (Pearce 2016):
//   • rindex[v] == 0 marks v unvisited; preorder timestamps start at 1.
//   • root[v] survives as true only while v is the candidate root of its
//     component; any back reference to an earlier preorder clears it.
//   • index is decremented once per labelled vertex, so timestamps and
//     component labels never collide inside rindex.
//   • c descends from NodeCount-1: the first completed component (a sink
//     of the condensation) takes the highest label.

package scc

import "github.com/riccardoscalco/ade/core"

// state carries the scratch of one Components invocation. The three
// slices vsFront, is and succs grow and shrink together: one frame per
// vertex whose visit is in progress.
type state struct {
	g core.View

	vsFront []int   // call stack of in-progress vertices
	vsBack  []int   // component stack of unlabelled finished vertices
	is      []int   // per-frame successor cursor
	succs   [][]int // per-frame successor slice, captured at BeginVisit

	rindex []int  // preorder timestamp, then component label
	root   []bool // candidate-root flag

	index int // next preorder timestamp
	c     int // next (descending) component label
}

// Components partitions the nodes of g into maximal strongly connected
// sets. Each component lists its members in ascending index order; the
// outer slice is in reverse topological order of the condensation
// (sinks first, sources last). Returns nil for a view with no nodes.
//
// The engine is total and deterministic: identical views produce
// bit-identical output. Complexity: O(V + E) time, O(V) extra space.
func Components(g core.View) [][]int {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return nil
	}

	st := &state{
		g:       g,
		vsFront: make([]int, 0, n),
		vsBack:  make([]int, 0, n),
		is:      make([]int, 0, n),
		succs:   make([][]int, 0, n),
		rindex:  make([]int, g.Span()),
		root:    make([]bool, g.Span()),
		index:   1,
		c:       n - 1,
	}

	// Drive a visit from every vertex not yet reached.
	for _, v := range nodes {
		if st.rindex[v] == 0 {
			st.visit(v)
		}
	}

	// Extraction: labels occupy (c, n-1] descending in completion order.
	// Slot 0 is the first-completed (sink) component; ascending vertex
	// iteration keeps members sorted.
	comps := make([][]int, n-1-st.c)
	for _, v := range nodes {
		slot := n - 1 - st.rindex[v]
		comps[slot] = append(comps[slot], v)
	}

	return comps
}

// visit runs the explicit-stack DFS rooted at v until the call stack
// drains.
func (st *state) visit(v int) {
	st.beginVisit(v)
	for len(st.vsFront) > 0 {
		st.visitLoop()
	}
}

// visitLoop advances the top frame by one step: settle the edge examined
// on the previous pass, then either descend into an unvisited successor
// or, once the cursor is exhausted, finish the vertex.
func (st *state) visitLoop() {
	t := len(st.vsFront) - 1
	v := st.vsFront[t]
	i := st.is[t]
	succ := st.succs[t]

	// A positive cursor means edge i-1 was examined before this pass
	// (either skipped as visited or returned from a descent): fold its
	// target's rindex into v now.
	if i > 0 {
		st.finishEdge(v, succ[i-1])
	}

	if i < len(succ) {
		if st.beginEdge(t, i, succ[i]) {
			// Descended: the next pass works on the new top frame.
			return
		}
		st.is[t] = i + 1

		return
	}

	st.finishVisit(v)
}

// beginVisit pushes a fresh frame for v and timestamps it.
func (st *state) beginVisit(v int) {
	st.vsFront = append(st.vsFront, v)
	st.is = append(st.is, 0)
	st.succs = append(st.succs, st.g.Successors(v))
	st.root[v] = true
	st.rindex[v] = st.index
	st.index++
}

// beginEdge descends into w when it is unvisited, parking the parent
// cursor past edge i so the return pass settles it. Reports whether a
// descent happened.
func (st *state) beginEdge(t, i, w int) bool {
	if st.rindex[w] != 0 {
		return false
	}
	st.is[t] = i + 1
	st.beginVisit(w)

	return true
}

// finishEdge propagates the Pearce minimum: reaching a vertex with an
// earlier preorder proves v is not the root of its component.
func (st *state) finishEdge(v, w int) {
	if st.rindex[w] < st.rindex[v] {
		st.rindex[v] = st.rindex[w]
		st.root[v] = false
	}
}

// finishVisit pops v's frame. A surviving root collects its component
// off the back stack and labels it; a non-root parks on the back stack
// until its root completes.
func (st *state) finishVisit(v int) {
	last := len(st.vsFront) - 1
	st.vsFront = st.vsFront[:last]
	st.is = st.is[:last]
	st.succs = st.succs[:last]

	if !st.root[v] {
		st.vsBack = append(st.vsBack, v)

		return
	}

	st.index--
	for len(st.vsBack) > 0 && st.rindex[v] <= st.rindex[st.vsBack[len(st.vsBack)-1]] {
		w := st.vsBack[len(st.vsBack)-1]
		st.vsBack = st.vsBack[:len(st.vsBack)-1]
		st.rindex[w] = st.c
		st.index--
	}
	st.rindex[v] = st.c
	st.c--
}
