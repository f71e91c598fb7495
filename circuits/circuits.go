// SPDX-License-Identifier: MIT
// Package: ade/circuits
//
// circuits.go — Johnson's elementary circuits, iterative.
//
// State layout:
//   • blocked and bmap are flat arrays sized by the view's Span and are
//     reset only over the chosen component between outer iterations.
//   • The inner search keeps one frame per path vertex; the frame holds
//     the successor slice captured on entry, so sub-view filtering is
//     paid once per push, not once per loop pass.
//   • No state survives from one inner search into the next: the reset
//     plus the blocked/B discipline guarantee it.

package circuits

import (
	"slices"

	"github.com/riccardoscalco/ade/core"
	"github.com/riccardoscalco/ade/scc"
)

// frame is one suspended CIRCUIT(v) activation.
type frame struct {
	v     int   // path vertex of this frame
	succ  []int // successors of v inside the component sub-view
	next  int   // cursor into succ
	found bool  // a circuit was closed somewhere in this subtree
}

// Elementary returns every elementary circuit of g, each as a vertex
// index sequence whose first and last elements coincide. Circuits are
// canonical (rotation starting at the least vertex) and appear exactly
// once; the engine cannot fail on a well-formed view. Returns nil when
// g has no circuits.
//
// Deterministic: emission order follows the view's successor order and
// the ascending root walk. Complexity: O((V+E)(C+1)).
func Elementary(g core.View) [][]int {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	e := &enumerator{
		blocked: make([]bool, g.Span()),
		bmap:    make([][]int, g.Span()),
	}

	// The root candidate walks upward; each pass consumes the least
	// non-trivial component of the remaining sub-graph.
	s := nodes[0]
	for {
		// 1. Sub-view induced by {v : v ≥ s}. Nodes() ascends, so the
		//    suffix after the first index ≥ s is exactly that set.
		cut, _ := slices.BinarySearch(nodes, s)
		rest := nodes[cut:]
		if len(rest) == 0 {
			break
		}
		sub := g.Filter(rest)

		// 2. Decompose and pick the non-trivial component whose minimum
		//    vertex is least. Component members ascend, so comp[0] is
		//    the minimum; trivial means a single vertex without a
		//    self-loop.
		var comp []int
		for _, c := range scc.Components(sub) {
			if len(c) == 1 && !hasSelfLoop(sub, c[0]) {
				continue
			}
			if comp == nil || c[0] < comp[0] {
				comp = c
			}
		}
		if comp == nil {
			break
		}

		// 3. Root the search at the component minimum, confined to the
		//    component. Scratch is reset only where this pass may have
		//    to touch it.
		root := comp[0]
		adj := sub.Filter(comp)
		for _, v := range comp {
			e.blocked[v] = false
			e.bmap[v] = e.bmap[v][:0]
		}
		e.search(root, adj)

		// 4. Advance past the processed root.
		s = root + 1
	}

	return e.out
}

// enumerator owns the scratch of one Elementary invocation.
type enumerator struct {
	blocked []bool  // Johnson's blocked set
	bmap    [][]int // Johnson's B-lists (reverse-block map)
	path    []int   // current simple path, root first
	frames  []frame // explicit CIRCUIT stack, parallel to path
	out     [][]int // emitted circuits
}

// search runs the iterative CIRCUIT procedure rooted at root inside the
// component sub-view adj.
func (e *enumerator) search(root int, adj core.View) {
	e.push(root, adj)

	for len(e.frames) > 0 {
		fr := &e.frames[len(e.frames)-1]

		// Examine the next successor of the top frame, if any.
		if fr.next < len(fr.succ) {
			w := fr.succ[fr.next]
			fr.next++
			switch {
			case w == root:
				// Closing edge: record the current path plus the root.
				circuit := make([]int, len(e.path)+1)
				copy(circuit, e.path)
				circuit[len(e.path)] = root
				e.out = append(e.out, circuit)
				fr.found = true
			case !e.blocked[w]:
				// Descend; the new frame becomes the loop's target.
				e.push(w, adj)
			}

			continue
		}

		// Frame exhausted: apply Johnson's un-blocking rule and pop.
		if fr.found {
			e.unblock(fr.v)
		} else {
			for _, w := range fr.succ {
				if !slices.Contains(e.bmap[w], fr.v) {
					e.bmap[w] = append(e.bmap[w], fr.v)
				}
			}
		}
		found := fr.found
		e.path = e.path[:len(e.path)-1]
		e.frames = e.frames[:len(e.frames)-1]
		if found && len(e.frames) > 0 {
			e.frames[len(e.frames)-1].found = true
		}
	}
}

// push blocks v and opens its CIRCUIT frame.
func (e *enumerator) push(v int, adj core.View) {
	e.blocked[v] = true
	e.path = append(e.path, v)
	e.frames = append(e.frames, frame{v: v, succ: adj.Successors(v)})
}

// unblock clears v and, transitively, every vertex whose unblocking was
// deferred on v. Iterative to keep stack depth independent of the graph.
func (e *enumerator) unblock(v int) {
	pending := []int{v}
	for len(pending) > 0 {
		u := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		e.blocked[u] = false
		for len(e.bmap[u]) > 0 {
			w := e.bmap[u][len(e.bmap[u])-1]
			e.bmap[u] = e.bmap[u][:len(e.bmap[u])-1]
			if e.blocked[w] {
				pending = append(pending, w)
			}
		}
	}
}

// hasSelfLoop reports whether v→v is a visible edge of the view.
func hasSelfLoop(g core.View, v int) bool {
	return slices.Contains(g.Successors(v), v)
}
