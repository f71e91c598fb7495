// SPDX-License-Identifier: MIT
// Package: ade/builder
//
// generators.go — deterministic (keys, edges) data producers.
//
// Contract:
//   • Generators return data in the exact shape Build consumes; they
//     never touch core directly.
//   • Keys are 0..n-1 in ascending order, so indices equal keys.
//   • Edge emission order is stable and documented per generator.
//   • Stochastic generators take an explicit seed; same seed, same data.

package builder

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
)

// File-local constants for method tagging (no magic strings at call sites).
const (
	methodRandom          = "RandomData"
	methodRandomConnected = "RandomConnectedData"
)

// CompleteData returns the node and edge lists of the complete simple
// digraph on n vertices: every ordered pair (i, j) with i ≠ j, emitted
// in lexicographic order. n ≤ 0 yields empty data.
// Complexity: O(n²).
func CompleteData(n int) ([]int, [][2]int) {
	keys := sequentialKeys(n)
	var edges [][2]int
	if n > 1 {
		edges = make([][2]int, 0, n*(n-1))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return keys, edges
}

// CycleData returns the directed cycle 0→1→…→n-1→0. For n == 1 the
// cycle degenerates to the self-loop (0,0); n ≤ 0 yields empty data.
// Complexity: O(n).
func CycleData(n int) ([]int, [][2]int) {
	keys := sequentialKeys(n)
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return keys, edges
}

// PathData returns the directed path 0→1→…→n-1 (no circuits).
// n ≤ 0 yields empty data. Complexity: O(n).
func PathData(n int) ([]int, [][2]int) {
	keys := sequentialKeys(n)
	edges := make([][2]int, 0, max(n-1, 0))
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return keys, edges
}

// RandomData returns n nodes and m pseudo-random edges drawn from the
// seeded generator. Self-loops are avoided by bumping the target; edges
// may repeat (Build coalesces them). Deterministic for a fixed
// (n, m, seed) triple.
//
// Errors: ErrTooFewVertices when m > 0 and n < 2.
// Complexity: O(n + m).
func RandomData(n, m int, seed int64) ([]int, [][2]int, error) {
	if n <= 0 {
		if m > 0 {
			return nil, nil, fmt.Errorf("%s: n=%d with m=%d: %w", methodRandom, n, m, ErrTooFewVertices)
		}

		return nil, nil, nil
	}
	if m > 0 && n < 2 {
		return nil, nil, fmt.Errorf("%s: n=%d < 2 with m=%d: %w", methodRandom, n, m, ErrTooFewVertices)
	}

	rng := rand.New(rand.NewSource(seed))
	keys := sequentialKeys(n)
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if v == u {
			// Deterministic bump keeps the draw count fixed per edge.
			v = (v + 1) % n
		}
		edges = append(edges, [2]int{u, v})
	}

	return keys, edges, nil
}

// RandomConnectedData returns n nodes and m distinct edges forming a
// weakly connected digraph: a random spanning tree guarantees
// connectivity, then random non-loop edges fill up to m. Deterministic
// for a fixed (n, m, seed) triple; edge order is ascending (u, v) so the
// output does not depend on map iteration.
//
// Errors:
//   - ErrBadEdgeCount when m < n-1 (cannot connect) or m > n·(n-1)
//     (exceeds the simple-digraph maximum).
//
// Complexity: O(n + m) expected, O(m log m) for the final ordering.
func RandomConnectedData(n, m int, seed int64) ([]int, [][2]int, error) {
	if n <= 0 {
		if m > 0 {
			return nil, nil, fmt.Errorf("%s: m=%d > max=0: %w", methodRandomConnected, m, ErrBadEdgeCount)
		}

		return nil, nil, nil
	}
	if m < n-1 {
		return nil, nil, fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrBadEdgeCount)
	}
	if maxEdges := n * (n - 1); m > maxEdges {
		return nil, nil, fmt.Errorf("%s: m=%d > max=%d: %w", methodRandomConnected, m, maxEdges, ErrBadEdgeCount)
	}

	rng := rand.New(rand.NewSource(seed))
	keys := sequentialKeys(n)
	seen := make(map[[2]int]struct{}, m)

	// 1. Spanning tree: attach each vertex to a random earlier vertex,
	//    with a coin flip for edge direction.
	for i := 1; i < n; i++ {
		anchor := rng.Intn(i)
		e := [2]int{anchor, i}
		if rng.Intn(2) == 1 {
			e = [2]int{i, anchor}
		}
		seen[e] = struct{}{}
	}

	// 2. Fill with distinct random non-loop edges until m are present.
	for len(seen) < m {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u != v {
			seen[[2]int{u, v}] = struct{}{}
		}
	}

	// 3. Emit in ascending (u, v) order for a deterministic edge list.
	edges := make([][2]int, 0, m)
	for e := range seen {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b [2]int) int {
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}

		return cmp.Compare(a[1], b[1])
	})

	return keys, edges, nil
}

// sequentialKeys returns [0, 1, …, n-1]; n ≤ 0 yields nil.
func sequentialKeys(n int) []int {
	if n <= 0 {
		return nil
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	return keys
}
