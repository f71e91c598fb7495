// SPDX-License-Identifier: MIT

package scc_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riccardoscalco/ade/builder"
	"github.com/riccardoscalco/ade/core"
	"github.com/riccardoscalco/ade/scc"
)

// mustBuild constructs a view over sequential int keys.
func mustBuild(t *testing.T, n int, edges [][2]int) *core.Graph[int] {
	t.Helper()
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	g, err := builder.Build(keys, edges)
	require.NoError(t, err)

	return g
}

// normalize sorts the outer component list by least member so tests can
// compare partitions without pinning the engine's emission order.
// Members are already ascending by the Components contract.
func normalize(comps [][]int) [][]int {
	out := slices.Clone(comps)
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })

	return out
}

// reachable marks every vertex reachable from u in g (including u).
func reachable(g core.View, u int) []bool {
	seen := make([]bool, g.Span())
	seen[u] = true
	queue := []int{u}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Successors(v) {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return seen
}

// TestComponents_Empty covers the zero-node view.
func TestComponents_Empty(t *testing.T) {
	g := mustBuild(t, 0, nil)
	assert.Empty(t, scc.Components(g))
}

// TestComponents_SingleSelfLoop: one vertex, one loop, one component.
func TestComponents_SingleSelfLoop(t *testing.T) {
	g := mustBuild(t, 1, [][2]int{{0, 0}})
	assert.Equal(t, [][]int{{0}}, scc.Components(g))
}

// TestComponents_SimpleDAG: all components trivial.
func TestComponents_SimpleDAG(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}, {0, 2}})
	comps := scc.Components(g)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, normalize(comps))
}

// TestComponents_TwoCycle: 1 and 2 collapse, 0 stays alone.
func TestComponents_TwoCycle(t *testing.T) {
	g := mustBuild(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 1}})
	comps := scc.Components(g)
	assert.Equal(t, [][]int{{0}, {1, 2}}, normalize(comps))
}

// TestComponents_CompleteGraph: K₃ is a single component.
func TestComponents_CompleteGraph(t *testing.T) {
	keys, edges := builder.CompleteData(3)
	g, err := builder.Build(keys, edges)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, scc.Components(g))
}

// TestComponents_ThreeComponents covers the chained-components scenario:
// a 3-cycle feeding two trivial tails.
func TestComponents_ThreeComponents(t *testing.T) {
	g := mustBuild(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 4}})
	comps := scc.Components(g)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4}}, normalize(comps))
}

// TestComponents_ReverseTopologicalOrder pins the emission order on
// shapes where the condensation is a path: sinks first, sources last.
func TestComponents_ReverseTopologicalOrder(t *testing.T) {
	// Path 0→1→2: three singleton components.
	g := mustBuild(t, 3, [][2]int{{0, 1}, {1, 2}})
	assert.Equal(t, [][]int{{2}, {1}, {0}}, scc.Components(g))

	// Cycle {0,1,2} feeding 3 feeding 4: the source component is last.
	g = mustBuild(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 4}})
	assert.Equal(t, [][]int{{4}, {3}, {0, 1, 2}}, scc.Components(g))
}

// TestComponents_Fixture10A is a fixed 10-vertex fixture with four
// components of mixed sizes.
func TestComponents_Fixture10A(t *testing.T) {
	g := mustBuild(t, 10, [][2]int{
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {4, 7}, {3, 1},
		{4, 0}, {4, 5}, {5, 6}, {6, 4}, {8, 9}, {9, 8},
	})
	comps := scc.Components(g)
	assert.Equal(t, [][]int{{0, 4, 5, 6}, {1, 2, 3}, {7}, {8, 9}}, normalize(comps))
}

// TestComponents_Fixture10B is a fixed 10-vertex DAG: every component is
// trivial.
func TestComponents_Fixture10B(t *testing.T) {
	g := mustBuild(t, 10, [][2]int{
		{1, 0}, {2, 1}, {2, 6}, {2, 7}, {3, 1}, {3, 6}, {4, 0},
		{5, 0}, {5, 6}, {8, 2}, {8, 7}, {8, 9}, {9, 4}, {9, 6},
	})
	comps := scc.Components(g)
	want := [][]int{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}}
	assert.Equal(t, want, normalize(comps))
}

// TestComponents_SubView verifies the engine respects masks: breaking a
// cycle by hiding one vertex splits its component.
func TestComponents_SubView(t *testing.T) {
	g := mustBuild(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})

	full := normalize(scc.Components(g))
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, full)

	sub := g.Filter([]int{1, 2, 3})
	masked := normalize(scc.Components(sub))
	assert.Equal(t, [][]int{{1}, {2}, {3}}, masked)
}

// TestComponents_PartitionProperty: on random graphs the components form
// a partition of the node set.
func TestComponents_PartitionProperty(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			keys, edges, err := builder.RandomData(30, 90, seed)
			require.NoError(t, err)
			g, err := builder.Build(keys, edges)
			require.NoError(t, err)

			comps := scc.Components(g)
			seen := make([]bool, g.NodeCount())
			for _, comp := range comps {
				require.NotEmpty(t, comp)
				for _, v := range comp {
					require.False(t, seen[v], "vertex %d in two components", v)
					seen[v] = true
				}
			}
			for v, ok := range seen {
				assert.True(t, ok, "vertex %d missing", v)
			}
		})
	}
}

// TestComponents_MutualReachability: inside a component every ordered
// pair is connected; across components mutual reachability never holds.
func TestComponents_MutualReachability(t *testing.T) {
	keys, edges, err := builder.RandomData(20, 55, 3)
	require.NoError(t, err)
	g, err := builder.Build(keys, edges)
	require.NoError(t, err)

	reach := make([][]bool, g.NodeCount())
	for _, v := range g.Nodes() {
		reach[v] = reachable(g, v)
	}

	comps := scc.Components(g)
	label := make([]int, g.NodeCount())
	for i, comp := range comps {
		for _, v := range comp {
			label[v] = i
		}
	}

	for _, comp := range comps {
		for _, u := range comp {
			for _, v := range comp {
				assert.True(t, reach[u][v], "no path %d→%d inside component", u, v)
			}
		}
	}
	for _, u := range g.Nodes() {
		for _, v := range g.Nodes() {
			if label[u] != label[v] {
				assert.False(t, reach[u][v] && reach[v][u],
					"%d and %d mutually reachable across components", u, v)
			}
		}
	}
}

// TestComponents_EdgeOrderInsensitive: permuting the edge list must not
// change the partition after normalisation.
func TestComponents_EdgeOrderInsensitive(t *testing.T) {
	_, edges, err := builder.RandomData(15, 40, 11)
	require.NoError(t, err)

	g1 := mustBuild(t, 15, edges)
	shuffled := slices.Clone(edges)
	rand.New(rand.NewSource(5)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	g2 := mustBuild(t, 15, shuffled)

	assert.Equal(t, normalize(scc.Components(g1)), normalize(scc.Components(g2)))
}

// TestComponents_Deterministic: identical views yield bit-identical
// output, and repeated runs agree (idempotence).
func TestComponents_Deterministic(t *testing.T) {
	keys, edges, err := builder.RandomData(25, 70, 17)
	require.NoError(t, err)
	g, err := builder.Build(keys, edges)
	require.NoError(t, err)

	first := scc.Components(g)
	second := scc.Components(g)
	assert.Equal(t, first, second)
}

// TestComponents_ConnectedGeneratorIsOneComponent closes the loop with
// the builder: a symmetrised random connected graph collapses to a
// single component.
func TestComponents_ConnectedGeneratorIsOneComponent(t *testing.T) {
	keys, raw, err := builder.RandomConnectedData(12, 20, 41)
	require.NoError(t, err)
	edges := make([][2]int, 0, 2*len(raw))
	for _, e := range raw {
		edges = append(edges, e, [2]int{e[1], e[0]})
	}
	g, err := builder.Build(keys, edges)
	require.NoError(t, err)

	comps := scc.Components(g)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 12)
}

// TestComponents_DeepPath guards the non-recursive contract: a path of
// 200k vertices must not overflow the native call stack.
func TestComponents_DeepPath(t *testing.T) {
	const n = 200_000
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := mustBuild(t, n, edges)

	comps := scc.Components(g)
	assert.Len(t, comps, n)
}
