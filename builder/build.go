// SPDX-License-Identifier: MIT
// Package: ade/builder
//
// build.go — Build, the (keys, edges) → core.Graph constructor.

package builder

import (
	"cmp"
	"fmt"

	"github.com/riccardoscalco/ade/core"
)

// methodBuild tags error context emitted by Build.
const methodBuild = "Build"

// Build constructs an immutable graph view from a list of node keys and
// a list of edges expressed in key pairs. Indices are assigned densely
// in the order keys appear; successor order follows the first occurrence
// of each edge. Self-loops are permitted; parallel edges are coalesced.
//
// Errors:
//   - ErrDuplicateKey when keys contains the same key twice.
//   - ErrUnknownKey when an edge endpoint is not in keys.
//
// Complexity: O(V + E) time and space.
func Build[K cmp.Ordered](keys []K, edges [][2]K) (*core.Graph[K], error) {
	// 1. Assign an index to every key, rejecting duplicates.
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, dup := index[k]; dup {
			return nil, fmt.Errorf("%s: node %v: %w", methodBuild, k, ErrDuplicateKey)
		}
		index[k] = i
	}

	// 2. Resolve edge endpoints to indices, rejecting unknown keys.
	pairs := make([][2]int, len(edges))
	for i, e := range edges {
		u, ok := index[e[0]]
		if !ok {
			return nil, fmt.Errorf("%s: edge (%v,%v) source: %w", methodBuild, e[0], e[1], ErrUnknownKey)
		}
		v, ok := index[e[1]]
		if !ok {
			return nil, fmt.Errorf("%s: edge (%v,%v) target: %w", methodBuild, e[0], e[1], ErrUnknownKey)
		}
		pairs[i] = [2]int{u, v}
	}

	// 3. Hand the resolved data to core; index validity is guaranteed.
	return core.NewGraph(keys, pairs), nil
}
