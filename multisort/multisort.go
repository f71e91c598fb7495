// SPDX-License-Identifier: MIT
//
// Package multisort sorts slices by a chain of integer metrics: the
// first metric that distinguishes two elements decides their order.
package multisort

import (
	"cmp"
	"slices"
)

// Sort stably orders items in place by the given metrics, applied left
// to right until one differs. With no metrics the slice is untouched
// (every comparison ties and the sort is stable).
// Complexity: O(k · n log n) for k metrics.
func Sort[T any](items []T, metrics ...func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, metric := range metrics {
			if c := cmp.Compare(metric(a), metric(b)); c != 0 {
				return c
			}
		}

		return 0
	})
}
