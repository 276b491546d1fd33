// SPDX-License-Identifier: MIT

package label

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"golang.org/x/exp/constraints"
)

// ErrTooManyLabels indicates that the component count exceeds the maximum
// value of the element type.
var ErrTooManyLabels = errors.New("label: component count exceeds element type range")

// Label returns a label image for the nonzero cells of array and the number
// of components found, using bc's active offsets as adjacency.
//
// Behavior:
//  1. Scan in row-major order; skip background and already-labelled cells.
//  2. BFS from each new foreground cell, stamping the next label.
//  3. Fail with ErrTooManyLabels before exceeding MaxValue[T].
//
// Complexity: O(N·K·d) time, O(N) memory.
func Label[T constraints.Integer](array, bc *ndarray.Array[T]) (*ndarray.Array[T], int, error) {
	res, err := ndarray.Like[T](array)
	if err != nil {
		return nil, 0, err
	}
	deltas := strel.Deltas(bc)
	limit := uint64(ndarray.MaxValue[T]())

	var (
		count int
		queue []int
		pos   = make(ndarray.Position, array.NDim())
	)
	for i0 := 0; i0 < array.Len(); i0++ {
		if array.AtIndex(i0) == 0 || res.AtIndex(i0) != 0 {
			continue
		}
		if uint64(count) >= limit {
			return nil, 0, fmt.Errorf("%s array: more than %d components: %w", array.Kind(), limit, ErrTooManyLabels)
		}
		count++
		lbl := T(count)

		// BFS to collect component
		queue = append(queue[:0], i0)
		res.SetIndex(i0, lbl)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			array.PositionOf(u, pos)
			for _, d := range deltas {
				v, ok := array.Neighbor(pos, d)
				if !ok || array.AtIndex(v) == 0 || res.AtIndex(v) != 0 {
					continue
				}
				res.SetIndex(v, lbl)
				queue = append(queue, v)
			}
		}
	}

	return res, count, nil
}

// Sizes returns the cell count of every label in labels: out[k] is the
// size of label k for 1 ≤ k ≤ n, and out[0] the background size. Values
// outside [0, n] are ignored. Returns nil for n < 0.
// Complexity: O(N).
func Sizes[T constraints.Integer](labels *ndarray.Array[T], n int) []int {
	if n < 0 {
		return nil
	}
	out := make([]int, n+1)
	for i := 0; i < labels.Len(); i++ {
		v := labels.AtIndex(i)
		if v < 0 || uint64(v) > uint64(n) {
			continue
		}
		out[int(v)]++
	}

	return out
}
