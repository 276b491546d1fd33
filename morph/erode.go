// SPDX-License-Identifier: MIT

package morph

import (
	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"golang.org/x/exp/constraints"
)

// Erode returns the binary erosion of array by bc. The result has array's
// shape and element type and holds only 0 and 1.
//
// Behavior:
//  1. Collect bc's active offsets once.
//  2. For each position p: scan offsets, stop at the first valid neighbour
//     that is zero.
//  3. Out-of-range neighbours are ignored.
//
// Complexity: O(N·K·d) time, O(N) memory.
func Erode[T constraints.Integer](array, bc *ndarray.Array[T]) (*ndarray.Array[T], error) {
	res, err := ndarray.Like[T](array)
	if err != nil {
		return nil, err
	}
	deltas := strel.Deltas(bc)

	array.Each(func(i int, pos ndarray.Position, _ T) {
		on := T(1)
		for _, d := range deltas {
			n, ok := array.Neighbor(pos, d)
			if ok && array.AtIndex(n) == 0 {
				on = 0
				break
			}
		}
		res.SetIndex(i, on)
	})

	return res, nil
}
