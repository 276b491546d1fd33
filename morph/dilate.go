// SPDX-License-Identifier: MIT

package morph

import (
	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"golang.org/x/exp/constraints"
)

// Dilate returns the weighted dilation of array by bc. Each nonzero source
// p scatters array[p]+w to every valid p+o, overwriting earlier writes.
// Targets never reached stay 0.
// Complexity: O(N·K·d) time, O(N) memory.
func Dilate[T constraints.Integer](array, bc *ndarray.Array[T]) (*ndarray.Array[T], error) {
	res, err := ndarray.Like[T](array)
	if err != nil {
		return nil, err
	}
	offsets := strel.Offsets(bc)

	array.Each(func(_ int, pos ndarray.Position, v T) {
		if v == 0 {
			return
		}
		for _, o := range offsets {
			if n, ok := res.Neighbor(pos, o.Delta); ok {
				res.SetIndex(n, v+o.Weight)
			}
		}
	})

	return res, nil
}
