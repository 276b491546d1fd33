// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// Shape lists per-dimension extents. Strides are implicit and row-major:
// the last dimension varies fastest.
type Shape []int

// NDim returns the number of dimensions.
func (s Shape) NDim() int { return len(s) }

// Validate checks that s has at least one dimension and that every extent
// is positive. Returns a wrapped ErrBadShape otherwise.
// Complexity: O(d).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape %v: no dimensions: %w", []int(s), ErrBadShape)
	}
	for d, ext := range s {
		if ext <= 0 {
			return fmt.Errorf("shape %v: extent[%d]=%d: %w", []int(s), d, ext, ErrBadShape)
		}
	}

	return nil
}

// Size returns the number of elements described by s.
// Returns ErrBadShape for an invalid shape and ErrAllocation when the
// product overflows int.
// Complexity: O(d).
func (s Shape) Size() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	n := 1
	for _, ext := range s {
		if n > math.MaxInt/ext {
			return 0, fmt.Errorf("shape %v: element count overflows int: %w", []int(s), ErrAllocation)
		}
		n *= ext
	}

	return n, nil
}

// Strides returns row-major element strides for s.
// Last axis stride = 1; strides[i] = strides[i+1] * s[i+1].
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// Equal reports whether s and o describe the same extents.
func (s Shape) Equal(o Shape) bool {
	return Position(s).Equal(Position(o))
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	return Shape(Position(s).Clone())
}
