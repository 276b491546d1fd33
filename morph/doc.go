// SPDX-License-Identifier: MIT

// Package morph implements binary erosion and weighted (non-flat)
// grayscale dilation over n-dimensional arrays.
//
// Erode(array, bc):
//
//   - result[p] = 1 unless some active offset o of bc lands on a valid
//     n = p+o with array[n] == 0, in which case result[p] = 0.
//   - Neighbours outside the array impose no constraint: the boundary
//     behaves as if it were foreground.
//
// Dilate(array, bc):
//
//   - result starts at 0. For every p with array[p] != 0 and every active
//     offset o of weight w, result[p+o] = array[p] + w when p+o is valid.
//   - Writes overwrite: the last source in row-major order wins, and within
//     one source the last offset wins. This is a scatter, not a max.
//   - Arithmetic is in the element type and wraps on overflow.
//
// Preconditions (not checked here; see package dispatch):
//
//   - array and bc have the same dimensionality. A mismatch panics with
//     ndarray.ErrDimensionMismatch.
//
// Errors: only ndarray.ErrAllocation / ndarray.ErrBadShape from
// allocating the result.
//
// Complexity: O(N·K·d) time for N elements, K active offsets and d
// dimensions; O(N) extra memory for the result.
package morph
