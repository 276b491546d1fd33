// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Tensor is the type-erased view of an Array. Every *Array[T] implements it.
type Tensor interface {
	// Kind returns the runtime element-type tag.
	Kind() Kind
	// Shape returns a copy of the per-dimension extents.
	Shape() Shape
	// NDim returns the number of dimensions.
	NDim() int
	// Len returns the total number of elements.
	Len() int
}

// Array is a dense, row-major n-dimensional array of integer elements.
// The buffer is owned by the Array; accessors never expose raw offsets.
type Array[T constraints.Integer] struct {
	shape   Shape // per-dimension extents
	strides []int // row-major element strides
	data    []T   // flat backing storage, len == product(shape)
}

var _ Tensor = (*Array[uint8])(nil)

// maxAllocBytes is the largest buffer New requests from the runtime: 1<<47
// on 64-bit platforms and MaxInt32 on 32-bit ones, matching the heap's own
// allocation ceiling. Larger requests would panic inside make.
const maxAllocBytes uint64 = 1<<47*(bits.UintSize/64) + math.MaxInt32*(1-bits.UintSize/64)

// New allocates a zero-filled Array with the given shape.
// Stage 1 (Validate): shape has ≥1 dimension and positive extents.
// Stage 2 (Prepare): element count fits in int and byte size is at most
// maxAllocBytes.
// Stage 3 (Finalize): allocate and return.
// Returns ErrBadShape or ErrAllocation; nothing is allocated on failure.
// Complexity: O(N) time and memory.
func New[T constraints.Integer](shape Shape) (*Array[T], error) {
	n, err := shape.Size()
	if err != nil {
		return nil, err
	}
	var zero T
	if uint64(n) > maxAllocBytes/uint64(unsafe.Sizeof(zero)) {
		return nil, fmt.Errorf("shape %v of %s: byte size exceeds %d: %w", []int(shape), KindOf[T](), maxAllocBytes, ErrAllocation)
	}

	return &Array[T]{
		shape:   shape.Clone(),
		strides: shape.Strides(),
		data:    make([]T, n),
	}, nil
}

// FromSlice builds an Array with the given shape from a copy of data.
// Returns ErrDataLength if len(data) differs from the shape size; the
// length is checked before anything is allocated.
// Complexity: O(N).
func FromSlice[T constraints.Integer](shape Shape, data []T) (*Array[T], error) {
	n, err := shape.Size()
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("shape %v wants %d elements, got %d: %w", []int(shape), n, len(data), ErrDataLength)
	}
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)

	return a, nil
}

// Like allocates a zero-filled Array of element type T with ref's shape.
// Complexity: O(N).
func Like[T constraints.Integer](ref Tensor) (*Array[T], error) {
	return New[T](ref.Shape())
}

// Convert returns a copy of src with every element converted to T using
// Go integer conversion rules (truncation/wrap for narrowing).
// Complexity: O(N).
func Convert[T, U constraints.Integer](src *Array[U]) *Array[T] {
	out := &Array[T]{
		shape:   src.shape.Clone(),
		strides: src.shape.Strides(),
		data:    make([]T, len(src.data)),
	}
	for i, v := range src.data {
		out.data[i] = T(v)
	}

	return out
}

// Kind returns the runtime element-type tag of a.
func (a *Array[T]) Kind() Kind { return KindOf[T]() }

// Shape returns a copy of the extents of a.
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// NDim returns the number of dimensions of a.
func (a *Array[T]) NDim() int { return len(a.shape) }

// Len returns the number of elements of a.
func (a *Array[T]) Len() int { return len(a.data) }

// Strides returns a copy of the row-major element strides of a.
func (a *Array[T]) Strides() []int {
	out := make([]int, len(a.strides))
	copy(out, a.strides)

	return out
}

// ValidPosition reports whether pos has a's dimensionality and lies in
// [0, extent_d) for every dimension d. It never reads the buffer.
// Complexity: O(d).
func (a *Array[T]) ValidPosition(pos Position) bool {
	if len(pos) != len(a.shape) {
		return false
	}
	for d, c := range pos {
		if c < 0 || c >= a.shape[d] {
			return false
		}
	}

	return true
}

// Index maps a valid position to its row-major linear index.
// Panics if pos is not a valid position.
// Complexity: O(d).
func (a *Array[T]) Index(pos Position) int {
	if !a.ValidPosition(pos) {
		panic(fmt.Sprintf("ndarray: position %v out of range for shape %v", pos, []int(a.shape)))
	}
	idx := 0
	for d, c := range pos {
		idx += c * a.strides[d]
	}

	return idx
}

// PositionOf converts a linear index back to its Position, writing into dst
// when it has the right length and allocating otherwise.
// Complexity: O(d).
func (a *Array[T]) PositionOf(idx int, dst Position) Position {
	if len(dst) != len(a.shape) {
		dst = make(Position, len(a.shape))
	}
	for d, s := range a.strides {
		dst[d] = idx / s
		idx %= s
	}

	return dst
}

// Neighbor returns the linear index of pos+delta and whether that position
// is valid. Ok is false (and idx meaningless) for any out-of-range
// coordinate. Panics with ErrDimensionMismatch if delta's length differs
// from pos's.
// Complexity: O(d), no allocation.
func (a *Array[T]) Neighbor(pos, delta Position) (idx int, ok bool) {
	mustSameDim("Add", pos, delta)
	if len(pos) != len(a.shape) {
		return 0, false
	}
	for d, c := range pos {
		n := c + delta[d]
		if n < 0 || n >= a.shape[d] {
			return 0, false
		}
		idx += n * a.strides[d]
	}

	return idx, true
}

// At returns the element at a valid position. Panics otherwise.
func (a *Array[T]) At(pos Position) T { return a.data[a.Index(pos)] }

// Set stores v at a valid position. Panics otherwise.
func (a *Array[T]) Set(pos Position, v T) { a.data[a.Index(pos)] = v }

// AtIndex returns the element at linear index i.
func (a *Array[T]) AtIndex(i int) T { return a.data[i] }

// SetIndex stores v at linear index i.
func (a *Array[T]) SetIndex(i int, v T) { a.data[i] = v }

// Each calls fn for every element in linear order with its index,
// Position and value. The Position slice is reused between calls; clone
// it to retain it.
// Complexity: O(N·d) amortised O(N).
func (a *Array[T]) Each(fn func(i int, pos Position, v T)) {
	pos := make(Position, len(a.shape))
	for i, v := range a.data {
		fn(i, pos, v)
		// odometer increment, last dimension fastest
		for d := len(pos) - 1; d >= 0; d-- {
			pos[d]++
			if pos[d] < a.shape[d] {
				break
			}
			pos[d] = 0
		}
	}
}

// Data returns a copy of the flat row-major buffer.
func (a *Array[T]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape:   a.shape.Clone(),
		strides: a.Strides(),
		data:    a.Data(),
	}
}

// Equal reports whether a and b have the same shape and elements.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String formats a as nested brackets, e.g. "[[1, 2], [3, 4]]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	a.format(&sb, 0, 0)

	return sb.String()
}

// format writes dimension d starting at linear offset off.
func (a *Array[T]) format(sb *strings.Builder, d, off int) {
	sb.WriteByte('[')
	for i := 0; i < a.shape[d]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if d == len(a.shape)-1 {
			v := a.data[off+i]
			if v < 0 {
				sb.WriteString(strconv.FormatInt(int64(v), 10))
			} else {
				sb.WriteString(strconv.FormatUint(uint64(v), 10))
			}
			continue
		}
		a.format(sb, d+1, off+i*a.strides[d])
	}
	sb.WriteByte(']')
}
