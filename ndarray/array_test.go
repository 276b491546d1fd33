// Package ndarray_test contains unit tests for the dense Array, Shape and
// Position types.
package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/stretchr/testify/require"
)

// TestNew_BadShape ensures that New rejects empty and non-positive shapes.
func TestNew_BadShape(t *testing.T) {
	cases := []struct {
		name  string
		shape ndarray.Shape
	}{
		{"NoDims", ndarray.Shape{}},
		{"ZeroExtent", ndarray.Shape{3, 0}},
		{"NegativeExtent", ndarray.Shape{-1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ndarray.New[uint8](tc.shape)
			require.ErrorIs(t, err, ndarray.ErrBadShape)
		})
	}
}

// TestNew_AllocationOverflow ensures that oversized shapes surface
// ErrAllocation instead of panicking inside make.
func TestNew_AllocationOverflow(t *testing.T) {
	_, err := ndarray.New[int64](ndarray.Shape{math.MaxInt / 2, 4})
	require.ErrorIs(t, err, ndarray.ErrAllocation)

	_, err = ndarray.New[int64](ndarray.Shape{math.MaxInt / 4})
	require.ErrorIs(t, err, ndarray.ErrAllocation) // byte size overflow
}

// TestNew_AllocationCeiling ensures that shapes whose element count fits
// in int but exceeds the heap's allocation ceiling return ErrAllocation.
func TestNew_AllocationCeiling(t *testing.T) {
	shape := ndarray.Shape{1 << 30, 1 << 30} // 2^60 elements
	if math.MaxInt == math.MaxInt32 {
		shape = ndarray.Shape{1 << 16, 1 << 15}
	}
	require.NotPanics(t, func() {
		_, err := ndarray.New[uint8](shape)
		require.ErrorIs(t, err, ndarray.ErrAllocation)
	})

	_, err := ndarray.New[uint16](ndarray.Shape{1 << 20, 1 << 20, 1 << 20})
	require.ErrorIs(t, err, ndarray.ErrAllocation)
}

// TestFromSlice_LengthBeforeAllocation rejects a short data slice for a
// huge shape without attempting the allocation.
func TestFromSlice_LengthBeforeAllocation(t *testing.T) {
	shape := ndarray.Shape{1 << 30, 1 << 30}
	if math.MaxInt == math.MaxInt32 {
		shape = ndarray.Shape{1 << 15, 1 << 15}
	}
	require.NotPanics(t, func() {
		_, err := ndarray.FromSlice(shape, []uint8{1})
		require.ErrorIs(t, err, ndarray.ErrDataLength)
	})
}

// TestFromSlice_DataLength verifies the length check on FromSlice.
func TestFromSlice_DataLength(t *testing.T) {
	_, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []int16{1, 2, 3})
	require.ErrorIs(t, err, ndarray.ErrDataLength)
}

// TestFromSlice_Copies ensures the array does not alias the caller's slice.
func TestFromSlice_Copies(t *testing.T) {
	src := []uint8{1, 2, 3}
	a, err := ndarray.FromSlice(ndarray.Shape{3}, src)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, uint8(1), a.AtIndex(0))
}

// TestValidPosition checks bounds on a 2×3 array.
func TestValidPosition(t *testing.T) {
	a, err := ndarray.New[uint8](ndarray.Shape{2, 3})
	require.NoError(t, err)

	valid := []ndarray.Position{{0, 0}, {1, 2}, {0, 1}}
	for _, p := range valid {
		require.Truef(t, a.ValidPosition(p), "ValidPosition(%v)", p)
	}
	invalid := []ndarray.Position{{-1, 0}, {2, 0}, {0, 3}, {0, -1}, {0}, {0, 0, 0}}
	for _, p := range invalid {
		require.Falsef(t, a.ValidPosition(p), "ValidPosition(%v)", p)
	}
}

// TestAtSet_RowMajor verifies strides and linear layout.
func TestAtSet_RowMajor(t *testing.T) {
	a, err := ndarray.New[int32](ndarray.Shape{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []int{12, 4, 1}, a.Strides())

	a.Set(ndarray.Position{1, 2, 3}, 7)
	require.Equal(t, int32(7), a.AtIndex(23))
	require.Equal(t, 1*12+2*4+3, a.Index(ndarray.Position{1, 2, 3}))
	require.Equal(t, ndarray.Position{1, 2, 3}, a.PositionOf(23, nil))
}

// TestAt_InvalidPanics documents that At is not bounds-tolerant.
func TestAt_InvalidPanics(t *testing.T) {
	a, err := ndarray.New[uint8](ndarray.Shape{2})
	require.NoError(t, err)
	require.Panics(t, func() { _ = a.At(ndarray.Position{2}) })
}

// TestEach_PositionsMatchIndex walks a 3-d array and checks that the
// exposed Position always agrees with PositionOf.
func TestEach_PositionsMatchIndex(t *testing.T) {
	a, err := ndarray.New[uint16](ndarray.Shape{2, 3, 2})
	require.NoError(t, err)
	for i := 0; i < a.Len(); i++ {
		a.SetIndex(i, uint16(i))
	}

	count := 0
	a.Each(func(i int, pos ndarray.Position, v uint16) {
		require.Equal(t, a.PositionOf(i, nil), pos)
		require.Equal(t, uint16(i), v)
		require.Equal(t, i, a.Index(pos))
		count++
	})
	require.Equal(t, a.Len(), count)
}

// TestNeighbor covers in-range and out-of-range offsets.
func TestNeighbor(t *testing.T) {
	a, err := ndarray.New[uint8](ndarray.Shape{3, 3})
	require.NoError(t, err)

	idx, ok := a.Neighbor(ndarray.Position{1, 1}, ndarray.Position{-1, 1})
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = a.Neighbor(ndarray.Position{0, 0}, ndarray.Position{-1, 0})
	require.False(t, ok)
	_, ok = a.Neighbor(ndarray.Position{2, 2}, ndarray.Position{0, 1})
	require.False(t, ok)

	require.Panics(t, func() { a.Neighbor(ndarray.Position{0, 0}, ndarray.Position{1}) })
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{2}, []uint8{1, 2})
	require.NoError(t, err)
	b := a.Clone()
	b.SetIndex(0, 5)
	require.Equal(t, uint8(1), a.AtIndex(0))
	require.False(t, a.Equal(b))
}

// TestConvert checks element conversion between kinds.
func TestConvert(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{3}, []int16{-1, 2, 300})
	require.NoError(t, err)
	b := ndarray.Convert[uint8](a)
	require.Equal(t, ndarray.Uint8, b.Kind())
	require.Equal(t, []uint8{255, 2, 44}, b.Data())
}

// TestString checks the nested-bracket formatting.
func TestString(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []int8{1, -2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[[1, -2], [3, 4]]", a.String())
}

// TestFill sets all elements.
func TestFill(t *testing.T) {
	a, err := ndarray.New[uint32](ndarray.Shape{2, 2})
	require.NoError(t, err)
	a.Fill(ndarray.MaxValue[uint32]())
	for _, v := range a.Data() {
		require.Equal(t, uint32(math.MaxUint32), v)
	}
}
