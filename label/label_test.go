package label_test

import (
	"testing"

	"github.com/katalvlaran/ndmorph/label"
	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Label Tests
//----------------------------------------------------------------------------//

// TestLabel_CrossVsBox verifies that diagonal contact only joins under a box.
func TestLabel_CrossVsBox(t *testing.T) {
	img, err := ndarray.FromSlice(ndarray.Shape{3, 3}, []uint8{
		1, 0, 0,
		0, 1, 0,
		0, 0, 7,
	})
	require.NoError(t, err)

	cross, err := strel.Cross[uint8](2)
	require.NoError(t, err)
	got, n, err := label.Label(img, cross)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []uint8{1, 0, 0, 0, 2, 0, 0, 0, 3}, got.Data())

	box, err := strel.Box[uint8](2)
	require.NoError(t, err)
	got, n, err = label.Label(img, box)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []uint8{1, 0, 0, 0, 1, 0, 0, 0, 1}, got.Data())
}

// TestLabel_RowMajorNumbering checks labels follow each component's first cell.
func TestLabel_RowMajorNumbering(t *testing.T) {
	img, err := ndarray.FromSlice(ndarray.Shape{3, 5}, []int32{
		0, 1, 1, 0, 2,
		0, 1, 0, 2, 2,
		3, 0, 2, 2, 0,
	})
	require.NoError(t, err)
	bc, err := strel.Cross[int32](2)
	require.NoError(t, err)

	got, n, err := label.Label(img, bc)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int32{
		0, 1, 1, 0, 2,
		0, 1, 0, 2, 2,
		3, 0, 2, 2, 0,
	}, got.Data())
	require.Equal(t, []int{6, 3, 5, 1}, label.Sizes(got, n))

	// joining (2,0) to the first component through (1,0) leaves two labels
	img.Set(ndarray.Position{1, 0}, 1)
	got, n, err = label.Label(img, bc)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int32{
		0, 1, 1, 0, 2,
		1, 1, 0, 2, 2,
		1, 0, 2, 2, 0,
	}, got.Data())
	require.Equal(t, []int{5, 5, 5}, label.Sizes(got, n))
}

// TestLabel_Empty returns zero components for a background-only image.
func TestLabel_Empty(t *testing.T) {
	img, err := ndarray.New[uint16](ndarray.Shape{4, 4, 4})
	require.NoError(t, err)
	bc, err := strel.Box[uint16](3)
	require.NoError(t, err)

	got, n, err := label.Label(img, bc)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, make([]uint16, 64), got.Data())
}

// TestLabel_TooManyLabels overflows an int8 label space.
func TestLabel_TooManyLabels(t *testing.T) {
	data := make([]int8, 2*200)
	for i := 0; i < len(data); i += 2 {
		data[i] = 1 // 200 isolated cells
	}
	img, err := ndarray.FromSlice(ndarray.Shape{len(data)}, data)
	require.NoError(t, err)
	bc, err := strel.Cross[int8](1)
	require.NoError(t, err)

	_, _, err = label.Label(img, bc)
	require.ErrorIs(t, err, label.ErrTooManyLabels)
}

// TestSizes_Bounds ignores out-of-range labels and rejects a negative count.
func TestSizes_Bounds(t *testing.T) {
	labels, err := ndarray.FromSlice(ndarray.Shape{5}, []int16{0, 1, 4, -1, 1})
	require.NoError(t, err)

	require.Equal(t, []int{1, 2}, label.Sizes(labels, 1))
	require.Equal(t, []int{1}, label.Sizes(labels, 0))
	require.NotPanics(t, func() {
		require.Nil(t, label.Sizes(labels, -1))
	})
}
