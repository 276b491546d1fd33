package watershed_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/strel"
	"github.com/katalvlaran/ndmorph/watershed"
)

// BenchmarkCWatershed measures flooding a 512×512 random image from 64 seeds
// with 8-connectivity.
// Complexity: O(N·9 + N·log N)
func BenchmarkCWatershed(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(42))
	img, _ := ndarray.New[uint16](ndarray.Shape{n, n})
	markers, _ := ndarray.New[uint16](ndarray.Shape{n, n})
	for i := 0; i < img.Len(); i++ {
		img.SetIndex(i, uint16(rng.Intn(1000)))
	}
	for s := 1; s <= 64; s++ {
		markers.SetIndex(rng.Intn(img.Len()), uint16(s))
	}
	bc, _ := strel.Box[uint16](2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = watershed.CWatershed(img, markers, bc)
	}
}
