// Package ndmorph is a small toolkit for mathematical morphology on
// n-dimensional integer arrays: binary erosion, weighted dilation, seeded
// (marker-controlled) watershed and connected-component labeling.
//
// What is inside?
//
//	ndarray/   — dense row-major Array[T] over every fixed-width integer type,
//	             Shape, Position and the runtime Kind tag
//	strel/     — structuring elements: center, active offsets, cross and box
//	morph/     — Erode and Dilate
//	watershed/ — CWatershed, a priority flood from labeled markers
//	label/     — connected components, used to build watershed markers
//	dispatch/  — type-erased entry points with aggregated operand validation
//	ndio/      — JSON and grayscale image codecs (PNG, GIF, JPEG, BMP, TIFF)
//	cmd/ndmorph — command-line front end
//
// Generic cores work on *ndarray.Array[T]; dispatch accepts ndarray.Tensor
// values whose element type is only known at run time, validates them, and
// forwards to the matching instantiation.
//
// Quick start:
//
//	img, _ := ndarray.FromSlice(ndarray.Shape{1, 5}, []uint8{1, 1, 1, 0, 1})
//	bc, _ := strel.Cross[uint8](2)
//	out, _ := morph.Erode(img, bc)
//	fmt.Println(out) // [[1, 1, 0, 0, 0]]
//
// Every operation allocates a fresh result; inputs are never modified.
// Nothing is shared between calls, so distinct calls may run concurrently.
package ndmorph
