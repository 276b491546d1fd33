// SPDX-License-Identifier: MIT

// Package ndio reads and writes ndarray values.
//
// Formats:
//
//   - JSON: {"kind":"uint8","shape":[2,3],"data":[1,2,3,4,5,6]}, with data
//     in row-major order. Numbers are decoded exactly (no float64 detour),
//     so the full uint64/int64 range round-trips.
//   - Images: PNG, GIF and JPEG (standard library) and BMP and TIFF
//     (golang.org/x/image) decode to a 2-D [height, width] grayscale array:
//     *ndarray.Array[uint16] for 16-bit gray sources, *ndarray.Array[uint8]
//     otherwise. PNG, BMP and TIFF can be written from 2-D uint8 or uint16
//     arrays.
//
// ReadFile and WriteFile choose the codec from the file extension.
//
// Errors:
//
//   - ErrMalformed:         JSON document missing fields or with a bad kind.
//   - ErrValueRange:        a JSON number does not fit the declared kind.
//   - ErrUnsupportedImage:  array is not 2-D uint8/uint16 for image output.
//   - ErrUnsupportedFormat: extension or format name without a codec.
package ndio
