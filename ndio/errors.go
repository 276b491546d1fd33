// SPDX-License-Identifier: MIT

package ndio

import "errors"

// Sentinel errors for ndio codecs.
var (
	// ErrMalformed indicates a JSON array document that cannot be interpreted.
	ErrMalformed = errors.New("ndio: malformed array document")

	// ErrValueRange indicates a value that does not fit the declared kind.
	ErrValueRange = errors.New("ndio: value out of range for kind")

	// ErrUnsupportedImage indicates an array that cannot be written as an image.
	ErrUnsupportedImage = errors.New("ndio: array cannot be encoded as an image")

	// ErrUnsupportedFormat indicates a file extension or format without a codec.
	ErrUnsupportedFormat = errors.New("ndio: unsupported format")
)
