// SPDX-License-Identifier: MIT

package ndio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"strings"

	"github.com/katalvlaran/ndmorph/ndarray"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DecodeImage decodes a PNG, GIF, JPEG, BMP or TIFF image into a 2-D
// grayscale array of shape [height, width] and reports the format name.
// 16-bit gray sources become uint16 arrays; everything else is converted
// to 8-bit luminance.
func DecodeImage(r io.Reader) (ndarray.Tensor, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("ndio: decode image: %w", err)
	}
	b := img.Bounds()
	shape := ndarray.Shape{b.Dy(), b.Dx()}

	if img.ColorModel() == color.Gray16Model {
		a, err := ndarray.New[uint16](shape)
		if err != nil {
			return nil, "", err
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
				a.Set(ndarray.Position{y - b.Min.Y, x - b.Min.X}, g.Y)
			}
		}

		return a, format, nil
	}

	a, err := ndarray.New[uint8](shape)
	if err != nil {
		return nil, "", err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			a.Set(ndarray.Position{y - b.Min.Y, x - b.Min.X}, g.Y)
		}
	}

	return a, format, nil
}

// EncodeImage writes a 2-D uint8 or uint16 array as a grayscale image in the
// named format ("png", "bmp" or "tiff"/"tif").
func EncodeImage(w io.Writer, format string, t ndarray.Tensor) error {
	img, err := toImage(t)
	if err != nil {
		return err
	}

	return encodeImage(w, format, img)
}

// encodeImage writes img in the named format.
func encodeImage(w io.Writer, format string, img image.Image) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("image format %q: %w", format, ErrUnsupportedFormat)
	}
}

// toImage wraps a 2-D gray array as an image.Image.
func toImage(t ndarray.Tensor) (image.Image, error) {
	if t == nil || t.NDim() != 2 {
		return nil, fmt.Errorf("need a 2-D array: %w", ErrUnsupportedImage)
	}
	shape := t.Shape()
	rect := image.Rect(0, 0, shape[1], shape[0])

	switch a := t.(type) {
	case *ndarray.Array[uint8]:
		img := image.NewGray(rect)
		a.Each(func(_ int, pos ndarray.Position, v uint8) {
			img.SetGray(pos[1], pos[0], color.Gray{Y: v})
		})
		return img, nil
	case *ndarray.Array[uint16]:
		img := image.NewGray16(rect)
		a.Each(func(_ int, pos ndarray.Position, v uint16) {
			img.SetGray16(pos[1], pos[0], color.Gray16{Y: v})
		})
		return img, nil
	default:
		return nil, fmt.Errorf("%s array: %w", t.Kind(), ErrUnsupportedImage)
	}
}
