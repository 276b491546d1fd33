// SPDX-License-Identifier: MIT

package ndio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ndmorph/ndarray"
	"go.uber.org/multierr"
)

// formatOf maps a file extension to a codec name: "json" or an image format.
func formatOf(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "json":
		return "json", nil
	case "png", "bmp", "gif":
		return ext, nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "tif", "tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ReadFile loads an array from path, choosing the codec by extension.
func ReadFile(path string) (ndarray.Tensor, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if format == "json" {
		t, err := DecodeJSON(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	}
	t, _, err := DecodeImage(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// WriteFile stores t at path, choosing the codec by extension. GIF and JPEG
// are read-only. t is checked against the codec before path is created, and
// a file whose write fails is removed.
func WriteFile(path string, t ndarray.Tensor) (err error) {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	if format == "gif" || format == "jpeg" {
		return fmt.Errorf("%s: writing %s: %w", path, format, ErrUnsupportedFormat)
	}

	var encode func(io.Writer) error
	if format == "json" {
		doc, err := toDocument(t)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		encode = func(w io.Writer) error { return json.NewEncoder(w).Encode(doc) }
	} else {
		img, err := toImage(t)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		encode = func(w io.Writer) error { return encodeImage(w, format, img) }
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			err = multierr.Append(err, os.Remove(path))
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return err
	}

	return w.Flush()
}
