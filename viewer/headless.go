// Package viewer shows a rendered chart: in a desktop window, or as a PNG
// file when running headless.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// ErrNoImage is returned when there is nothing to show.
var ErrNoImage = errors.New("no image to show")

// WritePNG returns a sink with the same shape as Show that encodes the
// image to path instead of opening a window. The title is ignored.
func WritePNG(path string) func(img *image.RGBA, title string) error {
	return func(img *image.RGBA, _ string) error {
		if img == nil || img.Bounds().Empty() {
			return ErrNoImage
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %q: %w", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return fmt.Errorf("encode %q: %w", path, err)
		}
		return f.Close()
	}
}
