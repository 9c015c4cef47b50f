//go:build !cgo

package viewer

import (
	"errors"
	"image"
)

// Show reports that no window backend is available in builds without cgo.
func Show(_ *image.RGBA, _ string) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use --headless")
}
