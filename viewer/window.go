//go:build cgo

package viewer

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show opens a desktop window that displays img at its native size.
// It blocks until the window is closed or Escape is pressed. ebiten owns
// the calling goroutine for the lifetime of the window and allows only one
// window per process.
func Show(img *image.RGBA, title string) error {
	if img == nil || img.Bounds().Empty() {
		return ErrNoImage
	}

	w := &window{src: img}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(img.Bounds().Dx(), img.Bounds().Dy())
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("show window: %w", err)
	}
	return nil
}

type window struct {
	src *image.RGBA
	img *ebiten.Image
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImageFromImage(w.src)
	}
	screen.DrawImage(w.img, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.src.Bounds()
	return b.Dx(), b.Dy()
}
