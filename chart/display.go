package chart

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// rgbaDisplay lets tinyfont draw straight into an RGBA image.
type rgbaDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*rgbaDisplay)(nil)

func newRGBADisplay(img *image.RGBA) *rgbaDisplay {
	return &rgbaDisplay{img: img}
}

func (d *rgbaDisplay) Size() (x, y int16) {
	if d.img == nil {
		return 0, 0
	}
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.img == nil {
		return
	}
	p := image.Pt(int(x), int(y))
	if !p.In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

// Display is a no-op: pixels land in the image as they are set.
func (d *rgbaDisplay) Display() error { return nil }

func (d *rgbaDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.img == nil {
		return nil
	}
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(d.img.Bounds())
	if r.Empty() {
		return nil
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d.img.SetRGBA(px, py, c)
		}
	}
	return nil
}
