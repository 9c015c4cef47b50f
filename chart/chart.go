// Package chart draws a trajectory as a 2D line plot and rasterizes it.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrInvalidSize is returned for image dimensions that cannot hold a plot.
var ErrInvalidSize = errors.New("invalid chart size")

const (
	minSide = 64
	maxSide = math.MaxInt16
)

var (
	colorLine      = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorPlotBG    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorCaptionBG = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorCaptionFG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// Options controls the look of the chart. Width and Height are in pixels.
type Options struct {
	Width  int
	Height int

	Title  string
	XLabel string
	YLabel string
	Grid   bool

	// Caption lines are written in a strip under the plot; none means no strip.
	Caption []string
}

// DefaultOptions returns a 640x480 chart titled "Projectile Motion" with a grid.
func DefaultOptions() Options {
	return Options{
		Width:  640,
		Height: 480,
		Title:  "Projectile Motion",
		XLabel: "Horizontal Distance (m)",
		YLabel: "Vertical Distance (m)",
		Grid:   true,
	}
}

func (o Options) validate() error {
	if o.Width < minSide || o.Height < minSide || o.Width > maxSide || o.Height > maxSide {
		return fmt.Errorf("%w: %dx%d, each side must be within [%d, %d]", ErrInvalidSize, o.Width, o.Height, minSide, maxSide)
	}
	if o.Height-captionHeight(len(o.Caption)) < minSide {
		return fmt.Errorf("%w: %d caption lines leave no room for the plot", ErrInvalidSize, len(o.Caption))
	}
	return nil
}

// Draw plots series as a connected line of Y against X and returns the
// rendered image, sized exactly Width x Height.
func Draw(series plotter.XYer, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}

	line, err := plotter.NewLine(series)
	if err != nil {
		return nil, fmt.Errorf("plot line: %w", err)
	}
	line.Color = colorLine
	line.Width = vg.Points(1.5)
	p.Add(line)

	strip := captionHeight(len(opts.Caption))
	plotH := opts.Height - strip

	canvas := newCanvas(opts.Width, plotH)
	p.Draw(vgdraw.New(canvas))

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorPlotBG), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, opts.Width, plotH), canvas.Image(), image.Point{}, draw.Src)

	if strip > 0 {
		d := newRGBADisplay(img)
		writeCaption(d, 0, int16(plotH), int16(opts.Width), opts.Caption)
	}
	return img, nil
}

// newCanvas returns a canvas whose image is exactly w x h pixels. At 72 dpi
// one point is one pixel; vgimg.New would use its 96 dpi default.
func newCanvas(w, h int) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(vg.Length(w), vg.Length(h)),
		vgimg.UseDPI(72),
	)
}
