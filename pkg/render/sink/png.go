package sink

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/matzehuels/bioplot/pkg/render"
)

// DefaultDPI is the PNG resolution used without [WithDPI].
const DefaultDPI = 300

// Raster limits. A canvas is held in memory as RGBA, so MaxPixels caps it
// at 512 MiB.
const (
	MaxPixelsPerSide = 1 << 16
	MaxPixels        = 1 << 27
)

// CheckRaster returns an error if a w×h canvas at dpi exceeds the raster
// limits.
func CheckRaster(w, h vg.Length, dpi int) error {
	px := math.Ceil(w.Dots(float64(dpi)))
	py := math.Ceil(h.Dots(float64(dpi)))
	if px > MaxPixelsPerSide || py > MaxPixelsPerSide {
		return fmt.Errorf("image size %.0fx%.0f pixels at %d dpi exceeds %d pixels per side", px, py, dpi, MaxPixelsPerSide)
	}
	if px*py > MaxPixels {
		return fmt.Errorf("image size %.0fx%.0f pixels at %d dpi exceeds %d pixels", px, py, dpi, MaxPixels)
	}
	return nil
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi int
	bg  color.Color
}

// WithDPI sets the raster resolution in dots per inch.
func WithDPI(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// WithBackground sets the PNG background colour (default white).
func WithBackground(c color.Color) PNGOption {
	return func(r *pngRenderer) { r.bg = c }
}

// RenderPNG rasterizes the figure.
func RenderPNG(fig *render.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI, bg: color.White}
	for _, opt := range opts {
		opt(&r)
	}
	if err := checkSize(fig); err != nil {
		return nil, err
	}
	if r.dpi <= 0 {
		return nil, fmt.Errorf("invalid dpi %d", r.dpi)
	}
	if err := CheckRaster(fig.Width, fig.Height, r.dpi); err != nil {
		return nil, err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(fig.Width, fig.Height),
		vgimg.UseDPI(r.dpi),
		vgimg.UseBackgroundColor(r.bg),
	)
	paint(c, fig, r.bg)
	return encode(vgimg.PngCanvas{Canvas: c}, "png")
}
