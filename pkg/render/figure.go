package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultColorbarWidth is the width of the colour bar strip.
const DefaultColorbarWidth = 1.2 * vg.Inch

// Figure is a rendered plot ready for export.
type Figure struct {
	Plot          *plot.Plot
	Colorbar      *plot.Plot // optional
	ColorbarWidth vg.Length  // zero means DefaultColorbarWidth
	Width         vg.Length
	Height        vg.Length
}

// New returns a figure of w×h inches.
func New(p *plot.Plot, w, h float64) *Figure {
	return &Figure{Plot: p, Width: vg.Length(w) * vg.Inch, Height: vg.Length(h) * vg.Inch}
}

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Colorbar == nil {
		f.Plot.Draw(c)
		return
	}

	cbw := f.ColorbarWidth
	if cbw <= 0 {
		cbw = DefaultColorbarWidth
	}
	if avail := c.Max.X - c.Min.X; cbw > avail/2 {
		cbw = avail / 2
	}

	main := draw.Crop(c, 0, -cbw, 0, 0)
	data := f.Plot.DataCanvas(main)
	f.Plot.Draw(main)

	strip := draw.Crop(c, (c.Max.X-c.Min.X)-cbw, 0, 0, 0)
	strip.Min.Y = data.Min.Y
	strip.Max.Y = data.Max.Y
	f.Colorbar.Draw(strip)
}
