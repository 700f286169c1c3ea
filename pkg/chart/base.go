package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// newPlot returns a plot carrying the title, axis labels, fonts and legend
// placement shared by every kind.
func newPlot(c *Common, st Style) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = color.White

	p.Title.Text = c.Title
	p.Title.TextStyle.Font = st.Font(titleScale)
	p.Title.Padding = vg.Points(st.FontSize * 0.5)

	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = st.Font(labelScale)
		ax.Tick.Label.Font = st.Font(tickScale)
	}

	p.Legend.TextStyle.Font = st.Font(labelScale)
	switch c.LegendPosition {
	case LegendUpperLeft:
		p.Legend.Top, p.Legend.Left = true, true
	case LegendLowerRight:
		p.Legend.Top, p.Legend.Left = false, false
	case LegendLowerLeft:
		p.Legend.Top, p.Legend.Left = false, true
	default:
		p.Legend.Top, p.Legend.Left = true, false
	}
	p.Legend.Padding = vg.Points(2)
	return p
}

// legendVisible reports whether legend entries should be added.
func legendVisible(c *Common) bool {
	return c.ShowLegend && c.LegendPosition != LegendNone
}

// addGrid adds light grid lines behind everything added later.
func addGrid(p *plot.Plot, vertical bool) {
	g := plotter.NewGrid()
	g.Horizontal.Color = gridColor
	g.Horizontal.Width = vg.Points(0.5)
	if vertical {
		g.Vertical.Color = gridColor
		g.Vertical.Width = vg.Points(0.5)
	} else {
		g.Vertical.Color = nil
	}
	p.Add(g)
}

// markerRadius converts a marker area in points² to a circle radius.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

// newScatterLayer builds a filled-circle scatter layer.
func newScatterLayer(xys plotter.XYs, size float64, c color.Color, alpha float64) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{
		Color:  withAlpha(c, alpha),
		Radius: markerRadius(size),
		Shape:  draw.CircleGlyph{},
	}
	return s, nil
}

// finitePairs returns the points where both coordinates are finite.
func finitePairs(xs, ys []float64) plotter.XYs {
	out := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if isFinite(xs[i]) && isFinite(ys[i]) {
			out = append(out, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// rotateXTicks slants the x tick labels by 45° so long names don't collide.
func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
}

// nominalX labels integer x positions with names.
func nominalX(p *plot.Plot, names []string) {
	if len(names) == 0 {
		return
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(names)) - 0.5
}

// slotWidth returns the drawable width of one of n evenly spaced slots on
// a figure w inches wide, scaled by fill.
func slotWidth(w float64, n int, fill float64) vg.Length {
	if n < 1 {
		n = 1
	}
	data := vg.Length(w) * vg.Inch * 0.8
	return data / vg.Length(n) * vg.Length(fill)
}
