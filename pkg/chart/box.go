package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

// Box input columns.
const (
	ColGroup = "group"
	ColValue = "value"
)

var medianColor = color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}

// BoxGroup is the data behind one box.
type BoxGroup struct {
	Label  string
	Values []float64 // finite values only
}

// BoxGroups splits the frame into boxes. With group and value columns there
// is one box per distinct group in first-seen order; otherwise one box per
// numeric column. Missing values are dropped, so a group may be empty.
func BoxGroups(f *frame.Frame) ([]BoxGroup, error) {
	if f.Has(ColGroup, ColValue) {
		groups, _ := f.Column(ColGroup)
		values, err := numeric(f, ColValue)
		if err != nil {
			return nil, err
		}
		names := groups.Unique()
		slot := make(map[string]int, len(names))
		out := make([]BoxGroup, len(names))
		for i, n := range names {
			slot[n] = i
			out[i].Label = n
		}
		for i, v := range values {
			if isFinite(v) {
				k := slot[groups.String(i)]
				out[k].Values = append(out[k].Values, v)
			}
		}
		return out, nil
	}

	cols := f.NumericColumns()
	if len(cols) == 0 {
		return nil, errors.New(errors.ErrCodeRender, "no numeric columns to plot")
	}
	out := make([]BoxGroup, len(cols))
	for i, c := range cols {
		out[i] = BoxGroup{Label: c.Name, Values: c.Finite()}
	}
	return out, nil
}

func renderBox(r *BoxRequest, f *frame.Frame, st Style) (*plot.Plot, error) {
	groups, err := BoxGroups(f)
	if err != nil {
		return nil, err
	}

	p := newPlot(&r.Common, st)
	if r.ShowGrid {
		addGrid(p, false)
	}
	width := slotWidth(r.Width, len(groups), 0.5)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		if len(g.Values) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, err
		}
		b.MedianStyle.Color = medianColor
		b.MedianStyle.Width = vg.Points(1.5)
		if !r.ShowOutliers {
			b.GlyphStyle.Radius = 0
		}
		p.Add(b)
	}
	nominalX(p, labels)
	return p, nil
}
