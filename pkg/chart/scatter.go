package chart

import (
	"gonum.org/v1/plot"

	"github.com/matzehuels/bioplot/pkg/frame"
)

// Scatter input columns.
const (
	ColX = "x"
	ColY = "y"
)

func renderScatter(r *ScatterRequest, f *frame.Frame, st Style) (*plot.Plot, error) {
	xs, err := numeric(f, ColX)
	if err != nil {
		return nil, err
	}
	ys, err := numeric(f, ColY)
	if err != nil {
		return nil, err
	}

	p := newPlot(&r.Common, st)
	if r.ShowGrid {
		addGrid(p, true)
	}
	xys := finitePairs(xs, ys)
	s, err := newScatterLayer(xys, r.PointSize, r.PointColor, r.PointAlpha)
	if err != nil {
		return nil, err
	}
	if len(xys) > 0 {
		p.Add(s)
	}
	return p, nil
}
