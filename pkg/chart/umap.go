package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/matzehuels/bioplot/pkg/frame"
)

// UMAP input columns.
const (
	ColUMAP1    = "UMAP1"
	ColUMAP2    = "UMAP2"
	ColCluster  = "cluster"
	ColCellName = "cell_name"
)

func renderUMAP(r *UMAPRequest, f *frame.Frame, st Style) (*plot.Plot, error) {
	xs, err := numeric(f, ColUMAP1)
	if err != nil {
		return nil, err
	}
	ys, err := numeric(f, ColUMAP2)
	if err != nil {
		return nil, err
	}
	clusters, err := column(f, ColCluster)
	if err != nil {
		return nil, err
	}

	names := clusters.Unique()
	colors, err := SamplePalette(r.Palette, len(names))
	if err != nil {
		return nil, err
	}
	slot := make(map[string]int, len(names))
	for i, n := range names {
		slot[n] = i
	}
	points := make([]plotter.XYs, len(names))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		k := slot[clusters.String(i)]
		points[k] = append(points[k], plotter.XY{X: xs[i], Y: ys[i]})
	}

	p := newPlot(&r.Common, st)
	if r.ShowGrid {
		addGrid(p, true)
	}
	for i, name := range names {
		s, err := newScatterLayer(points[i], r.PointSize, colors[i], r.PointAlpha)
		if err != nil {
			return nil, err
		}
		if len(points[i]) > 0 {
			p.Add(s)
		}
		if legendVisible(&r.Common) {
			p.Legend.Add(name, s)
		}
	}

	if !r.ShowAxes {
		p.X.Tick.Marker = plot.ConstantTicks{}
		p.Y.Tick.Marker = plot.ConstantTicks{}
	}
	return p, nil
}
