package chart

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/bioplot/pkg/frame"
)

// Volcano input columns.
const (
	ColLog2FC   = "log2FC"
	ColPValue   = "pvalue"
	ColGeneName = "gene_name"
)

// Significance is the class of a gene in a volcano plot.
type Significance int

const (
	NonSignificant Significance = iota
	Upregulated
	Downregulated
)

func (s Significance) String() string {
	switch s {
	case Upregulated:
		return "Upregulated"
	case Downregulated:
		return "Downregulated"
	}
	return "Non-significant"
}

// Classify assigns each row a significance class. Every row starts
// non-significant; rows with fc >= fcThreshold and p <= pThreshold are then
// marked up, and rows with fc <= -fcThreshold and p <= pThreshold are then
// marked down. Both bounds are inclusive and the down pass runs last, so
// with a zero threshold a row at fc == 0 ends up down. NaN never passes a
// comparison and stays non-significant.
func Classify(fc, p []float64, fcThreshold, pThreshold float64) []Significance {
	out := make([]Significance, len(fc))
	for i := range out {
		if fc[i] >= fcThreshold && p[i] <= pThreshold {
			out[i] = Upregulated
		}
	}
	for i := range out {
		if fc[i] <= -fcThreshold && p[i] <= pThreshold {
			out[i] = Downregulated
		}
	}
	return out
}

// negLog10 returns -log10(v) for each value. Zero p-values map to +Inf.
func negLog10(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = -math.Log10(v)
	}
	return out
}

func renderVolcano(r *VolcanoRequest, f *frame.Frame, st Style) (*plot.Plot, error) {
	fc, err := numeric(f, ColLog2FC)
	if err != nil {
		return nil, err
	}
	pv, err := numeric(f, ColPValue)
	if err != nil {
		return nil, err
	}
	nlp := negLog10(pv)
	classes := Classify(fc, pv, r.FCThreshold, r.PThreshold)

	p := newPlot(&r.Common, st)
	if r.ShowGrid {
		addGrid(p, true)
	}

	layers := []struct {
		class Significance
		color color.Color
	}{
		{NonSignificant, r.NSColor},
		{Upregulated, r.UpColor},
		{Downregulated, r.DownColor},
	}
	for _, l := range layers {
		var xys plotter.XYs
		for i, c := range classes {
			if c == l.class && isFinite(fc[i]) && isFinite(nlp[i]) {
				xys = append(xys, plotter.XY{X: fc[i], Y: nlp[i]})
			}
		}
		s, err := newScatterLayer(xys, r.PointSize, l.color, r.PointAlpha)
		if err != nil {
			return nil, err
		}
		if len(xys) > 0 {
			p.Add(s)
		}
		if legendVisible(&r.Common) {
			p.Legend.Add(l.class.String(), s)
		}
	}

	if r.ShowThresholdLines {
		sty := draw.LineStyle{
			Color:  refLineColor,
			Width:  vg.Points(1),
			Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
		}
		p.Add(
			refLine{value: r.FCThreshold, vertical: true, style: sty},
			refLine{value: -r.FCThreshold, vertical: true, style: sty},
			refLine{value: -math.Log10(r.PThreshold), style: sty},
		)
	}

	if r.ShowGeneLabels && r.MaxLabels > 0 && f.Has(ColGeneName) {
		names, _ := f.Column(ColGeneName)
		labels, err := topGeneLabels(fc, nlp, classes, names, r.MaxLabels, st)
		if err != nil {
			return nil, err
		}
		if labels != nil {
			p.Add(labels)
		}
	}
	return p, nil
}

// topGeneLabels labels the n significant genes with the largest -log10 p.
func topGeneLabels(fc, nlp []float64, classes []Significance, names *frame.Column, n int, st Style) (*plotter.Labels, error) {
	var idx []int
	for i, c := range classes {
		if c != NonSignificant && isFinite(fc[i]) && isFinite(nlp[i]) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, nil
	}
	sort.SliceStable(idx, func(a, b int) bool { return nlp[idx[a]] > nlp[idx[b]] })
	if len(idx) > n {
		idx = idx[:n]
	}

	xyl := plotter.XYLabels{XYs: make(plotter.XYs, len(idx)), Labels: make([]string, len(idx))}
	for k, i := range idx {
		xyl.XYs[k] = plotter.XY{X: fc[i], Y: nlp[i]}
		xyl.Labels[k] = names.String(i)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font = st.Font(noteScale)
	}
	labels.Offset = vg.Point{X: vg.Points(3), Y: vg.Points(3)}
	return labels, nil
}

// refLine is a reference line spanning the whole data area at a fixed x
// (vertical) or y value. It does not widen the axis ranges.
type refLine struct {
	value    float64
	vertical bool
	style    draw.LineStyle
}

func (l refLine) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	if l.vertical {
		x := trX(l.value)
		if !c.ContainsX(x) {
			return
		}
		c.StrokeLine2(l.style, x, c.Min.Y, x, c.Max.Y)
		return
	}
	y := trY(l.value)
	if !c.ContainsY(y) {
		return
	}
	c.StrokeLine2(l.style, c.Min.X, y, c.Max.X, y)
}
