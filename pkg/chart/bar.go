package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

// Bar input columns.
const ColCategory = "category"

// BarData returns the bar labels and heights. It uses the category and
// value columns when both exist, and otherwise the first two columns.
// Missing heights are drawn as zero.
func BarData(f *frame.Frame) ([]string, []float64, error) {
	var cats *frame.Column
	var heights []float64
	if f.Has(ColCategory, ColValue) {
		cats, _ = f.Column(ColCategory)
		vs, err := numeric(f, ColValue)
		if err != nil {
			return nil, nil, err
		}
		heights = vs
	} else {
		if f.Width() < 2 {
			return nil, nil, errors.New(errors.ErrCodeRender,
				"bar plot needs category and value columns or at least two columns, got %d", f.Width())
		}
		cats, _ = f.ColumnAt(0)
		second, _ := f.ColumnAt(1)
		if second.Kind() != frame.Numeric {
			return nil, nil, errors.New(errors.ErrCodeRender, "column %q is not numeric", second.Name)
		}
		heights = second.Float64s()
	}

	values := make([]float64, len(heights))
	for i, v := range heights {
		if !math.IsNaN(v) {
			values[i] = v
		}
	}
	return cats.Strings(), values, nil
}

// BarLayers puts repeated categories on one slot, in first-seen order.
// Layer k holds each category's (k+1)-th height and zero where a category
// has fewer occurrences, so later rows draw over earlier ones.
func BarLayers(labels []string, values []float64) ([]string, [][]float64) {
	slot := make(map[string]int)
	var cats []string
	var layers [][]float64
	seen := make([]int, 0, len(labels))
	for i, label := range labels {
		j, ok := slot[label]
		if !ok {
			j = len(cats)
			slot[label] = j
			cats = append(cats, label)
			seen = append(seen, 0)
		}
		k := seen[j]
		seen[j]++
		if k == len(layers) {
			layers = append(layers, make([]float64, len(labels)))
		}
		layers[k][j] = values[i]
	}
	for k := range layers {
		layers[k] = layers[k][:len(cats)]
	}
	return cats, layers
}

func renderBar(r *BarRequest, f *frame.Frame, st Style) (*plot.Plot, error) {
	labels, values, err := BarData(f)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeRender, "no bars to draw")
	}

	p := newPlot(&r.Common, st)
	if r.ShowGrid {
		addGrid(p, false)
	}
	cats, layers := BarLayers(labels, values)
	for _, layer := range layers {
		bars, err := plotter.NewBarChart(plotter.Values(layer), slotWidth(r.Width, len(cats), 0.8))
		if err != nil {
			return nil, err
		}
		bars.Color = r.BarColor
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	nominalX(p, cats)
	rotateXTicks(p)
	return p, nil
}
