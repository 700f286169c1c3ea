package chart

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

// heatmapColors is the number of discrete colours in the heat map palette.
// It must be even: palette.Reverse drops the middle colour of odd palettes.
const heatmapColors = 256

// matrixGrid presents a matrix as a plotter.GridXYZ with row 0 at the top.
type matrixGrid struct {
	m *mat.Dense
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// HeatmapMatrix extracts the matrix, row labels and column names drawn by
// the heat map. A leading text column supplies the row labels; otherwise
// the frame's own row labels are used.
func HeatmapMatrix(f *frame.Frame) (*mat.Dense, []string, []string, error) {
	m, cols, err := f.Matrix()
	if err != nil {
		return nil, nil, nil, errors.Wrap(errors.ErrCodeRender, err, "heatmap")
	}
	rows := f.RowLabels()
	if first, err := f.ColumnAt(0); err == nil && first.Kind() == frame.Text {
		rows = first.Strings()
	}
	return m, rows, cols, nil
}

// finiteRange returns the smallest and largest finite entries of m.
func finiteRange(m *mat.Dense) (lo, hi float64, ok bool) {
	r, c := m.Dims()
	vals := make([]float64, 0, r*c)
	for i := range r {
		for _, v := range m.RawRowView(i) {
			if isFinite(v) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return 0, 0, false
	}
	lo, hi = floats.Min(vals), floats.Max(vals)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi, true
}

func renderHeatmap(r *HeatmapRequest, f *frame.Frame, st Style) (*plot.Plot, *plot.Plot, error) {
	m, rowNames, colNames, err := HeatmapMatrix(f)
	if err != nil {
		return nil, nil, err
	}
	lo, hi, ok := finiteRange(m)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeRender, "heatmap matrix has no finite values")
	}

	cm, err := Colormap(r.Colormap)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeRender, err, "heatmap")
	}
	cm.SetMin(0)
	cm.SetMax(1)
	pal := cm.Palette(heatmapColors)
	colors := pal.Colors()

	hm := plotter.NewHeatMap(matrixGrid{m}, pal)
	hm.Min, hm.Max = lo, hi
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.White

	p := newPlot(&r.Common, st)
	p.Add(hm)

	nrows, ncols := m.Dims()
	p.X.Tick.Marker = plot.ConstantTicks{}
	p.Y.Tick.Marker = plot.ConstantTicks{}
	if r.ShowColumnNames {
		ticks := make([]plot.Tick, ncols)
		for j := range ticks {
			ticks[j] = plot.Tick{Value: float64(j), Label: colNames[j]}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
		rotateXTicks(p)
	}
	if r.ShowRowNames {
		ticks := make([]plot.Tick, nrows)
		for i := range ticks {
			ticks[i] = plot.Tick{Value: float64(nrows - 1 - i), Label: rowNames[i]}
		}
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}

	if !r.ShowColorbar {
		return p, nil, nil
	}
	bar, err := colorbarPlot(r, lo, hi, st)
	if err != nil {
		return nil, nil, err
	}
	return p, bar, nil
}

// colorbarPlot builds the vertical colour bar keyed to [lo, hi].
func colorbarPlot(r *HeatmapRequest, lo, hi float64, st Style) (*plot.Plot, error) {
	cm, err := Colormap(r.Colormap)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "colorbar")
	}
	cm.SetMin(lo)
	cm.SetMax(hi)

	p := plot.New()
	p.BackgroundColor = nil
	p.HideX()
	p.Y.Label.Text = r.ColorbarLabel
	p.Y.Label.TextStyle.Font = st.Font(labelScale)
	p.Y.Tick.Label.Font = st.Font(tickScale)
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: heatmapColors})
	return p, nil
}
