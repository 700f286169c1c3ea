package chart

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
	"github.com/matzehuels/bioplot/pkg/render"
)

// Render draws the request's plot from f. Errors, including panics raised
// by the plotting library, come back as RENDER_FAILED unless they already
// carry a code.
func Render(req Request, f *frame.Frame, st Style) (fig *render.Figure, err error) {
	defer func() {
		if r := recover(); r != nil {
			fig = nil
			err = errors.New(errors.ErrCodeRender, "%s: %v", req.Kind(), r)
		}
	}()

	var p, bar *plot.Plot
	switch r := req.(type) {
	case *VolcanoRequest:
		p, err = renderVolcano(r, f, st)
	case *ScatterRequest:
		p, err = renderScatter(r, f, st)
	case *UMAPRequest:
		p, err = renderUMAP(r, f, st)
	case *HeatmapRequest:
		p, bar, err = renderHeatmap(r, f, st)
	case *BoxRequest:
		p, err = renderBox(r, f, st)
	case *BarRequest:
		p, err = renderBar(r, f, st)
	default:
		panic(fmt.Sprintf("chart: unhandled request type %T", req))
	}
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeRender, err, "%s", req.Kind())
		}
		return nil, err
	}

	c := req.Base()
	fig = render.New(p, c.Width, c.Height)
	fig.Colorbar = bar
	return fig, nil
}
