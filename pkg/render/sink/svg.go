package sink

import (
	"image/color"

	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/bioplot/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embed bool
}

// WithEmbeddedFonts embeds the font files in the SVG so it renders the same
// on machines without the Liberation fonts installed.
func WithEmbeddedFonts(embed bool) SVGOption {
	return func(r *svgRenderer) { r.embed = embed }
}

// RenderSVG renders the figure as SVG.
func RenderSVG(fig *render.Figure, opts ...SVGOption) ([]byte, error) {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if err := checkSize(fig); err != nil {
		return nil, err
	}

	c := vgsvg.NewWith(vgsvg.UseWH(fig.Width, fig.Height), vgsvg.EmbedFonts(r.embed))
	paint(c, fig, color.White)
	return encode(c, "svg")
}
