package sink

import (
	"image/color"

	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/matzehuels/bioplot/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	embed bool
}

// WithPDFEmbeddedFonts controls font embedding (default true).
func WithPDFEmbeddedFonts(embed bool) PDFOption {
	return func(r *pdfRenderer) { r.embed = embed }
}

// RenderPDF renders the figure as a one-page PDF.
func RenderPDF(fig *render.Figure, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{embed: true}
	for _, opt := range opts {
		opt(&r)
	}
	if err := checkSize(fig); err != nil {
		return nil, err
	}

	c := vgpdf.New(fig.Width, fig.Height)
	c.EmbedFonts(r.embed)
	paint(c, fig, color.White)
	return encode(c, "pdf")
}
