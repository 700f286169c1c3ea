package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/bioplot/pkg/render"
)

// canvas is a vg canvas that can encode itself.
type canvas interface {
	vg.CanvasSizer
	io.WriterTo
}

// paint fills the page with bg and draws fig onto it.
func paint(c vg.CanvasSizer, fig *render.Figure, bg color.Color) {
	dc := draw.New(c)
	if bg != nil {
		dc.SetColor(bg)
		dc.Fill(dc.Rectangle.Path())
	}
	fig.Draw(dc)
}

func encode(c canvas, format string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

func checkSize(fig *render.Figure) error {
	if fig == nil || fig.Plot == nil {
		return fmt.Errorf("empty figure")
	}
	if fig.Width <= 0 || fig.Height <= 0 {
		return fmt.Errorf("invalid figure size %v×%v", fig.Width, fig.Height)
	}
	return nil
}
