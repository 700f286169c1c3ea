package chart

import (
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/fonts"
	"github.com/matzehuels/bioplot/pkg/render/sink"
)

// Style defaults.
const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = 12
	DefaultDPI        = 300
	PreviewDPI        = 150
)

// Style is the rendering style shared by every figure of a request.
type Style struct {
	FontFamily string
	FontSize   float64 // points
	DPI        int     // high-resolution raster output
}

// DefaultStyle returns the style used when no parameters override it.
func DefaultStyle() Style {
	return Style{FontFamily: DefaultFontFamily, FontSize: DefaultFontSize, DPI: DefaultDPI}
}

// DecodeStyle reads fontFamily, fontSize and dpi from params.
func DecodeStyle(params map[string]any) (Style, error) {
	r := newParamReader(params)
	s := Style{
		FontFamily: r.str("fontFamily", DefaultFontFamily),
		FontSize:   r.positive("fontSize", DefaultFontSize),
		DPI:        int(r.positive("dpi", DefaultDPI)),
	}
	if s.DPI < 1 {
		s.DPI = 1
	}
	return s, r.err()
}

// CheckRaster reports whether req's figure fits the raster limits at both
// the preview and the high-resolution DPI.
func (s Style) CheckRaster(req Request) error {
	c := req.Base()
	w, h := vg.Length(c.Width)*vg.Inch, vg.Length(c.Height)*vg.Inch
	for _, dpi := range []int{PreviewDPI, s.DPI} {
		if err := sink.CheckRaster(w, h, dpi); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidParameters, err, "width, height and dpi")
		}
	}
	return nil
}

// Font returns the style's font scaled relative to the base size.
func (s Style) Font(scale float64) font.Font {
	f, _ := fonts.Resolve(s.FontFamily, vg.Length(s.FontSize*scale))
	return f
}

// KnownFamily reports whether FontFamily maps onto a bundled face rather
// than the sans-serif fallback.
func (s Style) KnownFamily() bool {
	_, ok := fonts.Resolve(s.FontFamily, 0)
	return ok
}

// Relative font sizes.
const (
	titleScale = 1.2
	labelScale = 1.0
	tickScale  = 1.0
	noteScale  = 0.8
)
