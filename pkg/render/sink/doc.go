// Package sink encodes figures into output formats.
//
// # Overview
//
// A "sink" draws a [render.Figure] onto a format-specific canvas and returns
// the encoded bytes:
//
//   - PNG: raster output at a chosen resolution ([RenderPNG], [WithDPI])
//   - SVG: scalable vector graphics ([RenderSVG])
//   - PDF: single-page print-ready output ([RenderPDF])
//
// Every sink paints an opaque background (white by default) before drawing,
// and the figure fills the whole page, so no margins need trimming.
//
//	png, err := sink.RenderPNG(fig, sink.WithDPI(150))
//	svg, err := sink.RenderSVG(fig, sink.WithEmbeddedFonts(true))
//	pdf, err := sink.RenderPDF(fig)
//
// All three canvases come from gonum.org/v1/plot/vg (vgimg, vgsvg, vgpdf), so
// no external converter is needed.
package sink
