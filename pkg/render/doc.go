// Package render holds a finished figure and draws it onto a canvas.
//
// # Overview
//
// A [Figure] is what a chart renderer produces: the main plot, an optional
// colour bar panel, and the page size in inches. It does not know about
// output formats; the [sink] subpackage encodes figures as PNG, SVG or PDF.
//
//	fig, err := chart.Render(req, data, style)
//	png, err := sink.RenderPNG(fig, sink.WithDPI(300))
//	svg, err := sink.RenderSVG(fig)
//
// # Layout
//
// The main plot fills the page. When a colour bar is present it gets a
// fixed-width strip on the right edge, vertically aligned with the main
// plot's data area so the bar spans the same height as the grid it keys.
package render
