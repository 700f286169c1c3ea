// Package pkg provides the libraries behind the bioplot command.
//
// # Overview
//
// Bioplot turns a tabular dataset and a list of plot parameters into a
// figure written in four formats. The pkg directory is organized as:
//
//  1. [config] - configuration and parameters documents (JSON, TOML, YAML)
//  2. [io] and [frame] - CSV, TSV and XLSX import into typed columns
//  3. [chart] - plot kinds, parameter decoding, palettes and mock data
//  4. [render] - figure composition and the PNG, SVG and PDF sinks
//  5. [pipeline] - orchestration (load → render → export)
//
// Supporting packages: [errors] (coded errors), [fonts] (font family
// resolution), [observability] (stage hooks) and [buildinfo].
//
// # Data Flow
//
//	config.Load + config.LoadParameters
//	         ↓
//	    chart.NewRequest (typed, defaulted request)
//	         ↓
//	    io.ImportFile or chart.MockData
//	         ↓
//	    chart.Render → render.Figure
//	         ↓
//	    sink.RenderPNG / RenderSVG / RenderPDF
//
// # Quick Start
//
//	cfg, err := config.Load("config.json")
//	if err != nil {
//	    return err
//	}
//	gen, err := pipeline.New(cfg, nil)
//	if err != nil {
//	    return err
//	}
//	result, err := gen.Generate(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Files.Preview)
//
// [config]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/io
// [frame]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/frame
// [chart]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/chart
// [render]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bioplot/pkg/buildinfo
package pkg
