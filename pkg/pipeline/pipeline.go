// Package pipeline runs one plot request from configuration to files on disk.
//
// A run has three stages:
//
//  1. Load: import the data file, or generate seeded mock data when no
//     dataPath is configured
//  2. Render: build the figure for the requested plot type
//  3. Export: write the preview PNG, high-resolution PNG, SVG and PDF
//     (plus the optional CSV data table) into the output directory
//
// The plot type is resolved before anything is loaded, so an unsupported
// type fails without touching the output directory.
//
// # Usage
//
//	cfg, err := config.Load("config.json")
//	if err != nil {
//	    return err
//	}
//	gen, err := pipeline.New(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := gen.Generate(ctx)
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bioplot/pkg/chart"
	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
	dataio "github.com/matzehuels/bioplot/pkg/io"
	"github.com/matzehuels/bioplot/pkg/observability"
	"github.com/matzehuels/bioplot/pkg/render"
)

// Generator holds a validated request and produces its output files.
// A Generator is not safe for concurrent Generate calls that share an
// output directory and task id.
type Generator struct {
	Config     *config.Config
	Kind       chart.Kind
	Request    chart.Request
	Style      chart.Style
	PlotConfig map[string]any // non-parameter keys of the parameters document
	Logger     *log.Logger
}

// Stats records what a run did and how long each stage took.
type Stats struct {
	Rows       int
	Mock       bool
	LoadTime   time.Duration
	RenderTime time.Duration
	ExportTime time.Duration
	Bytes      int64
}

// Result is the outcome of a successful run.
type Result struct {
	Kind  chart.Kind
	Files config.OutputFiles
	Stats Stats
}

// New resolves the plot type and decodes the parameters file named by cfg.
// If logger is nil, log output is discarded.
func New(cfg *config.Config, logger *log.Logger) (*Generator, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	kind, err := chart.ParseKind(cfg.PlotType)
	if err != nil {
		return nil, wrap(chart.Kind(cfg.PlotType), err)
	}
	params, err := config.LoadParameters(cfg.ParametersFile)
	if err != nil {
		return nil, wrap(kind, err)
	}
	req, err := chart.NewRequest(kind, params.Values)
	if err != nil {
		return nil, wrap(kind, err)
	}
	st, err := chart.DecodeStyle(params.Values)
	if err != nil {
		return nil, wrap(kind, err)
	}
	if err := st.CheckRaster(req); err != nil {
		return nil, wrap(kind, err)
	}
	if !st.KnownFamily() {
		logger.Warn("unknown font family, using sans-serif", "family", st.FontFamily)
	}
	logger.Debug("decoded parameters", "kind", kind, "count", len(params.Values))

	return &Generator{
		Config:     cfg,
		Kind:       kind,
		Request:    req,
		Style:      st,
		PlotConfig: params.PlotConfig,
		Logger:     logger,
	}, nil
}

// Generate runs load, render and export. Cancellation of ctx is checked
// between stages and returned unwrapped.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	result := &Result{Kind: g.Kind}

	loadStart := time.Now()
	data, mock, err := g.load(ctx)
	if err != nil {
		return nil, wrap(g.Kind, err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Rows = data.Len()
	result.Stats.Mock = mock

	g.Logger.Info("loaded data",
		"rows", data.Len(),
		"columns", data.Width(),
		"mock", mock,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	fig, err := g.render(ctx, data)
	if err != nil {
		return nil, wrap(g.Kind, err)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	g.Logger.Info("rendered plot", "kind", g.Kind, "duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exportStart := time.Now()
	files, n, err := g.export(ctx, fig, data)
	if err != nil {
		return nil, wrap(g.Kind, err)
	}
	result.Files = files
	result.Stats.Bytes = n
	result.Stats.ExportTime = time.Since(exportStart)

	g.Logger.Info("exported files",
		"dir", g.Config.OutputDir,
		"bytes", n,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// load reads the configured data file or generates mock data.
func (g *Generator) load(ctx context.Context) (*frame.Frame, bool, error) {
	source := g.Config.DataPath
	if source == "" {
		source = "mock"
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	var (
		data *frame.Frame
		mock bool
		err  error
	)
	if g.Config.DataPath == "" {
		g.Logger.Debug("no data path, generating mock data", "seed", chart.MockSeed)
		data, mock = chart.MockData(g.Kind, chart.MockSeed), true
	} else {
		data, err = dataio.ImportFile(g.Config.DataPath)
	}

	rows := 0
	if data != nil {
		rows = data.Len()
	}
	hooks.OnLoadComplete(ctx, source, rows, time.Since(start), err)
	return data, mock, err
}

func (g *Generator) render(ctx context.Context, data *frame.Frame) (*render.Figure, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(g.Kind))
	start := time.Now()
	fig, err := chart.Render(g.Request, data, g.Style)
	hooks.OnRenderComplete(ctx, string(g.Kind), time.Since(start), err)
	return fig, err
}

// wrap prefixes err with the plot type while keeping the innermost code
// visible to errors.Is on the outer error.
func wrap(kind chart.Kind, err error) error {
	code := errors.RootCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "Failed to generate %s", kind)
}
