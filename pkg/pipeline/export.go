package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/bioplot/pkg/chart"
	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
	dataio "github.com/matzehuels/bioplot/pkg/io"
	"github.com/matzehuels/bioplot/pkg/observability"
	"github.com/matzehuels/bioplot/pkg/render"
	"github.com/matzehuels/bioplot/pkg/render/sink"
)

// Output formats, in the order they are written.
const (
	FormatPreview   = "preview"
	FormatHighRes   = "high_res"
	FormatSVG       = "svg"
	FormatPDF       = "pdf"
	FormatDataTable = "data_table"
)

type artifact struct {
	format string
	path   string
	encode func() ([]byte, error)
}

func (g *Generator) artifacts(fig *render.Figure, files config.OutputFiles) []artifact {
	return []artifact{
		{FormatPreview, files.Preview, func() ([]byte, error) {
			return sink.RenderPNG(fig, sink.WithDPI(chart.PreviewDPI))
		}},
		{FormatHighRes, files.HighRes, func() ([]byte, error) {
			return sink.RenderPNG(fig, sink.WithDPI(g.Style.DPI))
		}},
		{FormatSVG, files.SVG, func() ([]byte, error) {
			return sink.RenderSVG(fig)
		}},
		{FormatPDF, files.PDF, func() ([]byte, error) {
			return sink.RenderPDF(fig)
		}},
	}
}

// export writes every artifact and returns the paths and total bytes written.
func (g *Generator) export(ctx context.Context, fig *render.Figure, data *frame.Frame) (config.OutputFiles, int64, error) {
	files := g.Config.OutputFiles()
	arts := g.artifacts(fig, files)
	formats := Formats(g.Config)

	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, formats)
	start := time.Now()
	n, err := g.writeAll(ctx, arts, files, data)
	hooks.OnExportComplete(ctx, formats, time.Since(start), err)
	if err != nil {
		return config.OutputFiles{}, 0, err
	}
	return files, n, nil
}

func (g *Generator) writeAll(ctx context.Context, arts []artifact, files config.OutputFiles, data *frame.Frame) (int64, error) {
	if err := os.MkdirAll(g.Config.OutputDir, 0o755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeExport, err, "create output directory %s", g.Config.OutputDir)
	}

	var total int64
	for _, a := range arts {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		b, err := encodeSafely(a)
		if err != nil {
			return total, err
		}
		if err := os.WriteFile(a.path, b, 0o644); err != nil {
			return total, errors.Wrap(errors.ErrCodeExport, err, "write %s", a.path)
		}
		total += int64(len(b))
		g.Logger.Debug("wrote file", "format", a.format, "path", a.path, "bytes", len(b))
	}

	if files.DataTable != "" {
		if err := dataio.ExportCSV(data, files.DataTable); err != nil {
			return total, errors.Wrap(errors.ErrCodeExport, err, "write %s", files.DataTable)
		}
		if info, err := os.Stat(files.DataTable); err == nil {
			total += info.Size()
		}
		g.Logger.Debug("wrote file", "format", FormatDataTable, "path", files.DataTable)
	}
	return total, nil
}

// encodeSafely runs a.encode, turning panics from the drawing backends
// into RENDER_FAILED errors.
func encodeSafely(a artifact) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = errors.New(errors.ErrCodeRender, "draw %s: %v", a.format, r)
		}
	}()
	b, err = a.encode()
	if err != nil && errors.GetCode(err) == "" {
		err = errors.Wrap(errors.ErrCodeExport, err, "encode %s", a.format)
	}
	return b, err
}

// Formats lists the output formats a configuration produces.
func Formats(cfg *config.Config) []string {
	out := []string{FormatPreview, FormatHighRes, FormatSVG, FormatPDF}
	if cfg.ExportDataTable {
		out = append(out, FormatDataTable)
	}
	return out
}
