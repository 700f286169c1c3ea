package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/bioplot/pkg/chart"
	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/errors"
)

// smallParams keeps rendering fast: 6x4 inch figures at 20 DPI.
const smallParams = `{"parameters": [
	{"parameterId": "width", "value": 6},
	{"parameterId": "height", "value": 4},
	{"parameterId": "dpi", "value": 20}
]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T, kind string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		PlotType:       kind,
		OutputDir:      filepath.Join(dir, "out"),
		TaskID:         "task",
		ParametersFile: writeFile(t, dir, "params.json", smallParams),
	}
}

func generate(t *testing.T, cfg *config.Config) (*Result, error) {
	t.Helper()
	gen, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	return gen.Generate(context.Background())
}

func TestGenerateMockAllKinds(t *testing.T) {
	for _, kind := range chart.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			cfg := testConfig(t, string(kind))
			result, err := generate(t, cfg)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !result.Stats.Mock || result.Stats.Rows == 0 {
				t.Errorf("stats = %+v, want mock rows", result.Stats)
			}

			want := cfg.OutputFiles()
			if result.Files != want {
				t.Errorf("files = %+v, want %+v", result.Files, want)
			}
			for _, path := range []string{want.Preview, want.HighRes, want.SVG, want.PDF} {
				info, err := os.Stat(path)
				if err != nil {
					t.Errorf("missing %s: %v", path, err)
					continue
				}
				if info.Size() == 0 {
					t.Errorf("%s is empty", path)
				}
			}
			if want.DataTable != "" {
				t.Errorf("data table path set without exportDataTable")
			}
		})
	}
}

func TestGeneratePNGResolution(t *testing.T) {
	cfg := testConfig(t, string(chart.KindScatter))
	result, err := generate(t, cfg)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		dpi  int
	}{
		{result.Files.Preview, chart.PreviewDPI},
		{result.Files.HighRes, 20},
	}
	for _, tt := range tests {
		data, err := os.ReadFile(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %s: %v", tt.path, err)
		}
		if img.Width != 6*tt.dpi || img.Height != 4*tt.dpi {
			t.Errorf("%s: %dx%d, want %dx%d", filepath.Base(tt.path), img.Width, img.Height, 6*tt.dpi, 4*tt.dpi)
		}
	}
}

func TestGenerateFromCSVWithDataTable(t *testing.T) {
	cfg := testConfig(t, string(chart.KindBar))
	cfg.DataPath = writeFile(t, t.TempDir(), "bars.csv", "category,value\nA,3\nB,5\nC,1\n")
	cfg.ExportDataTable = true

	result, err := generate(t, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.Mock || result.Stats.Rows != 3 {
		t.Errorf("stats = %+v, want 3 rows from file", result.Stats)
	}
	got, err := os.ReadFile(result.Files.DataTable)
	if err != nil {
		t.Fatalf("data table: %v", err)
	}
	if want := "category,value\nA,3\nB,5\nC,1\n"; string(got) != want {
		t.Errorf("data table = %q, want %q", got, want)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		data     string // file name written into a temp dir; "missing:" prefix skips writing
		content  string
		code     errors.Code
		contains string
	}{
		{
			name:     "missing data file",
			kind:     "scatter_plot",
			data:     "missing:nope.csv",
			code:     errors.ErrCodeFileNotFound,
			contains: "Failed to generate scatter_plot: data file not found",
		},
		{
			name:     "unsupported data format",
			kind:     "scatter_plot",
			data:     "data.json",
			content:  "{}",
			code:     errors.ErrCodeUnsupportedFormat,
			contains: "unsupported data format",
		},
		{
			name:     "missing column",
			kind:     "volcano_plot",
			data:     "data.csv",
			content:  "a,b\n1,2\n",
			code:     errors.ErrCodeRender,
			contains: "Failed to generate volcano_plot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.kind)
			dir := t.TempDir()
			if name, ok := strings.CutPrefix(tt.data, "missing:"); ok {
				cfg.DataPath = filepath.Join(dir, name)
			} else {
				cfg.DataPath = writeFile(t, dir, tt.data, tt.content)
			}

			_, err := generate(t, cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) || errors.RootCode(err) != tt.code {
				t.Errorf("code = %s (root %s), want %s", errors.GetCode(err), errors.RootCode(err), tt.code)
			}
			if msg := errors.Chain(err); !strings.Contains(msg, tt.contains) {
				t.Errorf("message %q does not contain %q", msg, tt.contains)
			}
		})
	}
}

func TestNewUnsupportedPlotType(t *testing.T) {
	cfg := testConfig(t, "pie_chart")
	_, err := New(cfg, nil)
	if !errors.Is(err, errors.ErrCodeUnsupportedPlotType) {
		t.Fatalf("err = %v, want UNSUPPORTED_PLOT_TYPE", err)
	}
	if got, want := errors.Chain(err), "Failed to generate pie_chart: Unsupported plot type: pie_chart"; got != want {
		t.Errorf("Chain = %q, want %q", got, want)
	}
	if _, statErr := os.Stat(cfg.OutputDir); !stderrors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output directory created for unsupported plot type")
	}
}

func TestNewInvalidParameters(t *testing.T) {
	cfg := testConfig(t, "volcano_plot")
	cfg.ParametersFile = writeFile(t, t.TempDir(), "params.json",
		`{"parameters": [{"parameterId": "pValueThreshold", "value": 2}]}`)
	_, err := New(cfg, nil)
	if !errors.Is(err, errors.ErrCodeInvalidParameters) {
		t.Fatalf("err = %v, want INVALID_PARAMETERS", err)
	}
}

func TestNewRejectsOversizedRaster(t *testing.T) {
	cfg := testConfig(t, "scatter_plot")
	cfg.ParametersFile = writeFile(t, t.TempDir(), "params.json",
		`{"parameters": [{"parameterId": "dpi", "value": 20000}]}`)
	_, err := New(cfg, nil)
	if !errors.Is(err, errors.ErrCodeInvalidParameters) {
		t.Fatalf("err = %v, want INVALID_PARAMETERS", err)
	}
	if _, statErr := os.Stat(cfg.OutputDir); !stderrors.Is(statErr, os.ErrNotExist) {
		t.Errorf("output directory created for oversized raster")
	}
}

func TestNewKeepsPlotConfig(t *testing.T) {
	cfg := testConfig(t, "heatmap")
	cfg.ParametersFile = writeFile(t, t.TempDir(), "params.json",
		`{"parameters": [], "theme": "dark"}`)
	gen, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gen.PlotConfig["theme"] != "dark" {
		t.Errorf("PlotConfig = %v", gen.PlotConfig)
	}
	if gen.Style != chart.DefaultStyle() {
		t.Errorf("Style = %+v, want defaults", gen.Style)
	}
}

func TestGenerateCanceled(t *testing.T) {
	cfg := testConfig(t, "box_plot")
	gen, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := gen.Generate(ctx); !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(cfg.OutputFiles().Preview); err == nil {
		t.Error("preview written after cancellation")
	}
}

func TestFormats(t *testing.T) {
	cfg := &config.Config{}
	if got := Formats(cfg); len(got) != 4 {
		t.Errorf("Formats = %v", got)
	}
	cfg.ExportDataTable = true
	if got := Formats(cfg); got[len(got)-1] != FormatDataTable {
		t.Errorf("Formats = %v, want data table last", got)
	}
}
