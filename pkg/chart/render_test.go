package chart

import (
	"testing"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

func TestRenderEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			req, err := NewRequest(k, map[string]any{"showGeneLabels": true})
			if err != nil {
				t.Fatal(err)
			}
			fig, err := Render(req, MockData(k, MockSeed), DefaultStyle())
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if fig.Plot == nil || fig.Width <= 0 || fig.Height <= 0 {
				t.Fatalf("figure = %+v", fig)
			}
			if (fig.Colorbar != nil) != (k == KindHeatmap) {
				t.Errorf("colorbar present = %v", fig.Colorbar != nil)
			}
		})
	}
}

func TestRenderMissingColumn(t *testing.T) {
	f, _ := frame.New(frame.NumericColumn("a", []float64{1}))
	for _, k := range []Kind{KindVolcano, KindScatter, KindUMAP} {
		req, _ := NewRequest(k, nil)
		_, err := Render(req, f, DefaultStyle())
		if !errors.Is(err, errors.ErrCodeRender) {
			t.Errorf("%s: err = %v, want RENDER_FAILED", k, err)
		}
	}
}

func TestRenderHeatmapOptions(t *testing.T) {
	f, _ := frame.New(
		frame.NumericColumn("S1", []float64{2, 2}),
		frame.NumericColumn("S2", []float64{2, 2}),
	)
	req, _ := NewRequest(KindHeatmap, map[string]any{
		"showColorbar":    false,
		"showRowNames":    false,
		"showColumnNames": false,
		"colormap":        "viridis_r",
	})
	fig, err := Render(req, f, DefaultStyle())
	if err != nil {
		t.Fatalf("constant matrix: %v", err)
	}
	if fig.Colorbar != nil {
		t.Error("colorbar drawn although disabled")
	}
}

func TestRenderFigureSize(t *testing.T) {
	req, _ := NewRequest(KindScatter, map[string]any{"width": 4, "height": 3})
	fig, err := Render(req, MockData(KindScatter, MockSeed), DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if fig.Width != 4*72 || fig.Height != 3*72 {
		t.Errorf("size = %v x %v points", fig.Width, fig.Height)
	}
}

func TestRenderBarRepeatedCategories(t *testing.T) {
	f, _ := frame.New(
		frame.TextColumn(ColCategory, []string{"A", "B", "A"}),
		frame.NumericColumn(ColValue, []float64{3, 5, 1}),
	)
	req, _ := NewRequest(KindBar, nil)
	fig, err := Render(req, f, DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if fig.Plot.X.Max != 1.5 {
		t.Errorf("X.Max = %v, want 1.5 for two category slots", fig.Plot.X.Max)
	}
}
