package chart

import (
	"image/color"
	"strings"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// Request is a decoded plot request. The concrete types are
// [*VolcanoRequest], [*ScatterRequest], [*UMAPRequest], [*HeatmapRequest],
// [*BoxRequest] and [*BarRequest]; the set is closed.
type Request interface {
	Kind() Kind
	Base() *Common
	isRequest()
}

// LegendPosition places the legend inside the data area.
type LegendPosition string

const (
	LegendUpperRight LegendPosition = "upper right"
	LegendUpperLeft  LegendPosition = "upper left"
	LegendLowerRight LegendPosition = "lower right"
	LegendLowerLeft  LegendPosition = "lower left"
	LegendNone       LegendPosition = "none"
)

func parseLegendPosition(s string) (LegendPosition, bool) {
	switch p := LegendPosition(strings.ToLower(strings.TrimSpace(s))); p {
	case LegendUpperRight, LegendUpperLeft, LegendLowerRight, LegendLowerLeft, LegendNone:
		return p, true
	case "best", "":
		return LegendUpperRight, true
	}
	return "", false
}

// Common holds the cosmetic parameters every kind accepts.
type Common struct {
	Title          string
	XLabel         string
	YLabel         string
	ShowLegend     bool
	ShowGrid       bool
	Width          float64 // inches
	Height         float64 // inches
	LegendPosition LegendPosition
}

func (c *Common) Base() *Common { return c }

func (*Common) isRequest() {}

type commonDefaults struct {
	title, xLabel, yLabel string
	width, height         float64
}

func decodeCommon(r *paramReader, d commonDefaults) Common {
	c := Common{
		Title:      r.str("title", d.title),
		XLabel:     r.str("xLabel", d.xLabel),
		YLabel:     r.str("yLabel", d.yLabel),
		ShowLegend: r.boolean("showLegend", true),
		ShowGrid:   r.boolean("showGrid", true),
		Width:      r.positive("width", d.width),
		Height:     r.positive("height", d.height),
	}
	pos := r.str("legendPosition", string(LegendUpperRight))
	p, ok := parseLegendPosition(pos)
	if !ok {
		r.fail("legendPosition", "unknown position %q", pos)
		p = LegendUpperRight
	}
	c.LegendPosition = p
	return c
}

// VolcanoRequest plots log2 fold change against -log10 p-value, coloured
// by significance class.
type VolcanoRequest struct {
	Common
	FCThreshold        float64
	PThreshold         float64
	PointSize          float64 // marker area in points²
	PointAlpha         float64
	UpColor            color.Color
	DownColor          color.Color
	NSColor            color.Color
	ShowThresholdLines bool
	ShowGeneLabels     bool
	MaxLabels          int
}

func (*VolcanoRequest) Kind() Kind { return KindVolcano }

// ScatterRequest plots column y against column x.
type ScatterRequest struct {
	Common
	PointSize  float64
	PointColor color.Color
	PointAlpha float64
}

func (*ScatterRequest) Kind() Kind { return KindScatter }

// UMAPRequest plots UMAP1 against UMAP2 with one colour per cluster.
type UMAPRequest struct {
	Common
	PointSize  float64
	PointAlpha float64
	Palette    string
	ShowAxes   bool
}

func (*UMAPRequest) Kind() Kind { return KindUMAP }

// HeatmapRequest draws the numeric columns as a colour-mapped grid.
type HeatmapRequest struct {
	Common
	Colormap        string
	ShowRowNames    bool
	ShowColumnNames bool
	ShowColorbar    bool
	ColorbarLabel   string
}

func (*HeatmapRequest) Kind() Kind { return KindHeatmap }

// BoxRequest draws one box per group, or per numeric column.
type BoxRequest struct {
	Common
	ShowOutliers bool
}

func (*BoxRequest) Kind() Kind { return KindBox }

// BarRequest draws one bar per row.
type BarRequest struct {
	Common
	BarColor color.Color
}

func (*BarRequest) Kind() Kind { return KindBar }

// NewRequest decodes params into the request type of kind. Absent keys take
// the kind's defaults; present keys of the wrong type or out of range fail
// with INVALID_PARAMETERS.
func NewRequest(kind Kind, params map[string]any) (Request, error) {
	r := newParamReader(params)
	var req Request
	switch kind {
	case KindVolcano:
		req = &VolcanoRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "Volcano Plot", xLabel: "Log2 Fold Change", yLabel: "-Log10 P-value",
				width: 10, height: 8,
			}),
			FCThreshold:        r.nonNegative("log2FCThreshold", 1),
			PThreshold:         r.unit("pValueThreshold", 0.05),
			PointSize:          r.positive("pointSize", 6),
			PointAlpha:         r.unit("pointAlpha", 0.7),
			UpColor:            r.color("upregulatedColor", "#ff6b6b"),
			DownColor:          r.color("downregulatedColor", "#4ecdc4"),
			NSColor:            r.color("nonsignificantColor", "#95a5a6"),
			ShowThresholdLines: r.boolean("showThresholdLines", true),
			ShowGeneLabels:     r.boolean("showGeneLabels", false),
			MaxLabels:          r.count("maxLabels", 10),
		}
	case KindScatter:
		req = &ScatterRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "Scatter Plot", xLabel: "X Values", yLabel: "Y Values",
				width: 10, height: 8,
			}),
			PointSize:  r.positive("pointSize", 8),
			PointColor: r.color("pointColor", "#1f77b4"),
			PointAlpha: r.unit("pointAlpha", 0.7),
		}
	case KindUMAP:
		u := &UMAPRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "UMAP Plot", xLabel: "UMAP 1", yLabel: "UMAP 2",
				width: 10, height: 8,
			}),
			PointSize:  r.positive("pointSize", 6),
			PointAlpha: r.unit("pointAlpha", 0.7),
			Palette:    r.str("colorPalette", "tab10"),
			ShowAxes:   r.boolean("showAxes", false),
		}
		if _, err := paletteColors(u.Palette); err != nil {
			r.fail("colorPalette", "%v", err)
		}
		req = u
	case KindHeatmap:
		h := &HeatmapRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "Heatmap", width: 12, height: 10,
			}),
			Colormap:        r.str("colormap", "RdBu_r"),
			ShowRowNames:    r.boolean("showRowNames", true),
			ShowColumnNames: r.boolean("showColumnNames", true),
			ShowColorbar:    r.boolean("showColorbar", true),
			ColorbarLabel:   r.str("colorbarLabel", "Expression"),
		}
		if _, err := Colormap(h.Colormap); err != nil {
			r.fail("colormap", "%v", err)
		}
		req = h
	case KindBox:
		req = &BoxRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "Box Plot", xLabel: "Groups", yLabel: "Values",
				width: 10, height: 8,
			}),
			ShowOutliers: r.boolean("showOutliers", true),
		}
	case KindBar:
		req = &BarRequest{
			Common: decodeCommon(r, commonDefaults{
				title: "Bar Plot", xLabel: "Categories", yLabel: "Values",
				width: 10, height: 8,
			}),
			BarColor: r.color("barColor", "#1f77b4"),
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedPlotType, "Unsupported plot type: %s", kind)
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return req, nil
}
