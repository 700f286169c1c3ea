package chart

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

var qualitative = map[string][]string{
	"tab10": {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
	"tab20": {
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	},
}

// paletteColors returns the full colour list of a named palette: one of
// the built-in tab10/tab20 lists or the largest ColorBrewer variant.
func paletteColors(name string) ([]color.Color, error) {
	if hexes, ok := qualitative[name]; ok {
		out := make([]color.Color, len(hexes))
		for i, h := range hexes {
			c, err := ParseColor(h)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}
	for n := 12; n >= 3; n-- {
		if p, err := brewer.GetPalette(brewer.TypeAny, name, n); err == nil {
			return p.Colors(), nil
		}
	}
	return nil, fmt.Errorf("unknown color palette %q", name)
}

// SamplePalette picks n colours spread evenly across the named palette,
// the first and last picks being the palette's ends. Picks repeat when n
// exceeds the palette size.
func SamplePalette(name string, n int) ([]color.Color, error) {
	base, err := paletteColors(name)
	if err != nil {
		return nil, err
	}
	out := make([]color.Color, n)
	if n == 1 {
		out[0] = base[0]
		return out, nil
	}
	size := len(base)
	for i := range out {
		idx := i * size / (n - 1)
		if idx >= size {
			idx = size - 1
		}
		out[i] = base[idx]
	}
	return out, nil
}

func luminanceMap(hexes ...string) func() (palette.ColorMap, error) {
	return func() (palette.ColorMap, error) {
		controls := make([]color.Color, len(hexes))
		for i, h := range hexes {
			c, err := ParseColor(h)
			if err != nil {
				return nil, err
			}
			controls[i] = c
		}
		return moreland.NewLuminance(controls)
	}
}

func fixed(f func() palette.DivergingColorMap) func() (palette.ColorMap, error) {
	return func() (palette.ColorMap, error) { return f(), nil }
}

func reversed(f func() palette.DivergingColorMap) func() (palette.ColorMap, error) {
	return func() (palette.ColorMap, error) { return palette.Reverse(f()), nil }
}

// colormaps maps colormap names to constructors. Each constructor returns
// a fresh map so callers can set its range.
var colormaps = map[string]func() (palette.ColorMap, error){
	"RdBu":     reversed(moreland.SmoothBlueRed),
	"coolwarm": fixed(moreland.SmoothBlueRed),
	"bwr":      fixed(moreland.SmoothBlueRed),
	"PuOr":     reversed(moreland.SmoothPurpleOrange),
	"PRGn":     reversed(moreland.SmoothGreenPurple),
	"BrBG":     reversed(moreland.SmoothBlueTan),
	"RdYlGn":   reversed(moreland.SmoothGreenRed),
	"hot":      luminanceMap("#000000", "#ff0000", "#ffff00", "#ffffff"),
	"inferno":  luminanceMap("#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4"),
	"magma":    luminanceMap("#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"),
	"viridis":  luminanceMap("#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"),
	"gray":     luminanceMap("#000000", "#ffffff"),
}

// Colormap returns the named continuous colour map. A "_r" suffix reverses
// the map.
func Colormap(name string) (palette.ColorMap, error) {
	base, rev := strings.CutSuffix(name, "_r")
	ctor, ok := colormaps[base]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	cm, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("colormap %q: %w", name, err)
	}
	if rev {
		cm = palette.Reverse(cm)
	}
	return cm, nil
}

// Colormaps lists the colormap names without the "_r" variants.
func Colormaps() []string {
	out := make([]string, 0, len(colormaps))
	for name := range colormaps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
