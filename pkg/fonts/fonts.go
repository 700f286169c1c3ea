// Package fonts maps font family names onto the Liberation faces bundled
// with the plotting library.
//
// Liberation Sans, Serif and Mono are metric-compatible with Arial, Times
// New Roman and Courier New, so documents asking for those families render
// with the same text extents they would have with the proprietary fonts.
package fonts

import (
	"sort"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Typeface is the typeface of every resolved font.
const Typeface = "Liberation"

// Liberation variants.
const (
	Sans  = "Sans"
	Serif = "Serif"
	Mono  = "Mono"
)

var families = map[string]string{
	"arial":           Sans,
	"helvetica":       Sans,
	"sans":            Sans,
	"sans-serif":      Sans,
	"dejavu sans":     Sans,
	"liberation sans": Sans,
	"verdana":         Sans,
	"calibri":         Sans,

	"times":            Serif,
	"times new roman":  Serif,
	"serif":            Serif,
	"georgia":          Serif,
	"dejavu serif":     Serif,
	"liberation serif": Serif,

	"courier":          Mono,
	"courier new":      Mono,
	"monospace":        Mono,
	"consolas":         Mono,
	"dejavu sans mono": Mono,
	"liberation mono":  Mono,
}

// Resolve returns the font for family at the given size. The second result
// is false when family is unknown, in which case Liberation Sans is used.
func Resolve(family string, size vg.Length) (font.Font, bool) {
	variant, ok := families[strings.ToLower(strings.TrimSpace(family))]
	if !ok {
		variant = Sans
	}
	return font.Font{Typeface: Typeface, Variant: font.Variant(variant), Size: size}, ok
}

// Families returns the recognised family names, sorted.
func Families() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
