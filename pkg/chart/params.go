package chart

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// paramReader reads typed values from a flat parameter map. Absent keys and
// null values yield the caller's default. The first type or range error is
// kept and reported by err.
type paramReader struct {
	values map[string]any
	first  error
}

func newParamReader(values map[string]any) *paramReader {
	return &paramReader{values: values}
}

func (r *paramReader) fail(key string, format string, args ...any) {
	if r.first == nil {
		r.first = errors.New(errors.ErrCodeInvalidParameters,
			"parameter %s: %s", key, fmt.Sprintf(format, args...))
	}
}

func (r *paramReader) err() error { return r.first }

func (r *paramReader) lookup(key string) (any, bool) {
	v, ok := r.values[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// float returns a finite number.
func (r *paramReader) float(key string, def float64) float64 {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		r.fail(key, "expected number, got %T", v)
		return def
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(key, "must be finite")
		return def
	}
	return f
}

// nonNegative is float with f >= 0.
func (r *paramReader) nonNegative(key string, def float64) float64 {
	f := r.float(key, def)
	if f < 0 {
		r.fail(key, "must not be negative, got %g", f)
		return def
	}
	return f
}

// positive is float with f > 0.
func (r *paramReader) positive(key string, def float64) float64 {
	f := r.float(key, def)
	if f <= 0 {
		r.fail(key, "must be positive, got %g", f)
		return def
	}
	return f
}

// unit is float in [0, 1].
func (r *paramReader) unit(key string, def float64) float64 {
	f := r.float(key, def)
	if f < 0 || f > 1 {
		r.fail(key, "must be between 0 and 1, got %g", f)
		return def
	}
	return f
}

// count is a whole number >= 0.
func (r *paramReader) count(key string, def int) int {
	f := r.float(key, float64(def))
	if f < 0 || f != math.Trunc(f) {
		r.fail(key, "must be a whole number >= 0, got %g", f)
		return def
	}
	return int(f)
}

func (r *paramReader) str(key, def string) string {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "expected string, got %T", v)
		return def
	}
	return s
}

func (r *paramReader) boolean(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(key, "expected boolean, got %T", v)
		return def
	}
	return b
}

func (r *paramReader) color(key, def string) color.Color {
	s := r.str(key, def)
	c, err := ParseColor(s)
	if err != nil {
		r.fail(key, "%v", err)
		c, _ = ParseColor(def)
	}
	return c
}
