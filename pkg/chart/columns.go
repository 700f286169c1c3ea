package chart

import (
	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

// numeric returns the values of a numeric column, failing with
// RENDER_FAILED when the column is absent or holds text.
func numeric(f *frame.Frame, name string) ([]float64, error) {
	c, err := column(f, name)
	if err != nil {
		return nil, err
	}
	if c.Kind() != frame.Numeric {
		return nil, errors.New(errors.ErrCodeRender, "column %q is not numeric", name)
	}
	return c.Float64s(), nil
}

// column returns a column of either kind, failing with RENDER_FAILED when
// it is absent.
func column(f *frame.Frame, name string) (*frame.Column, error) {
	if !f.Has(name) {
		return nil, errors.New(errors.ErrCodeRender, "missing column %q", name)
	}
	return f.Column(name)
}
