package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// Frame is an ordered set of equally long, uniquely named columns.
type Frame struct {
	columns   []*Column
	index     map[string]int
	rowLabels []string
	rows      int
}

// New builds a frame from columns. All columns must have the same length
// and distinct names.
func New(columns ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if _, dup := f.index[c.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidData, "duplicate column %q", c.Name)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"column %q has %d rows, want %d", c.Name, c.Len(), f.rows)
		}
		f.index[c.Name] = i
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// WithRowLabels attaches row labels to the frame.
func (f *Frame) WithRowLabels(labels []string) (*Frame, error) {
	if len(labels) != f.rows {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"%d row labels for %d rows", len(labels), f.rows)
	}
	f.rowLabels = labels
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.columns) }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether every named column exists.
func (f *Frame) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := f.index[n]; !ok {
			return false
		}
	}
	return true
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidData, "missing column %q", name)
	}
	return f.columns[i], nil
}

// ColumnAt returns the column at position i.
func (f *Frame) ColumnAt(i int) (*Column, error) {
	if i < 0 || i >= len(f.columns) {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"column index %d out of range (frame has %d columns)", i, len(f.columns))
	}
	return f.columns[i], nil
}

// Float64s returns the values of a numeric column.
func (f *Frame) Float64s(name string) ([]float64, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind() != Numeric {
		return nil, errors.New(errors.ErrCodeInvalidData, "column %q is not numeric", name)
	}
	return c.Float64s(), nil
}

// NumericColumns returns the numeric columns in order.
func (f *Frame) NumericColumns() []*Column {
	var out []*Column
	for _, c := range f.columns {
		if c.Kind() == Numeric {
			out = append(out, c)
		}
	}
	return out
}

// HasRowLabels reports whether labels were attached with [Frame.WithRowLabels].
func (f *Frame) HasRowLabels() bool { return f.rowLabels != nil }

// RowLabels returns the row labels. Frames without labels get "0".."n-1".
func (f *Frame) RowLabels() []string {
	if f.rowLabels != nil {
		return f.rowLabels
	}
	labels := make([]string, f.rows)
	for i := range labels {
		labels[i] = fmt.Sprint(i)
	}
	return labels
}

// Matrix returns the numeric columns as a rows×columns matrix together with
// the names of the columns used.
func (f *Frame) Matrix() (*mat.Dense, []string, error) {
	cols := f.NumericColumns()
	if len(cols) == 0 || f.rows == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidData, "no numeric data for matrix")
	}
	m := mat.NewDense(f.rows, len(cols), nil)
	names := make([]string, len(cols))
	for j, c := range cols {
		m.SetCol(j, c.Float64s())
		names[j] = c.Name
	}
	return m, names, nil
}
