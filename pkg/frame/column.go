package frame

import (
	"math"
	"strconv"
)

// ColumnKind reports how a column stores its values.
type ColumnKind int

const (
	// Numeric columns hold float64 values; missing cells are NaN.
	Numeric ColumnKind = iota
	// Text columns hold strings.
	Text
)

func (k ColumnKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "text"
}

// Column is a named, typed vector of cells.
type Column struct {
	Name string

	kind ColumnKind
	nums []float64
	strs []string
}

// NumericColumn returns a numeric column. The slice is not copied.
func NumericColumn(name string, values []float64) *Column {
	return &Column{Name: name, kind: Numeric, nums: values}
}

// TextColumn returns a text column. The slice is not copied.
func TextColumn(name string, values []string) *Column {
	return &Column{Name: name, kind: Text, strs: values}
}

// Kind returns the column kind.
func (c *Column) Kind() ColumnKind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int {
	if c.kind == Numeric {
		return len(c.nums)
	}
	return len(c.strs)
}

// Float64s returns the numeric cells, or nil for text columns.
func (c *Column) Float64s() []float64 {
	if c.kind != Numeric {
		return nil
	}
	return c.nums
}

// Finite returns the numeric cells that are neither NaN nor infinite.
func (c *Column) Finite() []float64 {
	out := make([]float64, 0, len(c.nums))
	for _, v := range c.nums {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// String returns cell i formatted as text. Numeric cells use the shortest
// representation; NaN renders as the empty string.
func (c *Column) String(i int) string {
	if c.kind == Text {
		return c.strs[i]
	}
	v := c.nums[i]
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Strings returns every cell formatted with [Column.String].
func (c *Column) Strings() []string {
	if c.kind == Text {
		return c.strs
	}
	out := make([]string, len(c.nums))
	for i := range c.nums {
		out[i] = c.String(i)
	}
	return out
}

// Unique returns the distinct cell values in first-seen order.
func (c *Column) Unique() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range c.Len() {
		s := c.String(i)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
