package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// missing lists the cell spellings read as NaN in numeric columns.
var missing = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
}

// FromRecords builds a frame from text records. The first record is the
// header. Short rows are padded with missing cells, blank header cells are
// named "Unnamed: <i>" and repeated names get a ".<n>" suffix.
func FromRecords(records [][]string) (*Frame, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "no header row")
	}
	header := records[0]
	body := records[1:]

	width := len(header)
	for i, row := range body {
		if len(row) > width {
			return nil, errors.New(errors.ErrCodeInvalidData,
				"row %d has %d fields, header has %d", i+2, len(row), width)
		}
	}

	names := headerNames(header)
	columns := make([]*Column, width)
	for j := range width {
		cells := make([]string, len(body))
		for i, row := range body {
			if j < len(row) {
				cells[i] = strings.TrimSpace(row[j])
			}
		}
		columns[j] = inferColumn(names[j], cells)
	}
	return New(columns...)
}

func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int)
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		// Suffix until unused, so a renamed duplicate never takes the
		// name of a later real column: a, a, a.1 -> a, a.1, a.1.1.
		for n := seen[name]; n > 0; n = seen[name] {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// inferColumn returns a numeric column when every non-missing cell parses
// as a float, and a text column otherwise.
func inferColumn(name string, cells []string) *Column {
	nums := make([]float64, len(cells))
	for i, s := range cells {
		if missing[s] {
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return TextColumn(name, cells)
		}
		nums[i] = v
	}
	return NumericColumn(name, nums)
}
