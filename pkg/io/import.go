package io

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/bioplot/pkg/errors"
	"github.com/matzehuels/bioplot/pkg/frame"
)

// Supported data file extensions.
const (
	ExtCSV  = ".csv"
	ExtTSV  = ".tsv"
	ExtXLSX = ".xlsx"
)

// ImportFile reads a frame from path, choosing the reader by extension.
func ImportFile(path string) (*frame.Frame, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtCSV, ExtTSV, ExtXLSX:
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported data format: %s", path)
	}

	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "data file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "stat %s", path)
	}

	if ext == ExtXLSX {
		return ReadXLSX(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "open %s", path)
	}
	defer file.Close()

	sep := ','
	if ext == ExtTSV {
		sep = '\t'
	}
	f, err := ReadDelimited(file, sep)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "read %s", path)
	}
	return f, nil
}

// ReadDelimited decodes separator-delimited text from r. Rows may be
// shorter than the header; missing trailing cells are treated as empty.
// ReadDelimited does not close r.
func ReadDelimited(r io.Reader, sep rune) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "parse delimited text")
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return frame.FromRecords(records)
}

// ReadXLSX reads the first worksheet of the workbook at path.
func ReadXLSX(path string) (*frame.Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "open workbook %s", path)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "workbook %s has no sheets", path)
	}
	// Raw values: formatted text would round numbers to the cell's display format.
	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "read sheet %q of %s", sheets[0], path)
	}
	return frame.FromRecords(trimBlankRows(rows))
}

// trimBlankRows drops trailing rows without any cell content; spreadsheet
// readers report formatted-but-empty rows.
func trimBlankRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isBlank(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
