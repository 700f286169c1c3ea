package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bioplot/pkg/frame"
)

// WriteCSV encodes f as comma-separated text and writes it to w.
// Frames with row labels get a leading column with an empty header.
// The output can be read back with [ReadDelimited].
func WriteCSV(f *frame.Frame, w io.Writer) error {
	cw := csv.NewWriter(w)
	labeled := f.HasRowLabels()

	header := f.Names()
	if labeled {
		header = append([]string{""}, header...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	cols := make([]*frame.Column, f.Width())
	for j := range cols {
		cols[j], _ = f.ColumnAt(j)
	}
	labels := f.RowLabels()
	for i := range f.Len() {
		record := make([]string, 0, len(header))
		if labeled {
			record = append(record, labels[i])
		}
		for _, c := range cols {
			record = append(record, c.String(i))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportCSV writes f to a CSV file at path.
func ExportCSV(f *frame.Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
