// Package io imports and exports the tabular data behind a plot.
//
// # Import
//
// [ImportFile] picks a reader from the file extension:
//
//   - .csv: comma-separated text ([ReadDelimited] with ',')
//   - .tsv: tab-separated text ([ReadDelimited] with '\t')
//   - .xlsx: the first worksheet of an Excel workbook ([ReadXLSX])
//
// Any other extension fails with UNSUPPORTED_FORMAT, and a path that does not
// exist fails with FILE_NOT_FOUND. In every format the first row is the
// header and column kinds are inferred as described in package frame.
//
//	f, err := io.ImportFile("deg_results.tsv")
//	if err != nil {
//	    return err
//	}
//
// # Export
//
// [ExportCSV] writes a frame back out as comma-separated text, with row
// labels (when present) as a leading unnamed column. The generator uses it
// for the optional data table that accompanies a figure.
package io
