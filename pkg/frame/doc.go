// Package frame provides the in-memory table that plot renderers read.
//
// A [Frame] is an ordered list of equally long, uniquely named columns. Each
// [Column] holds either numbers or text; the kind is fixed when the column is
// created. Frames built from text records (CSV, TSV, spreadsheets) infer the
// kind per column: a column is numeric when every non-missing cell parses as
// a float, and missing cells become NaN.
//
// A frame may also carry row labels. Heatmaps use them to name matrix rows,
// while other renderers ignore them.
//
// # Column access
//
// Renderers look columns up by name and fail on the first missing one:
//
//	fc, err := f.Float64s("log2FC")
//	if err != nil {
//	    return nil, err // INVALID_DATA: missing column "log2FC"
//	}
//
// There is no schema: the expected column names are a contract between the
// data file and the plot kind.
package frame
