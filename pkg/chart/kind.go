package chart

import (
	"github.com/matzehuels/bioplot/pkg/errors"
)

// Kind identifies one of the supported plot types.
type Kind string

// Supported plot kinds. The string values are the plotType tags accepted in
// configuration documents.
const (
	KindVolcano Kind = "volcano_plot"
	KindScatter Kind = "scatter_plot"
	KindUMAP    Kind = "umap_plot"
	KindHeatmap Kind = "heatmap"
	KindBox     Kind = "box_plot"
	KindBar     Kind = "bar_plot"
)

var kinds = []Kind{KindVolcano, KindScatter, KindUMAP, KindHeatmap, KindBox, KindBar}

// Kinds returns every supported kind in catalogue order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind validates a plotType tag.
func ParseKind(tag string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == tag {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupportedPlotType, "Unsupported plot type: %s", tag)
}

func (k Kind) String() string { return string(k) }

// Description is a one-line summary used by the catalogue view.
func (k Kind) Description() string {
	switch k {
	case KindVolcano:
		return "differential expression: log2 fold change against -log10 p-value"
	case KindScatter:
		return "two numeric columns x and y"
	case KindUMAP:
		return "2-D embedding coloured by cluster"
	case KindHeatmap:
		return "colour-mapped numeric matrix"
	case KindBox:
		return "value distribution per group or per numeric column"
	case KindBar:
		return "one bar per category"
	}
	return ""
}

// Columns lists the data columns the kind reads when they are present.
// Box and bar plots fall back to other layouts when they are missing.
func (k Kind) Columns() []string {
	switch k {
	case KindVolcano:
		return []string{ColLog2FC, ColPValue, ColGeneName}
	case KindScatter:
		return []string{ColX, ColY}
	case KindUMAP:
		return []string{ColUMAP1, ColUMAP2, ColCluster}
	case KindBox:
		return []string{ColGroup, ColValue}
	case KindBar:
		return []string{ColCategory, ColValue}
	}
	return nil
}
