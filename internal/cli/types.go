package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bioplot/pkg/chart"
	"github.com/matzehuels/bioplot/pkg/fonts"
)

// typesCommand lists the supported plot types with their defaults.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported plot types, colormaps and fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalogue(cmd.OutOrStdout())
		},
	}
}

func printCatalogue(w io.Writer) error {
	printHeading(w, "Plot types")
	for _, k := range chart.Kinds() {
		req, err := chart.NewRequest(k, nil)
		if err != nil {
			return err
		}
		base := req.Base()

		printItem(w, k.String(), k.Description())
		if cols := k.Columns(); len(cols) > 0 {
			printKeyValue(w, "columns", strings.Join(cols, ", "))
		}
		if base.Title != "" {
			printKeyValue(w, "title", base.Title)
		}
		printKeyValue(w, "size", fmt.Sprintf("%g x %g in", base.Width, base.Height))
	}

	st := chart.DefaultStyle()
	printNewline(w)
	printHeading(w, "Style defaults")
	printKeyValue(w, "fontFamily", st.FontFamily)
	printKeyValue(w, "fontSize", fmt.Sprintf("%g", st.FontSize))
	printKeyValue(w, "dpi", fmt.Sprintf("%d (preview %d)", st.DPI, chart.PreviewDPI))

	printNewline(w)
	printHeading(w, "Colormaps")
	printList(w, chart.Colormaps())

	printNewline(w)
	printHeading(w, "Font families")
	printList(w, fonts.Families())
	return nil
}
