package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

var styleKey = lipgloss.NewStyle().Foreground(colorGray).Width(12)

const iconBullet = "›"

// printHeading prints a section heading.
func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printItem prints a highlighted name with a dim description.
func printItem(w io.Writer, name, desc string) {
	fmt.Fprintln(w, StyleDim.Render(iconBullet)+" "+StyleHighlight.Render(name)+"  "+StyleDim.Render(desc))
}

// printKeyValue prints an indented labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printList prints names as an indented comma-separated line.
func printList(w io.Writer, names []string) {
	fmt.Fprintln(w, "  "+StyleValue.Render(strings.Join(names, ", ")))
}

func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}
