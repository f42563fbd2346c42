// Package render lays out eg's listing for the terminal.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/eg/internal/listing"
)

const columnGap = 2

// Listing renders listing entries. With a width it fills columns top to
// bottom the way ls does; without one it writes one entry per line.
type Listing struct {
	theme Theme
	width int
}

// NewListing creates a listing renderer. A width of zero or less means the
// output is not a terminal.
func NewListing(theme Theme, width int) *Listing {
	return &Listing{theme: theme, width: width}
}

// Render formats entries, ending with a newline when there are any.
func (l *Listing) Render(entries []listing.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	if l.width <= 0 {
		var sb strings.Builder
		for _, e := range entries {
			sb.WriteString(l.cell(e))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	widest := 0
	for _, e := range entries {
		widest = max(widest, runewidth.StringWidth(e.String()))
	}
	colWidth := widest + columnGap
	cols := max(1, (l.width+columnGap)/colWidth)
	rows := (len(entries) + cols - 1) / cols

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(entries) {
				break
			}
			e := entries[i]
			sb.WriteString(l.cell(e))
			// No trailing padding after the last cell in a row.
			if next := (c+1)*rows + r; c+1 < cols && next < len(entries) {
				sb.WriteString(strings.Repeat(" ", colWidth-runewidth.StringWidth(e.String())))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (l *Listing) cell(e listing.Entry) string {
	switch e.Source {
	case listing.CustomOnly:
		return l.theme.Plain.Render(e.Name) + " " + l.theme.Custom.Render(listing.FlagOnlyCustom)
	case listing.Both:
		return l.theme.Plain.Render(e.Name) + " " + l.theme.Both.Render(listing.FlagCustomAndDefault)
	default:
		return l.theme.Plain.Render(e.Name)
	}
}
