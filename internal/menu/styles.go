package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors follow the classic curses pairing: the selected row inverts to
// black text on a white band.
var (
	colorBlack = lipgloss.Color("0")
	colorWhite = lipgloss.Color("7")
	colorDim   = lipgloss.Color("8")
)

var (
	// Selected row label, inverse video.
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorBlack).
			Background(colorWhite)

	// Unselected rows print in the terminal's default face.
	itemStyle = lipgloss.NewStyle()

	// Help footer under the list.
	helpStyle = lipgloss.NewStyle().Foreground(colorDim)

	// Marker ahead of the selected row.
	cursorStyle = lipgloss.NewStyle().Bold(true)
)

// cursor returns the marker drawn ahead of the selected row.
func cursor() string {
	return cursorStyle.Render("› ")
}

// noCursor returns matching spacing for unselected rows.
func noCursor() string {
	return "  "
}

// centerLine pads line so its display width sits centered within width.
// Lines wider than the terminal are returned unchanged.
func centerLine(line string, width int) string {
	pad := (width - lipgloss.Width(line)) / 2
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}
