package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planetmatch/internal/core"
)

// ansiCodes maps core.Color to terminal color codes. ColorDefault keeps
// the terminal's foreground.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

type styleKey struct {
	color core.Color
	attr  core.Attr
}

// styles caches one lipgloss style per color and attribute combination.
// It is only touched from the Bubble Tea View goroutine.
var styles = map[styleKey]lipgloss.Style{}

// styleFor returns the style for a color with attributes applied.
func styleFor(c core.Color, a core.Attr) lipgloss.Style {
	k := styleKey{c, a}
	if st, ok := styles[k]; ok {
		return st
	}

	st := lipgloss.NewStyle()
	if code, ok := ansiCodes[c]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	if a.Has(core.AttrBold) {
		st = st.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		st = st.Reverse(true)
	}
	if a.Has(core.AttrDim) {
		st = st.Faint(true)
	}
	styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color and attributes share one escape
// sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Attr != start.Attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Color, start.Attr).Render(run.String()))
		}
	}
	return sb.String()
}
