package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-drops/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes. ColorDefault keeps the
// terminal's own foreground.
var ansiCodes = []string{
	core.ColorDefault:       "",
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
	core.ColorBrown:         "130",
	core.ColorWater:         "39",
}

const dimCode = "241"

// Palette turns screen colors into lipgloss styles for one renderer.
// Over SSH each session gets its own, so colors follow the client's
// terminal profile rather than the server's.
type Palette struct {
	styles []lipgloss.Style
	dim    lipgloss.Style
}

// NewPalette builds a palette for r, or for the process terminal when r is nil.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		styles: make([]lipgloss.Style, len(ansiCodes)),
		dim:    r.NewStyle().Foreground(lipgloss.Color(dimCode)),
	}
	for c, code := range ansiCodes {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		p.styles[c] = st
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if int(c) >= len(p.styles) {
		return p.styles[core.ColorDefault]
	}
	return p.styles[c]
}

// Render converts a screen buffer to a styled string. Runs of cells with
// the same color share one escape sequence.
func (p *Palette) Render(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// Dim renders secondary text such as the help bar.
func (p *Palette) Dim(text string) string {
	return p.dim.Render(text)
}
