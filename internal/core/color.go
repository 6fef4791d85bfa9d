package core

// Color represents a foreground color for a screen cell.
// Renderers map these to ANSI 256-color codes.
type Color uint8

// Palette used by the water games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown // mud, polluted water
	ColorWater // clean water blue used for drops and the meter
)

// Warning returns the color used for values that need attention,
// such as a countdown that is running out.
func Warning(low bool) Color {
	if low {
		return ColorBrightRed
	}
	return ColorBrightWhite
}
