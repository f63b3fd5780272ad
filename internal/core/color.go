package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
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
)

// Blend mixes two palette colors into a single display color.
// The palette is coarse, so blending picks the brighter partner when the
// pair has no natural mix; identical inputs pass through unchanged.
func Blend(a, b Color) Color {
	if a == b {
		return a
	}
	switch {
	case (a == ColorRed && b == ColorYellow) || (a == ColorYellow && b == ColorRed):
		return ColorOrange
	case (a == ColorBlue && b == ColorRed) || (a == ColorRed && b == ColorBlue):
		return ColorMagenta
	case (a == ColorBlue && b == ColorGreen) || (a == ColorGreen && b == ColorBlue):
		return ColorCyan
	}
	if b > a {
		return b
	}
	return a
}
