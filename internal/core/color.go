package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightWhite
	ColorGray
)

// ParseColor maps a config color name to a Color. Unknown names map to
// ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright-red":
		return ColorBrightRed
	case "bright-green":
		return ColorBrightGreen
	case "bright-yellow":
		return ColorBrightYellow
	case "bright-white":
		return ColorBrightWhite
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
