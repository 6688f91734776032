package core

// Color is a foreground color for a screen cell or a bullet tag.
// Frontends map it to ANSI codes or RGBA values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorRed
	ColorYellow
	ColorOrange
	ColorGreen
	ColorCyan
	ColorMagenta
	ColorLavender
	ColorGray
)

// String returns the color name used in logs and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorLavender:
		return "lavender"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
