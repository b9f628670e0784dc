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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky    // runner body, bird
	ColorAmber  // banana peel, mid health
	ColorIndigo // structures
	ColorSlate  // ground, trunks, outlines
	ColorNight  // background streaks
)

// ANSI256 returns the xterm-256 palette index for the color.
// ColorDefault returns -1, meaning "terminal default".
func (c Color) ANSI256() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorBrightBlue:
		return 12
	case ColorBrightMagenta:
		return 13
	case ColorBrightCyan:
		return 14
	case ColorBrightWhite:
		return 15
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	case ColorSky:
		return 39
	case ColorAmber:
		return 214
	case ColorIndigo:
		return 63
	case ColorSlate:
		return 240
	case ColorNight:
		return 17
	default:
		return -1
	}
}
