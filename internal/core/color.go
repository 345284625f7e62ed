package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightWhite
	ColorSky  // win flash tint
	ColorGray // ghost letters, empty gaps
	ColorDim  // starfield, hints
)
