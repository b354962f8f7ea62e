package core

// Color represents a foreground color for a screen cell. The set is
// exactly the six bubble hues plus a default for chrome text; the
// platform layer maps each to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
)
