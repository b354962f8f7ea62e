// Package bubble implements the bubble-shooter game logic: a hex-packed
// bubble grid, projectile shooting, flood-fill match clearing, and a
// stepped level difficulty curve. This package is UI-agnostic and
// deterministic.
package bubble

import (
	"github.com/vovakirdan/bubblepop/internal/core"
)

// BubbleColor identifies a bubble color from the closed palette.
type BubbleColor uint8

const (
	ColorRed BubbleColor = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorCyan
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c BubbleColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}

// Char returns the single-character representation used in layout files.
func (c BubbleColor) Char() byte {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorCyan:
		return 'C'
	default:
		return '?'
	}
}

// ScreenColor maps a bubble color to the platform screen color.
func (c BubbleColor) ScreenColor() core.Color {
	switch c {
	case ColorRed:
		return core.ColorRed
	case ColorGreen:
		return core.ColorGreen
	case ColorBlue:
		return core.ColorBlue
	case ColorYellow:
		return core.ColorYellow
	case ColorPurple:
		return core.ColorMagenta
	case ColorCyan:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// ParseColorChar converts a layout character to a BubbleColor.
// Returns false for unrecognized characters so level loading can fail fast.
func ParseColorChar(ch byte) (BubbleColor, bool) {
	switch ch {
	case 'R', 'r':
		return ColorRed, true
	case 'G', 'g':
		return ColorGreen, true
	case 'B', 'b':
		return ColorBlue, true
	case 'Y', 'y':
		return ColorYellow, true
	case 'P', 'p':
		return ColorPurple, true
	case 'C', 'c':
		return ColorCyan, true
	default:
		return ColorRed, false
	}
}

// Palette returns the ordered active palette for a level: the first k
// colors of the global set. k is clamped to [1, ColorCount].
func Palette(k int) []BubbleColor {
	if k < 1 {
		k = 1
	}
	if k > int(ColorCount) {
		k = int(ColorCount)
	}
	colors := make([]BubbleColor, k)
	for i := range colors {
		colors[i] = BubbleColor(i)
	}
	return colors
}
