package core

import (
	"fmt"
	"image/color"
)

// Common colors used by viewers for chrome (status lines, help text).
var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Gray  = color.RGBA{128, 128, 128, 255}
)

// HexString formats c as #rrggbb, the form lipgloss accepts for true color.
func HexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
