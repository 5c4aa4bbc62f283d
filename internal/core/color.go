package core

import "github.com/lucasb-eyer/go-colorful"

// Color is a foreground color for a screen cell. It holds either an ANSI
// 256-color code ("9") or a hex RGB value ("#99c9ff"); the platform layer
// passes it to lipgloss unchanged.
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault Color = ""
	ColorYellow  Color = "3"
	ColorWhite   Color = "7"
	ColorGray    Color = "245"
)

// RGB parses a hex color. ANSI codes are not convertible and return an error.
func (c Color) RGB() (colorful.Color, error) {
	return colorful.Hex(string(c))
}
