// Package preview draws rendered buttons in the terminal by interpreting
// their utility classes against the brand palette.
package preview

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette maps colour tokens such as "blue-500" to terminal colours.
type Palette map[string]lipgloss.Color

// Color returns the colour for token, or "" when it is not in the palette.
func (p Palette) Color(token string) lipgloss.Color {
	return p[token]
}

// Has reports whether token names a palette colour.
func (p Palette) Has(token string) bool {
	_, ok := p[token]
	return ok
}

// BrandPalette returns the colours used by the button styles.
func BrandPalette() Palette {
	return Palette{
		"blue-400": "#7A9BFF",
		"blue-500": "#4C6EE6",

		"coral-500": "#FF967E",
		"coral-600": "#FF7759",
		"coral-700": "#E25D41",

		"quartz-400": "#E5B8F2",
		"quartz-500": "#D18EE2",

		"mushroom-400": "#A39E8E",
		"mushroom-500": "#75715E",

		"danger-350": "#FF6B6B",
		"danger-500": "#D93025",

		"green-200": "#B8E6C8",
		"green-250": "#9BD9B1",

		"evolved-green-500":    "#5AD17C",
		"evolved-green-700":    "#2E9E55",
		"evolved-blue-500":     "#3F6BFF",
		"evolved-mushroom-500": "#C9C2AE",
		"evolved-mushroom-600": "#B2AA93",
		"evolved-quartz-500":   "#E2A8F0",
		"evolved-quartz-700":   "#B469CC",

		"volcanic-100": "#0E0E0E",
		"volcanic-150": "#1A1A1A",
		"volcanic-200": "#2A2A2A",
		"volcanic-600": "#6B6B6B",
		"volcanic-700": "#8C8C8C",

		"marble-800":  "#DCDAD5",
		"marble-950":  "#F5F4F0",
		"marble-1000": "#FFFFFF",
	}
}
