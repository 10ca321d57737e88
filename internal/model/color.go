package model

// Color is one of the eight named theme colors.
type Color int

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
	ColorPink
	ColorCyan
)

var colorNames = [...]string{
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorBlue:   "blue",
	ColorYellow: "yellow",
	ColorOrange: "orange",
	ColorPurple: "purple",
	ColorPink:   "pink",
	ColorCyan:   "cyan",
}

// ParseColor looks up a color by its exact name.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return Color(c), true
		}
	}
	return 0, false
}

// String returns the color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return ""
	}
	return colorNames[c]
}

// Colors returns all named colors in table order.
func Colors() []Color {
	out := make([]Color, len(colorNames))
	for i := range colorNames {
		out[i] = Color(i)
	}
	return out
}
