package core

// Color is the foreground color of a screen cell. Games pick colors by
// name; each frontend maps them onto the terminal's 256-color palette.
type Color uint8

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
)

// palette holds the 256-color index of every named color. Index 0 is
// unused: ColorDefault keeps the terminal's own foreground.
var palette = [...]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// Palette returns the 256-color index for c. It reports false for
// ColorDefault and unknown colors.
func (c Color) Palette() (int, bool) {
	if c == ColorDefault || int(c) >= len(palette) {
		return 0, false
	}
	return palette[c], true
}
