package core

// Color is the foreground of a screen cell. Platforms map it to whatever
// their output supports; the terminal renderer uses ANSI 256 codes.
type Color uint8

// Cell colours. Puzzle entity colours (red, green, blue, white, gray) map
// onto the plain and bright variants here.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)
