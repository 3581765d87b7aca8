package core

// Color is the fixed color of a block or lightbulb.
type Color uint8

const (
	Gray Color = iota
	Red
	White
	Green
	Blue
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Gray:
		return "gray"
	case Red:
		return "red"
	case White:
		return "white"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}
