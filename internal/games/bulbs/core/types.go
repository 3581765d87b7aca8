// Package core provides the simulation core of the bulbs push puzzle.
// It parses levels, answers tile queries, resolves player movement and
// block pushing, and positions the camera. This package is UI-agnostic
// and deterministic: time only advances through the Update calls.
package core

import (
	"fmt"
	"strings"
)

// CellSize is the edge length of one grid cell in pixel units.
const CellSize = 16

// Direction is one of the four cardinal directions.
// Y increases downward (screen coordinates).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one cell in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// From returns the cell one step from (x, y) in this direction.
func (d Direction) From(x, y int) (int, int) {
	dx, dy := d.Delta()
	return x + dx, y + dy
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// ParseDirection converts a name such as "north" or "n" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	default:
		return North, fmt.Errorf("unknown direction %q", s)
	}
}
