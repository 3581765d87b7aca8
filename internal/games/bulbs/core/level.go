package core

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// Reasons a level fails to load. LevelFormatError wraps one of them.
var (
	ErrStartPosition = errors.New("level must have exactly one starting position")
	ErrRaggedRow     = errors.New("row width differs from the first row")
	ErrEmptyLevel    = errors.New("level is empty")
)

// LevelFormatError reports a malformed level description.
type LevelFormatError struct {
	Line   int   // 1-based line, 0 when the problem is not tied to a line
	Reason error // one of the Err* reasons above
}

func (e *LevelFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level format: line %d: %v", e.Line, e.Reason)
	}
	return fmt.Sprintf("level format: %v", e.Reason)
}

func (e *LevelFormatError) Unwrap() error {
	return e.Reason
}

// Level is the result of parsing a level description: the grid, the player
// and the other entities in reading order.
type Level struct {
	Room     *Room
	Player   *Player
	Entities []Entity
}

// SetStepDuration sets the translation time of the player and every entity.
func (l *Level) SetStepDuration(d time.Duration) {
	l.Player.SetStepDuration(d)
	for _, e := range l.Entities {
		e.SetStepDuration(d)
	}
}

// Idle reports whether nothing on the level is mid-translation.
func (l *Level) Idle() bool {
	if !l.Player.CanWalk() {
		return false
	}
	for _, e := range l.Entities {
		if e.Busy() {
			return false
		}
	}
	return true
}

// OnExit reports whether the player's logical cell is an exit tile.
func (l *Level) OnExit() bool {
	t, ok := l.Room.TileAt(l.Player.X(), l.Player.Y())
	return ok && t.IsExit()
}

// ParseLevel turns a level description into a Level.
//
// The description is newline separated rows of one byte per cell:
//
//	#  wall            a  player start (floor beneath)
//	z  exit            b  gray block    r  red block    w  white block
//	                   R  red bulb      G  green bulb   B  blue bulb
//
// Any other byte is floor. The first row sets the width; every other row
// must match it. CRLF line endings and trailing newlines are accepted.
func ParseLevel(data []byte) (*Level, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimRight(data, "\n")
	if len(data) == 0 {
		return nil, &LevelFormatError{Reason: ErrEmptyLevel}
	}

	rows := bytes.Split(data, []byte("\n"))
	width := len(rows[0])
	if width == 0 {
		return nil, &LevelFormatError{Line: 1, Reason: ErrEmptyLevel}
	}

	tiles := make([]Tile, 0, width*len(rows))
	var player *Player
	var entities []Entity

	for y, row := range rows {
		if len(row) != width {
			return nil, &LevelFormatError{Line: y + 1, Reason: ErrRaggedRow}
		}
		for x, c := range row {
			tiles = append(tiles, TileFromChar(c))

			switch c {
			case 'a':
				if player != nil {
					return nil, &LevelFormatError{Line: y + 1, Reason: ErrStartPosition}
				}
				player = NewPlayer(x, y)
			case 'b':
				entities = append(entities, NewBlock(x, y, Gray))
			case 'r':
				entities = append(entities, NewBlock(x, y, Red))
			case 'w':
				entities = append(entities, NewBlock(x, y, White))
			case 'R':
				entities = append(entities, NewLightbulb(x, y, Red))
			case 'G':
				entities = append(entities, NewLightbulb(x, y, Green))
			case 'B':
				entities = append(entities, NewLightbulb(x, y, Blue))
			}
		}
	}

	if player == nil {
		return nil, &LevelFormatError{Reason: ErrStartPosition}
	}

	return &Level{
		Room:     NewRoom(width, len(rows), tiles),
		Player:   player,
		Entities: entities,
	}, nil
}
