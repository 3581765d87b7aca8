package core

import "time"

// EntityKind is the closed set of entity variants.
type EntityKind uint8

const (
	KindBlock EntityKind = iota
	KindLightbulb
)

// String returns the kind name.
func (k EntityKind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindLightbulb:
		return "lightbulb"
	default:
		return "unknown"
	}
}

// Entity is a collidable object on the grid other than the player.
// The set of implementations is closed: *Block and *Lightbulb.
type Entity interface {
	// X and Y return the logical cell. During a translation this is the
	// destination cell.
	X() int
	Y() int
	Kind() EntityKind
	Color() Color
	// Pushable reports whether the player can shove the entity.
	Pushable() bool
	// Busy reports whether the entity is mid-translation.
	Busy() bool
	// Offset is the pixel offset of the drawn position from the logical cell.
	Offset() (int, int)
	Update(elapsed time.Duration)
	SetStepDuration(d time.Duration)

	sealed()
}

type body struct {
	x, y   int
	color  Color
	motion Motion
}

func (b *body) X() int                          { return b.x }
func (b *body) Y() int                          { return b.y }
func (b *body) Color() Color                    { return b.color }
func (b *body) Busy() bool                      { return b.motion.Busy() }
func (b *body) Offset() (int, int)              { return b.motion.Offset() }
func (b *body) Update(elapsed time.Duration)    { b.motion.Update(elapsed) }
func (b *body) SetStepDuration(d time.Duration) { b.motion.SetDuration(d) }
func (b *body) sealed()                         {}

// Block is a passive, pushable entity.
type Block struct {
	body
}

// NewBlock creates a block at (x, y).
func NewBlock(x, y int, c Color) *Block {
	return &Block{body{x: x, y: y, color: c}}
}

// Kind returns KindBlock.
func (b *Block) Kind() EntityKind { return KindBlock }

// Pushable returns true.
func (b *Block) Pushable() bool { return true }

// Push moves the block one cell in dir. It reports false and does nothing
// while the block is already sliding.
func (b *Block) Push(dir Direction) bool {
	if !b.motion.Start(dir) {
		return false
	}
	b.x, b.y = dir.From(b.x, b.y)
	return true
}

// Lightbulb is a passive entity that occupies its cell and cannot be pushed.
type Lightbulb struct {
	body
}

// NewLightbulb creates a lightbulb at (x, y).
func NewLightbulb(x, y int, c Color) *Lightbulb {
	return &Lightbulb{body{x: x, y: y, color: c}}
}

// Kind returns KindLightbulb.
func (l *Lightbulb) Kind() EntityKind { return KindLightbulb }

// Pushable returns false.
func (l *Lightbulb) Pushable() bool { return false }

// EntityAt returns the index of the first entity whose logical cell is
// (x, y), or -1. A linear scan is enough for hand-made levels.
func EntityAt(entities []Entity, x, y int) int {
	for i, e := range entities {
		if e.X() == x && e.Y() == y {
			return i
		}
	}
	return -1
}
