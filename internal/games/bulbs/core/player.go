package core

import "time"

// Player is the single player-controlled piece of a level.
type Player struct {
	x, y   int
	facing Direction
	motion Motion
}

// NewPlayer creates a player standing on (x, y), facing south.
func NewPlayer(x, y int) *Player {
	return &Player{x: x, y: y, facing: South}
}

// X returns the logical column (the destination while walking).
func (p *Player) X() int { return p.x }

// Y returns the logical row (the destination while walking).
func (p *Player) Y() int { return p.y }

// Facing returns the direction the player looks at.
func (p *Player) Facing() Direction { return p.facing }

// Face turns the player without moving.
func (p *Player) Face(dir Direction) {
	p.facing = dir
}

// CanWalk reports whether the player is idle between cells.
func (p *Player) CanWalk() bool {
	return !p.motion.Busy()
}

// Walk starts a one-cell translation in dir. It reports false and does
// nothing unless CanWalk is true. Walk does not check the grid; that is
// the Resolver's job.
func (p *Player) Walk(dir Direction) bool {
	if !p.motion.Start(dir) {
		return false
	}
	p.facing = dir
	p.x, p.y = dir.From(p.x, p.y)
	return true
}

// Update advances an in-flight translation.
func (p *Player) Update(elapsed time.Duration) {
	p.motion.Update(elapsed)
}

// Offset is the pixel offset of the drawn position from the logical cell.
func (p *Player) Offset() (int, int) {
	return p.motion.Offset()
}

// Center returns the pixel-space center of the drawn player, including
// any in-flight interpolation.
func (p *Player) Center() (int, int) {
	ox, oy := p.motion.Offset()
	return p.x*CellSize + CellSize/2 + ox, p.y*CellSize + CellSize/2 + oy
}

// SetStepDuration changes how long one walk takes.
func (p *Player) SetStepDuration(d time.Duration) {
	p.motion.SetDuration(d)
}
