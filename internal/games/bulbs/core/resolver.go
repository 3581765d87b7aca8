package core

import (
	"fmt"
	"strings"
)

// PushPolicy decides what happens when a pushed block would slide into a
// cell already held by another entity.
type PushPolicy uint8

const (
	// PushOverlap lets the push proceed; the two entities end up sharing
	// the cell. Only the tile beyond the block is checked.
	PushOverlap PushPolicy = iota
	// PushStrict rejects the push when the cell beyond is occupied.
	PushStrict
)

// String returns the config name of the policy.
func (p PushPolicy) String() string {
	switch p {
	case PushOverlap:
		return "overlap"
	case PushStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParsePushPolicy converts a config name to a PushPolicy.
func ParsePushPolicy(s string) (PushPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overlap":
		return PushOverlap, nil
	case "strict":
		return PushStrict, nil
	default:
		return PushOverlap, fmt.Errorf("unknown push policy %q", s)
	}
}

// BlockReason explains why a move attempt was rejected.
type BlockReason uint8

const (
	NotBlocked     BlockReason = iota
	BlockedBusy                // player mid-translation
	BlockedTile                // target cell missing or impassable
	BlockedFixed               // target cell holds a non-pushable entity
	BlockedBeyond              // cell beyond the block missing or impassable
	BlockedOccupied            // cell beyond the block holds an entity (strict policy)
	BlockedSliding             // target block still sliding from a previous push
)

// String returns a short description of the reason.
func (r BlockReason) String() string {
	switch r {
	case NotBlocked:
		return "none"
	case BlockedBusy:
		return "busy"
	case BlockedTile:
		return "tile"
	case BlockedFixed:
		return "fixed"
	case BlockedBeyond:
		return "beyond"
	case BlockedOccupied:
		return "occupied"
	case BlockedSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Outcome reports what one Resolve call did.
type Outcome struct {
	Moved   bool        // the player started walking
	Pushed  Entity      // the entity pushed along, if any
	Dir     Direction   // direction of the last evaluated input
	Blocked BlockReason // why the last evaluated input was rejected
	Inputs  int         // number of inputs evaluated
}

// Resolver computes player movement for one simulation step, using the
// room as a read-only oracle.
type Resolver struct {
	Room   *Room
	Policy PushPolicy
}

// NewResolver creates a resolver for room with the given push policy.
func NewResolver(room *Room, policy PushPolicy) *Resolver {
	return &Resolver{Room: room, Policy: policy}
}

// Resolve evaluates the held directions in order. Every evaluated input
// turns the player, even when the move is rejected. The first accepted
// input moves the player (and pushes at most one entity); inputs after it
// are not evaluated, so a step never produces more than one move.
func (r *Resolver) Resolve(p *Player, entities []Entity, held []Direction) Outcome {
	var out Outcome
	out.Dir = p.Facing()

	for _, dir := range held {
		out.Inputs++
		out.Dir = dir
		p.Face(dir)

		pushed, reason := r.check(p, entities, dir)
		out.Blocked = reason
		if reason != NotBlocked {
			continue
		}

		if pushed != nil {
			pushed.Push(dir)
			out.Pushed = pushed
		}
		p.Walk(dir)
		out.Moved = true
		return out
	}
	return out
}

// check decides whether p may walk toward dir without changing any state.
func (r *Resolver) check(p *Player, entities []Entity, dir Direction) (*Block, BlockReason) {
	if !p.CanWalk() {
		return nil, BlockedBusy
	}

	nx, ny := dir.From(p.X(), p.Y())
	if !r.Room.Passable(nx, ny) {
		return nil, BlockedTile
	}

	idx := EntityAt(entities, nx, ny)
	if idx < 0 {
		return nil, NotBlocked
	}

	var block *Block
	switch e := entities[idx].(type) {
	case *Block:
		block = e
	case *Lightbulb:
		return nil, BlockedFixed
	default:
		panic(fmt.Sprintf("core: unhandled entity type %T", e))
	}
	if block.Busy() {
		return nil, BlockedSliding
	}

	nnx, nny := dir.From(nx, ny)
	if !r.Room.Passable(nnx, nny) {
		return nil, BlockedBeyond
	}
	if r.Policy == PushStrict && EntityAt(entities, nnx, nny) >= 0 {
		return nil, BlockedOccupied
	}
	return block, NotBlocked
}
