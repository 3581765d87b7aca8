package bulbs

import "github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"

// Snapshot is a comparable copy of the simulation state, used to check
// that equal inputs give equal runs.
type Snapshot struct {
	LevelID   string
	PlayerX   int
	PlayerY   int
	Facing    core.Direction
	Entities  []EntitySnapshot
	Moves     int
	Pushes    int
	Ticks     uint64
	Paused    bool
	Completed bool
}

// EntitySnapshot is the state of one entity.
type EntitySnapshot struct {
	Kind  core.EntityKind
	Color core.Color
	X, Y  int
	Busy  bool
}

// Snapshot captures the current state. It is empty when no level is loaded.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		LevelID:   g.source.ID,
		Moves:     g.moves,
		Pushes:    g.pushes,
		Ticks:     g.ticks,
		Paused:    g.paused,
		Completed: g.completed,
	}
	if g.level == nil {
		return s
	}

	p := g.level.Player
	s.PlayerX, s.PlayerY, s.Facing = p.X(), p.Y(), p.Facing()
	s.Entities = make([]EntitySnapshot, len(g.level.Entities))
	for i, e := range g.level.Entities {
		s.Entities[i] = EntitySnapshot{Kind: e.Kind(), Color: e.Color(), X: e.X(), Y: e.Y(), Busy: e.Busy()}
	}
	return s
}
