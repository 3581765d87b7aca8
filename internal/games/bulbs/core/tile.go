package core

// TileKind is the closed set of tile classifications.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileExit
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Tile is a single immutable grid cell. Its position is implied by its
// index in the Room.
type Tile struct {
	Kind TileKind
}

// TileFromChar maps a level character to its tile.
// Every character that is not a wall or an exit is floor, including the
// player and entity markers.
func TileFromChar(c byte) Tile {
	switch c {
	case '#':
		return Tile{Kind: TileWall}
	case 'z':
		return Tile{Kind: TileExit}
	default:
		return Tile{Kind: TileFloor}
	}
}

// Passable reports whether the player or an entity may enter the tile.
func (t Tile) Passable() bool {
	switch t.Kind {
	case TileWall:
		return false
	case TileFloor, TileExit:
		return true
	default:
		return false
	}
}

// IsExit reports whether the tile is the level's completion target.
func (t Tile) IsExit() bool {
	return t.Kind == TileExit
}
