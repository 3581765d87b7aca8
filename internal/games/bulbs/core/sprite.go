package core

// SpriteRect is a source rectangle in the sprite atlas, in pixel units.
type SpriteRect struct {
	X, Y, W, H int
}

func cell(x, y int) SpriteRect {
	return SpriteRect{X: x * CellSize, Y: y * CellSize, W: CellSize, H: CellSize}
}

// Atlas layout, in cells:
//
//	row 0: (unused), exit, wall
//	row 1: (unused), (unused), floor
//	row 2: gray block, red block, white block
//	row 3: red bulb, green bulb, blue bulb
//	row 4: player facing north, east, south, west
const (
	AtlasCols = 4
	AtlasRows = 5
)

// TileSprite returns the atlas rectangle for a tile kind.
func TileSprite(k TileKind) SpriteRect {
	switch k {
	case TileWall:
		return cell(2, 0)
	case TileExit:
		return cell(1, 0)
	case TileFloor:
		return cell(2, 1)
	default:
		return cell(2, 1)
	}
}

// EntitySprite returns the atlas rectangle for an entity variant.
func EntitySprite(k EntityKind, c Color) SpriteRect {
	switch k {
	case KindBlock:
		switch c {
		case Red:
			return cell(1, 2)
		case White:
			return cell(2, 2)
		default:
			return cell(0, 2)
		}
	case KindLightbulb:
		switch c {
		case Green:
			return cell(1, 3)
		case Blue:
			return cell(2, 3)
		default:
			return cell(0, 3)
		}
	default:
		return cell(0, 2)
	}
}

// PlayerSprite returns the atlas rectangle for the player facing dir.
func PlayerSprite(dir Direction) SpriteRect {
	return cell(int(dir), 4)
}
