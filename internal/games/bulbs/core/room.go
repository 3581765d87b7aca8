package core

// Room is the immutable, rectangular tile grid of a level.
// Tiles are stored in row-major order: index = y*width + x.
type Room struct {
	width  int
	height int
	tiles  []Tile
}

// NewRoom creates a room from row-major tiles.
// It panics if len(tiles) is not width*height; ParseLevel never does that.
func NewRoom(width, height int, tiles []Tile) *Room {
	if width <= 0 || height <= 0 || len(tiles) != width*height {
		panic("core: room tiles do not match dimensions")
	}
	owned := make([]Tile, len(tiles))
	copy(owned, tiles)
	return &Room{width: width, height: height, tiles: owned}
}

// Width returns the number of columns.
func (r *Room) Width() int {
	return r.width
}

// Height returns the number of rows.
func (r *Room) Height() int {
	return r.height
}

// TileAt returns the tile at (x, y).
// The second result is false for coordinates outside the grid, which
// callers treat as impassable.
func (r *Room) TileAt(x, y int) (Tile, bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return Tile{}, false
	}
	return r.tiles[y*r.width+x], true
}

// Passable reports whether (x, y) holds a passable tile.
func (r *Room) Passable(x, y int) bool {
	t, ok := r.TileAt(x, y)
	return ok && t.Passable()
}

// PixelWidth returns the room width in pixel units.
func (r *Room) PixelWidth() int {
	return r.width * CellSize
}

// PixelHeight returns the room height in pixel units.
func (r *Room) PixelHeight() int {
	return r.height * CellSize
}

// Each calls fn for every tile in row-major order.
func (r *Room) Each(fn func(x, y int, t Tile)) {
	for i, t := range r.tiles {
		fn(i%r.width, i/r.width, t)
	}
}
