package core

// Camera follows the player but never scrolls past the room edges.
// ViewW and ViewH are the viewport extent in pixel units.
type Camera struct {
	ViewW int
	ViewH int
}

// NewCamera creates a camera for a viewport of w by h pixel units.
func NewCamera(w, h int) Camera {
	return Camera{ViewW: w, ViewH: h}
}

// Focus returns the pixel-space point the viewport is centered on, given
// the player's pixel center (px, py).
func (c Camera) Focus(room *Room, px, py int) (int, int) {
	return focusAxis(px, c.ViewW, room.PixelWidth()), focusAxis(py, c.ViewH, room.PixelHeight())
}

// Origin returns the top-left corner of the viewport in pixel space.
func (c Camera) Origin(room *Room, px, py int) (int, int) {
	fx, fy := c.Focus(room, px, py)
	return fx - c.ViewW/2, fy - c.ViewH/2
}

// focusAxis clamps p to [half, extent-half]. A room narrower than the
// viewport is centered instead.
func focusAxis(p, view, extent int) int {
	half := view / 2
	hi := extent - half
	if hi < half {
		return extent / 2
	}
	return clamp(p, half, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
