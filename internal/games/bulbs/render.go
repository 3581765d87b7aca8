package bulbs

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
)

const (
	hudRows    = 1
	footerRows = 1
)

// glyph is a repeating pattern of runes across the columns of one cell.
type glyph struct {
	runes []rune
	color platformcore.Color
}

func newGlyph(s string, c platformcore.Color) glyph {
	return glyph{runes: []rune(s), color: c}
}

func (gl glyph) at(col int) rune {
	return gl.runes[col%len(gl.runes)]
}

var (
	floorGlyph = newGlyph("· ", platformcore.ColorDarkGray)
	wallGlyph  = newGlyph("█", platformcore.ColorGray)
	exitGlyph  = newGlyph("▒", platformcore.ColorBrightGreen)
)

func tileGlyph(t core.Tile) glyph {
	switch t.Kind {
	case core.TileWall:
		return wallGlyph
	case core.TileExit:
		return exitGlyph
	default:
		return floorGlyph
	}
}

func entityGlyph(e core.Entity) glyph {
	if e.Kind() == core.KindLightbulb {
		switch e.Color() {
		case core.Green:
			return newGlyph("()", platformcore.ColorBrightGreen)
		case core.Blue:
			return newGlyph("()", platformcore.ColorBrightBlue)
		default:
			return newGlyph("()", platformcore.ColorBrightRed)
		}
	}
	switch e.Color() {
	case core.Red:
		return newGlyph("[]", platformcore.ColorRed)
	case core.White:
		return newGlyph("[]", platformcore.ColorBrightWhite)
	default:
		return newGlyph("[]", platformcore.ColorWhite)
	}
}

func playerGlyph(dir core.Direction) glyph {
	switch dir {
	case core.North:
		return newGlyph("▲ ", platformcore.ColorBrightYellow)
	case core.East:
		return newGlyph("▶ ", platformcore.ColorBrightYellow)
	case core.West:
		return newGlyph("◀ ", platformcore.ColorBrightYellow)
	default:
		return newGlyph("▼ ", platformcore.ColorBrightYellow)
	}
}

// viewport is the terminal area the room is drawn into and the matching
// camera, which works in pixel units.
type viewport struct {
	x, y, cols, rows int
	perCell          int
	camera           core.Camera
}

func (g *Game) viewport() viewport {
	per := g.cfg.Display.CellColumns
	if per < 1 {
		per = 2
	}
	v := viewport{x: 0, y: 0, cols: g.screenW, rows: g.screenH, perCell: per}
	if g.cfg.Display.ShowHUD {
		v.y = hudRows
		v.rows -= hudRows + footerRows
	}
	v.camera = core.NewCamera(v.cols/per*core.CellSize, v.rows*core.CellSize)
	return v
}

// place converts a pixel-space top-left corner to the terminal cell it
// starts in.
func (v viewport) place(px, py, ox, oy int) (int, int) {
	col := floorDiv((px-ox)*v.perCell, core.CellSize)
	row := floorDiv(py-oy, core.CellSize)
	return v.x + col, v.y + row
}

func (v viewport) draw(dst *platformcore.Screen, col, row int, gl glyph) {
	if row < v.y || row >= v.y+v.rows {
		return
	}
	for i := 0; i < v.perCell; i++ {
		c := col + i
		if c < v.x || c >= v.x+v.cols {
			continue
		}
		dst.SetColored(c, row, gl.at(i), gl.color)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Render draws the room through the camera, then the HUD and overlays.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.level == nil {
		g.renderError(dst)
		return
	}

	v := g.viewport()
	if v.cols < v.perCell || v.rows < 1 {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}
	g.renderRoom(dst, v)

	if g.cfg.Display.ShowHUD {
		g.renderHUD(dst)
	}

	switch {
	case g.completed:
		g.renderOverlay(dst,
			"LEVEL COMPLETE",
			fmt.Sprintf("score %d  moves %d  pushes %d", g.score, g.moves, g.pushes),
			"r: replay   esc: levels")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "p: resume")
	}
}

func (g *Game) renderRoom(dst *platformcore.Screen, v viewport) {
	room := g.level.Room
	cx, cy := g.level.Player.Center()
	ox, oy := v.camera.Origin(room, cx, cy)

	room.Each(func(x, y int, t core.Tile) {
		col, row := v.place(x*core.CellSize, y*core.CellSize, ox, oy)
		v.draw(dst, col, row, tileGlyph(t))
	})

	for _, e := range g.level.Entities {
		dx, dy := e.Offset()
		col, row := v.place(e.X()*core.CellSize+dx, e.Y()*core.CellSize+dy, ox, oy)
		v.draw(dst, col, row, entityGlyph(e))
	}

	p := g.level.Player
	dx, dy := p.Offset()
	col, row := v.place(p.X()*core.CellSize+dx, p.Y()*core.CellSize+dy, ox, oy)
	v.draw(dst, col, row, playerGlyph(p.Facing()))
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s  moves %d  pushes %d", g.source.Title(), g.moves, g.pushes)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)
	if g.cfg.Movement.Policy() == core.PushStrict {
		dst.DrawTextColored(dst.Width()-8, 0, "[strict]", platformcore.ColorGray)
	}

	controls := " move: arrows/wasd  r: restart  p: pause  esc: levels  q: quit"
	dst.DrawTextColored(0, dst.Height()-1, controls, platformcore.ColorGray)
}

func (g *Game) renderError(dst *platformcore.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "cannot load level")
	if g.loadErr != nil {
		dst.DrawTextCentered(mid+1, g.loadErr.Error())
	}
}

// renderOverlay draws a bordered box in the middle of the screen with one
// centered line per entry.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	box := platformcore.NewRect(0, 0, width+4, len(lines)*2+1)
	box.X = (dst.Width() - box.W) / 2
	box.Y = (dst.Height() - box.H) / 2

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	for i, l := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = platformcore.ColorBrightYellow
		}
		x := (dst.Width() - len([]rune(l))) / 2
		dst.DrawTextColored(x, box.Y+1+i*2, l, color)
	}
}
