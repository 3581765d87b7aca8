// Package atlas draws the placeholder sprite sheet of the windowed
// frontend. Sprites sit where core.TileSprite, core.EntitySprite and
// core.PlayerSprite expect them.
package atlas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
)

// Palette holds the placeholder colors.
var Palette = struct {
	Floor       color.RGBA
	FloorDot    color.RGBA
	Wall        color.RGBA
	WallEdge    color.RGBA
	Exit        color.RGBA
	ExitStripe  color.RGBA
	Player      color.RGBA
	PlayerNose  color.RGBA
	Outline     color.RGBA
	Glass       color.RGBA
	Transparent color.RGBA
}{
	Floor:       color.RGBA{44, 46, 54, 255},
	FloorDot:    color.RGBA{60, 63, 74, 255},
	Wall:        color.RGBA{120, 126, 140, 255},
	WallEdge:    color.RGBA{82, 86, 98, 255},
	Exit:        color.RGBA{30, 120, 60, 255},
	ExitStripe:  color.RGBA{80, 220, 120, 255},
	Player:      color.RGBA{250, 210, 60, 255},
	PlayerNose:  color.RGBA{40, 30, 10, 255},
	Outline:     color.RGBA{20, 20, 24, 255},
	Glass:       color.RGBA{255, 255, 255, 90},
	Transparent: color.RGBA{},
}

// EntityColor maps an entity color to its fill.
func EntityColor(c core.Color) color.RGBA {
	switch c {
	case core.Red:
		return color.RGBA{210, 60, 60, 255}
	case core.White:
		return color.RGBA{235, 235, 235, 255}
	case core.Green:
		return color.RGBA{70, 200, 90, 255}
	case core.Blue:
		return color.RGBA{70, 120, 230, 255}
	default:
		return color.RGBA{150, 150, 150, 255}
	}
}

// Generate draws the full sheet.
func Generate() *image.RGBA {
	const size = core.CellSize
	img := image.NewRGBA(image.Rect(0, 0, core.AtlasCols*size, core.AtlasRows*size))

	blit(img, core.TileSprite(core.TileFloor), floorTile())
	blit(img, core.TileSprite(core.TileWall), borderedTile(Palette.Wall, Palette.WallEdge, 2))
	blit(img, core.TileSprite(core.TileExit), exitTile())

	for _, c := range []core.Color{core.Gray, core.Red, core.White} {
		blit(img, core.EntitySprite(core.KindBlock, c), blockSprite(EntityColor(c)))
	}
	for _, c := range []core.Color{core.Red, core.Green, core.Blue} {
		blit(img, core.EntitySprite(core.KindLightbulb, c), bulbSprite(EntityColor(c)))
	}
	for _, d := range []core.Direction{core.North, core.East, core.South, core.West} {
		blit(img, core.PlayerSprite(d), playerSprite(d))
	}
	return img
}

// Encode writes the sheet as PNG.
func Encode(w io.Writer) error {
	return png.Encode(w, Generate())
}

func blit(dst *image.RGBA, r core.SpriteRect, src image.Image) {
	rect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	draw.Draw(dst, rect, src, image.Point{}, draw.Over)
}

func newCell() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, core.CellSize, core.CellSize))
}

func solidTile(c color.RGBA) *image.RGBA {
	img := newCell()
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func borderedTile(fill, border color.RGBA, width int) *image.RGBA {
	img := solidTile(fill)
	n := core.CellSize
	for i := range width {
		for x := range n {
			img.Set(x, i, border)
			img.Set(x, n-1-i, border)
			img.Set(i, x, border)
			img.Set(n-1-i, x, border)
		}
	}
	return img
}

func floorTile() *image.RGBA {
	img := solidTile(Palette.Floor)
	q := core.CellSize / 4
	for _, p := range []image.Point{{q, q}, {3 * q, q}, {q, 3 * q}, {3 * q, 3 * q}} {
		img.Set(p.X, p.Y, Palette.FloorDot)
	}
	return img
}

func exitTile() *image.RGBA {
	img := solidTile(Palette.Exit)
	n := core.CellSize
	for y := range n {
		for x := range n {
			if (x+y)%4 == 0 {
				img.Set(x, y, Palette.ExitStripe)
			}
		}
	}
	return img
}

func blockSprite(fill color.RGBA) *image.RGBA {
	img := borderedTile(fill, Palette.Outline, 1)
	n := core.CellSize
	// inner bevel
	for i := 3; i < n-3; i++ {
		img.Set(i, 3, Palette.Outline)
		img.Set(3, i, Palette.Outline)
	}
	return img
}

func bulbSprite(fill color.RGBA) *image.RGBA {
	img := newCell()
	n := core.CellSize
	cx, cy, r := n/2, n/2-1, n/2-3
	for y := range n {
		for x := range n {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			switch {
			case d <= (r-1)*(r-1):
				img.Set(x, y, fill)
			case d <= r*r:
				img.Set(x, y, Palette.Outline)
			}
		}
	}
	// highlight and socket
	img.Set(cx-2, cy-2, Palette.Glass)
	img.Set(cx-1, cy-2, Palette.Glass)
	for x := cx - 2; x <= cx+1; x++ {
		img.Set(x, n-2, Palette.WallEdge)
		img.Set(x, n-3, Palette.WallEdge)
	}
	return img
}

func playerSprite(dir core.Direction) *image.RGBA {
	img := newCell()
	n := core.CellSize
	draw.Draw(img, image.Rect(2, 2, n-2, n-2), &image.Uniform{Palette.Outline}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(3, 3, n-3, n-3), &image.Uniform{Palette.Player}, image.Point{}, draw.Src)

	// A nose on the facing edge.
	dx, dy := dir.Delta()
	nx, ny := n/2-1+dx*4, n/2-1+dy*4
	draw.Draw(img, image.Rect(nx, ny, nx+2, ny+2), &image.Uniform{Palette.PlayerNose}, image.Point{}, draw.Src)
	return img
}
