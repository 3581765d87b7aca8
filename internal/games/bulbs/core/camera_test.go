package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
)

// wideLevel builds a single-corridor level of the given width with the
// player at column px.
func wideLevel(t *testing.T, width, px int) *core.Level {
	t.Helper()
	row := []byte(strings.Repeat(".", width))
	row[px] = 'a'
	return mustParse(t, string(row))
}

func TestCameraClampsToRoomEdges(t *testing.T) {
	cam := core.NewCamera(200, 200)
	half := 100
	roomW := 40 * core.CellSize
	max := roomW - half

	testCases := []struct {
		name string
		px   int
		want int
	}{
		{"left edge", 0, half},
		{"right edge", 39, max},
		{"centered", 20, 20*core.CellSize + core.CellSize/2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lvl := wideLevel(t, 40, tc.px)
			cx, cy := lvl.Player.Center()
			camX, _ := cam.Focus(lvl.Room, cx, cy)
			if camX != tc.want {
				t.Errorf("cam_x = %d, expected %d", camX, tc.want)
			}
		})
	}
}

func TestCameraCentersSmallRoom(t *testing.T) {
	cam := core.NewCamera(200, 200)
	lvl := mustParse(t, "#####\n#a..#\n#####")

	cx, cy := lvl.Player.Center()
	camX, camY := cam.Focus(lvl.Room, cx, cy)
	if camX != lvl.Room.PixelWidth()/2 || camY != lvl.Room.PixelHeight()/2 {
		t.Errorf("small room should be centered, got (%d,%d), expected (%d,%d)",
			camX, camY, lvl.Room.PixelWidth()/2, lvl.Room.PixelHeight()/2)
	}
}

func TestCameraOrigin(t *testing.T) {
	cam := core.NewCamera(200, 100)
	lvl := wideLevel(t, 40, 0)

	cx, cy := lvl.Player.Center()
	ox, oy := cam.Origin(lvl.Room, cx, cy)
	if ox != 0 {
		t.Errorf("origin x at the left edge = %d, expected 0", ox)
	}
	// One-row room is shorter than the viewport: centered vertically.
	if oy != core.CellSize/2-50 {
		t.Errorf("origin y = %d, expected %d", oy, core.CellSize/2-50)
	}
}

func TestCameraFollowsMidTranslation(t *testing.T) {
	cam := core.NewCamera(200, 200)
	lvl := wideLevel(t, 40, 20)
	lvl.SetStepDuration(100 * time.Millisecond)

	core.NewResolver(lvl.Room, core.PushOverlap).Resolve(lvl.Player, lvl.Entities, []core.Direction{core.East})
	lvl.Player.Update(50 * time.Millisecond)

	cx, cy := lvl.Player.Center()
	camX, _ := cam.Focus(lvl.Room, cx, cy)
	want := 20*core.CellSize + core.CellSize/2 + core.CellSize/2
	if camX != want {
		t.Errorf("cam_x halfway through a step = %d, expected %d", camX, want)
	}
}
