package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
)

func mustParse(t *testing.T, src string) *core.Level {
	t.Helper()
	lvl, err := core.ParseLevel([]byte(src))
	if err != nil {
		t.Fatalf("ParseLevel(%q) failed: %v", src, err)
	}
	return lvl
}

func TestRoomTileAtBounds(t *testing.T) {
	room := mustParse(t, "#####\n#a.z#\n#####").Room

	testCases := []struct {
		x, y int
		ok   bool
		kind core.TileKind
	}{
		{0, 0, true, core.TileWall},
		{2, 1, true, core.TileFloor},
		{3, 1, true, core.TileExit},
		{4, 2, true, core.TileWall},
		{-1, 0, false, 0},
		{0, -1, false, 0},
		{-3, -3, false, 0},
		{5, 0, false, 0}, // past the row end does not wrap into the next row
		{0, 3, false, 0},
		{100, 100, false, 0},
	}

	for _, tc := range testCases {
		tile, ok := room.TileAt(tc.x, tc.y)
		if ok != tc.ok {
			t.Errorf("TileAt(%d,%d): ok=%v, expected %v", tc.x, tc.y, ok, tc.ok)
			continue
		}
		if ok && tile.Kind != tc.kind {
			t.Errorf("TileAt(%d,%d) = %v, expected %v", tc.x, tc.y, tile.Kind, tc.kind)
		}
	}
}

func TestRoomPassable(t *testing.T) {
	room := mustParse(t, "#az").Room

	if room.Passable(0, 0) {
		t.Error("wall should not be passable")
	}
	if !room.Passable(1, 0) || !room.Passable(2, 0) {
		t.Error("floor and exit should be passable")
	}
	if room.Passable(3, 0) || room.Passable(-1, 0) {
		t.Error("missing tiles should not be passable")
	}
}

func TestRoomPixelSize(t *testing.T) {
	room := mustParse(t, "#####\n#a..#\n#####").Room

	if room.PixelWidth() != 5*core.CellSize {
		t.Errorf("PixelWidth() = %d, expected %d", room.PixelWidth(), 5*core.CellSize)
	}
	if room.PixelHeight() != 3*core.CellSize {
		t.Errorf("PixelHeight() = %d, expected %d", room.PixelHeight(), 3*core.CellSize)
	}
}

func TestRoomEachIsRowMajor(t *testing.T) {
	room := mustParse(t, "a#\nz.").Room

	var got []core.TileKind
	var coords [][2]int
	room.Each(func(x, y int, tile core.Tile) {
		got = append(got, tile.Kind)
		coords = append(coords, [2]int{x, y})
	})

	want := []core.TileKind{core.TileFloor, core.TileWall, core.TileExit, core.TileFloor}
	wantCoords := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := range want {
		if got[i] != want[i] || coords[i] != wantCoords[i] {
			t.Errorf("tile %d: got %v at %v, expected %v at %v", i, got[i], coords[i], want[i], wantCoords[i])
		}
	}
}

func TestNewRoomPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRoom should panic when tiles do not match dimensions")
		}
	}()
	core.NewRoom(2, 2, make([]core.Tile, 3))
}
