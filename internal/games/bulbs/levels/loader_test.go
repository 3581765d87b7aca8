package levels_test

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
)

func testdataLoader(w io.Writer) *levels.Loader {
	l := levels.NewLoader(filepath.Join("testdata", "levels"))
	l.Logger = log.New(w)
	return l
}

func TestLoaderLoadAll(t *testing.T) {
	var logs bytes.Buffer
	loader := testdataLoader(&logs)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	if got := strings.Join(ids, ","); got != "alpha,beta,gamma" {
		t.Errorf("LoadAll IDs = %s, expected alpha,beta,gamma", got)
	}

	if n := strings.Count(logs.String(), "skipping level"); n != 2 {
		t.Errorf("expected 2 skipped files logged, got %d:\n%s", n, logs.String())
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := testdataLoader(io.Discard)

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Beta" || lvl.Width != 4 || lvl.Height != 3 {
		t.Errorf("got %q %dx%d, expected Beta 4x3", lvl.Name, lvl.Width, lvl.Height)
	}
	want := filepath.Join("testdata", "levels", "nested", "beta.yaml")
	if lvl.FilePath != want {
		t.Errorf("FilePath = %q, expected %q", lvl.FilePath, want)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLoaderIDFallsBackToFileName(t *testing.T) {
	lvl, err := testdataLoader(io.Discard).LoadByID("gamma")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Title() != "gamma" {
		t.Errorf("Title() = %q, expected gamma", lvl.Title())
	}
}

func TestLoaderSkipsDuplicateIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"a.skb": {Data: []byte("; id: same\n; name: First\n#a#\n")},
		"b.skb": {Data: []byte("; id: same\n; name: Second\n#a#\n")},
		"c.skb": {Data: []byte("; id: other\n#a#\n")},
	}
	loader := levels.NewFSLoader(fsys, "mem")
	loader.Logger = log.New(io.Discard)

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[1].ID != "same" || lvls[1].Name != "First" {
		t.Errorf("duplicate resolution kept %q", lvls[1].Name)
	}
}

func TestBuiltinLevels(t *testing.T) {
	var logs bytes.Buffer
	loader := levels.Builtin()
	loader.Logger = log.New(&logs)

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	want := []string{"01-first-steps", "02-shove", "03-lights-out", "04-long-hall", "05-tower"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("builtin IDs = %v, expected %v", ids, want)
	}
	if logs.Len() != 0 {
		t.Errorf("builtin levels should all be valid:\n%s", logs.String())
	}

	tower, err := loader.LoadByID("05-tower")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if tower.Height*core.CellSize <= 200 {
		t.Errorf("tower should be taller than the default viewport, is %d rows", tower.Height)
	}
}

func TestLoadPathReportsFormatError(t *testing.T) {
	lvl, err := levels.LoadPath(filepath.Join("testdata", "levels", "broken.skb"))
	if !errors.Is(err, core.ErrStartPosition) {
		t.Fatalf("expected ErrStartPosition, got %v", err)
	}
	var fe *core.LevelFormatError
	if !errors.As(err, &fe) || fe.Line != 2 {
		t.Errorf("expected LevelFormatError on line 2, got %v", err)
	}
	if lvl.ID != "broken" {
		t.Errorf("failed level should still carry its ID, got %q", lvl.ID)
	}

	_, err = levels.LoadPath(filepath.Join("testdata", "levels", "ragged.skb"))
	if !errors.Is(err, core.ErrRaggedRow) {
		t.Errorf("expected ErrRaggedRow, got %v", err)
	}

	_, err = levels.LoadPath(filepath.Join(t.TempDir(), "absent.skb"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildReturnsIndependentState(t *testing.T) {
	lvl, err := levels.Decode([]byte("#a.#"), "tiny.skb")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	first, _ := lvl.Build()
	second, _ := lvl.Build()
	first.Player.Walk(core.East)

	if second.Player.X() != 1 {
		t.Error("builds should not share player state")
	}
}

func TestLevelEditedBy(t *testing.T) {
	abs, err := filepath.Abs("draft.skb")
	if err != nil {
		t.Fatal(err)
	}
	current := levels.Level{ID: "draft", FilePath: "./draft.skb"}

	tests := []struct {
		name   string
		path   string
		edited levels.Level
		want   bool
	}{
		{"same file relative", "draft.skb", levels.Level{ID: "draft"}, true},
		{"same file absolute", abs, levels.Level{ID: "draft"}, true},
		{"same file unreadable", "draft.skb", levels.Level{FilePath: "draft.skb"}, true},
		{"other file same id", "other/draft.skb", levels.Level{ID: "draft"}, true},
		{"other file other id", "other.skb", levels.Level{ID: "other"}, false},
		{"other file unreadable", "other.skb", levels.Level{FilePath: "other.skb"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := current.EditedBy(tc.path, tc.edited); got != tc.want {
				t.Errorf("EditedBy(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}

	builtin := levels.Level{ID: "01-first-steps"}
	if builtin.EditedBy("01-first-steps.skb", levels.Level{}) {
		t.Error("a level without a file must not match an unreadable edit")
	}
}
