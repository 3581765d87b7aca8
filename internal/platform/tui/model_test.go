package tui

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

const tick = time.Second / 60

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func quietLogger() *log.Logger {
	l := log.New(os.Stderr)
	l.SetLevel(log.FatalLevel)
	return l
}

func memLoader(files map[string]string) *levels.Loader {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	l := levels.NewFSLoader(fsys, "mem")
	l.Logger = quietLogger()
	return l
}

// newTestModel starts a model on level "test" with a fake clock.
func newTestModel(t *testing.T, grid string, store *storage.Store, opts Options) (Model, *bulbs.Game, *fakeClock) {
	t.Helper()
	cfg := config.DefaultBulbsConfig()
	g := bulbs.New(cfg, memLoader(map[string]string{"test.skb": "; id: test\n" + grid}))
	g.SetLevel("test")

	opts.Logger = quietLogger()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, cfg, opts)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m.now = clock.now
	m.Init()
	if g.Err() != nil {
		t.Fatalf("level failed to load: %v", g.Err())
	}
	return m, g, clock
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// ticks advances the clock by one tick before each TickMsg.
func ticks(m Model, clock *fakeClock, n int) Model {
	for range n {
		clock.t = clock.t.Add(tick)
		m, _ = send(m, TickMsg(clock.t))
	}
	return m
}

func TestModelTapWalksOneCell(t *testing.T) {
	m, g, clock := newTestModel(t, "######\n#a...#\n######", nil, Options{})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, clock, 1)
	if x := g.Live().Player.X(); x != 2 {
		t.Fatalf("player x after the tap = %d, expected 2", x)
	}

	// Well past one step and the hold window without a repeat.
	m = ticks(m, clock, 30)
	if x := g.Live().Player.X(); x != 2 {
		t.Errorf("a single tap walked to x=%d", x)
	}
	if moves, _ := g.Counters(); moves != 1 {
		t.Errorf("moves = %d, expected 1", moves)
	}
}

func TestModelRepeatedPressKeepsWalking(t *testing.T) {
	m, g, clock := newTestModel(t, "#######\n#a....#\n#######", nil, Options{})

	for range 20 {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
		m = ticks(m, clock, 2)
	}
	// 40 ticks is 666ms: four 150ms steps fit, the wall stops the fifth.
	if x := g.Live().Player.X(); x != 5 {
		t.Errorf("player x = %d, expected 5", x)
	}
}

func TestModelRestartAndPause(t *testing.T) {
	m, g, clock := newTestModel(t, "######\n#a...#\n######", nil, Options{})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, clock, 12)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = ticks(m, clock, 1)
	if x := g.Live().Player.X(); x != 1 {
		t.Fatalf("restart left the player at x=%d", x)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = ticks(m, clock, 1)
	if !m.State().Paused {
		t.Fatal("expected the game to be paused")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, clock, 12)
	if x := g.Live().Player.X(); x != 1 {
		t.Errorf("player moved while paused to x=%d", x)
	}
}

func TestModelRecordsCompletionOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	m, _, clock := newTestModel(t, "####\n#az#\n####", store, Options{Player: "tester"})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, clock, 15)
	if !m.State().GameOver {
		t.Fatal("expected the level to be solved")
	}
	m = ticks(m, clock, 15)

	records, err := store.BestCompletions("test", 10)
	if err != nil {
		t.Fatalf("BestCompletions failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 completion, got %d", len(records))
	}
	rec := records[0]
	if rec.Player != "tester" || rec.Moves != 1 || rec.Pushes != 0 || rec.PushPolicy != "overlap" {
		t.Errorf("unexpected record %+v", rec)
	}
	if m.Status() == "" {
		t.Error("expected a status line after saving")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t, "###\n#a#\n###", nil, Options{Embedded: true})
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Errorf("embedded back: back=%v quitting=%v cmd=%v", m.BackToMenu(), m.IsQuitting(), cmd != nil)
	}

	m, _, _ = newTestModel(t, "###\n#a#\n###", nil, Options{})
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("standalone back should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelReloadsEditedLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edit.skb")
	if err := os.WriteFile(path, []byte("#####\n#a.z#\n#####\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultBulbsConfig()
	g := bulbs.New(cfg, nil)
	g.SetLevelFile(path)
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, cfg, Options{Logger: quietLogger()})
	m.Init()
	if g.Err() != nil {
		t.Fatalf("level failed to load: %v", g.Err())
	}

	if err := os.WriteFile(path, []byte("######\n#a..z#\n######\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = send(m, LevelChangedMsg{Path: path})
	if w := g.Live().Room.Width(); w != 6 {
		t.Errorf("room width after reload = %d, expected 6", w)
	}
	if m.Status() != "level reloaded" {
		t.Errorf("status = %q", m.Status())
	}

	// A broken edit keeps the running level.
	if err := os.WriteFile(path, []byte("######\n#...z#\n######\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ = send(m, LevelChangedMsg{Path: path})
	if w := g.Live().Room.Width(); w != 6 {
		t.Errorf("broken reload replaced the level, width %d", w)
	}
	if !m.statusErr {
		t.Errorf("expected an error status, got %q", m.Status())
	}

	// Other files in the directory are ignored.
	other := filepath.Join(dir, "other.skb")
	if err := os.WriteFile(other, []byte("###\n#a#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.status = ""
	m, _ = send(m, LevelChangedMsg{Path: other})
	if m.Status() != "" {
		t.Errorf("unrelated file changed the status to %q", m.Status())
	}
}
