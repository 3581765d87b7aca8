package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

var menuLevels = map[string]string{
	"a.skb": "; id: a\n; name: Alpha\n####\n#az#\n####\n",
	"b.skb": "; id: b\n; name: Beta\n#####\n#a.z#\n#####\n",
	"c.skb": "; id: c\n; name: Gamma\n######\n#a..z#\n######\n",
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLevelEntriesJoinRecords(t *testing.T) {
	store := openStore(t)
	for _, moves := range []int{9, 4} {
		if _, err := store.SaveCompletion(storage.Completion{LevelID: "b", Player: "p", Moves: moves, Score: 1}); err != nil {
			t.Fatalf("SaveCompletion failed: %v", err)
		}
	}

	entries, err := LevelEntries(memLoader(menuLevels), store)
	if err != nil {
		t.Fatalf("LevelEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Solved {
		t.Error("level a should be unsolved")
	}
	if !entries[1].Solved || entries[1].BestMoves != 4 {
		t.Errorf("level b: solved=%v best=%d", entries[1].Solved, entries[1].BestMoves)
	}
}

func TestLevelMenuNavigation(t *testing.T) {
	entries, err := LevelEntries(memLoader(menuLevels), nil)
	if err != nil {
		t.Fatalf("LevelEntries failed: %v", err)
	}
	m := NewLevelMenuModel(entries, 80, 24)

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(LevelMenuModel)
	}

	press(tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Fatalf("cursor moved above the first level: %d", m.Cursor())
	}
	for range 5 {
		press(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.Cursor() != 2 {
		t.Fatalf("cursor = %d, expected the last level", m.Cursor())
	}
	if !strings.Contains(m.View(), "Gamma") {
		t.Error("view should list the levels")
	}

	press(tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil || sel.LevelID != "c" || sel.Records {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestLevelMenuScrollsToCursor(t *testing.T) {
	entries := make([]LevelEntry, 20)
	m := NewLevelMenuModel(entries, 80, 13) // three visible rows
	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(LevelMenuModel)
	}
	if m.scrollOffset != 8 {
		t.Errorf("scroll offset = %d, expected 8", m.scrollOffset)
	}
}

func TestRecordsModelCyclesLevels(t *testing.T) {
	store := openStore(t)
	for _, c := range []storage.Completion{
		{LevelID: "a", Player: "p", Moves: 3, Score: 970, Duration: 2 * time.Second},
		{LevelID: "a", Player: "q", Moves: 1, Score: 990},
		{LevelID: "c", Player: "p", Moves: 5, Score: 950},
	} {
		if _, err := store.SaveCompletion(c); err != nil {
			t.Fatalf("SaveCompletion failed: %v", err)
		}
	}
	entries, err := LevelEntries(memLoader(menuLevels), store)
	if err != nil {
		t.Fatalf("LevelEntries failed: %v", err)
	}

	m := NewRecordsModel(store, entries, "a", 100, 30)
	if got := m.Records(); len(got) != 2 || got[0].Moves != 1 {
		t.Fatalf("records of a = %+v", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(RecordsModel)
	if title, _ := m.Level(); title != "Gamma" {
		t.Fatalf("left from the first level should wrap to Gamma, got %q", title)
	}
	if got := m.Records(); len(got) != 1 || got[0].Moves != 5 {
		t.Errorf("records of c = %+v", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(RecordsModel)
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		1500 * time.Millisecond: "1.5s",
		83 * time.Second:        "1m23s",
	}
	for d, want := range tests {
		if got := formatDuration(d); got != want {
			t.Errorf("formatDuration(%v) = %q, expected %q", d, got, want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	deps := SessionDeps{Levels: memLoader(menuLevels), Logger: quietLogger()}
	m := NewSessionModel(deps, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "guest")

	send := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(SessionModel)
		return cmd
	}

	send(tea.KeyMsg{Type: tea.KeyDown})
	if cmd := send(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("starting a level should start the tick loop")
	}
	if m.screen != screenGame {
		t.Fatalf("expected the game screen, got %v", m.screen)
	}
	if id := m.game.game.ID(); id != "bulbs" {
		t.Errorf("game id = %q", id)
	}

	send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc in game should return to the menu, screen=%v", m.screen)
	}
	if m.menu.Cursor() != 1 {
		t.Errorf("menu cursor = %d, expected it kept at 1", m.menu.Cursor())
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenRecords {
		t.Fatalf("tab should open records, screen=%v", m.screen)
	}
	if !strings.Contains(m.View(), "Records are disabled") {
		t.Error("records without a store should say so")
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc in records should return to the menu")
	}

	send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting {
		t.Error("q should end the session")
	}
}
