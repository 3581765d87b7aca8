package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapDefaults(t *testing.T) {
	keys := NewGameKeyMap(config.DefaultBulbsConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"l", runes("l"), core.ActionRight},
		{"restart", runes("r"), core.ActionRestart},
		{"pause", runes("p"), core.ActionPause},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestGameKeyMapCustomKeys(t *testing.T) {
	kc := config.DefaultBulbsConfig().Keys
	kc.Up = []string{"i"}
	kc.Quit = []string{"x"}
	keys := NewGameKeyMap(kc)

	if got := keys.Action(runes("i")); got != core.ActionUp {
		t.Errorf("custom up key mapped to %v", got)
	}
	if got := keys.Action(runes("w")); got != core.ActionNone {
		t.Errorf("unbound default key mapped to %v", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeyCtrlC}); got != core.ActionQuit {
		t.Errorf("ctrl+c should always quit, got %v", got)
	}
	if got := keys.Pause.Help().Key; got != "p/space" {
		t.Errorf("pause help = %q", got)
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRecords},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
