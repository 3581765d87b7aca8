package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
)

// GameKeyMap binds configured key names to game actions.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// NewGameKeyMap builds the bindings from the key section of the config.
func NewGameKeyMap(kc config.KeyConfig) GameKeyMap {
	return GameKeyMap{
		Up:      binding(kc.Up, "north"),
		Down:    binding(kc.Down, "south"),
		Left:    binding(kc.Left, "west"),
		Right:   binding(kc.Right, "east"),
		Restart: binding(kc.Restart, "restart"),
		Pause:   binding(kc.Pause, "pause"),
		Back:    binding(kc.Back, "back"),
		Quit:    binding(kc.Quit, "quit"),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// Action maps a key message to a game action. Quit is checked first so a
// key bound twice always quits; "ctrl+c" quits regardless of config.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	if msg.String() == "ctrl+c" {
		return core.ActionQuit
	}
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionRecords
	MenuActionBack
	MenuActionQuit
)

// MenuKeyMap defines the key bindings of the level picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Records key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Records: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "records"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Records, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Records, k.Back, k.Quit},
	}
}

// Action translates a key to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Records):
		return MenuActionRecords
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
