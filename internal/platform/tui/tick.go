// Package tui runs bulbs in the terminal with Bubble Tea: the game loop,
// held-key tracking, the level picker, the records board and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelChangedMsg reports that a watched level file was written.
type LevelChangedMsg struct {
	Path string
}

// WatchErrMsg carries a watcher failure.
type WatchErrMsg struct {
	Err error
}

// watchCmd waits for the next watcher event. It returns nil once the
// watcher is closed, which ends the chain.
func watchCmd(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrMsg{Err: err}
		}
	}
}
