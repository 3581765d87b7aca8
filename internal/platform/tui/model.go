package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/registry"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

const statusLifetime = 3 * time.Second

// completionReporter is implemented by games that report a solved level
// exactly once.
type completionReporter interface {
	TakeCompletion() (bulbs.Completion, bool)
}

// reloader is implemented by games that can swap in an edited level.
type reloader interface {
	Reload(levels.Level) error
	Level() levels.Level
}

// resizer is implemented by games that keep their state across resizes.
type resizer interface {
	Resize(w, h int)
}

// Options adjusts a Model.
type Options struct {
	// Player is recorded with completions.
	Player string

	// Embedded makes the back key hand control to the parent model
	// instead of quitting the program.
	Embedded bool

	// Watcher, if set, reloads the level when its file changes.
	Watcher *levels.Watcher

	Logger *log.Logger
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   GameKeyMap
	held   *HeldKeys
	// oneShot collects restart and pause presses until the next tick.
	oneShot core.InputFrame
	state   core.GameState
	opts    Options
	now     func() time.Time

	status      string
	statusErr   bool
	statusUntil time.Time

	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, bcfg config.BulbsConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Player == "" {
		opts.Player = defaultPlayer()
	}
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewGameKeyMap(bcfg.Keys),
		held:    NewHeldKeys(bcfg.Movement.HoldWindow),
		oneShot: core.NewInputFrame(),
		opts:    opts,
		now:     time.Now,
	}
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelChangedMsg:
		m.handleLevelChanged(msg.Path)
		return m, watchCmd(m.opts.Watcher)

	case WatchErrMsg:
		m.opts.Logger.Warn("level watcher", "error", msg.Err)
		return m, watchCmd(m.opts.Watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.opts.Embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case action.IsDirectional():
		m.held.Press(action, m.now())
	case action != core.ActionNone:
		m.oneShot.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()

	frame := m.oneShot.Clone()
	for _, a := range m.held.Held(now) {
		frame.Set(a)
	}
	m.oneShot.Clear()
	if frame.Has(core.ActionRestart) {
		m.held.Clear()
	}

	result := m.game.Step(frame)
	m.state = result.State

	if r, ok := m.game.(completionReporter); ok {
		if c, solved := r.TakeCompletion(); solved {
			m.record(c)
		}
	}

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}
	return m, tickCmd(m.config.TickRate)
}

// record stores a completion. A missing or failing store never stops the
// game.
func (m *Model) record(c bulbs.Completion) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveCompletion(storage.Completion{
		LevelID:    c.LevelID,
		Player:     m.opts.Player,
		Moves:      c.Moves,
		Pushes:     c.Pushes,
		Score:      c.Score,
		Duration:   c.Elapsed,
		PushPolicy: c.Policy.String(),
	})
	if err != nil {
		m.opts.Logger.Error("save completion", "level", c.LevelID, "error", err)
		m.setStatus("could not save record", true)
		return
	}
	m.opts.Logger.Debug("completion saved", "level", c.LevelID, "moves", c.Moves, "pushes", c.Pushes)
	m.setStatus(fmt.Sprintf("record saved: %d moves", c.Moves), false)
}

func (m *Model) handleLevelChanged(path string) {
	r, ok := m.game.(reloader)
	if !ok {
		return
	}
	current := r.Level()
	lvl, err := levels.LoadPath(path)
	if !current.EditedBy(path, lvl) {
		return
	}
	if err == nil {
		err = r.Reload(lvl)
	}
	if err != nil {
		m.opts.Logger.Warn("reload failed", "path", path, "error", err)
		m.setStatus("reload failed: "+err.Error(), true)
		return
	}
	m.held.Clear()
	m.state = m.game.State()
	m.opts.Logger.Info("level reloaded", "path", path)
	m.setStatus("level reloaded", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusUntil = m.now().Add(statusLifetime)
}

// saveScreenshot writes the current screen as text under ~/.bulbs/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home := config.HomeDir()
	if home == "" {
		return
	}
	dir := filepath.Join(home, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "error", err)
		return
	}
	m.setStatus("screenshot saved", false)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		c := core.ColorBrightYellow
		if m.statusErr {
			c = core.ColorBrightRed
		}
		row := m.screen.Height() - 1
		for x := range m.screen.Width() {
			m.screen.Set(x, row, ' ')
		}
		m.screen.DrawTextColored(0, row, m.status, c)
	}
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.state
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, bcfg config.BulbsConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, bcfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
