package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	"github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bulbs/host_key.
	HostKeyPath string

	// DBPath is the path to the records database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Levels is the level tree offered to players. Nil means the
	// built-in levels.
	Levels *levels.Loader

	// Game is the game configuration shared by every session.
	Game config.BulbsConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.bulbs/records.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultBulbsConfig(),
	}
}

// SSHServer wraps a Wish SSH server serving bulbs sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bulbs-ssh",
	})

	if cfg.Levels == nil {
		cfg.Levels = levels.Builtin()
	}
	cfg.Levels.Logger = logger

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home := config.HomeDir()
		if home == "" {
			return nil, errors.New("cannot get home directory for the host key")
		}
		hostKeyPath = filepath.Join(home, "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(SessionDeps{
		Store:  s.store,
		Levels: s.config.Levels,
		Game:   s.config.Game,
		Logger: s.logger.With("user", sshSession.User()),
	}, cfg, sshSession.User())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionDeps are the shared services a session uses.
type SessionDeps struct {
	Store  *storage.Store
	Levels *levels.Loader
	Game   config.BulbsConfig
	Logger *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRecords
)

// SessionModel runs the whole session flow: level menu -> game or
// records -> menu. It is the top-level model of SSH sessions and of
// `bulbs menu`.
type SessionModel struct {
	deps     SessionDeps
	config   core.RuntimeConfig
	username string
	screen   sessionScreen
	menu     LevelMenuModel
	game     Model
	records  RecordsModel
	loadErr  error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps SessionDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Levels == nil {
		deps.Levels = levels.Builtin()
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	m := SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
	}
	m.menu = m.newMenu(0)
	return m
}

func (m *SessionModel) newMenu(cursor int) LevelMenuModel {
	entries, err := LevelEntries(m.deps.Levels, m.deps.Store)
	m.loadErr = err
	if err != nil {
		m.deps.Logger.Error("cannot list levels", "error", err)
	}
	menu := NewLevelMenuModel(entries, m.config.ScreenW, m.config.ScreenH)
	menu.cursor = max(0, min(cursor, len(entries)-1))
	menu.updateScroll()
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRecords:
		return m.updateRecords(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(LevelMenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() || m.menu.WantsBack() {
		m.quitting = true
		return m, tea.Quit
	}

	sel := m.menu.Selected()
	if sel == nil {
		return m, cmd
	}

	if sel.Records {
		m.records = NewRecordsModel(m.deps.Store, m.menu.entries, sel.LevelID, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenRecords
		return m, m.records.Init()
	}

	g := bulbs.New(m.deps.Game, m.deps.Levels)
	g.SetLevel(sel.LevelID)
	m.game = NewModel(g, m.deps.Store, m.config, m.deps.Game, Options{
		Player:   m.username,
		Embedded: true,
		Logger:   m.deps.Logger,
	})
	m.screen = screenGame
	m.deps.Logger.Info("level started", "level", sel.LevelID)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if game, ok := newModel.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if records, ok := newModel.(RecordsModel); ok {
		m.records = records
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.records.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so fresh records show, keeping the cursor.
// The pending tick of a left game is dropped by the menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = m.newMenu(m.menu.Cursor())
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRecords:
		return m.records.View()
	}
	if m.loadErr != nil {
		return CurrentTheme().Error.Render("cannot list levels: "+m.loadErr.Error()) + "\n"
	}
	return m.menu.View()
}

// RunSession runs the session flow in the local terminal.
func RunSession(deps SessionDeps, cfg core.RuntimeConfig, username string) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg, username),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
