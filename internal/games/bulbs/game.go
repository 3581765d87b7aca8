// Package bulbs is the tile push puzzle: walk the player to an exit,
// shoving blocks out of the way. It glues the simulation core, the level
// loader and the game config into the registry.Game tick loop.
package bulbs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	platformcore "github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "bulbs"

// Completion describes a solved level. It is reported once per solve.
type Completion struct {
	LevelID string
	Moves   int
	Pushes  int
	Score   int
	Elapsed time.Duration
	Policy  core.PushPolicy
}

// Startup selection used by registry-created games. The CLI sets these
// before the platform asks the registry for a game.
var (
	startMu     sync.Mutex
	startLevel  string
	startFile   string
	startConfig = config.DefaultBulbsConfig()
	startLoader *levels.Loader
)

// SetStartLevel selects the level ID new games open with. Empty means the
// first level of the loader.
func SetStartLevel(id string) {
	startMu.Lock()
	defer startMu.Unlock()
	startLevel, startFile = id, ""
}

// SetStartFile selects a level file on disk for new games.
func SetStartFile(path string) {
	startMu.Lock()
	defer startMu.Unlock()
	startLevel, startFile = "", path
}

// SetStartConfig sets the configuration of new games.
func SetStartConfig(cfg config.BulbsConfig) {
	startMu.Lock()
	defer startMu.Unlock()
	startConfig = cfg
}

// SetStartLoader sets the level tree new games pick levels from. Nil
// restores the built-in levels.
func SetStartLoader(l *levels.Loader) {
	startMu.Lock()
	defer startMu.Unlock()
	startLoader = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		startMu.Lock()
		defer startMu.Unlock()

		g := New(startConfig, startLoader)
		if startFile != "" {
			g.SetLevelFile(startFile)
		} else {
			g.SetLevel(startLevel)
		}
		return g
	})
}

// Game implements registry.Game.
type Game struct {
	cfg    config.BulbsConfig
	loader *levels.Loader

	levelID   string
	levelFile string

	source   levels.Level
	loaded   bool
	loadErr  error
	level    *core.Level
	resolver *core.Resolver

	screenW int
	screenH int
	tick    time.Duration

	ticks     uint64
	elapsed   time.Duration
	moves     int
	pushes    int
	last      core.Outcome
	paused    bool
	completed bool
	score     int
	pending   *Completion
}

// New creates a game. A nil loader means the built-in levels.
func New(cfg config.BulbsConfig, loader *levels.Loader) *Game {
	if loader == nil {
		loader = levels.Builtin()
	}
	return &Game{cfg: cfg, loader: loader}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Bulbs" }

// SetLevel selects a level by ID for the next Reset. Empty picks the
// first level.
func (g *Game) SetLevel(id string) {
	g.levelID, g.levelFile = id, ""
	g.loaded = false
}

// SetLevelFile selects a level file on disk for the next Reset.
func (g *Game) SetLevelFile(path string) {
	g.levelID, g.levelFile = "", path
	g.loaded = false
}

// Reset loads the selected level if needed and starts it from scratch.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = cfg.TickDuration()

	if !g.loaded {
		g.source, g.loadErr = g.load()
		g.loaded = true
	}
	g.restart()
}

// Resize changes the render area without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

func (g *Game) load() (levels.Level, error) {
	if g.levelFile != "" {
		return levels.LoadPath(g.levelFile)
	}
	if g.levelID != "" {
		return g.loader.LoadByID(g.levelID)
	}
	all, err := g.loader.LoadAll()
	if err != nil {
		return levels.Level{}, err
	}
	if len(all) == 0 {
		return levels.Level{}, errors.New("no levels found")
	}
	return all[0], nil
}

// restart rebuilds the live state from the loaded definition.
func (g *Game) restart() {
	g.ticks = 0
	g.elapsed = 0
	g.moves = 0
	g.pushes = 0
	g.last = core.Outcome{}
	g.paused = false
	g.completed = false
	g.score = 0
	g.pending = nil
	g.level = nil

	if g.loadErr != nil {
		return
	}
	lvl, err := g.source.Build()
	if err != nil {
		g.loadErr = err
		return
	}
	lvl.SetStepDuration(g.cfg.Movement.StepDuration)
	g.level = lvl
	g.resolver = core.NewResolver(lvl.Room, g.cfg.Movement.Policy())
}

// Reload swaps in a new definition of the level and restarts it. On error
// the current level keeps running.
func (g *Game) Reload(src levels.Level) error {
	if _, err := src.Build(); err != nil {
		return fmt.Errorf("reload %s: %w", src.ID, err)
	}
	g.source = src
	g.loaded = true
	g.loadErr = nil
	g.restart()
	return nil
}

// Step advances the game by one tick. The held directions are resolved
// first, then every translation advances by one tick of time.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.level == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}
	if in.Has(platformcore.ActionPause) && !g.completed {
		g.paused = !g.paused
	}
	if g.paused || g.completed {
		return platformcore.StepResult{State: g.State()}
	}

	g.ticks++

	g.last = g.resolver.Resolve(g.level.Player, g.level.Entities, heldDirections(in))
	if g.last.Moved {
		g.moves++
		if g.last.Pushed != nil {
			g.pushes++
		}
	}

	g.level.Player.Update(g.tick)
	for _, e := range g.level.Entities {
		e.Update(g.tick)
	}
	g.elapsed += g.tick

	if g.level.Idle() && g.level.OnExit() {
		g.complete()
	}
	return platformcore.StepResult{State: g.State()}
}

func (g *Game) complete() {
	g.completed = true
	g.score = g.cfg.Scoring.Score(g.moves, g.pushes)
	g.pending = &Completion{
		LevelID: g.source.ID,
		Moves:   g.moves,
		Pushes:  g.pushes,
		Score:   g.score,
		Elapsed: g.elapsed,
		Policy:  g.resolver.Policy,
	}
}

// heldDirections keeps the directional actions of the frame, in order.
func heldDirections(in platformcore.InputFrame) []core.Direction {
	var held []core.Direction
	for _, a := range in.Actions() {
		switch a {
		case platformcore.ActionUp:
			held = append(held, core.North)
		case platformcore.ActionRight:
			held = append(held, core.East)
		case platformcore.ActionDown:
			held = append(held, core.South)
		case platformcore.ActionLeft:
			held = append(held, core.West)
		}
	}
	return held
}

// State returns the platform view of the game. GameOver means the level
// is solved (or could not be loaded).
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.completed || g.level == nil,
		Paused:   g.paused,
	}
}

// Completed reports whether the current level is solved.
func (g *Game) Completed() bool { return g.completed }

// TakeCompletion returns the completion of the current solve the first
// time it is called after the solve, and false afterwards.
func (g *Game) TakeCompletion() (Completion, bool) {
	if g.pending == nil {
		return Completion{}, false
	}
	c := *g.pending
	g.pending = nil
	return c, true
}

// Err returns the error that prevented the level from loading, if any.
func (g *Game) Err() error { return g.loadErr }

// Level returns the loaded level definition.
func (g *Game) Level() levels.Level { return g.source }

// LevelFile returns the selected level file, or "" when playing by ID.
func (g *Game) LevelFile() string { return g.levelFile }

// Live returns the running simulation state, or nil when none is loaded.
func (g *Game) Live() *core.Level { return g.level }

// Counters returns the moves and pushes made so far.
func (g *Game) Counters() (moves, pushes int) { return g.moves, g.pushes }

// Config returns the game configuration.
func (g *Game) Config() config.BulbsConfig { return g.cfg }
