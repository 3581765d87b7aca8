// Package gl runs bulbs in a window with Ebitengine. It draws from the
// generated sprite atlas and reads real key state, so held keys need no
// approximation.
package gl

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	platformcore "github.com/vovakirdan/tui-bulbs/internal/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/core"
	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels"
	"github.com/vovakirdan/tui-bulbs/internal/platform/gl/atlas"
	"github.com/vovakirdan/tui-bulbs/internal/storage"
)

// Options adjusts the window.
type Options struct {
	// Scale multiplies the view size to get the initial window size.
	Scale    int
	TickRate int
	Player   string
	Store    *storage.Store
	Watcher  *levels.Watcher
	Logger   *log.Logger
}

// Window implements ebiten.Game.
type Window struct {
	game     *bulbs.Game
	opts     Options
	camera   core.Camera
	keys     []binding
	held     heldOrder
	sheet    *ebiten.Image
	sprites  map[core.SpriteRect]*ebiten.Image
	status   string
	statusAt int
	frame    int
}

const statusFrames = 180

// NewWindow prepares a window for game. The game is reset here.
func NewWindow(game *bulbs.Game, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 3
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	cfg := game.Config()
	w := &Window{
		game:    game,
		opts:    opts,
		camera:  core.NewCamera(cfg.Display.ViewWidth, cfg.Display.ViewHeight),
		keys:    bindings(cfg.Keys),
		sheet:   ebiten.NewImageFromImage(atlas.Generate()),
		sprites: make(map[core.SpriteRect]*ebiten.Image),
	}
	game.Reset(platformcore.RuntimeConfig{
		ScreenW:  cfg.Display.ViewWidth,
		ScreenH:  cfg.Display.ViewHeight,
		TickRate: opts.TickRate,
	})
	return w
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	w.frame++
	w.pollWatcher()

	in := platformcore.NewInputFrame()
	for _, b := range w.keys {
		switch b.action {
		case platformcore.ActionUp, platformcore.ActionDown, platformcore.ActionLeft, platformcore.ActionRight:
			w.held.sync(b.action, anyPressed(b.keys))
		case platformcore.ActionQuit, platformcore.ActionBack:
			if anyJustPressed(b.keys) {
				return ebiten.Termination
			}
		default:
			if anyJustPressed(b.keys) {
				in.Set(b.action)
			}
		}
	}
	if in.Has(platformcore.ActionRestart) {
		w.held.clear()
	}
	for _, a := range w.held.order {
		in.Set(a)
	}

	w.game.Step(in)

	if c, ok := w.game.TakeCompletion(); ok {
		w.record(c)
	}
	return nil
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (w *Window) record(c bulbs.Completion) {
	w.setStatus(fmt.Sprintf("solved in %d moves", c.Moves))
	if w.opts.Store == nil {
		return
	}
	_, err := w.opts.Store.SaveCompletion(storage.Completion{
		LevelID:    c.LevelID,
		Player:     w.opts.Player,
		Moves:      c.Moves,
		Pushes:     c.Pushes,
		Score:      c.Score,
		Duration:   c.Elapsed,
		PushPolicy: c.Policy.String(),
	})
	if err != nil {
		w.opts.Logger.Error("save completion", "level", c.LevelID, "error", err)
	}
}

// pollWatcher applies pending level edits without blocking the frame.
func (w *Window) pollWatcher() {
	if w.opts.Watcher == nil {
		return
	}
	select {
	case path, ok := <-w.opts.Watcher.Events:
		if !ok {
			w.opts.Watcher = nil
			return
		}
		current := w.game.Level()
		lvl, err := levels.LoadPath(path)
		if !current.EditedBy(path, lvl) {
			return
		}
		if err == nil {
			err = w.game.Reload(lvl)
		}
		if err != nil {
			w.opts.Logger.Warn("reload failed", "path", path, "error", err)
			w.setStatus("reload failed")
			return
		}
		w.held.clear()
		w.setStatus("level reloaded")
	case err, ok := <-w.opts.Watcher.Errors:
		if ok {
			w.opts.Logger.Warn("level watcher", "error", err)
		}
	default:
	}
}

func (w *Window) setStatus(s string) {
	w.status = s
	w.statusAt = w.frame
}

func (w *Window) sprite(r core.SpriteRect) *ebiten.Image {
	if img, ok := w.sprites[r]; ok {
		return img
	}
	img := w.sheet.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
	w.sprites[r] = img
	return img
}

func (w *Window) drawAt(dst *ebiten.Image, r core.SpriteRect, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(w.sprite(r), op)
}

// Draw renders the room through the camera.
func (w *Window) Draw(screen *ebiten.Image) {
	lvl := w.game.Live()
	if lvl == nil {
		msg := "cannot load level"
		if err := w.game.Err(); err != nil {
			msg += ":\n" + err.Error()
		}
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
		return
	}

	px, py := lvl.Player.Center()
	ox, oy := w.camera.Origin(lvl.Room, px, py)

	lvl.Room.Each(func(x, y int, t core.Tile) {
		w.drawAt(screen, core.TileSprite(t.Kind), x*core.CellSize-ox, y*core.CellSize-oy)
	})
	for _, e := range lvl.Entities {
		dx, dy := e.Offset()
		w.drawAt(screen, core.EntitySprite(e.Kind(), e.Color()), e.X()*core.CellSize+dx-ox, e.Y()*core.CellSize+dy-oy)
	}
	dx, dy := lvl.Player.Offset()
	w.drawAt(screen, core.PlayerSprite(lvl.Player.Facing()), lvl.Player.X()*core.CellSize+dx-ox, lvl.Player.Y()*core.CellSize+dy-oy)

	w.drawHUD(screen)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	cfg := w.game.Config()
	if cfg.Display.ShowHUD {
		moves, pushes := w.game.Counters()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("M%d P%d", moves, pushes), 2, 0)
	}

	state := w.game.State()
	switch {
	case w.game.Completed():
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SOLVED! score %d\nR: again  Esc: quit", state.Score), 8, cfg.Display.ViewHeight/2-16)
	case state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", cfg.Display.ViewWidth/2-18, cfg.Display.ViewHeight/2-8)
	}

	if w.status != "" && w.frame-w.statusAt < statusFrames {
		ebitenutil.DebugPrintAt(screen, w.status, 2, cfg.Display.ViewHeight-16)
	}
}

// Layout keeps the logical view size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return cfg.Display.ViewWidth, cfg.Display.ViewHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *bulbs.Game, opts Options) error {
	w := NewWindow(game, opts)
	cfg := game.Config()

	ebiten.SetWindowSize(cfg.Display.ViewWidth*w.opts.Scale, cfg.Display.ViewHeight*w.opts.Scale)
	ebiten.SetWindowTitle("Bulbs - " + game.Level().Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gl: %w", err)
	}
	return nil
}
