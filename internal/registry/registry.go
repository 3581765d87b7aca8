// Package registry maps game IDs to factories so platforms can build a
// game without importing its package directly. Games register from init().
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-bulbs/internal/core"
)

// Game is what a platform drives: fixed ticks in, a screen buffer out.
// Implementations hold pure simulation state and never touch the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset (re)builds the game for the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the held input snapshot.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst. dst is cleared by the caller.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
