package gl

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-bulbs/internal/config"
	platformcore "github.com/vovakirdan/tui-bulbs/internal/core"
)

var namedKeys = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	"backspace": ebiten.KeyBackspace,
}

// keyFor converts a configured key name to an ebiten key. Modifier
// combinations such as "ctrl+c" have no window equivalent and are skipped.
func keyFor(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return k, true
	}
	if strings.Contains(name, "+") {
		return 0, false
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}

func keysFor(names []string) []ebiten.Key {
	var out []ebiten.Key
	for _, n := range names {
		if k, ok := keyFor(n); ok {
			out = append(out, k)
		}
	}
	return out
}

// binding ties an action to its keys.
type binding struct {
	action platformcore.Action
	keys   []ebiten.Key
}

func bindings(kc config.KeyConfig) []binding {
	return []binding{
		{platformcore.ActionUp, keysFor(kc.Up)},
		{platformcore.ActionDown, keysFor(kc.Down)},
		{platformcore.ActionLeft, keysFor(kc.Left)},
		{platformcore.ActionRight, keysFor(kc.Right)},
		{platformcore.ActionRestart, keysFor(kc.Restart)},
		{platformcore.ActionPause, keysFor(kc.Pause)},
		{platformcore.ActionBack, keysFor(kc.Back)},
		{platformcore.ActionQuit, keysFor(kc.Quit)},
	}
}

// heldOrder keeps the held directions in the order they went down.
type heldOrder struct {
	order []platformcore.Action
}

// sync adds newly pressed actions and drops released ones.
func (h *heldOrder) sync(action platformcore.Action, pressed bool) {
	for i, a := range h.order {
		if a == action {
			if !pressed {
				h.order = append(h.order[:i], h.order[i+1:]...)
			}
			return
		}
	}
	if pressed {
		h.order = append(h.order, action)
	}
}

func (h *heldOrder) clear() {
	h.order = h.order[:0]
}
