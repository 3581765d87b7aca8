package tui

import (
	"time"

	"github.com/vovakirdan/tui-bulbs/internal/core"
)

// HeldKeys approximates which directions are held down. Terminals report
// presses and auto-repeats but never releases, so a key counts as held
// until window passes without another press.
type HeldKeys struct {
	window time.Duration
	order  []core.Action
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given expiry window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or auto-repeat of a. A key that is still held
// keeps its place in the press order.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if _, held := h.last[a]; !held {
		h.order = append(h.order, a)
	}
	h.last[a] = now
}

// Held drops expired keys and returns the rest in press order.
func (h *HeldKeys) Held(now time.Time) []core.Action {
	kept := h.order[:0]
	for _, a := range h.order {
		if now.Sub(h.last[a]) > h.window {
			delete(h.last, a)
			continue
		}
		kept = append(kept, a)
	}
	h.order = kept

	out := make([]core.Action, len(kept))
	copy(out, kept)
	return out
}

// Release forgets a.
func (h *HeldKeys) Release(a core.Action) {
	if _, held := h.last[a]; !held {
		return
	}
	delete(h.last, a)
	for i, x := range h.order {
		if x == a {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Clear forgets every key.
func (h *HeldKeys) Clear() {
	h.order = h.order[:0]
	clear(h.last)
}
