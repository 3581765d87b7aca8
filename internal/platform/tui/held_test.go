package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bulbs/internal/core"
)

func TestHeldKeysExpire(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(core.ActionRight, t0)
	if got := h.Held(t0.Add(100 * time.Millisecond)); !slices.Equal(got, []core.Action{core.ActionRight}) {
		t.Fatalf("key should still be held at the window edge, got %v", got)
	}
	if got := h.Held(t0.Add(101 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("key should expire after the window, got %v", got)
	}
}

func TestHeldKeysRepeatKeepsKeyAndOrder(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHeldKeys(100 * time.Millisecond)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0.Add(10*time.Millisecond))
	// auto-repeat of the first key
	h.Press(core.ActionUp, t0.Add(90*time.Millisecond))

	got := h.Held(t0.Add(150 * time.Millisecond))
	if !slices.Equal(got, []core.Action{core.ActionUp}) {
		t.Fatalf("expected only the repeated key, got %v", got)
	}

	h.Press(core.ActionDown, t0.Add(160*time.Millisecond))
	got = h.Held(t0.Add(170 * time.Millisecond))
	if !slices.Equal(got, []core.Action{core.ActionUp, core.ActionDown}) {
		t.Fatalf("expected press order up, down; got %v", got)
	}
}

func TestHeldKeysReleaseAndClear(t *testing.T) {
	t0 := time.Unix(0, 0)
	h := NewHeldKeys(time.Second)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDown, t0)
	h.Press(core.ActionLeft, t0)
	h.Release(core.ActionDown)
	h.Release(core.ActionRight)

	if got := h.Held(t0); !slices.Equal(got, []core.Action{core.ActionUp, core.ActionLeft}) {
		t.Fatalf("after release got %v", got)
	}

	h.Clear()
	if got := h.Held(t0); len(got) != 0 {
		t.Fatalf("after clear got %v", got)
	}

	h.Press(core.ActionDown, t0)
	if got := h.Held(t0); !slices.Equal(got, []core.Action{core.ActionDown}) {
		t.Fatalf("press after clear got %v", got)
	}
}
