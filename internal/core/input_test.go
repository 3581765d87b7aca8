package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsInsertionOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionUp)
	f.Set(ActionRight) // duplicate keeps first position
	f.Set(ActionNone)  // ignored

	got := f.Actions()
	want := []Action{ActionRight, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionPause)
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionPause) {
		t.Error("clone should not be affected by Clear on the original")
	}
}

func TestActionIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%v should not be directional", a)
		}
	}
}

func TestTickDuration(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if got := cfg.TickDuration(); got != 20*time.Millisecond {
		t.Errorf("TickDuration() = %v, expected 20ms", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() with zero rate = %v, expected 1/60s", got)
	}
}
