package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionFire, t0.Add(100*time.Millisecond))

	f := h.Frame(t0.Add(120 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionFire) {
		t.Error("both actions should be held inside the window")
	}

	f = h.Frame(t0.Add(200 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("left should have expired")
	}
	if !f.Has(core.ActionFire) {
		t.Error("fire was pressed later and should still be held")
	}

	f = h.Frame(t0.Add(time.Second))
	if f.Has(core.ActionFire) {
		t.Error("fire should have expired")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := 0; i < 10; i++ {
		now := t0.Add(time.Duration(i) * 50 * time.Millisecond)
		h.Press(core.ActionRight, now)
		if !h.Frame(now.Add(10 * time.Millisecond)).Has(core.ActionRight) {
			t.Fatalf("repeat %d: right should be held", i)
		}
	}
}

func TestHeldKeysReleaseAndClear(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionNone, t0)
	h.Press(core.ActionQuit, t0)
	h.Press(core.ActionUp, t0)
	h.Release(core.ActionQuit)

	f := h.Frame(t0)
	if f.Has(core.ActionQuit) || f.Has(core.ActionNone) {
		t.Error("released and empty actions should not be held")
	}
	if !f.Has(core.ActionUp) {
		t.Error("up should be held")
	}

	h.Clear()
	if h.Frame(t0).Has(core.ActionUp) {
		t.Error("clear should forget every action")
	}
}
