package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HeldKeys approximates held controls from key presses. Terminals report
// presses and auto-repeats but never releases, so an action counts as held
// until the window has passed since its last press.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = 150 * time.Millisecond
	}
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key press for the action at the given time.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.last[a] = now
}

// Frame returns the actions held at the given time and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets the action immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.last, a)
}

// Clear forgets all actions.
func (h *HeldKeys) Clear() {
	clear(h.last)
}
