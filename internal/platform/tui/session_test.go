package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestSession() SessionModel {
	return NewSessionModel(SessionOptions{
		Game:    config.DefaultInvadersConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9},
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionStartsOnMenu(t *testing.T) {
	m := newTestSession()
	if m.InGame() {
		t.Fatal("session should start on the menu")
	}
	view := m.View()
	if !strings.Contains(view, PromptText) {
		t.Errorf("menu view missing prompt:\n%s", view)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := newTestSession()

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() || m.Runs() != 1 {
		t.Fatalf("enter should start a run (in game %v, runs %d)", m.InGame(), m.Runs())
	}

	m = updateSession(t, m, runeKey('q'))
	m = updateSession(t, m, TickMsg(time.Now()))
	if m.InGame() {
		t.Fatal("quitting a run should return to the menu")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() || m.Runs() != 2 {
		t.Errorf("second run should start fresh (runs %d)", m.Runs())
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession()
	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)

	if cmd == nil {
		t.Error("quitting the menu should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuIgnoresOtherKeys(t *testing.T) {
	menu := NewMenuModel("Space Invader", 80, 24)
	next, _ := menu.Update(runeKey('x'))
	menu = next.(MenuModel)

	if menu.Started() || menu.IsQuitting() {
		t.Error("unbound keys should do nothing")
	}
	if !strings.Contains(menu.View(), "S P A C E") {
		t.Error("menu should show the spaced title")
	}
}
