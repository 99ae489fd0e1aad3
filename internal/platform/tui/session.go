package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// SessionOptions configures a menu and game session.
type SessionOptions struct {
	Game    config.InvadersConfig
	Atlas   *sprites.Atlas
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// SessionModel manages the session flow: menu -> game -> menu.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	opts     SessionOptions
	menu     MenuModel
	game     *GameModel
	runs     int
	quitting bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Atlas == nil {
		opts.Atlas = sprites.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Game.Window.Title, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Started() {
		game, err := invaders.New(m.opts.Game, m.opts.Atlas)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "error", err)
			m.quitting = true
			return m, tea.Quit
		}

		m.runs++
		rc := m.opts.Runtime
		if rc.Seed != 0 {
			// Each run of a seeded session is reproducible but distinct.
			rc.Seed += int64(m.runs - 1)
		}

		hold := time.Duration(m.opts.Game.Terminal.HoldMS) * time.Millisecond
		gm := NewGameModel(game, rc, hold, m.opts.Logger.With("run", m.runs))
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Ended() {
		m.game = nil
		m.menu = NewMenuModel(m.opts.Game.Window.Title, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame returns true while a run is active.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Runs returns how many runs the session has started.
func (m SessionModel) Runs() int {
	return m.runs
}

// Run starts a local session in the alternate screen and blocks until
// the player exits.
func Run(opts SessionOptions) error {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
