package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// GameModel is the Bubble Tea model for one run of the game.
type GameModel struct {
	game     *invaders.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	logger   *log.Logger
	clock    func() time.Time
	frame    invaders.Frame
	ended    bool // Run finished, the session returns to the menu
	quitting bool // User asked to exit the program
	err      error
}

// NewGameModel creates a model that drives the game from the terminal.
// The game is reset with cfg when the model starts.
func NewGameModel(game *invaders.Game, cfg core.RuntimeConfig, hold time.Duration, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(hold),
		logger: logger,
		clock:  time.Now,
		frame:  game.Frame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("run started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the pressed action as held.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(m.keys.Action(msg), m.clock())
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}

	prev := m.frame.Status
	in := m.held.Frame(now)
	// Quit is a one-shot press, not a held control.
	m.held.Release(core.ActionQuit)

	frame, err := m.game.Step(in)
	m.frame = frame
	if err != nil {
		m.logger.Error("simulation step failed", "error", err)
		m.err = err
		m.ended = true
		m.held.Clear()
		return m, nil
	}

	st := frame.Status
	if st.Level != prev.Level {
		m.logger.Debug("wave spawned", "level", st.Level, "size", st.WaveLength)
	}
	if st.Lost() && !prev.Lost() {
		m.logger.Info("run lost", "level", st.Level, "lives", st.Lives, "health", st.Health)
	}
	if st.Ended() {
		m.logger.Info("run ended", "level", st.Level, "ticks", st.Tick)
		m.ended = true
		m.held.Clear()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.game.PlayArea()
	DrawFrame(m.screen, m.frame, w, h)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Ended returns true once the run has finished.
func (m GameModel) Ended() bool {
	return m.ended
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the error that stopped the run, if any.
func (m GameModel) Err() error {
	return m.err
}

// Frame returns the frame produced by the last tick.
func (m GameModel) Frame() invaders.Frame {
	return m.frame
}
