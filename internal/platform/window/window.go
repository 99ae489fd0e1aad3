// Package window runs the invaders engine in a desktop window with
// Ebitengine. Unlike a terminal, the window reports real key-up events, so
// held controls are read directly every tick.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// promptText is shown on the start screen.
const promptText = "Press Enter to Begin"

// Options configures a window session.
type Options struct {
	Game    config.InvadersConfig
	Atlas   *sprites.Atlas
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// App implements ebiten.Game: a start screen followed by runs of the game.
type App struct {
	opts     Options
	renderer *renderer
	game     *invaders.Game
	frame    invaders.Frame
	runs     int
}

// NewApp creates the window application on its start screen.
func NewApp(opts Options) *App {
	if opts.Atlas == nil {
		opts.Atlas = sprites.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	return &App{
		opts:     opts,
		renderer: newRenderer(),
	}
}

// Update advances the start screen or the current run by one tick.
func (a *App) Update() error {
	if a.game == nil {
		return a.updateMenu()
	}

	prev := a.frame.Status
	frame, err := a.game.Step(bindings.Frame(ebiten.IsKeyPressed))
	a.frame = frame
	if err != nil {
		return fmt.Errorf("window: step: %w", err)
	}

	st := frame.Status
	if st.Lost() && !prev.Lost() {
		a.opts.Logger.Info("run lost", "run", a.runs, "level", st.Level)
	}
	if st.Ended() {
		a.opts.Logger.Info("run ended", "run", a.runs, "level", st.Level, "ticks", st.Tick)
		a.game = nil
	}
	return nil
}

func (a *App) updateMenu() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return nil
	}

	game, err := invaders.New(a.opts.Game, a.opts.Atlas)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	a.runs++
	rc := a.opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	} else {
		rc.Seed += int64(a.runs - 1)
	}
	game.Reset(rc)

	a.game = game
	a.frame = game.Frame()
	a.opts.Logger.Info("run started", "run", a.runs, "seed", rc.Seed)
	return nil
}

// Draw renders the start screen or the last frame.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.Layout(0, 0)
	if a.game == nil {
		a.renderer.drawMenu(screen, a.opts.Game.Window.Title, promptText, w, h)
		return
	}
	a.renderer.drawFrame(screen, a.frame, w, h)
}

// Layout returns the logical play-area size; Ebitengine scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.opts.Game.PlayArea.Width, a.opts.Game.PlayArea.Height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)
	cfg := app.opts.Game

	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.PlayArea.Width)*scale), int(float64(cfg.PlayArea.Height)*scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(app.opts.Runtime.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
