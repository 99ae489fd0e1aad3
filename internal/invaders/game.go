// Package invaders implements the simulation engine of a top-down space
// shooter: the player defends against waves of descending adversaries until
// lives or health run out. The package is pure logic; front ends feed it
// held-key snapshots at a fixed tick rate and render the draw list it
// returns.
package invaders

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// State is the phase of a run.
type State int

const (
	StatePlaying State = iota
	StateLost          // Game-over banner showing
	StateEnded         // Run finished, control returns to the menu
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game runs one simulation instance. A Game is not safe for concurrent use;
// front ends drive it from a single loop.
type Game struct {
	cfg     config.InvadersConfig
	atlas   *sprites.Atlas
	runtime core.RuntimeConfig
	arena   Arena
	bar     healthBarStyle

	rng    *rand.Rand
	player *Player
	roster *Roster
	waves  *WaveSpawner

	lives     int
	state     State
	lostTicks int // Ticks since the run was lost
	tick      int
	frame     Frame
}

// New creates a game from a validated configuration. Every palette key
// must exist in the atlas.
func New(cfg config.InvadersConfig, atlas *sprites.Atlas) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: invalid config: %w", err)
	}
	for _, key := range cfg.Adversary.Palette {
		if _, ok := atlas.Adversary(key); !ok {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPalette, key, strings.Join(atlas.Palette(), ", "))
		}
	}

	g := &Game{
		cfg:   cfg,
		atlas: atlas,
		arena: Arena{
			Width:           cfg.PlayArea.Width,
			Height:          cfg.PlayArea.Height,
			HitDamage:       cfg.Lasers.HitDamage,
			LegacyOffscreen: cfg.Lasers.LegacyOffscreen,
		},
		bar: healthBarStyle{
			height: cfg.Player.HealthBar.Height,
			gap:    cfg.Player.HealthBar.Gap,
		},
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Reset starts a fresh run: new player, empty roster, level 0, full lives.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.player = NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Player.Health,
		g.atlas.Player(), g.cfg.Lasers.Cooldown)
	if g.roster == nil {
		g.roster = NewRoster()
	}
	g.roster.Clear()
	g.waves = NewWaveSpawner(g.cfg.Waves, g.cfg.PlayArea.Width, g.cfg.Adversary.Palette, g.rng, g.spawnAdversary)

	g.lives = g.cfg.Run.Lives
	g.state = StatePlaying
	g.lostTicks = 0
	g.tick = 0
	g.frame = Frame{Draws: g.drawList(), Status: g.Status()}
}

func (g *Game) spawnAdversary(x, y int, key string) (*Adversary, error) {
	return NewAdversary(x, y, key, g.atlas, AdversaryTraits{
		Health:         g.cfg.Adversary.Health,
		CooldownPeriod: g.cfg.Lasers.Cooldown,
		ShotOffsetX:    g.cfg.Adversary.ShotOffsetX,
	})
}

// Step advances the simulation by one tick and returns the frame to draw.
// The draw list reflects the state at the start of the tick.
func (g *Game) Step(in core.InputFrame) (Frame, error) {
	if g.state == StateEnded {
		return g.frame, nil
	}
	g.tick++

	draws := g.drawList()

	if in.Has(core.ActionQuit) {
		g.state = StateEnded
		return g.finish(draws), nil
	}

	if g.state == StatePlaying && (g.lives <= 0 || g.player.Health <= 0) {
		g.state = StateLost
		g.lostTicks = 0
	} else if g.state == StateLost {
		g.lostTicks++
	}

	if g.state == StateLost {
		if g.lostTicks > g.runtime.TicksFor(g.cfg.Run.GameOverSeconds) {
			g.state = StateEnded
		}
		return g.finish(draws), nil
	}

	if _, err := g.waves.Next(g.roster); err != nil {
		return g.finish(draws), err
	}

	g.applyInput(in)
	g.updateAdversaries()
	g.player.AdvanceLasers(-g.cfg.Lasers.Velocity, g.roster, g.arena)

	return g.finish(draws), nil
}

func (g *Game) finish(draws []DrawRequest) Frame {
	g.frame = Frame{Draws: draws, Status: g.Status()}
	return g.frame
}

// applyInput moves the player by the held direction keys, keeping the
// sprite inside the play area, and fires when the fire key is held.
func (g *Game) applyInput(in core.InputFrame) {
	p := g.player
	vel := g.cfg.Player.Velocity
	w, h := g.arena.Width, g.arena.Height

	if in.Has(core.ActionLeft) && p.X-vel > 0 {
		p.X -= vel
	}
	if in.Has(core.ActionRight) && p.X+vel+p.Width() < w {
		p.X += vel
	}
	if in.Has(core.ActionUp) && p.Y-vel > 0 {
		p.Y -= vel
	}
	if in.Has(core.ActionDown) && p.Y+vel+p.Height()+g.cfg.Player.BottomMargin < h {
		p.Y += vel
	}
	if in.Has(core.ActionFire) {
		p.Shoot()
	}
}

// updateAdversaries moves every adversary, resolves its lasers, lets it
// fire at random, then removes it on contact with the player or once it
// passes the bottom edge.
func (g *Game) updateAdversaries() {
	fireRange := core.Max(g.runtime.TicksFor(g.cfg.Adversary.FireIntervalSeconds), 2)

	for _, a := range g.roster.Snapshot() {
		a.Move(g.cfg.Adversary.Velocity)
		a.AdvanceLasers(g.cfg.Lasers.Velocity, g.player, g.arena)

		if g.rng.Intn(fireRange) == 1 {
			a.Shoot()
		}

		if core.Collide(a, g.player) {
			g.player.Health -= g.cfg.Adversary.CollisionDamage
			g.roster.Remove(a)
		} else if a.Y+a.Height() > g.arena.Height {
			g.lives--
			g.roster.Remove(a)
		}
	}
}

// drawList builds the back-to-front draw list: adversaries, then the
// player with its health bar, then the banner while lost.
func (g *Game) drawList() []DrawRequest {
	draws := make([]DrawRequest, 0, g.roster.Len()*2+8)
	for _, a := range g.roster.Snapshot() {
		draws = a.draw(draws)
	}
	draws = g.player.draw(draws, g.bar)
	if g.state == StateLost {
		draws = append(draws, bannerRequest(GameOverText))
	}
	return draws
}

// Frame returns the frame produced by the last tick.
func (g *Game) Frame() Frame {
	return g.frame
}

// State returns the current phase of the run.
func (g *Game) State() State {
	return g.state
}

// Status returns the current scalar state.
func (g *Game) Status() Status {
	return Status{
		Lives:       g.lives,
		Level:       g.waves.Level(),
		Health:      g.player.Health,
		MaxHealth:   g.player.MaxHealth,
		WaveLength:  g.waves.WaveLength(),
		Adversaries: g.roster.Len(),
		State:       g.state,
		Tick:        g.tick,
	}
}

// Player returns the player craft.
func (g *Game) Player() *Player {
	return g.player
}

// Roster returns the live adversaries.
func (g *Game) Roster() *Roster {
	return g.roster
}

// PlayArea returns the logical play-area size.
func (g *Game) PlayArea() (width, height int) {
	return g.arena.Width, g.arena.Height
}
