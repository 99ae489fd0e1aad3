package invaders

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// testAtlas uses solid masks so overlaps are easy to reason about:
// ships are 10x10, lasers 2x4.
func testAtlas() *sprites.Atlas {
	ship := func(name string) *core.Sprite {
		return core.NewSprite(name, 'S', core.ColorWhite, core.FullMask(10, 10))
	}
	laser := func(name string) *core.Sprite {
		return core.NewSprite(name, '|', core.ColorWhite, core.FullMask(2, 4))
	}
	return sprites.NewAtlas(
		sprites.Pair{Ship: ship("player"), Laser: laser("player-laser")},
		map[string]sprites.Pair{
			"red":   {Ship: ship("red"), Laser: laser("red-laser")},
			"blue":  {Ship: ship("blue"), Laser: laser("blue-laser")},
			"green": {Ship: ship("green"), Laser: laser("green-laser")},
		},
	)
}

func testArena() Arena {
	return Arena{Width: 600, Height: 600, HitDamage: 10}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame creates a game on the solid-mask atlas with default rules.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultInvadersConfig(), testAtlas())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(testRuntime(seed))
	return g
}

func mustAdversary(t *testing.T, x, y int, key string, traits AdversaryTraits) *Adversary {
	t.Helper()
	a, err := NewAdversary(x, y, key, testAtlas(), traits)
	if err != nil {
		t.Fatalf("NewAdversary: %v", err)
	}
	return a
}

func defaultTraits() AdversaryTraits {
	return AdversaryTraits{Health: DefaultHealth, CooldownPeriod: 30}
}

func step(t *testing.T, g *Game, actions ...core.Action) Frame {
	t.Helper()
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	f, err := g.Step(in)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return f
}

// inRoster reports whether a is live in r.
func inRoster(r *Roster, a *Adversary) bool {
	return slices.Contains(r.Snapshot(), a)
}
