package invaders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// ErrUnknownPalette is returned when an adversary variant is not in the atlas.
var ErrUnknownPalette = errors.New("invaders: unknown palette key")

// Adversary is an enemy craft. Its palette key fixes the ship and laser
// visuals for its lifetime.
type Adversary struct {
	Craft
	Palette string
}

// AdversaryTraits holds the per-wave constants of newly spawned adversaries.
type AdversaryTraits struct {
	Health         int
	CooldownPeriod int
	ShotOffsetX    int // Shift applied to laser x so shots leave from under the ship
}

// NewAdversary creates an adversary of the given palette variant.
func NewAdversary(x, y int, key string, atlas *sprites.Atlas, traits AdversaryTraits) (*Adversary, error) {
	pair, ok := atlas.Adversary(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPalette, key, strings.Join(atlas.Palette(), ", "))
	}
	return &Adversary{
		Craft:   newCraft(x, y, traits.Health, pair, traits.CooldownPeriod, traits.ShotOffsetX),
		Palette: key,
	}, nil
}

// Move drifts the adversary vertically by dy.
func (a *Adversary) Move(dy int) {
	a.Y += dy
}

// AdvanceLasers moves the adversary's lasers by dy and resolves them
// against the player. Each hit costs the player arena.HitDamage health and
// consumes the laser. Returns the number of hits.
func (a *Adversary) AdvanceLasers(dy int, player *Player, arena Arena) int {
	hits := 0
	a.advanceLasers(dy, arena, func(l *Laser) bool {
		if !l.Collides(player) {
			return false
		}
		player.Health -= arena.HitDamage
		hits++
		return true
	})
	return hits
}
