package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// Player is the craft the user controls. MaxHealth is fixed at creation and
// only used for the health bar.
type Player struct {
	Craft
	MaxHealth int
}

// NewPlayer creates a player craft at (x, y) with full health.
func NewPlayer(x, y, health int, pair sprites.Pair, cooldownPeriod int) *Player {
	return &Player{
		Craft:     newCraft(x, y, health, pair, cooldownPeriod, 0),
		MaxHealth: health,
	}
}

// HealthBar returns the background and overlay rectangles of the health
// bar drawn gap pixels below the sprite. The overlay is the health share
// of the sprite width, rounded down.
func (p *Player) HealthBar(height, gap int) (full, current core.Rect) {
	y := p.Y + p.Height() + gap
	full = core.NewRect(p.X, y, p.Width(), height)
	filled := 0
	if p.MaxHealth > 0 {
		filled = p.Width() * core.Clamp(p.Health, 0, p.MaxHealth) / p.MaxHealth
	}
	current = core.NewRect(p.X, y, filled, height)
	return full, current
}

// AdvanceLasers moves the player's lasers by dy and resolves them against
// the roster. A laser removes the first adversary it overlaps, in roster
// order, and is consumed with it. Returns the number of adversaries removed.
func (p *Player) AdvanceLasers(dy int, roster *Roster, arena Arena) int {
	destroyed := 0
	p.advanceLasers(dy, arena, func(l *Laser) bool {
		for _, a := range roster.Snapshot() {
			if l.Collides(a) {
				if roster.Remove(a) {
					destroyed++
				}
				return true
			}
		}
		return false
	})
	return destroyed
}

// draw appends the ship, lasers and health bar.
func (p *Player) draw(dst []DrawRequest, bar healthBarStyle) []DrawRequest {
	dst = p.Craft.draw(dst)
	full, current := p.HealthBar(bar.height, bar.gap)
	dst = append(dst, barRequest(full, core.ColorBrightRed))
	if !current.Empty() {
		dst = append(dst, barRequest(current, core.ColorBrightGreen))
	}
	return dst
}

type healthBarStyle struct {
	height int
	gap    int
}
