package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// DefaultHealth is the starting health of a craft.
const DefaultHealth = 100

// Craft is the state shared by the player and adversaries: a position,
// health, a cooldown-gated weapon, and the lasers it has fired.
//
// The cooldown counter stays within [0, cooldownPeriod]. The weapon is ready
// only while it is 0; firing sets it to 1 and each TickCooldown advances it
// until it wraps back to 0.
type Craft struct {
	X, Y   int
	Health int

	ship           *core.Sprite
	laser          *core.Sprite
	lasers         []*Laser // fire order
	cooldown       int
	cooldownPeriod int
	shotOffsetX    int
}

func newCraft(x, y, health int, pair sprites.Pair, cooldownPeriod, shotOffsetX int) Craft {
	return Craft{
		X:              x,
		Y:              y,
		Health:         health,
		ship:           pair.Ship,
		laser:          pair.Laser,
		cooldownPeriod: cooldownPeriod,
		shotOffsetX:    shotOffsetX,
	}
}

// Position returns the top-left anchor.
func (c *Craft) Position() (int, int) {
	return c.X, c.Y
}

// Mask returns the ship's collision mask.
func (c *Craft) Mask() *core.Mask {
	return c.ship.Mask()
}

// Sprite returns the ship visual.
func (c *Craft) Sprite() *core.Sprite {
	return c.ship
}

// Width returns the ship width in pixels.
func (c *Craft) Width() int {
	return c.ship.Width()
}

// Height returns the ship height in pixels.
func (c *Craft) Height() int {
	return c.ship.Height()
}

// Lasers returns the live lasers in fire order. The slice must not be modified.
func (c *Craft) Lasers() []*Laser {
	return c.lasers
}

// Cooldown returns the current cooldown counter.
func (c *Craft) Cooldown() int {
	return c.cooldown
}

// TickCooldown advances the weapon cooldown by one tick.
func (c *Craft) TickCooldown() {
	if c.cooldown >= c.cooldownPeriod {
		c.cooldown = 0
	} else if c.cooldown > 0 {
		c.cooldown++
	}
}

// Shoot fires a laser if the weapon is ready and reports whether it did.
func (c *Craft) Shoot() bool {
	if c.cooldown != 0 {
		return false
	}
	c.lasers = append(c.lasers, NewLaser(c.X+c.shotOffsetX, c.Y, c.laser))
	c.cooldown = 1
	return true
}

// advanceLasers ticks the cooldown, moves every laser by dy and keeps the
// ones that stay in bounds and are not consumed by hit. The laser
// collection is rebuilt rather than edited in place.
func (c *Craft) advanceLasers(dy int, arena Arena, hit func(*Laser) bool) {
	c.TickCooldown()

	kept := make([]*Laser, 0, len(c.lasers))
	for _, l := range c.lasers {
		l.Move(dy)
		if arena.offScreen(l) {
			continue
		}
		if hit(l) {
			continue
		}
		kept = append(kept, l)
	}
	c.lasers = kept
}

// draw appends the ship and its lasers to the draw list.
func (c *Craft) draw(dst []DrawRequest) []DrawRequest {
	dst = append(dst, spriteRequest(c.ship, c.X, c.Y))
	for _, l := range c.lasers {
		dst = append(dst, spriteRequest(l.sprite, l.X, l.Y))
	}
	return dst
}
