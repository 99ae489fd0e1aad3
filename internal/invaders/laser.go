package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Laser is a single shot. It only moves vertically; the caller picks the
// direction (negative is up for player fire, positive is down for adversaries).
type Laser struct {
	X, Y   int
	sprite *core.Sprite
}

// NewLaser creates a laser at (x, y) drawn with sprite.
func NewLaser(x, y int, sprite *core.Sprite) *Laser {
	return &Laser{X: x, Y: y, sprite: sprite}
}

// Position returns the top-left anchor.
func (l *Laser) Position() (int, int) {
	return l.X, l.Y
}

// Mask returns the shared collision mask of the laser's sprite.
func (l *Laser) Mask() *core.Mask {
	return l.sprite.Mask()
}

// Sprite returns the laser's visual.
func (l *Laser) Sprite() *core.Sprite {
	return l.sprite
}

// Move shifts the laser vertically by dy.
func (l *Laser) Move(dy int) {
	l.Y += dy
}

// OffScreen reports whether the laser has left the vertical play bounds.
func (l *Laser) OffScreen(height int) bool {
	return l.Y < 0 || l.Y > height
}

// legacyOffScreen is the historic predicate. It can only be true when
// height <= 0, so with a real play area lasers never leave this way.
func (l *Laser) legacyOffScreen(height int) bool {
	return l.Y >= height && l.Y <= 0
}

// Collides reports a pixel-exact overlap with b.
func (l *Laser) Collides(b core.Body) bool {
	return core.Collide(l, b)
}
