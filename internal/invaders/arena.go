package invaders

// Arena holds the play-area bounds and the laser rules every craft
// resolves its shots against.
type Arena struct {
	Width     int
	Height    int
	HitDamage int // Player health lost per adversary laser hit

	// LegacyOffscreen keeps lasers alive until they hit something.
	LegacyOffscreen bool
}

// offScreen applies the configured off-screen test.
func (a Arena) offScreen(l *Laser) bool {
	if a.LegacyOffscreen {
		return l.legacyOffScreen(a.Height)
	}
	return l.OffScreen(a.Height)
}
