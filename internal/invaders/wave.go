package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// SpawnFunc creates one adversary of the given palette variant at (x, y).
type SpawnFunc func(x, y int, key string) (*Adversary, error)

// WaveSpawner tracks the level and wave length and fills the roster with a
// new wave once it is empty.
type WaveSpawner struct {
	level      int
	waveLength int
	cfg        config.WaveConfig
	width      int
	palette    []string
	rng        *rand.Rand
	spawn      SpawnFunc
}

// NewWaveSpawner creates a spawner at level 0 with the initial wave length.
func NewWaveSpawner(cfg config.WaveConfig, width int, palette []string, rng *rand.Rand, spawn SpawnFunc) *WaveSpawner {
	return &WaveSpawner{
		waveLength: cfg.InitialLength,
		cfg:        cfg,
		width:      width,
		palette:    palette,
		rng:        rng,
		spawn:      spawn,
	}
}

// Level returns the number of waves spawned so far.
func (w *WaveSpawner) Level() int {
	return w.level
}

// WaveLength returns the size of the most recent wave.
func (w *WaveSpawner) WaveLength() int {
	return w.waveLength
}

// Next starts a new wave if the roster is empty and reports whether it did.
// Each adversary gets a random x inside the horizontal insets, a random y
// in the spawn band above the view, and a uniformly chosen palette variant.
func (w *WaveSpawner) Next(roster *Roster) (bool, error) {
	if roster.Len() > 0 {
		return false, nil
	}

	w.level++
	w.waveLength += w.cfg.Growth

	maxX := w.width - w.cfg.SpawnRightInset
	for i := 0; i < w.waveLength; i++ {
		x := w.cfg.SpawnMinX + w.rng.Intn(maxX-w.cfg.SpawnMinX)
		y := w.cfg.SpawnMinY + w.rng.Intn(w.cfg.SpawnMaxY-w.cfg.SpawnMinY)
		key := w.palette[w.rng.Intn(len(w.palette))]

		a, err := w.spawn(x, y, key)
		if err != nil {
			return true, err
		}
		roster.Add(a)
	}
	return true, nil
}
