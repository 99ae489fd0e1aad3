package core

// RuntimeConfig contains the per-run settings a front end passes to the
// simulation when it starts a run.
type RuntimeConfig struct {
	ScreenW  int   // Front-end width in cells or pixels (rendering only)
	ScreenH  int   // Front-end height in cells or pixels (rendering only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in seconds to a tick count at this rate.
func (c RuntimeConfig) TicksFor(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(seconds * float64(rate))
}
