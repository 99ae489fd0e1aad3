// Package config provides YAML-based game configuration loading and
// validation for the invaders game.
package config

// InvadersConfig contains all tunable parameters of a run.
// Distances are play-area pixels, velocities are pixels per tick.
type InvadersConfig struct {
	PlayArea  PlayAreaConfig  `yaml:"play_area"`
	Player    PlayerConfig    `yaml:"player"`
	Adversary AdversaryConfig `yaml:"adversary"`
	Lasers    LaserConfig     `yaml:"lasers"`
	Waves     WaveConfig      `yaml:"waves"`
	Run       RunConfig       `yaml:"run"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Window    WindowConfig    `yaml:"window"`
}

// PlayAreaConfig defines the logical bounds of the simulation.
type PlayAreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	StartX       int             `yaml:"start_x"`
	StartY       int             `yaml:"start_y"`
	Health       int             `yaml:"health"`
	Velocity     int             `yaml:"velocity"`
	BottomMargin int             `yaml:"bottom_margin"` // Room kept below the sprite for the health bar
	HealthBar    HealthBarConfig `yaml:"health_bar"`
}

// HealthBarConfig defines the bar drawn under the player.
type HealthBarConfig struct {
	Height int `yaml:"height"`
	Gap    int `yaml:"gap"` // Distance between sprite bottom and bar top
}

// AdversaryConfig defines the descending enemy craft.
type AdversaryConfig struct {
	Health              int      `yaml:"health"`
	Velocity            int      `yaml:"velocity"`
	ShotOffsetX         int      `yaml:"shot_offset_x"`         // Added to x when an adversary fires
	FireIntervalSeconds float64  `yaml:"fire_interval_seconds"` // Expected seconds between shots
	CollisionDamage     int      `yaml:"collision_damage"`      // Player damage on body contact
	Palette             []string `yaml:"palette"`               // Variants chosen from at spawn
}

// LaserConfig defines projectile behavior shared by all crafts.
type LaserConfig struct {
	Velocity  int `yaml:"velocity"`
	Cooldown  int `yaml:"cooldown"`   // Ticks between shots
	HitDamage int `yaml:"hit_damage"` // Player damage per adversary laser hit

	// LegacyOffscreen reproduces the historic off-screen test, which is
	// never true, so lasers only disappear when they hit something.
	LegacyOffscreen bool `yaml:"legacy_offscreen"`
}

// WaveConfig defines wave sizes and spawn placement.
type WaveConfig struct {
	InitialLength   int `yaml:"initial_length"`
	Growth          int `yaml:"growth"`            // Added to the wave length before each wave
	SpawnMinX       int `yaml:"spawn_min_x"`       // Left inset
	SpawnRightInset int `yaml:"spawn_right_inset"` // x < width - inset
	SpawnMinY       int `yaml:"spawn_min_y"`
	SpawnMaxY       int `yaml:"spawn_max_y"` // Exclusive, negative keeps spawns above the view
}

// RunConfig defines lives and the game-over display.
type RunConfig struct {
	Lives           int     `yaml:"lives"`
	GameOverSeconds float64 `yaml:"game_over_seconds"`
}

// TerminalConfig tunes the terminal front end.
type TerminalConfig struct {
	// HoldMS is how long a key counts as held after its last key event.
	// Terminals report presses and auto-repeat, never releases.
	HoldMS int `yaml:"hold_ms"`
}

// WindowConfig tunes the desktop window front end.
type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}
