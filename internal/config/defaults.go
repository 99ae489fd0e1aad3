package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It matches defaults/invaders.yaml and backs it when the embed is unreadable.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		PlayArea: PlayAreaConfig{
			Width:  600,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:       250,
			StartY:       450,
			Health:       100,
			Velocity:     3,
			BottomMargin: 15,
			HealthBar: HealthBarConfig{
				Height: 10,
				Gap:    10,
			},
		},
		Adversary: AdversaryConfig{
			Health:              100,
			Velocity:            1,
			ShotOffsetX:         -20,
			FireIntervalSeconds: 10,
			CollisionDamage:     20,
			Palette:             []string{"red", "blue", "green"},
		},
		Lasers: LaserConfig{
			Velocity:  4,
			Cooldown:  30, // Half a second at 60 ticks per second
			HitDamage: 10,
		},
		Waves: WaveConfig{
			InitialLength:   5,
			Growth:          2,
			SpawnMinX:       50,
			SpawnRightInset: 100,
			SpawnMinY:       -1200,
			SpawnMaxY:       -100,
		},
		Run: RunConfig{
			Lives:           5,
			GameOverSeconds: 3,
		},
		Terminal: TerminalConfig{
			HoldMS: 150,
		},
		Window: WindowConfig{
			Title: "Space Invader",
			Scale: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
