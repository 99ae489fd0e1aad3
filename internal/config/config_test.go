package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("run:\n  lives: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Run.Lives != 2 {
		t.Errorf("lives = %d, expected 2", cfg.Run.Lives)
	}
	if cfg.Lasers.Cooldown != 30 {
		t.Errorf("cooldown = %d, expected default 30", cfg.Lasers.Cooldown)
	}
	if cfg.Run.GameOverSeconds != 3 {
		t.Errorf("game_over_seconds = %g, expected default 3", cfg.Run.GameOverSeconds)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("play_area:\n  width: 800\nlasers:\n  legacy_offscreen: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.PlayArea.Width != 800 || cfg.PlayArea.Height != 600 {
		t.Errorf("play area = %dx%d, expected 800x600", cfg.PlayArea.Width, cfg.PlayArea.Height)
	}
	if !cfg.Lasers.LegacyOffscreen {
		t.Error("legacy_offscreen should be set from the file")
	}
}

func TestLoadInvadersMissingCustomPath(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadInvadersInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("lasers:\n  cooldown: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadInvaders(path)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Code != "NOT_POSITIVE" {
		t.Errorf("code = %s, expected NOT_POSITIVE", verr.Code)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		code   string
	}{
		{"defaults", func(*InvadersConfig) {}, ""},
		{"zero width", func(c *InvadersConfig) { c.PlayArea.Width = 0 }, "INVALID_PLAY_AREA"},
		{"no lives", func(c *InvadersConfig) { c.Run.Lives = 0 }, "NOT_POSITIVE"},
		{"no fire interval", func(c *InvadersConfig) { c.Adversary.FireIntervalSeconds = 0 }, "INVALID_FIRE_INTERVAL"},
		{"empty palette", func(c *InvadersConfig) { c.Adversary.Palette = nil }, "EMPTY_PALETTE"},
		{"negative growth", func(c *InvadersConfig) { c.Waves.Growth = -1 }, "INVALID_WAVE_LENGTH"},
		{"empty spawn x", func(c *InvadersConfig) { c.Waves.SpawnMinX = 500 }, "INVALID_SPAWN_X"},
		{"empty spawn y", func(c *InvadersConfig) { c.Waves.SpawnMaxY = c.Waves.SpawnMinY }, "INVALID_SPAWN_Y"},
		{"negative hold", func(c *InvadersConfig) { c.Terminal.HoldMS = -1 }, "NEGATIVE_DURATION"},
		{"zero scale", func(c *InvadersConfig) { c.Window.Scale = 0 }, "INVALID_SCALE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Run.Lives = 9
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Run.Lives != 9 {
		t.Errorf("lives = %d, expected 9", back.Run.Lives)
	}
}
