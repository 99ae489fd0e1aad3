package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable run.
func (c InvadersConfig) Validate() error {
	if c.PlayArea.Width <= 0 || c.PlayArea.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_PLAY_AREA",
			Message: fmt.Sprintf("play area must be positive, got %dx%d", c.PlayArea.Width, c.PlayArea.Height),
		}
	}

	if err := positive("player.health", c.Player.Health); err != nil {
		return err
	}
	if err := positive("player.velocity", c.Player.Velocity); err != nil {
		return err
	}
	if err := positive("adversary.velocity", c.Adversary.Velocity); err != nil {
		return err
	}
	if err := positive("lasers.velocity", c.Lasers.Velocity); err != nil {
		return err
	}
	if err := positive("lasers.cooldown", c.Lasers.Cooldown); err != nil {
		return err
	}
	if err := positive("run.lives", c.Run.Lives); err != nil {
		return err
	}

	if c.Adversary.FireIntervalSeconds <= 0 {
		return ValidationError{
			Code:    "INVALID_FIRE_INTERVAL",
			Message: fmt.Sprintf("adversary.fire_interval_seconds must be positive, got %g", c.Adversary.FireIntervalSeconds),
		}
	}

	if len(c.Adversary.Palette) == 0 {
		return ValidationError{
			Code:    "EMPTY_PALETTE",
			Message: "adversary.palette must name at least one variant",
		}
	}

	if c.Waves.InitialLength < 0 || c.Waves.Growth < 0 {
		return ValidationError{
			Code:    "INVALID_WAVE_LENGTH",
			Message: fmt.Sprintf("waves.initial_length and waves.growth must not be negative, got %d and %d", c.Waves.InitialLength, c.Waves.Growth),
		}
	}

	if c.Waves.SpawnMinX >= c.PlayArea.Width-c.Waves.SpawnRightInset {
		return ValidationError{
			Code:    "INVALID_SPAWN_X",
			Message: fmt.Sprintf("spawn x range [%d, %d) is empty", c.Waves.SpawnMinX, c.PlayArea.Width-c.Waves.SpawnRightInset),
		}
	}
	if c.Waves.SpawnMinY >= c.Waves.SpawnMaxY {
		return ValidationError{
			Code:    "INVALID_SPAWN_Y",
			Message: fmt.Sprintf("spawn y range [%d, %d) is empty", c.Waves.SpawnMinY, c.Waves.SpawnMaxY),
		}
	}

	if c.Run.GameOverSeconds < 0 || c.Terminal.HoldMS < 0 {
		return ValidationError{
			Code:    "NEGATIVE_DURATION",
			Message: "run.game_over_seconds and terminal.hold_ms must not be negative",
		}
	}
	if c.Window.Scale <= 0 {
		return ValidationError{
			Code:    "INVALID_SCALE",
			Message: fmt.Sprintf("window.scale must be positive, got %g", c.Window.Scale),
		}
	}

	return nil
}

func positive(field string, v int) error {
	if v > 0 {
		return nil
	}
	return ValidationError{
		Code:    "NOT_POSITIVE",
		Message: fmt.Sprintf("%s must be positive, got %d", field, v),
	}
}
