package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window. The window is the play area scaled
by window.scale from the config.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Begin (menu)
  Q/Esc        - End the run, or close from the menu

Examples:
  invaders window
  invaders window --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("invaders", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := window.Options{
		Game:  gameCfg,
		Atlas: sprites.Default(),
		Runtime: core.RuntimeConfig{
			ScreenW:  gameCfg.PlayArea.Width,
			ScreenH:  gameCfg.PlayArea.Height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	if err := window.Run(opts); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
