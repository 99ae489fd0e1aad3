package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// GameOverText is the banner shown while a run is lost.
const GameOverText = "Game Over"

// DrawKind selects how a front end renders a DrawRequest.
type DrawKind int

const (
	DrawSprite DrawKind = iota // Sprite at (X, Y)
	DrawBar                    // Filled W x H rectangle at (X, Y) in Color
	DrawBanner                 // Text centred in the play area
)

// DrawRequest is one entry of a frame's draw list, in play-area pixels.
type DrawRequest struct {
	Kind   DrawKind
	Sprite *core.Sprite
	X, Y   int
	W, H   int
	Color  core.Color
	Text   string
}

// Status is the scalar state a front end shows next to the draw list.
type Status struct {
	Lives       int
	Level       int
	Health      int
	MaxHealth   int
	WaveLength  int
	Adversaries int
	State       State
	Tick        int
}

// Lost reports whether the game-over banner is showing.
func (s Status) Lost() bool {
	return s.State == StateLost
}

// Ended reports whether the run has finished.
func (s Status) Ended() bool {
	return s.State == StateEnded
}

// Frame is what one tick produces for the presentation layer.
// Draws are ordered back to front.
type Frame struct {
	Draws  []DrawRequest
	Status Status
}

func spriteRequest(s *core.Sprite, x, y int) DrawRequest {
	return DrawRequest{Kind: DrawSprite, Sprite: s, X: x, Y: y, Color: s.Color}
}

func barRequest(r core.Rect, c core.Color) DrawRequest {
	return DrawRequest{Kind: DrawBar, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c}
}

func bannerRequest(text string) DrawRequest {
	return DrawRequest{Kind: DrawBanner, Text: text, Color: core.ColorWhite}
}
