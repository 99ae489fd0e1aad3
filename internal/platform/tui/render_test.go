package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

// The test screen maps a 600x600 play area onto 60x20 field cells:
// each cell covers 10 pixels across and 30 pixels down, below one HUD row.
func testScreen() *core.Screen {
	return core.NewScreen(60, 21)
}

// artMask builds a mask from text art with 10x10 pixels per character.
func artMask(rows ...string) *core.Mask {
	return core.MaskFromImage(sprites.Rasterize(rows, 10, color.White), 127)
}

func solidSprite(w, h int) *core.Sprite {
	return core.NewSprite("solid", '#', core.ColorYellow, core.FullMask(w, h))
}

func TestDrawFrameHUD(t *testing.T) {
	s := testScreen()
	DrawFrame(s, invaders.Frame{Status: invaders.Status{Lives: 5, Level: 2}}, 600, 600)

	row := s.Row(0)
	if !strings.HasPrefix(row, " Lives: 5") {
		t.Errorf("HUD row = %q, expected lives on the left", row)
	}
	if !strings.HasSuffix(row, "Level: 2 ") {
		t.Errorf("HUD row = %q, expected level on the right", row)
	}
	if c := s.GetCell(1, 0).Color; c != core.ColorDefault {
		t.Errorf("HUD color = %v, expected the terminal default", c)
	}
}

func TestDrawFrameSprite(t *testing.T) {
	s := testScreen()
	f := invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind:   invaders.DrawSprite,
		Sprite: solidSprite(100, 90),
		X:      250,
		Y:      450,
		Color:  core.ColorYellow,
	}}}
	DrawFrame(s, f, 600, 600)

	tests := []struct {
		x, y int
		want rune
	}{
		{25, 16, '#'},
		{34, 18, '#'},
		{24, 16, ' '},
		{35, 16, ' '},
		{25, 15, ' '},
		{25, 19, ' '},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
	if c := s.GetCell(30, 17).Color; c != core.ColorYellow {
		t.Errorf("sprite color = %v, expected yellow", c)
	}
}

func TestDrawFrameSamplesMask(t *testing.T) {
	// A 30x30 sprite opaque only in its right-hand column of 10 pixels.
	mask := artMask("..#")
	sprite := core.NewSprite("beam", '|', core.ColorRed, mask)

	s := testScreen()
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind: invaders.DrawSprite, Sprite: sprite, X: 100, Y: 0, Color: core.ColorRed,
	}}}, 600, 600)

	// Only the top 10 pixels are covered, so no cell centre is reached
	// on the row: the mask is only 10 pixels tall.
	if strings.ContainsRune(s.String(), '|') {
		t.Error("pixels outside every cell centre should not be drawn")
	}

	tall := artMask("..#", "..#", "..#")
	sprite = core.NewSprite("beam", '|', core.ColorRed, tall)
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind: invaders.DrawSprite, Sprite: sprite, X: 100, Y: 0, Color: core.ColorRed,
	}}}, 600, 600)

	if s.Get(12, 1) != '|' {
		t.Errorf("beam cell = %q, expected '|'", s.Get(12, 1))
	}
	if s.Get(10, 1) != ' ' || s.Get(11, 1) != ' ' {
		t.Error("transparent columns should stay blank")
	}
}

func TestDrawFrameClipsAboveView(t *testing.T) {
	s := testScreen()
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind: invaders.DrawSprite, Sprite: solidSprite(50, 40), X: 0, Y: -20, Color: core.ColorRed,
	}}}, 600, 600)

	if s.Get(0, 1) != '#' {
		t.Error("visible part of the sprite should be drawn on the first field row")
	}
	if strings.ContainsRune(s.Row(0), '#') {
		t.Error("sprite must not overwrite the HUD row")
	}
}

func TestDrawFrameBars(t *testing.T) {
	s := testScreen()
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{
		{Kind: invaders.DrawBar, X: 250, Y: 550, W: 100, H: 10, Color: core.ColorBrightRed},
		{Kind: invaders.DrawBar, X: 250, Y: 550, W: 50, H: 10, Color: core.ColorBrightGreen},
		{Kind: invaders.DrawBar, X: 0, Y: 0, W: 0, H: 10, Color: core.ColorBlue},
	}}, 600, 600)

	for x := 25; x < 30; x++ {
		if c := s.GetCell(x, 19); c.Rune != barGlyph || c.Color != core.ColorBrightGreen {
			t.Errorf("cell %d = %+v, expected green bar", x, c)
		}
	}
	for x := 30; x < 35; x++ {
		if c := s.GetCell(x, 19); c.Color != core.ColorBrightRed {
			t.Errorf("cell %d = %+v, expected red bar", x, c)
		}
	}
	if s.Get(35, 19) != ' ' || s.Get(24, 19) != ' ' {
		t.Error("bar should not extend past its width")
	}
	if s.GetCell(0, 1).Color == core.ColorBlue {
		t.Error("empty bar should not be drawn")
	}
}

func TestDrawFrameBanner(t *testing.T) {
	s := testScreen()
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind: invaders.DrawBanner, Text: invaders.GameOverText, Color: core.ColorWhite,
	}}}, 600, 600)

	if !strings.Contains(s.String(), "Game Over") {
		t.Errorf("banner not drawn:\n%s", s.String())
	}
}

func TestDrawFrameTinyScreen(t *testing.T) {
	s := core.NewScreen(10, 1)
	DrawFrame(s, invaders.Frame{Draws: []invaders.DrawRequest{{
		Kind: invaders.DrawBanner, Text: invaders.GameOverText,
	}}}, 600, 600)
	// No field rows: only the HUD is drawn and nothing panics.
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawTextColor(0, 0, "Lives", core.ColorWhite)
	s.DrawTextColor(6, 0, "Level", core.ColorYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "Lives") || !strings.Contains(out, "Level") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
