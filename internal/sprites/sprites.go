// Package sprites is the asset side of the game: it turns built-in pixel
// art into images and derives each sprite's collision mask from the image's
// alpha channel. The simulation only ever sees the resulting core.Sprite.
package sprites

import (
	"image"
	"image/color"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Scale is the number of pixels per art cell.
const Scale = 10

// Glyphs used by terminal front ends.
const (
	ShipGlyph  = '█'
	EnemyGlyph = '▓'
	LaserGlyph = '┃'
)

// Pixel art. Any rune other than '.' or ' ' is opaque.
var (
	playerArt = []string{
		"....##....",
		"....##....",
		"...####...",
		"..######..",
		".##.##.##.",
		"##########",
		"##########",
		"#.##..##.#",
		"#........#",
	}

	enemyArt = []string{
		"#...#",
		".###.",
		"#####",
		".#.#.",
	}

	// Lasers are wider than the beam so they centre under the ship that fires them.
	laserArt = []string{
		"....#....",
		"....#....",
		"....#....",
	}
)

// Pair is the ship and laser visual of one craft variant.
type Pair struct {
	Ship  *core.Sprite
	Laser *core.Sprite
}

// Atlas holds every sprite the game draws. It is immutable and safe to
// share between concurrent runs.
type Atlas struct {
	player      Pair
	adversaries map[string]Pair
}

var defaultAtlas = build()

// Default returns the built-in atlas.
func Default() *Atlas {
	return defaultAtlas
}

// NewAtlas creates an atlas from explicit sprites.
func NewAtlas(player Pair, adversaries map[string]Pair) *Atlas {
	adv := make(map[string]Pair, len(adversaries))
	for k, v := range adversaries {
		adv[k] = v
	}
	return &Atlas{player: player, adversaries: adv}
}

func build() *Atlas {
	variants := []struct {
		key   string
		color core.Color
	}{
		{"red", core.ColorRed},
		{"blue", core.ColorBlue},
		{"green", core.ColorGreen},
	}

	adversaries := make(map[string]Pair, len(variants))
	for _, v := range variants {
		adversaries[v.key] = Pair{
			Ship:  fromArt(v.key+"-ship", EnemyGlyph, v.color, enemyArt),
			Laser: fromArt(v.key+"-laser", LaserGlyph, v.color, laserArt),
		}
	}

	return &Atlas{
		player: Pair{
			Ship:  fromArt("player-ship", ShipGlyph, core.ColorYellow, playerArt),
			Laser: fromArt("player-laser", LaserGlyph, core.ColorBrightYellow, laserArt),
		},
		adversaries: adversaries,
	}
}

// Player returns the player's ship and laser.
func (a *Atlas) Player() Pair {
	return a.player
}

// Adversary returns the variant registered under key.
func (a *Atlas) Adversary(key string) (Pair, bool) {
	p, ok := a.adversaries[key]
	return p, ok
}

// Palette returns the adversary variant keys, sorted.
func (a *Atlas) Palette() []string {
	keys := make([]string, 0, len(a.adversaries))
	for k := range a.adversaries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fromArt rasterises art into an image and builds a sprite from it.
func fromArt(name string, glyph rune, c core.Color, art []string) *core.Sprite {
	return core.SpriteFromImage(name, glyph, c, Rasterize(art, Scale, RGBA(c)))
}

// Rasterize paints art into an image, scale pixels per art cell.
// Transparent cells stay fully transparent.
func Rasterize(art []string, scale int, fill color.Color) *image.NRGBA {
	cols := 0
	for _, row := range art {
		cols = core.Max(cols, len([]rune(row)))
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols*scale, len(art)*scale))
	for ry, row := range art {
		for rx, r := range []rune(row) {
			if r == '.' || r == ' ' {
				continue
			}
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.Set(rx*scale+px, ry*scale+py, fill)
				}
			}
		}
	}
	return img
}

// RGBA maps a palette color to the RGBA value window front ends draw with.
func RGBA(c core.Color) color.NRGBA {
	switch c {
	case core.ColorRed:
		return color.NRGBA{R: 220, G: 50, B: 50, A: 255}
	case core.ColorGreen:
		return color.NRGBA{R: 50, G: 200, B: 80, A: 255}
	case core.ColorYellow:
		return color.NRGBA{R: 240, G: 210, B: 40, A: 255}
	case core.ColorBlue:
		return color.NRGBA{R: 70, G: 120, B: 255, A: 255}
	case core.ColorBrightRed:
		return color.NRGBA{R: 255, A: 255}
	case core.ColorBrightGreen:
		return color.NRGBA{G: 255, A: 255}
	case core.ColorBrightYellow:
		return color.NRGBA{R: 255, G: 255, B: 120, A: 255}
	case core.ColorBrightBlue:
		return color.NRGBA{R: 140, G: 180, B: 255, A: 255}
	case core.ColorGray:
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	default:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
}
