package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/sprites"
)

const (
	hudMargin   = 10
	bannerScale = 4
)

var (
	background = color.NRGBA{0, 0, 0, 255}
	hudColor   = color.NRGBA{255, 255, 255, 255}
)

// renderer caches one GPU image per sprite and draws frames.
type renderer struct {
	images map[*core.Sprite]*ebiten.Image
	face   text.Face
}

func newRenderer() *renderer {
	return &renderer{
		images: make(map[*core.Sprite]*ebiten.Image),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// image returns the cached image for a sprite, rasterizing the mask when
// the sprite has no source image.
func (r *renderer) image(s *core.Sprite) *ebiten.Image {
	if img, ok := r.images[s]; ok {
		return img
	}
	src := s.Image
	if src == nil {
		src = maskImage(s.Mask(), sprites.RGBA(s.Color))
	}
	img := ebiten.NewImageFromImage(src)
	r.images[s] = img
	return img
}

func maskImage(m *core.Mask, fill color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

func (r *renderer) drawFrame(screen *ebiten.Image, f invaders.Frame, areaW, areaH int) {
	screen.Fill(background)

	for _, d := range f.Draws {
		switch d.Kind {
		case invaders.DrawSprite:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(d.X), float64(d.Y))
			screen.DrawImage(r.image(d.Sprite), op)
		case invaders.DrawBar:
			if d.W > 0 && d.H > 0 {
				vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), sprites.RGBA(d.Color), false)
			}
		case invaders.DrawBanner:
			r.drawCentered(screen, d.Text, areaW, areaH, bannerScale, sprites.RGBA(d.Color))
		}
	}

	r.drawText(screen, fmt.Sprintf("Lives: %d", f.Status.Lives), hudMargin, hudMargin, 2, hudColor)
	level := fmt.Sprintf("Level: %d", f.Status.Level)
	w, _ := text.Measure(level, r.face, 0)
	r.drawText(screen, level, float64(areaW)-w*2-hudMargin, hudMargin, 2, hudColor)
}

func (r *renderer) drawMenu(screen *ebiten.Image, title, prompt string, areaW, areaH int) {
	screen.Fill(background)
	r.drawCentered(screen, title, areaW, areaH-120, 3, sprites.RGBA(core.ColorBrightYellow))
	r.drawCentered(screen, prompt, areaW, areaH, 2, hudColor)
}

func (r *renderer) drawCentered(screen *ebiten.Image, s string, areaW, areaH int, scale float64, c color.Color) {
	w, h := text.Measure(s, r.face, 0)
	x := (float64(areaW) - w*scale) / 2
	y := (float64(areaH) - h*scale) / 2
	r.drawText(screen, s, x, y, scale, c)
}

func (r *renderer) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, r.face, op)
}
