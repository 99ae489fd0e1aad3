package core

import "image"

// Sprite is an immutable visual: the source image and a glyph and tint for
// front ends, plus the collision mask derived from the image. Width and
// height come from the mask.
type Sprite struct {
	Name  string
	Glyph rune
	Color Color
	Image image.Image // nil for mask-only sprites
	mask  *Mask
}

// NewSprite creates a sprite backed by the given mask.
func NewSprite(name string, glyph rune, color Color, mask *Mask) *Sprite {
	return &Sprite{Name: name, Glyph: glyph, Color: color, mask: mask}
}

// SpriteFromImage creates a sprite whose mask is the image's alpha channel.
func SpriteFromImage(name string, glyph rune, color Color, img image.Image) *Sprite {
	return &Sprite{
		Name:  name,
		Glyph: glyph,
		Color: color,
		Image: img,
		mask:  MaskFromImage(img, 127),
	}
}

// Mask returns the shared collision mask.
func (s *Sprite) Mask() *Mask {
	return s.mask
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.mask.Width()
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.mask.Height()
}
