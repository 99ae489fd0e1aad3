package core

import (
	"image"
	"math/bits"
)

// Mask is a per-pixel occupancy map derived from a sprite image.
// A Mask is never mutated after construction, so one instance is shared by
// every entity drawn with the same sprite.
type Mask struct {
	width  int
	height int
	stride int      // words per row
	words  []uint64 // row-major bitset, bit x%64 of word y*stride+x/64
}

// newMask allocates an empty mask. Callers fill it before handing it out.
func newMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{
		width:  w,
		height: h,
		stride: stride,
		words:  make([]uint64, stride*h),
	}
}

func (m *Mask) set(x, y int) {
	m.words[y*m.stride+x/64] |= 1 << uint(x%64)
}

// FullMask returns a mask of the given size with every pixel opaque.
func FullMask(w, h int) *Mask {
	m := newMask(w, h)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.set(x, y)
		}
	}
	return m
}

// MaskFromImage builds a mask from an image's alpha channel. Pixels with
// alpha above threshold (0-255) are opaque.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	limit := uint32(threshold) * 0x101
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a > limit {
				m.set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() Rect {
	return NewRect(0, 0, m.width, m.height)
}

// At reports whether the pixel at (x, y) is opaque.
// Out-of-range coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.words[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports whether any pixel is opaque in both masks when other's
// top-left corner sits at (dx, dy) relative to m's top-left corner.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	placed := NewRect(dx, dy, other.width, other.height)
	region := m.Bounds().Intersect(placed)
	if region.Empty() {
		return false
	}

	for y := region.Y; y < region.Bottom(); y++ {
		for x := region.X; x < region.Right(); x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Body is anything placed in the play area with a collision mask.
type Body interface {
	Position() (x, y int)
	Mask() *Mask
}

// Collide reports whether two bodies overlap at pixel precision.
// The offset is taken between their top-left anchors.
func Collide(a, b Body) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return a.Mask().Overlap(b.Mask(), bx-ax, by-ay)
}
