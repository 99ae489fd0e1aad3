package core

import (
	"image"
	"image/color"
	"testing"
)

// body is a positioned mask used to exercise Collide.
type body struct {
	x, y int
	mask *Mask
}

func (b body) Position() (int, int) { return b.x, b.y }
func (b body) Mask() *Mask          { return b.mask }

func TestMaskFromTextArt(t *testing.T) {
	m := maskFromRows([]string{
		"#.",
		".#",
	}, 3)

	if m.Width() != 6 || m.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 6x6", m.Width(), m.Height())
	}
	if m.Count() != 18 {
		t.Errorf("Count() = %d, expected 18", m.Count())
	}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{2, 2, true},
		{3, 0, false},
		{0, 3, false},
		{3, 3, true},
		{5, 5, true},
		{-1, 0, false},
		{6, 6, false},
	}
	for _, tc := range tests {
		if got := m.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

// maskFromRows builds a mask from text art. Every rune other than ' ' and
// '.' is opaque. Each art cell becomes a scale x scale block of pixels, and
// short rows are padded with transparent pixels.
func maskFromRows(rows []string, scale int) *Mask {
	if scale < 1 {
		scale = 1
	}
	cols := 0
	for _, row := range rows {
		cols = Max(cols, len([]rune(row)))
	}

	m := newMask(cols*scale, len(rows)*scale)
	for ry, row := range rows {
		for rx, r := range []rune(row) {
			if r == ' ' || r == '.' {
				continue
			}
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					m.set(rx*scale+px, ry*scale+py)
				}
			}
		}
	}
	return m
}

func TestMaskFromTextArtPadsShortRows(t *testing.T) {
	m := maskFromRows([]string{"###", "#"}, 1)
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", m.Width(), m.Height())
	}
	if m.At(1, 1) || m.At(2, 1) {
		t.Error("padding should be transparent")
	}
}

func TestMaskWideRows(t *testing.T) {
	// Wider than one 64-bit word
	m := FullMask(130, 2)
	if m.Count() != 260 {
		t.Errorf("Count() = %d, expected 260", m.Count())
	}
	if !m.At(129, 1) || !m.At(64, 0) {
		t.Error("pixels past the first word should be opaque")
	}
}

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	img.Set(10, 10, color.NRGBA{R: 255, A: 255})
	img.Set(13, 11, color.NRGBA{G: 255, A: 200})
	img.Set(11, 10, color.NRGBA{B: 255, A: 60}) // below threshold

	m := MaskFromImage(img, 127)
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", m.Width(), m.Height())
	}
	if !m.At(0, 0) || !m.At(3, 1) {
		t.Error("opaque pixels should be set relative to the image origin")
	}
	if m.At(1, 0) {
		t.Error("translucent pixel below threshold should be transparent")
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", m.Count())
	}
}

func TestMaskOverlap(t *testing.T) {
	square := FullMask(10, 10)
	// Opaque only on the main diagonal
	diag := maskFromRows([]string{
		"#.",
		".#",
	}, 5)

	tests := []struct {
		name     string
		a, b     *Mask
		dx, dy   int
		expected bool
	}{
		{"identical at zero offset", square, square, 0, 0, true},
		{"partial overlap", square, square, 5, 5, true},
		{"single pixel overlap", square, square, 9, 9, true},
		{"adjacent right", square, square, 10, 0, false},
		{"adjacent below", square, square, 0, 10, false},
		{"far away", square, square, 100, -100, false},
		{"negative offset", square, square, -9, -9, true},
		// diag's opaque blocks sit at (0..4,0..4) and (5..9,5..9);
		// shifted by (5,-5) its lower block lands on diag's transparent top-right block
		{"transparent corners touch", diag, diag, 5, -5, false},
		{"opaque blocks meet", diag, diag, 5, 5, true},
		{"transparent region of first", diag, FullMask(5, 5), 5, 0, false},
		{"opaque region of first", diag, FullMask(5, 5), 6, 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlap(tc.b, tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Overlap(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
			// Overlap is symmetric under the negated offset
			if got := tc.b.Overlap(tc.a, -tc.dx, -tc.dy); got != tc.expected {
				t.Errorf("reverse Overlap(%d, %d) = %v, expected %v", -tc.dx, -tc.dy, got, tc.expected)
			}
		})
	}
}

func TestMaskOverlapNil(t *testing.T) {
	var m *Mask
	if m.Overlap(FullMask(1, 1), 0, 0) {
		t.Error("nil mask should never overlap")
	}
	if FullMask(1, 1).Overlap(nil, 0, 0) {
		t.Error("overlap with nil mask should be false")
	}
}

func TestCollideUsesAnchorOffset(t *testing.T) {
	m := FullMask(10, 10)
	a := body{x: 100, y: 100, mask: m}

	if !Collide(a, body{x: 105, y: 95, mask: m}) {
		t.Error("overlapping bodies should collide")
	}
	if Collide(a, body{x: 110, y: 100, mask: m}) {
		t.Error("touching bodies should not collide")
	}
	if !Collide(a, a) {
		t.Error("a body should collide with itself")
	}
}
