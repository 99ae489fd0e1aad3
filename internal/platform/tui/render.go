package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyphs used for the parts of a frame that have no sprite.
const (
	barGlyph = '▀'
	hudRows  = 1
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps the logical play area onto a block of cells.
type viewport struct {
	x, y         int // Top-left cell of the field
	w, h         int // Field size in cells
	areaW, areaH int // Play area in pixels
}

// centre returns the play-area pixel under the centre of field cell (cx, cy).
func (v viewport) centre(cx, cy int) (px, py int) {
	px = (2*cx + 1) * v.areaW / (2 * v.w)
	py = (2*cy + 1) * v.areaH / (2 * v.h)
	return px, py
}

func (v viewport) column(px int) int {
	return floorDiv(px*v.w, v.areaW)
}

func (v viewport) row(py int) int {
	return floorDiv(py*v.h, v.areaH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DrawFrame renders a frame onto the screen: the HUD on the top row and
// the play area scaled to the remaining rows. Sprites are drawn wherever
// their mask is opaque under a cell centre.
func DrawFrame(s *core.Screen, f invaders.Frame, areaW, areaH int) {
	s.Clear()
	drawHUD(s, f.Status)

	v := viewport{
		x:     0,
		y:     hudRows,
		w:     s.Width(),
		h:     s.Height() - hudRows,
		areaW: areaW,
		areaH: areaH,
	}
	if v.w <= 0 || v.h <= 0 || areaW <= 0 || areaH <= 0 {
		return
	}

	for _, d := range f.Draws {
		switch d.Kind {
		case invaders.DrawSprite:
			drawSprite(s, v, d)
		case invaders.DrawBar:
			drawBar(s, v, d)
		case invaders.DrawBanner:
			drawBanner(s, v, d)
		}
	}
}

func drawHUD(s *core.Screen, st invaders.Status) {
	lives := fmt.Sprintf("Lives: %d", st.Lives)
	level := fmt.Sprintf("Level: %d", st.Level)
	s.DrawText(1, 0, lives)
	s.DrawText(s.Width()-len(level)-1, 0, level)
}

func drawSprite(s *core.Screen, v viewport, d invaders.DrawRequest) {
	if d.Sprite == nil {
		return
	}
	mask := d.Sprite.Mask()

	cx0 := core.Max(0, v.column(d.X))
	cx1 := core.Min(v.w-1, v.column(d.X+mask.Width()))
	cy0 := core.Max(0, v.row(d.Y))
	cy1 := core.Min(v.h-1, v.row(d.Y+mask.Height()))

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			px, py := v.centre(cx, cy)
			if mask.At(px-d.X, py-d.Y) {
				s.SetColor(v.x+cx, v.y+cy, d.Sprite.Glyph, d.Color)
			}
		}
	}
}

// drawBar draws a bar on the row containing its vertical centre.
// Any bar with a positive width covers at least one cell.
func drawBar(s *core.Screen, v viewport, d invaders.DrawRequest) {
	if d.W <= 0 || d.H <= 0 {
		return
	}
	cy := v.row(d.Y + d.H/2)
	if cy < 0 || cy >= v.h {
		return
	}
	cx0 := v.column(d.X)
	cx1 := core.Max(cx0, v.column(d.X+d.W)-1)
	cx0 = core.Max(0, cx0)
	cx1 = core.Min(v.w-1, cx1)
	if cx1 < cx0 {
		return
	}
	s.DrawHLine(v.x+cx0, v.y+cy, cx1-cx0+1, barGlyph, d.Color)
}

func drawBanner(s *core.Screen, v viewport, d invaders.DrawRequest) {
	text := " " + d.Text + " "
	w := len([]rune(text)) + 2
	box := core.NewRect(v.x+(v.w-w)/2, v.y+v.h/2-1, w, 3)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextColor(box.X+1, box.Y+1, text, d.Color)
}
