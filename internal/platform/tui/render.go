package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fractals/internal/core"
)

// upperHalf paints the top pixel with the foreground and the bottom pixel
// with the background.
const upperHalf = '▀'

// Rasterize maps img onto s starting at cell row top. Every cell covers two
// vertically stacked pixels. Rows or columns outside either side are
// skipped.
func Rasterize(img *image.RGBA, s *core.Screen, top int) {
	b := img.Bounds()
	for cy := top; cy < s.Height(); cy++ {
		py := b.Min.Y + 2*(cy-top)
		if py >= b.Max.Y {
			return
		}
		for cx := 0; cx < s.Width() && b.Min.X+cx < b.Max.X; cx++ {
			px := b.Min.X + cx
			upper := img.RGBAAt(px, py)
			lower := upper
			if py+1 < b.Max.Y {
				lower = img.RGBAAt(px, py+1)
			}
			s.SetCell(cx, cy, core.Cell{Rune: upperHalf, FG: upper, BG: lower})
		}
	}
}

// styleCache avoids rebuilding lipgloss styles for repeated color pairs.
type styleCache struct {
	r      *lipgloss.Renderer
	styles map[[2]color.RGBA]lipgloss.Style
}

func (c styleCache) get(fg, bg color.RGBA) lipgloss.Style {
	k := [2]color.RGBA{fg, bg}
	if st, ok := c.styles[k]; ok {
		return st
	}
	st := c.r.NewStyle().
		Foreground(lipgloss.Color(core.HexString(fg))).
		Background(lipgloss.Color(core.HexString(bg)))
	c.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default; SSH sessions pass their own so
// the color profile matches the client terminal.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := styleCache{r: r, styles: map[[2]color.RGBA]lipgloss.Style{}}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			fg, bg := cell.FG, cell.BG

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != fg || cell.BG != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
