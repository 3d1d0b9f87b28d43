package playback

import (
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/fractals/internal/core"
)

// View is the pan/zoom applied when blitting the cache. A surface point s
// appears on screen at Pan + Zoom·s.
type View struct {
	Zoom float64
	PanX float64
	PanY float64
}

// Identity is the unzoomed, unpanned view.
func Identity() View {
	return View{Zoom: 1}
}

// Panned returns v shifted by (dx, dy) screen pixels.
func (v View) Panned(dx, dy float64) View {
	v.PanX += dx
	v.PanY += dy
	return v
}

// ZoomedAt multiplies the zoom by factor, clamped to [min, max], keeping the
// surface point under (cx, cy) fixed on screen.
func (v View) ZoomedAt(factor, cx, cy, min, max float64) View {
	next := core.ClampF(v.Zoom*factor, min, max)
	ratio := next / v.Zoom
	return View{
		Zoom: next,
		PanX: cx - (cx-v.PanX)*ratio,
		PanY: cy - (cy-v.PanY)*ratio,
	}
}

// ToScreen maps a surface point to the screen.
func (v View) ToScreen(p core.Point) core.Point {
	return core.Point{X: v.PanX + v.Zoom*p.X, Y: v.PanY + v.Zoom*p.Y}
}

// ToSurface maps a screen point back to the surface.
func (v View) ToSurface(p core.Point) core.Point {
	return core.Point{X: (p.X - v.PanX) / v.Zoom, Y: (p.Y - v.PanY) / v.Zoom}
}

// Matrix returns the source-to-screen affine for a cache rendered at
// cacheScale times the surface resolution.
func (v View) Matrix(cacheScale float64) f64.Aff3 {
	s := v.Zoom / cacheScale
	return f64.Aff3{
		s, 0, v.PanX,
		0, s, v.PanY,
	}
}
