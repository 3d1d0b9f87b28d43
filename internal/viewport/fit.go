// Package viewport maps world-space curve points onto a device rectangle.
// It is independent of any rendering backend.
package viewport

import (
	"math"

	"github.com/vovakirdan/fractals/internal/core"
)

// DefaultPadding is the margin, in device pixels, kept free around a curve.
const DefaultPadding = 50

// Transform is a uniform scale about a world center followed by a
// translation to the device center and a vertical flip.
//
//	x' = (x - cx)·scale + W/2
//	y' = H - ((y - cy)·scale + H/2)
type Transform struct {
	Scale  float64
	Center core.Point // world bbox center
	Width  float64    // device width
	Height float64    // device height
	FlipY  bool
}

// Fit derives the transform that centers the bounding box of pts on a
// width x height rectangle, leaving padding on every side. When the box has
// zero width or height the scale falls back to 1. Padding that would leave no
// room on an axis is ignored for that axis, so the scale stays positive.
func Fit(pts []core.Point, width, height int, padding float64) Transform {
	b := core.BoundsOf(pts)
	w, h := float64(width), float64(height)

	scale := 1.0
	if b.Width() > 0 && b.Height() > 0 {
		scale = math.Min(usable(w, padding)/b.Width(), usable(h, padding)/b.Height())
	}

	return Transform{
		Scale:  scale,
		Center: b.Center(),
		Width:  w,
		Height: h,
		FlipY:  true,
	}
}

func usable(extent, padding float64) float64 {
	if room := extent - 2*padding; room > 0 {
		return room
	}
	return extent
}

// FitPoints fits pts and returns the mapped copy.
func FitPoints(pts []core.Point, width, height int, padding float64) []core.Point {
	return Fit(pts, width, height, padding).ApplyAll(pts)
}

// Apply maps a world point to device space.
func (t Transform) Apply(p core.Point) core.Point {
	x := (p.X-t.Center.X)*t.Scale + t.Width/2
	y := (p.Y-t.Center.Y)*t.Scale + t.Height/2
	if t.FlipY {
		y = t.Height - y
	}
	return core.Point{X: x, Y: y}
}

// ApplyAll maps every point, returning a new slice.
func (t Transform) ApplyAll(pts []core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// Inverse maps a device point back to world space.
func (t Transform) Inverse(p core.Point) core.Point {
	y := p.Y
	if t.FlipY {
		y = t.Height - y
	}
	return core.Point{
		X: (p.X-t.Width/2)/t.Scale + t.Center.X,
		Y: (y-t.Height/2)/t.Scale + t.Center.Y,
	}
}

// Scaled returns the same fit for a surface k times larger in each
// dimension. Playback caches use it to render at higher resolution.
func (t Transform) Scaled(k float64) Transform {
	t.Scale *= k
	t.Width *= k
	t.Height *= k
	return t
}
