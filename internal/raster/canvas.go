// Package raster draws fitted curve paths into RGBA images. Runs of
// same-colored segments are stroked as anti-aliased polylines with square
// caps by rasterx.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/fractals/internal/core"
)

const (
	// maxRunSegments bounds how many same-colored segments share one
	// stroker pass.
	maxRunSegments = 256

	// maxRunWaste bounds how much larger a run's bounding box may grow than
	// the area actually covered by its strokes.
	maxRunWaste = 16

	// miterLimit is the join miter limit as a multiple of the line width.
	miterLimit = 4
)

// Canvas is an RGBA surface with a background color and a line width.
type Canvas struct {
	img       *image.RGBA
	bg        color.RGBA
	lineWidth float64
}

// NewCanvas creates a w x h canvas filled with bg and a 1px line width.
func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, w, h)),
		bg:        bg,
		lineWidth: 1,
	}
	c.Clear()
	return c
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Background returns the fill color used by Clear.
func (c *Canvas) Background() color.RGBA {
	return c.bg
}

// LineWidth returns the stroke width in pixels.
func (c *Canvas) LineWidth() float64 {
	return c.lineWidth
}

// SetLineWidth sets the stroke width in pixels. Non-positive widths are
// raised to one pixel.
func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	c.lineWidth = w
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
}

// Snapshot returns an independent copy of the current pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// StrokePath strokes every segment of pts.
func (c *Canvas) StrokePath(pts []core.Point, colors []color.RGBA) {
	c.StrokeRange(pts, colors, 0, len(pts)-1)
}

// StrokeRange strokes segments [from, to) in index order. Segment i runs from
// pts[i] to pts[i+1] and uses colors[i]. Consecutive segments of the same
// color are stroked as one polyline.
func (c *Canvas) StrokeRange(pts []core.Point, colors []color.RGBA, from, to int) {
	if to > len(pts)-1 {
		to = len(pts) - 1
	}
	if from < 0 {
		from = 0
	}

	var run strokeRun
	for i := from; i < to; i++ {
		b := segmentBounds(pts[i], pts[i+1])
		if run.n > 0 && !run.accepts(colors[i], b, c.lineWidth) {
			c.fill(pts, &run)
			run = strokeRun{}
		}
		run.add(i, colors[i], b, c.lineWidth)
	}
	if run.n > 0 {
		c.fill(pts, &run)
	}
}

// fill strokes a run into the part of the canvas its bounding box covers.
func (c *Canvas) fill(pts []core.Point, run *strokeRun) {
	pad := c.lineWidth*miterLimit + 2
	r := image.Rect(
		int(math.Floor(run.box.MinX-pad)), int(math.Floor(run.box.MinY-pad)),
		int(math.Ceil(run.box.MaxX+pad)), int(math.Ceil(run.box.MaxY+pad)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}

	dst := c.img.SubImage(r).(*image.RGBA)
	w, h := r.Dx(), r.Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.Int26_6(c.lineWidth*64), fixed.I(miterLimit),
		rasterx.SquareCap, rasterx.SquareCap, rasterx.FlatGap, rasterx.MiterClip)
	stroker.SetColor(run.color)

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	stroker.Start(rasterx.ToFixedP(pts[run.from].X-ox, pts[run.from].Y-oy))
	for i := run.from + 1; i <= run.from+run.n; i++ {
		stroker.Line(rasterx.ToFixedP(pts[i].X-ox, pts[i].Y-oy))
	}
	stroker.Stop(false)
	stroker.Draw()
}

// strokeRun is a stretch of consecutive segments that share a color.
type strokeRun struct {
	color   color.RGBA
	from    int
	n       int
	box     core.Bounds
	covered float64
}

func (r *strokeRun) add(i int, col color.RGBA, b core.Bounds, width float64) {
	if r.n == 0 {
		r.color = col
		r.from = i
		r.box = b
	} else {
		r.box = union(r.box, b)
	}
	r.covered += strokeArea(b, width)
	r.n++
}

// accepts reports whether a segment with bounds b can join the run without
// changing color, exceeding the batch size or inflating the bounding box too
// much.
func (r *strokeRun) accepts(col color.RGBA, b core.Bounds, width float64) bool {
	if col != r.color || r.n >= maxRunSegments {
		return false
	}
	u := union(r.box, b)
	area := (u.Width() + 2*width) * (u.Height() + 2*width)
	return area <= maxRunWaste*(r.covered+strokeArea(b, width))+1024
}

func segmentBounds(a, b core.Point) core.Bounds {
	return core.BoundsOf([]core.Point{a, b})
}

// strokeArea approximates the area a segment with bounds b covers.
func strokeArea(b core.Bounds, width float64) float64 {
	return (math.Hypot(b.Width(), b.Height()) + width) * width
}

func union(a, b core.Bounds) core.Bounds {
	return core.Bounds{
		MinX: math.Min(a.MinX, b.MinX), MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX), MaxY: math.Max(a.MaxY, b.MaxY),
	}
}
