package playback

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/raster"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/viewport"
)

// Phase is the controller state.
type Phase int

const (
	PhaseAnimating Phase = iota // revealing a batch of edges per tick
	PhaseCaching                // next tick renders the high-resolution cache
	PhaseIdle                   // fully drawn; only the view changes
)

// String returns a short label for status lines.
func (p Phase) String() string {
	switch p {
	case PhaseAnimating:
		return "animating"
	case PhaseCaching:
		return "caching"
	case PhaseIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
	Background    color.RGBA
	EdgesPerFrame int     // resolved batch size; <= 0 draws everything at once
	CacheScale    float64 // cache resolution multiplier (default 2)
	MinZoom       float64 // default 0.1
	MaxZoom       float64 // default 50
	ZoomStep      float64 // factor per wheel notch or key press (default 1.1)
	PanStep       float64 // screen pixels per arrow key press (default 40)
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.CacheScale <= 0 {
		o.CacheScale = 2
	}
	if o.MinZoom <= 0 {
		o.MinZoom = 0.1
	}
	if o.MaxZoom <= 0 {
		o.MaxZoom = 50
	}
	if o.MaxZoom < o.MinZoom {
		o.MaxZoom = o.MinZoom
	}
	if o.ZoomStep <= 1 {
		o.ZoomStep = 1.1
	}
	if o.PanStep <= 0 {
		o.PanStep = 40
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	return o
}

// Controller reveals a scene progressively, then caches it at high
// resolution and serves pan/zoom over the cache.
type Controller struct {
	scene *scene.Scene
	opts  Options
	fit   viewport.Transform

	points  []core.Point // device vertices on the visible surface
	surface *raster.Canvas
	cache   *raster.Canvas

	drawn    int
	perFrame int
	phase    Phase
	view     View
}

// New fits sc to the surface and prepares the reveal.
func New(sc *scene.Scene, opts Options) *Controller {
	opts = opts.withDefaults()
	fit := sc.Fit(opts.Width, opts.Height, opts.Padding)

	surface := raster.NewCanvas(opts.Width, opts.Height, opts.Background)
	surface.SetLineWidth(opts.LineWidth)

	perFrame := opts.EdgesPerFrame
	if perFrame <= 0 {
		perFrame = sc.N()
	}

	c := &Controller{
		scene:    sc,
		opts:     opts,
		fit:      fit,
		points:   fit.ApplyAll(sc.World),
		surface:  surface,
		perFrame: perFrame,
		phase:    PhaseAnimating,
		view:     Identity(),
	}
	if sc.N() == 0 {
		c.phase = PhaseCaching
	}
	return c
}

// Tick advances the state machine by one frame. It reports whether the
// visible image changed.
func (c *Controller) Tick() bool {
	switch c.phase {
	case PhaseAnimating:
		n := c.scene.N()
		end := min(c.drawn+max(c.perFrame, 1), n)
		c.surface.StrokeRange(c.points, c.scene.Colors, c.drawn, end)
		c.drawn = end
		if c.drawn == n {
			c.phase = PhaseCaching
		}
		return true
	case PhaseCaching:
		c.buildCache()
		c.phase = PhaseIdle
		return true
	default:
		return false
	}
}

// buildCache renders the entire path once at CacheScale resolution.
func (c *Controller) buildCache() {
	k := c.opts.CacheScale
	w := int(float64(c.opts.Width) * k)
	h := int(float64(c.opts.Height) * k)

	c.cache = raster.NewCanvas(w, h, c.opts.Background)
	c.cache.SetLineWidth(c.opts.LineWidth * k)
	c.cache.StrokePath(c.fit.Scaled(k).ApplyAll(c.scene.World), c.scene.Colors)
}

// CompleteNow makes the next tick draw all remaining edges.
func (c *Controller) CompleteNow() {
	if c.phase != PhaseAnimating {
		return
	}
	c.perFrame = max(c.scene.N()-c.drawn, 1)
}

// Pan shifts the view by (dx, dy) screen pixels. Ignored until idle.
func (c *Controller) Pan(dx, dy float64) bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.view = c.view.Panned(dx, dy)
	return true
}

// ZoomAt scales the view by factor around the screen point (x, y).
// Ignored until idle.
func (c *Controller) ZoomAt(factor, x, y float64) bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.view = c.view.ZoomedAt(factor, x, y, c.opts.MinZoom, c.opts.MaxZoom)
	return true
}

// ZoomIn zooms one step at the surface center.
func (c *Controller) ZoomIn() bool {
	return c.ZoomAt(c.opts.ZoomStep, float64(c.opts.Width)/2, float64(c.opts.Height)/2)
}

// ZoomOut zooms out one step at the surface center.
func (c *Controller) ZoomOut() bool {
	return c.ZoomAt(1/c.opts.ZoomStep, float64(c.opts.Width)/2, float64(c.opts.Height)/2)
}

// ZoomStep returns the per-notch zoom factor.
func (c *Controller) ZoomStep() float64 {
	return c.opts.ZoomStep
}

// ResetView restores zoom 1 and no pan. The cache is kept.
func (c *Controller) ResetView() bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.view = Identity()
	return true
}

// Apply handles the keyboard actions of one tick. It reports whether the
// view changed; quit and level navigation are left to the caller.
func (c *Controller) Apply(in core.InputFrame) bool {
	changed := false
	if in.Has(core.ActionComplete) {
		c.CompleteNow()
	}
	if in.Has(core.ActionResetView) {
		changed = c.ResetView() || changed
	}
	if in.Has(core.ActionZoomIn) {
		changed = c.ZoomIn() || changed
	}
	if in.Has(core.ActionZoomOut) {
		changed = c.ZoomOut() || changed
	}
	step := c.opts.PanStep
	if in.Has(core.ActionPanLeft) {
		changed = c.Pan(step, 0) || changed
	}
	if in.Has(core.ActionPanRight) {
		changed = c.Pan(-step, 0) || changed
	}
	if in.Has(core.ActionPanUp) {
		changed = c.Pan(0, step) || changed
	}
	if in.Has(core.ActionPanDown) {
		changed = c.Pan(0, -step) || changed
	}
	return changed
}

// Compose draws what the viewer should show into dst, which must match the
// surface size. While revealing this is the surface; once idle it is the
// cache under the current view.
func (c *Controller) Compose(dst *image.RGBA) {
	if c.phase != PhaseIdle || c.cache == nil {
		copy(dst.Pix, c.surface.Image().Pix)
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
	src := c.cache.Image()
	xdraw.ApproxBiLinear.Transform(dst, c.BlitMatrix(), src, src.Bounds(), xdraw.Src, nil)
}

// BlitMatrix maps cache pixels to screen pixels under the current view.
func (c *Controller) BlitMatrix() f64.Aff3 {
	return c.view.Matrix(c.opts.CacheScale)
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Drawn returns how many edges are on the surface.
func (c *Controller) Drawn() int { return c.drawn }

// Total returns the edge count of the scene.
func (c *Controller) Total() int { return c.scene.N() }

// EdgesPerFrame returns the current batch size.
func (c *Controller) EdgesPerFrame() int { return c.perFrame }

// View returns the current pan/zoom.
func (c *Controller) View() View { return c.view }

// Fit returns the transform from world space to the surface.
func (c *Controller) Fit() viewport.Transform { return c.fit }

// Scene returns the scene being shown.
func (c *Controller) Scene() *scene.Scene { return c.scene }

// Surface returns the visible reveal surface.
func (c *Controller) Surface() *image.RGBA { return c.surface.Image() }

// Cache returns the high-resolution cache, or nil before caching.
func (c *Controller) Cache() *image.RGBA {
	if c.cache == nil {
		return nil
	}
	return c.cache.Image()
}

// CacheValid reports whether the cache has been rendered.
func (c *Controller) CacheValid() bool { return c.cache != nil }

// CacheScale returns the cache resolution multiplier.
func (c *Controller) CacheScale() float64 { return c.opts.CacheScale }

// Size returns the surface size.
func (c *Controller) Size() (int, int) { return c.opts.Width, c.opts.Height }

// Background returns the surface background color.
func (c *Controller) Background() color.RGBA { return c.opts.Background }
