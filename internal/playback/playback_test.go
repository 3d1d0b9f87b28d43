package playback

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/scene"
)

func TestInteractivePacing(t *testing.T) {
	tests := []struct {
		name     string
		pacing   Pacing
		n        int
		expected int
	}{
		{"explicit rate", Pacing{EdgesPerFrame: 7, Duration: 5}, 1000, 7},
		{"duration", Pacing{Duration: 5, FPS: 60}, 1000, 3},
		{"duration floor at one", Pacing{Duration: 10, FPS: 60}, 100, 1},
		{"nothing set draws all", Pacing{}, 1000, 1000},
		{"default fps", Pacing{Duration: 1}, 600, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pacing.Interactive(tt.n); got != tt.expected {
				t.Errorf("Interactive(%d) = %d, expected %d", tt.n, got, tt.expected)
			}
		})
	}
}

func TestExportPacing(t *testing.T) {
	tests := []struct {
		name     string
		pacing   Pacing
		n        int
		expected int
	}{
		{"explicit rate", Pacing{EdgesPerFrame: 500}, 16384, 500},
		{"duration", Pacing{Duration: 5, FPS: 60}, 1000, 3},
		{"two second default", Pacing{FPS: 60}, 1200, 10},
		{"default on small input", Pacing{FPS: 60}, 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pacing.Export(tt.n); got != tt.expected {
				t.Errorf("Export(%d) = %d, expected %d", tt.n, got, tt.expected)
			}
		})
	}
}

func TestFrameCounts(t *testing.T) {
	epf := EdgesForDuration(1000, 5, 60)
	if epf != 3 {
		t.Fatalf("EdgesForDuration = %d, expected 3", epf)
	}
	if got := RevealFrames(1000, epf); got != 334 {
		t.Errorf("RevealFrames = %d, expected 334", got)
	}
	if got := HoldFrames(60); got != 120 {
		t.Errorf("HoldFrames = %d, expected 120", got)
	}
	if got := RevealFrames(0, 3); got != 0 {
		t.Errorf("RevealFrames(0) = %d, expected 0", got)
	}
}

func TestZoomKeepsCursorFixed(t *testing.T) {
	v := View{Zoom: 1.5, PanX: 20, PanY: -10}
	cursor := core.Point{X: 130, Y: 70}
	before := v.ToSurface(cursor)

	z := v.ZoomedAt(2, cursor.X, cursor.Y, 0.1, 50)
	if z.Zoom != 3 {
		t.Errorf("Zoom = %v, expected 3", z.Zoom)
	}
	after := z.ToScreen(before)
	if math.Abs(after.X-cursor.X) > 1e-9 || math.Abs(after.Y-cursor.Y) > 1e-9 {
		t.Errorf("surface point under cursor moved to %+v", after)
	}
}

func TestZoomClamps(t *testing.T) {
	v := Identity()
	for range 100 {
		v = v.ZoomedAt(2, 0, 0, 0.1, 50)
	}
	if v.Zoom != 50 {
		t.Errorf("Zoom = %v, expected clamp at 50", v.Zoom)
	}
	for range 100 {
		v = v.ZoomedAt(0.5, 0, 0, 0.1, 50)
	}
	if v.Zoom != 0.1 {
		t.Errorf("Zoom = %v, expected clamp at 0.1", v.Zoom)
	}
}

func TestMatrix(t *testing.T) {
	v := View{Zoom: 3, PanX: 5, PanY: 7}
	m := v.Matrix(2)
	if m[0] != 1.5 || m[4] != 1.5 || m[2] != 5 || m[5] != 7 || m[1] != 0 || m[3] != 0 {
		t.Errorf("Matrix = %v", m)
	}
}

func squareScene() *scene.Scene {
	red := color.RGBA{255, 0, 0, 255}
	return &scene.Scene{
		CurveID: "square",
		Title:   "Square",
		World:   []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
		Colors:  []color.RGBA{red, red, red, red},
	}
}

func newTestController(epf int) *Controller {
	return New(squareScene(), Options{
		Width:         60,
		Height:        60,
		Padding:       10,
		LineWidth:     2,
		Background:    color.RGBA{0, 0, 0, 255},
		EdgesPerFrame: epf,
	})
}

func TestControllerLifecycle(t *testing.T) {
	c := newTestController(3)

	if c.Phase() != PhaseAnimating {
		t.Fatalf("initial phase = %v, expected animating", c.Phase())
	}
	if !c.Tick() || c.Drawn() != 3 || c.Phase() != PhaseAnimating {
		t.Fatalf("after first tick: drawn=%d phase=%v", c.Drawn(), c.Phase())
	}
	c.Tick()
	if c.Drawn() != 4 || c.Phase() != PhaseCaching {
		t.Fatalf("after second tick: drawn=%d phase=%v", c.Drawn(), c.Phase())
	}
	if c.CacheValid() {
		t.Error("cache built before the caching tick")
	}
	c.Tick()
	if c.Phase() != PhaseIdle || !c.CacheValid() {
		t.Fatalf("after caching tick: phase=%v cache=%v", c.Phase(), c.CacheValid())
	}
	if b := c.Cache().Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Errorf("cache bounds = %v, expected 120x120", b)
	}
	if c.Tick() {
		t.Error("idle tick reported a change")
	}
}

func TestCompleteNow(t *testing.T) {
	c := newTestController(1)
	c.Tick()
	c.CompleteNow()
	c.Tick()
	if c.Drawn() != c.Total() || c.Phase() != PhaseCaching {
		t.Errorf("drawn=%d phase=%v after CompleteNow", c.Drawn(), c.Phase())
	}
}

func TestViewIgnoredUntilIdle(t *testing.T) {
	c := newTestController(1)
	if c.Pan(5, 5) || c.ZoomAt(2, 0, 0) || c.ResetView() {
		t.Error("view changed while animating")
	}
	if c.View() != Identity() {
		t.Errorf("View() = %+v, expected identity", c.View())
	}
}

func TestResetKeepsCache(t *testing.T) {
	c := newTestController(0)
	c.Tick()
	c.Tick()
	cache := c.Cache()

	var in core.InputFrame
	in.Set(core.ActionZoomIn)
	in.Set(core.ActionPanLeft)
	if !c.Apply(in) {
		t.Fatal("Apply() reported no change in idle")
	}
	if c.View() == Identity() {
		t.Fatal("view unchanged after zoom and pan")
	}
	if !c.ResetView() {
		t.Fatal("ResetView() failed in idle")
	}
	if c.View() != Identity() {
		t.Errorf("View() = %+v after reset", c.View())
	}
	if c.Cache() != cache {
		t.Error("reset replaced the cache")
	}
}

func TestComposeIdleMatchesSurface(t *testing.T) {
	c := newTestController(0)
	c.Tick()
	c.Tick()

	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	c.Compose(dst)

	// The path corner sits on the padded box; it must be lit in both the
	// reveal surface and the composed cache.
	if got := c.Surface().RGBAAt(10, 50); got.R < 100 {
		t.Errorf("surface corner = %v, expected red", got)
	}
	if got := dst.RGBAAt(30, 50); got.R < 100 {
		t.Errorf("composed bottom edge = %v, expected red", got)
	}
	if got := dst.RGBAAt(30, 30); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("composed center = %v, expected background", got)
	}
}
