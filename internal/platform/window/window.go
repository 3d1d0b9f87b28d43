//go:build cgo

package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/playback"
)

// Run opens the window and blocks until every level was closed or the user
// quit. Levels that failed to build are reported after the window closes.
func Run(opts Options) error {
	l := newLevels(opts)
	if !l.next() {
		return errors.Join(l.failed...)
	}

	w, h := l.ctrl.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(l.scene.Label())
	ebiten.SetTPS(max(opts.Pacing.FPS, 1))
	ebiten.SetWindowClosingHandled(true)

	g := &game{levels: l, input: core.NewInputFrame(), width: w, height: h, dirty: true}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w: %w", core.ErrResource, err)
	}
	l.record()
	return errors.Join(l.failed...)
}

type game struct {
	levels *levels
	input  core.InputFrame
	width  int
	height int

	surface *ebiten.Image
	cache   *ebiten.Image
	dirty   bool

	dragging bool
	lastX    int
	lastY    int
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if anyJustPressed(ebiten.KeyEscape, ebiten.KeyN, ebiten.KeyEnter) {
		if !g.levels.next() {
			return ebiten.Termination
		}
		g.resetImages()
		ebiten.SetWindowTitle(g.levels.scene.Label())
		return nil
	}

	ctrl := g.levels.ctrl
	g.pollKeys()
	g.pollMouse(ctrl)

	if g.input.Has(core.ActionSnapshot) {
		if path, err := g.levels.snapshot(snapshotDir()); err != nil {
			g.levels.opts.Logger.Warn("snapshot failed", "err", err)
		} else {
			g.levels.opts.Logger.Info("saved snapshot", "path", path)
		}
	}
	if ctrl.Apply(g.input) {
		g.dirty = true
	}
	if ctrl.Tick() {
		g.dirty = true
	}
	g.input.Clear()

	if ctrl.Phase() == playback.PhaseIdle {
		g.levels.record()
	}
	return nil
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollKeys maps this tick's key presses to viewer actions.
func (g *game) pollKeys() {
	bindings := []struct {
		keys   []ebiten.Key
		action core.Action
	}{
		{[]ebiten.Key{ebiten.KeySpace}, core.ActionComplete},
		{[]ebiten.Key{ebiten.KeyR}, core.ActionResetView},
		{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, core.ActionZoomIn},
		{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, core.ActionZoomOut},
		{[]ebiten.Key{ebiten.KeyArrowLeft}, core.ActionPanLeft},
		{[]ebiten.Key{ebiten.KeyArrowRight}, core.ActionPanRight},
		{[]ebiten.Key{ebiten.KeyArrowUp}, core.ActionPanUp},
		{[]ebiten.Key{ebiten.KeyArrowDown}, core.ActionPanDown},
		{[]ebiten.Key{ebiten.KeyS}, core.ActionSnapshot},
	}
	for _, b := range bindings {
		if anyJustPressed(b.keys...) {
			g.input.Set(b.action)
		}
	}
}

// pollMouse implements drag to pan and wheel to zoom at the cursor.
func (g *game) pollMouse(ctrl *playback.Controller) {
	x, y := ebiten.CursorPosition()

	if _, dy := ebiten.Wheel(); dy != 0 {
		if ctrl.ZoomAt(math.Pow(ctrl.ZoomStep(), dy), float64(x), float64(y)) {
			g.dirty = true
		}
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging, g.lastX, g.lastY = true, x, y
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if x != g.lastX || y != g.lastY {
			if ctrl.Pan(float64(x-g.lastX), float64(y-g.lastY)) {
				g.dirty = true
			}
			g.lastX, g.lastY = x, y
		}
	default:
		g.dragging = false
	}
}

// resetImages drops the GPU images of the previous level.
func (g *game) resetImages() {
	if g.cache != nil {
		g.cache.Deallocate()
		g.cache = nil
	}
	g.dirty = true
}

func (g *game) Draw(screen *ebiten.Image) {
	ctrl := g.levels.ctrl
	if ctrl == nil {
		return
	}

	if ctrl.Phase() != playback.PhaseIdle {
		if g.surface == nil {
			g.surface = ebiten.NewImage(g.width, g.height)
		}
		if g.dirty {
			g.surface.WritePixels(ctrl.Surface().Pix)
			g.dirty = false
		}
		screen.DrawImage(g.surface, nil)
		return
	}

	// Idle: blit the high-resolution cache under the current view.
	if g.cache == nil {
		g.cache = ebiten.NewImageFromImage(ctrl.Cache())
	}
	screen.Fill(ctrl.Background())
	m := ctrl.BlitMatrix()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(m[0], m[4])
	op.GeoM.Translate(m[2], m[5])
	screen.DrawImage(g.cache, op)
	g.dirty = false
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
