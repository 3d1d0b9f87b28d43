// Package window shows fractal playback in a desktop window using Ebiten.
// All requested levels share one window; closing a level opens the next.
package window

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/raster"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/storage"
)

// Options describes what the window shows.
type Options struct {
	CurveID   string
	Levels    []int
	Build     scene.Builder
	Pacing    playback.Pacing
	Playback  playback.Options
	ColorName string
	Store     *storage.Store
	Logger    *log.Logger
}

// levels walks the requested levels, owning the controller of the current
// one. It holds no Ebiten state.
type levels struct {
	opts    Options
	idx     int
	scene   *scene.Scene
	ctrl    *playback.Controller
	started time.Time
	saved   bool
	failed  []error
}

func newLevels(opts Options) *levels {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &levels{opts: opts, idx: -1}
}

// next advances to the following level that builds. A level that fails to
// build is logged and skipped. It reports false when no level is left.
func (l *levels) next() bool {
	l.record()
	for l.idx+1 < len(l.opts.Levels) {
		l.idx++
		level := l.opts.Levels[l.idx]
		sc, err := l.opts.Build(level)
		if err != nil {
			l.opts.Logger.Error("skipping level", "curve", l.opts.CurveID, "level", level, "err", err)
			l.failed = append(l.failed, fmt.Errorf("level %d: %w", level, err))
			continue
		}

		po := l.opts.Playback
		po.EdgesPerFrame = l.opts.Pacing.Interactive(sc.N())
		l.scene = sc
		l.ctrl = playback.New(sc, po)
		l.started = time.Now()
		l.saved = false
		l.opts.Logger.Info("showing", "scene", sc.Label(), "edges", sc.N(), "edges_per_frame", po.EdgesPerFrame)
		return true
	}
	l.scene, l.ctrl = nil, nil
	return false
}

// record saves the finished level to the history once.
func (l *levels) record() {
	if l.saved || l.ctrl == nil || l.ctrl.Phase() != playback.PhaseIdle {
		return
	}
	l.saved = true
	if l.opts.Store == nil {
		return
	}
	w, h := l.ctrl.Size()
	_, err := l.opts.Store.SaveRender(storage.RenderRecord{
		CurveID: l.opts.CurveID,
		Level:   l.scene.Level,
		Mode:    storage.ModeWindow,
		Edges:   l.scene.N(),
		Width:   w,
		Height:  h,
		Colors:  l.opts.ColorName,
		Elapsed: time.Since(l.started),
	})
	if err != nil {
		l.opts.Logger.Warn("could not save render", "err", err)
	}
}

// snapshot writes the composed frame under dir and returns its path.
func (l *levels) snapshot(dir string) (string, error) {
	w, h := l.ctrl.Size()
	frame := raster.NewCanvas(w, h, l.ctrl.Background()).Image()
	l.ctrl.Compose(frame)

	name := fmt.Sprintf("%s_level%d_%s.png", l.opts.CurveID, l.scene.Level, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, raster.WritePNG(path, frame)
}

// snapshotDir is ~/.fractals/snapshots, or the working directory when home
// is unavailable.
func snapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".fractals", "snapshots")
}
