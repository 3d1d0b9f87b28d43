package window

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/palette"
	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/storage"

	_ "github.com/vovakirdan/fractals/internal/curves"
)

func testOptions(t *testing.T, levels []int) Options {
	t.Helper()
	build, err := scene.NewBuilder("dragon", 0, palette.Solid{C: core.White}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return Options{
		CurveID:   "dragon",
		Levels:    levels,
		Build:     build,
		Pacing:    playback.Pacing{EdgesPerFrame: 3, FPS: 60},
		Playback:  playback.Options{Width: 64, Height: 48, Background: core.Black},
		ColorName: "white",
		Logger:    log.New(io.Discard),
	}
}

func TestLevelsSkipFailuresAndRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	opts := testOptions(t, []int{-1, 3, 4})
	opts.Store = store
	l := newLevels(opts)

	if !l.next() {
		t.Fatal("expected a level to show")
	}
	if l.scene.Level != 3 {
		t.Fatalf("level = %d, expected 3 after skipping -1", l.scene.Level)
	}
	if len(l.failed) != 1 || !errors.Is(l.failed[0], core.ErrInvalidLevel) {
		t.Fatalf("failed = %v", l.failed)
	}
	if got := l.ctrl.EdgesPerFrame(); got != 3 {
		t.Errorf("EdgesPerFrame() = %d, expected 3", got)
	}

	// Not finished yet: nothing recorded
	l.record()
	for l.ctrl.Tick() {
	}
	if l.ctrl.Phase() != playback.PhaseIdle {
		t.Fatalf("phase = %v, expected idle", l.ctrl.Phase())
	}
	l.record()
	l.record()

	if !l.next() || l.scene.Level != 4 {
		t.Fatal("expected level 4")
	}
	if l.next() {
		t.Error("no level should be left")
	}
	if l.ctrl != nil {
		t.Error("controller should be released after the last level")
	}

	recs, err := store.RecentRenders(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Level != 3 || recs[0].Mode != storage.ModeWindow || recs[0].Width != 64 {
		t.Errorf("history = %+v", recs)
	}
}

func TestLevelsSnapshot(t *testing.T) {
	l := newLevels(testOptions(t, []int{2}))
	if !l.next() {
		t.Fatal("expected a level to show")
	}
	l.ctrl.CompleteNow()
	l.ctrl.Tick()

	path, err := l.snapshot(t.TempDir())
	if err != nil {
		t.Fatalf("snapshot() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("snapshot is empty")
	}
}
