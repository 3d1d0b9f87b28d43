package export

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/scene"
)

// Video writes the progressive reveal of sc to sink: one frame per batch of
// edges, then the finished frame held for playback.HoldFrames(fps) frames.
// The sink is not closed.
func Video(sink FrameSink, sc *scene.Scene, opts Options) (Stats, error) {
	n := sc.N()
	fps := opts.fps()
	epf := opts.Pacing.Export(n)
	c, pts := newCanvas(sc, opts)
	fr := newFramer(sc, opts)

	st := Stats{Levels: 1, Edges: n}
	for drawn := 0; drawn < n; drawn += epf {
		c.StrokeRange(pts, sc.Colors, drawn, min(drawn+epf, n))
		img, err := fr.frame(c)
		if err != nil {
			return st, err
		}
		if err := sink.WriteFrame(img); err != nil {
			return st, fmt.Errorf("export: reveal frame %d: %w", st.RevealFrames+1, err)
		}
		st.RevealFrames++
	}

	last, err := fr.frame(c)
	if err != nil {
		return st, err
	}
	hold := playback.HoldFrames(fps)
	for range hold {
		if err := sink.WriteFrame(last); err != nil {
			return st, fmt.Errorf("export: hold frame %d: %w", st.HoldFrames+1, err)
		}
		st.HoldFrames++
	}

	opts.logger().Debug("video segment", "scene", sc.Label(), "epf", epf,
		"reveal", st.RevealFrames, "hold", st.HoldFrames)
	return st, nil
}

// LevelError lists the levels MultiLevel skipped because they failed to
// build. The levels that did build are in the stream.
type LevelError struct {
	Errs []error
}

func (e *LevelError) Error() string {
	return errors.Join(e.Errs...).Error()
}

func (e *LevelError) Unwrap() []error {
	return e.Errs
}

// MultiLevel appends one Video segment per level, in the given order, to a
// single stream. Every level is built fresh by build. A level that fails to
// build is logged and skipped, and reported in a *LevelError; sink failures
// abort the whole export.
func MultiLevel(sink FrameSink, build scene.Builder, levels []int, opts Options) (Stats, error) {
	var (
		total   Stats
		skipped []error
	)
	for _, level := range levels {
		sc, err := build(level)
		if err != nil {
			opts.logger().Error("skipping level", "level", level, "err", err)
			skipped = append(skipped, fmt.Errorf("level %d: %w", level, err))
			continue
		}
		st, err := Video(sink, sc, opts)
		total = total.add(st)
		if err != nil {
			return total, err
		}
	}
	if len(skipped) > 0 {
		return total, &LevelError{Errs: skipped}
	}
	return total, nil
}

// WriteVideo runs MultiLevel against sink and finalizes it. The output is
// kept when at least one level made it into the stream; otherwise the sink
// is aborted.
func WriteVideo(sink FrameSink, build scene.Builder, levels []int, opts Options) (Stats, error) {
	st, err := MultiLevel(sink, build, levels, opts)

	var lerr *LevelError
	if err != nil && (!errors.As(err, &lerr) || st.Levels == 0) {
		abort(sink)
		return st, err
	}
	if cerr := sink.Close(); cerr != nil {
		return st, cerr
	}
	return st, err
}
