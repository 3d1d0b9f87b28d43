// Package playback holds the progressive-reveal state machine shared by the
// interactive viewers and the frame pacing rules shared with video export.
package playback

import "math"

const (
	// HoldSeconds is how long exported videos keep the finished frame.
	HoldSeconds = 2

	// DefaultExportDuration is the reveal window used by exports when neither
	// a rate nor a duration is configured.
	DefaultExportDuration = 2.0

	// DefaultFPS is used when no frame rate is configured.
	DefaultFPS = 60
)

// Pacing is the user-facing reveal speed configuration. Zero values mean
// "not set".
type Pacing struct {
	EdgesPerFrame int     // explicit rate, wins over Duration
	Duration      float64 // seconds for the whole reveal
	FPS           int
}

func (p Pacing) fps() int {
	if p.FPS <= 0 {
		return DefaultFPS
	}
	return p.FPS
}

// Interactive returns the batch size for on-screen playback of n edges:
// explicit rate, else duration, else everything in the first frame.
func (p Pacing) Interactive(n int) int {
	switch {
	case p.EdgesPerFrame > 0:
		return p.EdgesPerFrame
	case p.Duration > 0:
		return EdgesForDuration(n, p.Duration, p.fps())
	case n > 0:
		return n
	default:
		return 1
	}
}

// Export returns the batch size for video export of n edges: explicit
// rate, else duration, else a DefaultExportDuration reveal.
func (p Pacing) Export(n int) int {
	switch {
	case p.EdgesPerFrame > 0:
		return p.EdgesPerFrame
	case p.Duration > 0:
		return EdgesForDuration(n, p.Duration, p.fps())
	default:
		return EdgesForDuration(n, DefaultExportDuration, p.fps())
	}
}

// EdgesForDuration returns max(1, floor(n / (duration·fps))).
func EdgesForDuration(n int, duration float64, fps int) int {
	epf := int(float64(n) / (duration * float64(fps)))
	if epf < 1 {
		return 1
	}
	return epf
}

// RevealFrames returns ceil(n / epf), the frames needed to draw n edges.
func RevealFrames(n, epf int) int {
	if n <= 0 || epf <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) / float64(epf)))
}

// HoldFrames returns the number of frames the finished image is held for.
func HoldFrames(fps int) int {
	return HoldSeconds * fps
}
