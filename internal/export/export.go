// Package export renders scenes to files without an event loop: still PNG
// images, single-level videos and multi-level stitched videos.
package export

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/raster"
	"github.com/vovakirdan/fractals/internal/scene"
)

// Options configures a render.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
	Background    color.RGBA
	Pacing        playback.Pacing

	// Caption draws the scene label in the top-left corner.
	Caption      bool
	CaptionColor color.RGBA

	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o Options) fps() int {
	if o.Pacing.FPS <= 0 {
		return playback.DefaultFPS
	}
	return o.Pacing.FPS
}

// Stats describes what a video export wrote.
type Stats struct {
	Levels       int
	Edges        int
	RevealFrames int
	HoldFrames   int
}

// Frames returns the total frame count.
func (s Stats) Frames() int {
	return s.RevealFrames + s.HoldFrames
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Levels:       s.Levels + o.Levels,
		Edges:        s.Edges + o.Edges,
		RevealFrames: s.RevealFrames + o.RevealFrames,
		HoldFrames:   s.HoldFrames + o.HoldFrames,
	}
}

// newCanvas fits sc and returns a blank canvas with the device vertices.
func newCanvas(sc *scene.Scene, opts Options) (*raster.Canvas, []core.Point) {
	c := raster.NewCanvas(opts.Width, opts.Height, opts.Background)
	if opts.LineWidth > 0 {
		c.SetLineWidth(opts.LineWidth)
	}
	return c, sc.Layout(opts.Width, opts.Height, opts.Padding)
}

// framer produces output frames from the canvas, adding the caption on a
// separate buffer so strokes never land on top of it.
type framer struct {
	caption *raster.Caption
	buf     *image.RGBA
}

func newFramer(sc *scene.Scene, opts Options) *framer {
	f := &framer{}
	if opts.Caption {
		col := opts.CaptionColor
		if col.A == 0 {
			col = core.White
		}
		f.caption = &raster.Caption{Text: sc.Label(), Color: col}
		f.buf = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	}
	return f
}

func (f *framer) frame(c *raster.Canvas) (*image.RGBA, error) {
	if f.caption == nil {
		return c.Image(), nil
	}
	copy(f.buf.Pix, c.Image().Pix)
	if err := f.caption.Draw(f.buf); err != nil {
		return nil, err
	}
	return f.buf, nil
}
