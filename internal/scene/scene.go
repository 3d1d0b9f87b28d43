// Package scene joins a generator, the coordinate synthesizer and a color
// source into the data every renderer consumes.
package scene

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/curves"
	"github.com/vovakirdan/fractals/internal/palette"
	"github.com/vovakirdan/fractals/internal/registry"
	"github.com/vovakirdan/fractals/internal/viewport"
)

// Scene is one generated curve level ready to be drawn.
type Scene struct {
	CurveID string
	Title   string
	Level   int
	World   []core.Point // N+1 vertices, y-up
	Colors  []color.RGBA // N colors, one per segment
}

// Build generates level on gen, integrates it from the origin and derives
// the colors from src.
func Build(gen registry.Generator, level int, src palette.Source) (*Scene, error) {
	segs, err := gen.Generate(level)
	if err != nil {
		return nil, err
	}
	pts := curves.ComputeCoordinates(segs, core.Point{})

	return &Scene{
		CurveID: gen.ID(),
		Title:   gen.Title(),
		Level:   level,
		World:   pts,
		Colors:  palette.Colors(src, len(segs)),
	}, nil
}

// N returns the number of segments.
func (s *Scene) N() int {
	return len(s.Colors)
}

// Fit returns the viewport transform for a w x h surface.
func (s *Scene) Fit(w, h int, padding float64) viewport.Transform {
	return viewport.Fit(s.World, w, h, padding)
}

// Layout returns the device-space vertices for a w x h surface.
func (s *Scene) Layout(w, h int, padding float64) []core.Point {
	return s.Fit(w, h, padding).ApplyAll(s.World)
}

// Label is the human-readable caption, e.g. "Koch Curve - level 5".
func (s *Scene) Label() string {
	return fmt.Sprintf("%s - level %d", s.Title, s.Level)
}

// Builder produces a scene for a level. Every call uses a fresh generator.
type Builder func(level int) (*Scene, error)

// NewBuilder returns a Builder for a registered curve. initLength <= 0
// selects the registered default.
func NewBuilder(curveID string, initLength float64, src palette.Source, logger *log.Logger) (Builder, error) {
	if !registry.Exists(curveID) {
		return nil, fmt.Errorf("scene: unknown curve %q: %w", curveID, core.ErrConfig)
	}
	return func(level int) (*Scene, error) {
		gen, err := registry.Create(curveID, initLength)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Info("generating", "curve", curveID, "level", level)
		}
		sc, err := Build(gen, level, src)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Info("computed coordinates", "curve", curveID, "level", level, "edges", sc.N())
		}
		return sc, nil
	}, nil
}
