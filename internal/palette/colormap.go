// Package palette provides the per-segment color sources: named colormaps
// sampled on [0, 1], solid colors and the background/line presets.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fractals/internal/core"
)

// Colormap maps t in [0, 1] to a color.
type Colormap interface {
	At(t float64) color.RGBA
}

// stop is one control point of a piecewise-linear colormap.
type stop struct {
	pos float64
	c   colorful.Color
}

// Gradient is a piecewise-linear colormap blended in RGB.
type Gradient struct {
	stops []stop
}

// NewGradient builds a gradient from hex colors spread evenly over [0, 1].
func NewGradient(hexes ...string) (Gradient, error) {
	if len(hexes) < 2 {
		return Gradient{}, fmt.Errorf("palette: gradient needs at least two colors: %w", core.ErrConfig)
	}
	stops := make([]stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Gradient{}, fmt.Errorf("palette: gradient color %q: %w", h, core.ErrConfig)
		}
		stops[i] = stop{pos: float64(i) / float64(len(hexes)-1), c: c}
	}
	return Gradient{stops: stops}, nil
}

func mustGradient(hexes ...string) Gradient {
	g, err := NewGradient(hexes...)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the blended color at t. Values outside [0, 1] are clamped.
func (g Gradient) At(t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	s := g.stops
	i := sort.Search(len(s), func(i int) bool { return s[i].pos >= t })
	switch {
	case i == 0:
		return toRGBA(s[0].c)
	case i >= len(s):
		return toRGBA(s[len(s)-1].c)
	}
	lo, hi := s[i-1], s[i]
	f := (t - lo.pos) / (hi.pos - lo.pos)
	return toRGBA(lo.c.BlendRgb(hi.c, f))
}

// FuncMap adapts a function returning RGB components in [0, 1].
type FuncMap func(t float64) (r, g, b float64)

// At evaluates the function at the clamped t.
func (f FuncMap) At(t float64) color.RGBA {
	r, g, b := f(core.ClampF(t, 0, 1))
	return toRGBA(colorful.Color{R: r, G: g, B: b})
}

// toRGBA truncates each channel to 8 bits (c·255, rounded down). The small
// bias keeps exact hex stops from landing one step low.
func toRGBA(c colorful.Color) color.RGBA {
	c = c.Clamped()
	return color.RGBA{
		R: uint8(c.R*255 + 1e-9),
		G: uint8(c.G*255 + 1e-9),
		B: uint8(c.B*255 + 1e-9),
		A: 255,
	}
}

// gistRainbow reproduces matplotlib's gist_rainbow control points.
var gistRainbow = Gradient{stops: []stop{
	{0.000, colorful.Color{R: 1, G: 0, B: 0.16}},
	{0.030, colorful.Color{R: 1, G: 0, B: 0}},
	{0.215, colorful.Color{R: 1, G: 1, B: 0}},
	{0.400, colorful.Color{R: 0, G: 1, B: 0}},
	{0.586, colorful.Color{R: 0, G: 1, B: 1}},
	{0.770, colorful.Color{R: 0, G: 0, B: 1}},
	{0.954, colorful.Color{R: 1, G: 0, B: 1}},
	{1.000, colorful.Color{R: 1, G: 0, B: 0.75}},
}}

var hot = Gradient{stops: []stop{
	{0.000, colorful.Color{R: 0.0416, G: 0, B: 0}},
	{0.365, colorful.Color{R: 1, G: 0, B: 0}},
	{0.746, colorful.Color{R: 1, G: 1, B: 0}},
	{1.000, colorful.Color{R: 1, G: 1, B: 1}},
}}

var colormaps = map[string]Colormap{
	"gist_rainbow": gistRainbow,
	"hot":          hot,
	"viridis": mustGradient("#440154", "#472c7a", "#3b528b", "#2c728e", "#21918c",
		"#28ae80", "#5ec962", "#addc30", "#fde725"),
	"magma": mustGradient("#000004", "#1c1044", "#51127c", "#832681", "#b73779",
		"#e75263", "#fc8961", "#fec488", "#fcfdbf"),
	"inferno": mustGradient("#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655",
		"#e35933", "#f98e09", "#f9cb35", "#fcffa4"),
	"plasma": mustGradient("#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778",
		"#e56b5d", "#f89540", "#fdc527", "#f0f921"),
	"cividis": mustGradient("#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#fee838"),
	"turbo": mustGradient("#30123b", "#4662d7", "#36aaf9", "#1ae4b6", "#72fe5e",
		"#c8ef34", "#faba39", "#f66b19", "#7a0403"),
	"rainbow": FuncMap(func(t float64) (float64, float64, float64) {
		return math.Abs(2*t - 0.5), math.Sin(t * math.Pi), math.Cos(t * math.Pi / 2)
	}),
	"hsv": FuncMap(func(t float64) (float64, float64, float64) {
		c := colorful.Hsv(t*360, 1, 1)
		return c.R, c.G, c.B
	}),
	"cool":   FuncMap(func(t float64) (float64, float64, float64) { return t, 1 - t, 1 }),
	"spring": FuncMap(func(t float64) (float64, float64, float64) { return 1, t, 1 - t }),
	"summer": FuncMap(func(t float64) (float64, float64, float64) { return t, 0.5 + t/2, 0.4 }),
	"autumn": FuncMap(func(t float64) (float64, float64, float64) { return 1, t, 0 }),
	"winter": FuncMap(func(t float64) (float64, float64, float64) { return 0, t, 1 - t/2 }),
	"gray":   FuncMap(func(t float64) (float64, float64, float64) { return t, t, t }),
}

// Lookup returns the named colormap.
func Lookup(name string) (Colormap, error) {
	m, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("palette: unknown colormap %q: %w", name, core.ErrConfig)
	}
	return m, nil
}

// Names returns the registered colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(colormaps))
	for n := range colormaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
