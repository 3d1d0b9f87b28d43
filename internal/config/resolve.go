package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/palette"
	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/registry"
)

// Render is a fully resolved render request for one curve.
type Render struct {
	CurveID    string
	Levels     []int
	Width      int
	Height     int
	LineWidth  float64
	Padding    float64
	Background color.RGBA
	Colors     palette.Source
	ColorName  string // colormap name or line color, for history
	Pacing     playback.Pacing
	CacheScale float64
	MinZoom    float64
	MaxZoom    float64
	InitLength float64
}

// FPS returns the frame rate.
func (r Render) FPS() int {
	return r.Pacing.FPS
}

// ParseLevels parses a comma-separated list such as "3,4, 5". Empty items,
// negative and non-numeric values are configuration errors.
func ParseLevels(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("config: empty level list: %w", core.ErrConfig)
	}
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("config: invalid level %q: %w", p, core.ErrConfig)
		}
		if n < 0 {
			return nil, fmt.Errorf("config: level %d: %w", n, core.ErrInvalidLevel)
		}
		levels = append(levels, n)
	}
	return levels, nil
}

// firstString returns the first non-empty value.
func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// Resolve merges overrides, the curve section, the render section and the
// registered curve defaults, in that order of precedence. Every error wraps
// core.ErrConfig.
func Resolve(file File, ov Overrides, curveID string) (Render, error) {
	info, ok := registry.Lookup(curveID)
	if !ok {
		return Render{}, fmt.Errorf("config: unknown curve %q: %w", curveID, core.ErrConfig)
	}
	cc := file.Curves[curveID]
	rc := file.Render

	r := Render{CurveID: curveID}

	switch {
	case ov.Levels != "":
		levels, err := ParseLevels(ov.Levels)
		if err != nil {
			return Render{}, err
		}
		r.Levels = levels
	case cc.Level != nil:
		if *cc.Level < 0 {
			return Render{}, fmt.Errorf("config: curves.%s.level: %w", curveID, core.ErrInvalidLevel)
		}
		r.Levels = []int{*cc.Level}
	default:
		r.Levels = []int{info.DefaultLevel}
	}

	size := firstInt(ov.Size, rc.Size, DefaultSize)
	r.Width, r.Height = size, size
	r.LineWidth = firstFloat(ov.LineWidth, rc.LineWidth, DefaultLineWidth)

	r.Padding = rc.Padding
	if ov.Padding != nil {
		r.Padding = *ov.Padding
	}
	if r.Padding < 0 || 2*r.Padding >= float64(size) {
		return Render{}, fmt.Errorf("config: padding %v does not fit a %dpx surface: %w", r.Padding, size, core.ErrConfig)
	}

	bg, err := palette.ParseColor(firstString(ov.Background, rc.Background, DefaultBackground), palette.BackgroundPresets)
	if err != nil {
		return Render{}, err
	}
	r.Background = bg

	if err := r.resolveColors(ov, cc, rc, info); err != nil {
		return Render{}, err
	}

	r.Pacing = playback.Pacing{
		EdgesPerFrame: firstInt(ov.EdgesPerFrame, cc.EdgesPerFrame, rc.EdgesPerFrame),
		Duration:      firstFloat(ov.Duration, rc.Duration),
		FPS:           firstInt(ov.FPS, rc.FPS, DefaultFPS),
	}
	if ov.EdgesPerFrame < 0 || ov.Duration < 0 || ov.FPS < 0 || ov.Size < 0 || ov.LineWidth < 0 {
		return Render{}, fmt.Errorf("config: numeric options must not be negative: %w", core.ErrConfig)
	}

	r.CacheScale = firstFloat(rc.CacheScale, DefaultCacheScale)
	r.MinZoom = firstFloat(rc.MinZoom, DefaultMinZoom)
	r.MaxZoom = firstFloat(rc.MaxZoom, DefaultMaxZoom)
	if r.MinZoom > r.MaxZoom {
		return Render{}, fmt.Errorf("config: min_zoom %v exceeds max_zoom %v: %w", r.MinZoom, r.MaxZoom, core.ErrConfig)
	}

	r.InitLength = firstFloat(ov.InitLength, cc.InitLength, info.InitLength)
	return r, nil
}

// resolveColors applies the color layers: a line color beats a colormap
// within the same layer, and a higher layer beats both in a lower one.
func (r *Render) resolveColors(ov Overrides, cc CurveConfig, rc RenderConfig, info registry.Info) error {
	layers := []struct{ line, cmap string }{
		{ov.LineColor, ov.Colormap},
		{cc.LineColor, cc.Colormap},
		{rc.LineColor, rc.Colormap},
		{"", firstString(info.DefaultColormap, DefaultColormap)},
	}
	for _, l := range layers {
		switch {
		case l.line != "":
			c, err := palette.ParseColor(l.line, palette.LinePresets)
			if err != nil {
				return err
			}
			r.Colors, r.ColorName = palette.Solid{C: c}, l.line
			return nil
		case l.cmap != "":
			src, err := palette.Resolve(l.cmap, nil)
			if err != nil {
				return err
			}
			r.Colors, r.ColorName = src, l.cmap
			return nil
		}
	}
	return nil
}
