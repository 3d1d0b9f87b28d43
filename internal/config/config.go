// Package config provides YAML-based render configuration loading and the
// resolution of file settings and command-line overrides into the concrete
// parameters a render needs.
package config

// File is the on-disk configuration.
type File struct {
	Render RenderConfig           `yaml:"render"`
	Curves map[string]CurveConfig `yaml:"curves"`
}

// RenderConfig holds settings shared by every curve.
type RenderConfig struct {
	Size          int     `yaml:"size"`
	LineWidth     float64 `yaml:"line_width"`
	Padding       float64 `yaml:"padding"`
	FPS           int     `yaml:"fps"`
	Background    string  `yaml:"background"`
	LineColor     string  `yaml:"line_color"`
	Colormap      string  `yaml:"colormap"`
	EdgesPerFrame int     `yaml:"edges_per_frame"`
	Duration      float64 `yaml:"duration"`
	CacheScale    float64 `yaml:"cache_scale"`
	MinZoom       float64 `yaml:"min_zoom"`
	MaxZoom       float64 `yaml:"max_zoom"`
}

// CurveConfig holds per-curve defaults. Nil or zero fields fall through to
// the render section and then to the registered curve defaults.
type CurveConfig struct {
	Level         *int    `yaml:"level,omitempty"`
	InitLength    float64 `yaml:"init_length,omitempty"`
	Colormap      string  `yaml:"colormap,omitempty"`
	LineColor     string  `yaml:"line_color,omitempty"`
	EdgesPerFrame int     `yaml:"edges_per_frame,omitempty"`
}

// Overrides are command-line settings. Zero values mean "not given".
type Overrides struct {
	Levels        string
	Size          int
	LineWidth     float64
	Padding       *float64
	FPS           int
	Background    string
	LineColor     string
	Colormap      string
	EdgesPerFrame int
	Duration      float64
	InitLength    float64
}
