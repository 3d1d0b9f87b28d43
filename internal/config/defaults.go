package config

import (
	_ "embed"
)

//go:embed defaults/fractals.yaml
var defaultFractalsYAML []byte

const (
	DefaultSize       = 900
	DefaultLineWidth  = 1
	DefaultPadding    = 50
	DefaultFPS        = 60
	DefaultBackground = "black"
	DefaultColormap   = "gist_rainbow"
	DefaultCacheScale = 2
	DefaultMinZoom    = 0.1
	DefaultMaxZoom    = 50
)

// DefaultConfig returns the hard-coded configuration used when no file and
// no embedded default can be parsed. Curve defaults come from the registry.
func DefaultConfig() File {
	return File{
		Render: RenderConfig{
			Size:       DefaultSize,
			LineWidth:  DefaultLineWidth,
			Padding:    DefaultPadding,
			FPS:        DefaultFPS,
			Background: DefaultBackground,
			CacheScale: DefaultCacheScale,
			MinZoom:    DefaultMinZoom,
			MaxZoom:    DefaultMaxZoom,
		},
		Curves: map[string]CurveConfig{},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFractalsYAML
}
