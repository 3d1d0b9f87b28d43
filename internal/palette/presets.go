package palette

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fractals/internal/core"
)

// BackgroundPresets are the named background colors.
var BackgroundPresets = map[string]color.RGBA{
	"black":      {0, 0, 0, 255},
	"white":      {255, 255, 255, 255},
	"dark-gray":  {30, 30, 30, 255},
	"light-gray": {200, 200, 200, 255},
	"navy":       {10, 25, 47, 255},
	"charcoal":   {40, 44, 52, 255},
}

// LinePresets are the named solid line colors.
var LinePresets = map[string]color.RGBA{
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"orange":  {255, 165, 0, 255},
}

// ParseColor resolves a preset name or a #RRGGBB hex code.
func ParseColor(value string, presets map[string]color.RGBA) (color.RGBA, error) {
	if c, ok := presets[value]; ok {
		return c, nil
	}
	if len(value) == 7 && strings.HasPrefix(value, "#") {
		if c, err := colorful.Hex(value); err == nil {
			r, g, b := c.RGB255()
			return color.RGBA{r, g, b, 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("palette: invalid color %q (use one of %s or #RRGGBB): %w",
		value, strings.Join(PresetNames(presets), ", "), core.ErrConfig)
}

// PresetNames lists the keys of presets in sorted order.
func PresetNames(presets map[string]color.RGBA) []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
