package palette

import "image/color"

// Source yields the color of segment i out of n.
type Source interface {
	Color(i, n int) color.RGBA
}

// MapSource samples a colormap at i/n.
type MapSource struct {
	Map Colormap
}

// Color returns Map.At(i/n).
func (s MapSource) Color(i, n int) color.RGBA {
	if n <= 0 {
		return s.Map.At(0)
	}
	return s.Map.At(float64(i) / float64(n))
}

// Solid paints every segment the same color.
type Solid struct {
	C color.RGBA
}

// Color returns the constant color.
func (s Solid) Color(int, int) color.RGBA {
	return s.C
}

// Colors expands src into one color per segment.
func Colors(src Source, n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = src.Color(i, n)
	}
	return out
}

// Resolve picks a solid source when lineColor is set, otherwise the named
// colormap.
func Resolve(cmap string, lineColor *color.RGBA) (Source, error) {
	if lineColor != nil {
		return Solid{C: *lineColor}, nil
	}
	m, err := Lookup(cmap)
	if err != nil {
		return nil, err
	}
	return MapSource{Map: m}, nil
}
