package curves

import (
	"math"

	"github.com/vovakirdan/fractals/internal/core"
)

// NewKoch returns the edge-doubling ±45° curve seeded with one segment.
func NewKoch(length, heading float64) *Curve {
	return newCurve(KindKoch, length, heading, []core.Segment{{Length: length, Heading: heading}})
}

// NewLevy returns the Lévy C curve seeded with one horizontal segment.
func NewLevy(length float64) *Curve {
	return newCurve(KindLevy, length, 0, []core.Segment{{Length: length, Heading: 0}})
}

// NewSierpinski returns the Sierpinski arrowhead curve seeded with one
// horizontal segment.
func NewSierpinski(length float64) *Curve {
	return newCurve(KindSierpinski, length, 0, []core.Segment{{Length: length, Heading: 0}})
}

// kochStep replaces every segment with two half-length segments turned
// +45° and -45°.
func kochStep(segs []core.Segment) []core.Segment {
	out := make([]core.Segment, 0, 2*len(segs))
	for _, s := range segs {
		half := s.Length / 2
		out = append(out,
			core.Segment{Length: half, Heading: s.Heading + 45},
			core.Segment{Length: half, Heading: s.Heading - 45},
		)
	}
	return out
}

// levyStep is kochStep with lengths divided by √2, which keeps the end
// points of every replaced segment fixed.
func levyStep(segs []core.Segment) []core.Segment {
	out := make([]core.Segment, 0, 2*len(segs))
	for _, s := range segs {
		l := s.Length / math.Sqrt2
		out = append(out,
			core.Segment{Length: l, Heading: s.Heading + 45},
			core.Segment{Length: l, Heading: s.Heading - 45},
		)
	}
	return out
}

// sierpinskiStep replaces every segment with three half-length segments at
// heading+f·60, heading and heading-f·60.
func sierpinskiStep(segs []core.Segment, f float64) []core.Segment {
	out := make([]core.Segment, 0, 3*len(segs))
	for _, s := range segs {
		half := s.Length / 2
		out = append(out,
			core.Segment{Length: half, Heading: s.Heading + f*60},
			core.Segment{Length: half, Heading: s.Heading},
			core.Segment{Length: half, Heading: s.Heading - f*60},
		)
	}
	return out
}
