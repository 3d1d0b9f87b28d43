package curves

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fractals/internal/core"
)

// ErrUnclassified is returned when a Hilbert heading triplet matches none of
// the four orientation templates. It wraps core.ErrGeneration.
var ErrUnclassified = fmt.Errorf("hilbert: unclassified heading triplet: %w", core.ErrGeneration)

// orientation names one rotation of the base L-shape.
type orientation byte

const (
	orientA orientation = 'A'
	orientB orientation = 'B'
	orientC orientation = 'C'
	orientD orientation = 'D'
)

// hilbertTemplates maps each orientation to its canonical heading triplet.
var hilbertTemplates = map[orientation][3]float64{
	orientA: {90, 0, -90},
	orientB: {180, -90, 0},
	orientC: {-90, 180, 90},
	orientD: {0, 90, 180},
}

// classifyOrder fixes the match order so classification is deterministic.
var classifyOrder = []orientation{orientD, orientA, orientB, orientC}

// hilbertRule is one production: four templates joined by three connector
// headings.
type hilbertRule struct {
	parts      [4]orientation
	connectors [3]float64
}

var hilbertRules = map[orientation]hilbertRule{
	orientA: {parts: [4]orientation{orientD, orientA, orientA, orientB}, connectors: [3]float64{90, 0, 270}},
	orientB: {parts: [4]orientation{orientC, orientB, orientB, orientA}, connectors: [3]float64{180, 270, 0}},
	orientC: {parts: [4]orientation{orientB, orientC, orientC, orientD}, connectors: [3]float64{270, 180, 90}},
	orientD: {parts: [4]orientation{orientA, orientD, orientD, orientC}, connectors: [3]float64{0, 90, 180}},
}

// hilbertProductions caches the flattened 15-heading expansion per orientation.
var hilbertProductions = func() map[orientation][]float64 {
	out := make(map[orientation][]float64, len(hilbertRules))
	for o, r := range hilbertRules {
		headings := make([]float64, 0, 15)
		for i, p := range r.parts {
			t := hilbertTemplates[p]
			headings = append(headings, t[:]...)
			if i < len(r.connectors) {
				headings = append(headings, r.connectors[i])
			}
		}
		out[o] = headings
	}
	return out
}()

// NewHilbert returns the Hilbert curve seeded with the A-oriented triplet
// [90, 0, -90]. Levels are 0-based: level 0 is the 3-heading seed, level 1
// has 15 headings, and level L has 4^(L+1)-1.
func NewHilbert(length float64) *Curve {
	const heading = 90
	seed := []core.Segment{
		{Length: length, Heading: heading},
		{Length: length, Heading: heading - 90},
		{Length: length, Heading: heading - 180},
	}
	return newCurve(KindHilbert, length, heading, seed)
}

// classifyTriplet returns the orientation whose template equals h exactly.
func classifyTriplet(h []float64) (orientation, bool) {
	for _, o := range classifyOrder {
		t := hilbertTemplates[o]
		if h[0] == t[0] && h[1] == t[1] && h[2] == t[2] {
			return o, true
		}
	}
	return 0, false
}

// hilbertStep scans the headings in windows: classify three, emit the
// production, carry the fourth heading verbatim when one follows, advance by
// four. Lengths are always the seed length.
func hilbertStep(segs []core.Segment, length float64) ([]core.Segment, error) {
	h := core.Headings(segs)
	out := make([]core.Segment, 0, 4*len(h)+3)

	for i := 0; i < len(h)-2; i += 4 {
		o, ok := classifyTriplet(h[i : i+3])
		if !ok {
			return nil, fmt.Errorf("%w: %v at index %d", ErrUnclassified, h[i:i+3], i)
		}
		for _, heading := range hilbertProductions[o] {
			out = append(out, core.Segment{Length: length, Heading: heading})
		}
		if len(h) > 3 && i+3 < len(h) {
			out = append(out, core.Segment{Length: length, Heading: h[i+3]})
		}
	}
	return out, nil
}

// IsUnclassified reports whether err came from a failed triplet match.
func IsUnclassified(err error) bool {
	return errors.Is(err, ErrUnclassified)
}
