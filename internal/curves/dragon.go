package curves

import "github.com/vovakirdan/fractals/internal/core"

// NewDragon returns the Heighway dragon. Every segment has the seed length;
// only the count grows.
func NewDragon(length float64) *Curve {
	return newCurve(KindDragon, length, 0, []core.Segment{{Length: length, Heading: 0}})
}

// dragonTurns returns turns + [+1] + reverse(negate(turns)).
func dragonTurns(turns []int) []int {
	n := len(turns)
	out := make([]int, 0, 2*n+1)
	out = append(out, turns...)
	out = append(out, 1)
	for i := n - 1; i >= 0; i-- {
		out = append(out, -turns[i])
	}
	return out
}

// dragonSegments rebuilds the path from scratch: one segment at the initial
// heading, then one more per turn after rotating by turn·90°.
func dragonSegments(turns []int, length, heading float64) []core.Segment {
	out := make([]core.Segment, 0, len(turns)+1)
	out = append(out, core.Segment{Length: length, Heading: heading})
	for _, t := range turns {
		heading += float64(t) * 90
		out = append(out, core.Segment{Length: length, Heading: heading})
	}
	return out
}
