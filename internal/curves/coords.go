package curves

import (
	"math"

	"github.com/vovakirdan/fractals/internal/core"
)

// ComputeCoordinates integrates segments into a path of len(segs)+1 points
// starting at start. It is a single prefix-sum pass.
func ComputeCoordinates(segs []core.Segment, start core.Point) []core.Point {
	pts := make([]core.Point, len(segs)+1)
	pts[0] = start

	x, y := start.X, start.Y
	for i, s := range segs {
		sin, cos := math.Sincos(s.Heading * math.Pi / 180)
		x += s.Length * cos
		y += s.Length * sin
		pts[i+1] = core.Point{X: x, Y: y}
	}
	return pts
}
