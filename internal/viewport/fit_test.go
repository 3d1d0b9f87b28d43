package viewport

import (
	"math"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
)

const eps = 1e-9

func TestFitRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		pts           []core.Point
		width, height int
		padding       float64
	}{
		{"square", []core.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, 900, 900, 50},
		{"wide", []core.Point{{X: -5, Y: 1}, {X: 95, Y: 3}, {X: 40, Y: 2}}, 800, 600, 20},
		{"tall", []core.Point{{X: 0, Y: -100}, {X: 1, Y: 300}}, 640, 480, 0},
		{"offset", []core.Point{{X: 1000, Y: 1000}, {X: 1001, Y: 1003}}, 300, 300, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Fit(tc.pts, tc.width, tc.height, tc.padding)
			b := core.BoundsOf(tc.pts)
			corners := []core.Point{
				{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY}, {X: b.MinX, Y: b.MaxY}, {X: b.MaxX, Y: b.MaxY},
			}
			pad := core.Bounds{
				MinX: tc.padding - eps, MinY: tc.padding - eps,
				MaxX: float64(tc.width) - tc.padding + eps, MaxY: float64(tc.height) - tc.padding + eps,
			}

			for _, c := range corners {
				d := tr.Apply(c)
				if !pad.Contains(d) {
					t.Errorf("corner %+v maps to %+v outside padded rect %+v", c, d, pad)
				}
				back := tr.Inverse(d)
				if math.Abs(back.X-c.X) > 1e-6 || math.Abs(back.Y-c.Y) > 1e-6 {
					t.Errorf("Inverse(Apply(%+v)) = %+v", c, back)
				}
			}
		})
	}
}

func TestFitCentersAndFlips(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 20}}
	out := FitPoints(pts, 100, 100, 10)

	// bbox 10x20 in 80x80 -> scale 4, centered at (50, 50)
	want := []core.Point{{X: 30, Y: 90}, {X: 70, Y: 10}}
	for i := range want {
		if math.Abs(out[i].X-want[i].X) > eps || math.Abs(out[i].Y-want[i].Y) > eps {
			t.Errorf("point %d = %+v, expected %+v", i, out[i], want[i])
		}
	}
}

func TestFitDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []core.Point
	}{
		{"single point", []core.Point{{X: 5, Y: 5}}},
		{"horizontal line", []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{"vertical line", []core.Point{{X: 0, Y: 0}, {X: 0, Y: 10}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Fit(tc.pts, 200, 100, 10)
			if tr.Scale != 1 {
				t.Errorf("Scale = %v, expected 1", tr.Scale)
			}
			c := tr.Apply(core.BoundsOf(tc.pts).Center())
			if c.X != 100 || c.Y != 50 {
				t.Errorf("bbox center maps to %+v, expected (100, 50)", c)
			}
		})
	}
}

func TestFitPaddingLargerThanSurface(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 5}}
	tr := Fit(pts, 80, 46, 50)
	if tr.Scale <= 0 {
		t.Fatalf("Scale = %v, expected a positive scale", tr.Scale)
	}
	if math.Abs(tr.Scale-8) > eps {
		t.Errorf("Scale = %v, expected 8 from the unpadded width", tr.Scale)
	}
	for _, p := range tr.ApplyAll(pts) {
		if p.X < -eps || p.X > 80+eps || p.Y < -eps || p.Y > 46+eps {
			t.Errorf("point %+v falls outside the 80x46 surface", p)
		}
	}
}

func TestScaled(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 2}}
	tr := Fit(pts, 100, 50, 5)
	big := tr.Scaled(2)

	for _, p := range pts {
		a, b := tr.Apply(p), big.Apply(p)
		if math.Abs(b.X-2*a.X) > eps || math.Abs(b.Y-2*a.Y) > eps {
			t.Errorf("Scaled(2).Apply(%+v) = %+v, expected %+v", p, b, a.Scale(2))
		}
	}
}
