package curves

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
)

func allCurves() []*Curve {
	return []*Curve{
		NewKoch(500, 0),
		NewLevy(400),
		NewDragon(10),
		NewSierpinski(500),
		NewHilbert(10),
		NewMoore(10),
		NewGosper(10),
	}
}

func TestGrowthLaws(t *testing.T) {
	tests := []struct {
		curve *Curve
		next  func(n int) int
	}{
		{NewKoch(500, 0), func(n int) int { return 2 * n }},
		{NewLevy(400), func(n int) int { return 2 * n }},
		{NewDragon(10), func(n int) int { return 2 * n }},
		{NewSierpinski(500), func(n int) int { return 3 * n }},
		{NewHilbert(10), func(n int) int { return 4*n + 3 }},
		{NewMoore(10), func(n int) int { return 4*n + 3 }},
		{NewGosper(10), func(n int) int { return 7 * n }},
	}

	for _, tc := range tests {
		t.Run(tc.curve.ID(), func(t *testing.T) {
			prev := len(tc.curve.Segments())
			for level := 1; level <= 5; level++ {
				if err := tc.curve.Step(); err != nil {
					t.Fatalf("Step() to level %d failed: %v", level, err)
				}
				got := len(tc.curve.Segments())
				if want := tc.next(prev); got != want {
					t.Errorf("level %d: count = %d, expected %d", level, got, want)
				}
				if tc.curve.Level() != level {
					t.Errorf("Level() = %d, expected %d", tc.curve.Level(), level)
				}
				prev = got
			}
		})
	}
}

func TestGenerateZeroReturnsSeed(t *testing.T) {
	for _, c := range allCurves() {
		t.Run(c.ID(), func(t *testing.T) {
			seed := c.Seed()

			for _, level := range []int{0, 3, 1, 0, 4} {
				if _, err := c.Generate(level); err != nil {
					t.Fatalf("Generate(%d) failed: %v", level, err)
				}
				if c.Level() != 0 {
					t.Fatalf("Level() after Generate(%d) = %d, expected 0", level, c.Level())
				}
			}

			got, err := c.Generate(0)
			if err != nil {
				t.Fatalf("Generate(0) failed: %v", err)
			}
			if !equalSegments(got, seed) {
				t.Errorf("Generate(0) = %v, expected seed %v", got, seed)
			}
		})
	}
}

func TestGenerateIsRepeatable(t *testing.T) {
	for _, c := range allCurves() {
		t.Run(c.ID(), func(t *testing.T) {
			first, err := c.Generate(4)
			if err != nil {
				t.Fatalf("Generate(4) failed: %v", err)
			}
			second, err := c.Generate(4)
			if err != nil {
				t.Fatalf("second Generate(4) failed: %v", err)
			}
			if !equalSegments(first, second) {
				t.Error("two Generate(4) calls on one instance differ")
			}
		})
	}
}

func TestGenerateResultIsNotAliased(t *testing.T) {
	c := NewKoch(100, 0)
	segs, _ := c.Generate(0)
	segs[0].Length = -1

	again, _ := c.Generate(0)
	if again[0].Length != 100 {
		t.Errorf("mutating a result changed the seed: %v", again[0])
	}
}

func TestGenerateNegativeLevel(t *testing.T) {
	c := NewDragon(1)
	_, err := c.Generate(-1)
	if !errors.Is(err, core.ErrInvalidLevel) {
		t.Fatalf("Generate(-1) error = %v, expected ErrInvalidLevel", err)
	}
	if core.Classify(err) != core.CodeConfig {
		t.Errorf("Classify() = %q, expected config", core.Classify(err))
	}
}

func TestKochLevel1(t *testing.T) {
	segs, err := NewKoch(100, 10).Generate(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Segment{{Length: 50, Heading: 55}, {Length: 50, Heading: -35}}
	if !equalSegments(segs, want) {
		t.Errorf("Koch level 1 = %v, expected %v", segs, want)
	}
}

func TestLevyLengthShrinks(t *testing.T) {
	segs, err := NewLevy(400).Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range segs {
		if math.Abs(s.Length-200) > 1e-9 {
			t.Fatalf("level 2 length = %v, expected 200", s.Length)
		}
	}

	// Endpoints of a Lévy step stay where the replaced segment ended.
	pts := ComputeCoordinates(segs, core.Point{})
	end := pts[len(pts)-1]
	if math.Abs(end.X-400) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("level 2 end point = %+v, expected (400, 0)", end)
	}
}

func TestDragonLevel1(t *testing.T) {
	segs, err := NewDragon(1).Generate(1)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Segment{{Length: 1, Heading: 0}, {Length: 1, Heading: 90}}
	if !equalSegments(segs, want) {
		t.Errorf("Dragon level 1 = %v, expected %v", segs, want)
	}
}

func TestDragonTurns(t *testing.T) {
	got := dragonTurns(dragonTurns([]int{}))
	want := []int{1, 1, -1}
	if len(got) != len(want) {
		t.Fatalf("turns = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("turns = %v, expected %v", got, want)
		}
	}
}

func TestSierpinskiParityFlips(t *testing.T) {
	c := NewSierpinski(8)

	segs, _ := c.Generate(1)
	want1 := []float64{60, 0, -60}
	if !equalHeadings(core.Headings(segs), want1) {
		t.Errorf("level 1 headings = %v, expected %v", core.Headings(segs), want1)
	}

	segs, _ = c.Generate(2)
	// Second step uses f = -1
	want2 := []float64{0, 60, 120, -60, 0, 60, -120, -60, 0}
	if !equalHeadings(core.Headings(segs), want2) {
		t.Errorf("level 2 headings = %v, expected %v", core.Headings(segs), want2)
	}
	for _, s := range segs {
		if s.Length != 2 {
			t.Fatalf("level 2 length = %v, expected 2", s.Length)
		}
	}
}

func TestMooreSeed(t *testing.T) {
	segs, _ := NewMoore(10).Generate(0)
	want := []float64{90, 180, 270}
	if !equalHeadings(core.Headings(segs), want) {
		t.Errorf("Moore seed headings = %v, expected %v", core.Headings(segs), want)
	}
}

func TestGosperLevel1(t *testing.T) {
	segs, _ := NewGosper(10).Generate(1)
	// A-B--B+A++AA+B-
	want := []float64{0, -60, -180, -120, 0, 0, 60}
	if !equalHeadings(core.Headings(segs), want) {
		t.Errorf("Gosper level 1 headings = %v, expected %v", core.Headings(segs), want)
	}
}

func TestComputeCoordinates(t *testing.T) {
	for _, c := range allCurves() {
		t.Run(c.ID(), func(t *testing.T) {
			start := core.Point{X: 3, Y: -7}
			for level := 0; level <= 4; level++ {
				segs, err := c.Generate(level)
				if err != nil {
					t.Fatal(err)
				}
				pts := c.ComputeCoordinates(segs, start)
				if len(pts) != len(segs)+1 {
					t.Fatalf("level %d: %d points for %d segments", level, len(pts), len(segs))
				}
				if pts[0] != start {
					t.Fatalf("level %d: first point = %+v, expected %+v", level, pts[0], start)
				}
			}
		})
	}
}

func TestComputeCoordinatesSquare(t *testing.T) {
	segs := []core.Segment{
		{Length: 2, Heading: 0},
		{Length: 2, Heading: 90},
		{Length: 2, Heading: 180},
		{Length: 2, Heading: 270},
	}
	pts := ComputeCoordinates(segs, core.Point{})
	want := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > 1e-9 || math.Abs(pts[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %+v, expected %+v", i, pts[i], want[i])
		}
	}
}

func equalSegments(a, b []core.Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].Length-b[i].Length) > 1e-9 || a[i].Heading != b[i].Heading {
			return false
		}
	}
	return true
}

func equalHeadings(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
