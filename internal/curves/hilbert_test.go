package curves

import (
	"errors"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
)

func TestHilbertSeed(t *testing.T) {
	segs, err := NewHilbert(10).Generate(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{90, 0, -90}
	if !equalHeadings(core.Headings(segs), want) {
		t.Errorf("seed headings = %v, expected %v", core.Headings(segs), want)
	}
	for _, s := range segs {
		if s.Length != 10 {
			t.Errorf("seed length = %v, expected 10", s.Length)
		}
	}
}

func TestHilbertFirstExpansion(t *testing.T) {
	segs, err := NewHilbert(10).Generate(1)
	if err != nil {
		t.Fatal(err)
	}

	// The seed is the A triplet: D, 90, A, 0, A, 270, B
	want := []float64{
		0, 90, 180,
		90,
		90, 0, -90,
		0,
		90, 0, -90,
		270,
		180, -90, 0,
	}
	if !equalHeadings(core.Headings(segs), want) {
		t.Errorf("level 1 headings = %v, expected %v", core.Headings(segs), want)
	}
}

func TestHilbertLevelNumbering(t *testing.T) {
	want := 3
	for level := 0; level <= 4; level++ {
		segs, err := NewHilbert(1).Generate(level)
		if err != nil {
			t.Fatal(err)
		}
		if len(segs) != want {
			t.Errorf("level %d has %d headings, expected %d", level, len(segs), want)
		}
		want = 4*want + 3
	}
}

func TestHilbertCarriesConnectors(t *testing.T) {
	lvl1, _ := NewHilbert(10).Generate(1)
	lvl2, err := NewHilbert(10).Generate(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(lvl2) != 63 {
		t.Fatalf("level 2 count = %d, expected 63", len(lvl2))
	}

	// Connectors of level 1 land after each 15-heading production.
	h1 := core.Headings(lvl1)
	h2 := core.Headings(lvl2)
	for k, idx := range []int{3, 7, 11} {
		pos := 15*(k+1) + k
		if h2[pos] != h1[idx] {
			t.Errorf("heading at %d = %v, expected carried %v", pos, h2[pos], h1[idx])
		}
	}
	for _, s := range lvl2 {
		if s.Length != 10 {
			t.Fatalf("length = %v, expected constant 10", s.Length)
		}
	}
}

func TestHilbertUnclassifiedIsHardError(t *testing.T) {
	segs := []core.Segment{{Length: 1, Heading: 45}, {Length: 1, Heading: 0}, {Length: 1, Heading: 0}}
	_, err := hilbertStep(segs, 1)
	if err == nil {
		t.Fatal("expected error for unknown triplet")
	}
	if !IsUnclassified(err) {
		t.Errorf("error should be ErrUnclassified, got %v", err)
	}
	if !errors.Is(err, core.ErrGeneration) {
		t.Errorf("error should be a generation error, got %v", err)
	}
}

func TestClassifyTriplet(t *testing.T) {
	tests := []struct {
		h    []float64
		want orientation
		ok   bool
	}{
		{[]float64{90, 0, -90}, orientA, true},
		{[]float64{180, -90, 0}, orientB, true},
		{[]float64{-90, 180, 90}, orientC, true},
		{[]float64{0, 90, 180}, orientD, true},
		{[]float64{270, 0, -90}, 0, false},
	}

	for _, tc := range tests {
		got, ok := classifyTriplet(tc.h)
		if ok != tc.ok || got != tc.want {
			t.Errorf("classifyTriplet(%v) = %c, %v; expected %c, %v", tc.h, got, ok, tc.want, tc.ok)
		}
	}
}
