package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/curves"
	"github.com/vovakirdan/fractals/internal/palette"
)

func TestBuild(t *testing.T) {
	src := palette.Solid{C: color.RGBA{255, 0, 0, 255}}
	sc, err := Build(curves.NewDragon(1), 3, src)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if sc.N() != 8 {
		t.Errorf("N() = %d, expected 8", sc.N())
	}
	if len(sc.World) != sc.N()+1 {
		t.Errorf("len(World) = %d, expected %d", len(sc.World), sc.N()+1)
	}
	if sc.World[0] != (core.Point{}) {
		t.Errorf("World[0] = %+v, expected origin", sc.World[0])
	}
	if sc.Label() != "Dragon Curve - level 3" {
		t.Errorf("Label() = %q", sc.Label())
	}
}

func TestLayoutStaysInside(t *testing.T) {
	sc, err := Build(curves.NewKoch(500, 0), 6, palette.Solid{})
	if err != nil {
		t.Fatal(err)
	}
	pts := sc.Layout(300, 200, 20)
	box := core.Bounds{MinX: 20 - 1e-6, MinY: 20 - 1e-6, MaxX: 280 + 1e-6, MaxY: 180 + 1e-6}
	for i, p := range pts {
		if !box.Contains(p) {
			t.Fatalf("point %d = %+v outside padded area", i, p)
		}
	}
}

func TestBuilderUsesFreshGenerators(t *testing.T) {
	b, err := NewBuilder("hilbert", 0, palette.Solid{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct{ level, n int }{{2, 63}, {0, 3}, {1, 15}} {
		sc, err := b(tc.level)
		if err != nil {
			t.Fatalf("level %d: %v", tc.level, err)
		}
		if sc.N() != tc.n {
			t.Errorf("level %d: N() = %d, expected %d", tc.level, sc.N(), tc.n)
		}
	}
}

func TestBuilderUnknownCurve(t *testing.T) {
	if _, err := NewBuilder("nope", 0, palette.Solid{}, nil); !errors.Is(err, core.ErrConfig) {
		t.Errorf("NewBuilder() error = %v, expected config error", err)
	}
}
