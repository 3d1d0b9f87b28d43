package curves

import "github.com/vovakirdan/fractals/internal/registry"

func init() {
	registry.Register(registry.Info{
		ID:              KindKoch.String(),
		Title:           KindKoch.Title(),
		DefaultLevel:    12,
		InitLength:      500,
		DefaultColormap: "gist_rainbow",
	}, func(l float64) registry.Generator { return NewKoch(l, 0) })

	registry.Register(registry.Info{
		ID:              KindLevy.String(),
		Title:           KindLevy.Title(),
		DefaultLevel:    14,
		InitLength:      400,
		DefaultColormap: "viridis",
	}, func(l float64) registry.Generator { return NewLevy(l) })

	registry.Register(registry.Info{
		ID:              KindDragon.String(),
		Title:           KindDragon.Title(),
		DefaultLevel:    14,
		InitLength:      10,
		DefaultColormap: "gist_rainbow",
	}, func(l float64) registry.Generator { return NewDragon(l) })

	registry.Register(registry.Info{
		ID:              KindSierpinski.String(),
		Title:           KindSierpinski.Title(),
		DefaultLevel:    10,
		InitLength:      500,
		DefaultColormap: "magma",
	}, func(l float64) registry.Generator { return NewSierpinski(l) })

	registry.Register(registry.Info{
		ID:              KindHilbert.String(),
		Title:           KindHilbert.Title(),
		DefaultLevel:    7,
		InitLength:      10,
		DefaultColormap: "gist_rainbow",
	}, func(l float64) registry.Generator { return NewHilbert(l) })

	registry.Register(registry.Info{
		ID:              KindMoore.String(),
		Title:           KindMoore.Title(),
		DefaultLevel:    6,
		InitLength:      10,
		DefaultColormap: "gist_rainbow",
	}, func(l float64) registry.Generator { return NewMoore(l) })

	registry.Register(registry.Info{
		ID:              KindGosper.String(),
		Title:           KindGosper.Title(),
		DefaultLevel:    5,
		InitLength:      10,
		DefaultColormap: "gist_rainbow",
	}, func(l float64) registry.Generator { return NewGosper(l) })
}
