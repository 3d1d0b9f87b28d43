// Package curves implements the seven fractal curve families as a single
// tagged Curve type. Each family contributes a pure rewrite function; the
// Curve owns the generation state and the iterate-then-reset contract.
package curves

import (
	"fmt"

	"github.com/vovakirdan/fractals/internal/core"
)

// Kind tags the curve family of a Curve.
type Kind int

const (
	KindKoch Kind = iota
	KindLevy
	KindDragon
	KindSierpinski
	KindHilbert
	KindMoore
	KindGosper
)

// String returns the registry ID of the family.
func (k Kind) String() string {
	switch k {
	case KindKoch:
		return "koch"
	case KindLevy:
		return "levy"
	case KindDragon:
		return "dragon"
	case KindSierpinski:
		return "sierpinski"
	case KindHilbert:
		return "hilbert"
	case KindMoore:
		return "moore"
	case KindGosper:
		return "gosper"
	default:
		return "unknown"
	}
}

// Title returns a human-readable family name.
func (k Kind) Title() string {
	switch k {
	case KindKoch:
		return "Koch Curve"
	case KindLevy:
		return "Lévy C Curve"
	case KindDragon:
		return "Dragon Curve"
	case KindSierpinski:
		return "Sierpinski Arrowhead"
	case KindHilbert:
		return "Hilbert Curve"
	case KindMoore:
		return "Moore Curve"
	case KindGosper:
		return "Gosper Curve"
	default:
		return "Unknown Curve"
	}
}

// Curve holds the generation state of one curve instance.
//
// Generate leaves the instance back at level 0, so one instance can serve
// several Generate calls, but each call rebuilds from the seed. Callers that
// render several levels side by side should still use one instance per level.
type Curve struct {
	kind        Kind
	initLength  float64
	initHeading float64

	seed     []core.Segment // never mutated after construction
	segments []core.Segment
	level    int

	// Family-specific state, touched only by the family's rewrite function
	turns   []int    // dragon: accumulated ±1 turn sequence
	parity  float64  // sierpinski: +1 or -1, flipped every step
	symbols string   // moore, gosper: current L-system string
	grammar *grammar // moore, gosper: fixed rewrite table
}

func newCurve(kind Kind, length, heading float64, seed []core.Segment) *Curve {
	c := &Curve{
		kind:        kind,
		initLength:  length,
		initHeading: heading,
		seed:        seed,
	}
	c.reset()
	return c
}

// ID returns the registry ID of the curve family.
func (c *Curve) ID() string {
	return c.kind.String()
}

// Title returns the display name of the curve family.
func (c *Curve) Title() string {
	return c.kind.Title()
}

// Kind returns the family tag.
func (c *Curve) Kind() Kind {
	return c.kind
}

// Level returns the generation index of the current state.
func (c *Curve) Level() int {
	return c.level
}

// InitLength returns the seed segment length.
func (c *Curve) InitLength() float64 {
	return c.initLength
}

// Seed returns a copy of the generation-0 segments.
func (c *Curve) Seed() []core.Segment {
	return core.CloneSegments(c.seed)
}

// Segments returns a copy of the current segments.
func (c *Curve) Segments() []core.Segment {
	return core.CloneSegments(c.segments)
}

// Generate rewrites the curve until it reaches level, returns a copy of the
// result and resets the instance to level 0.
func (c *Curve) Generate(level int) ([]core.Segment, error) {
	if level < 0 {
		return nil, fmt.Errorf("%s: generate level %d: %w", c.ID(), level, core.ErrInvalidLevel)
	}
	if level < c.level {
		c.reset()
	}
	defer c.reset()

	for c.level < level {
		if err := c.Step(); err != nil {
			return nil, err
		}
	}
	return core.CloneSegments(c.segments), nil
}

// Step applies exactly one rewrite, advancing the level by one.
// On error the state is left unchanged.
func (c *Curve) Step() error {
	var (
		next []core.Segment
		err  error
	)

	switch c.kind {
	case KindKoch:
		next = kochStep(c.segments)
	case KindLevy:
		next = levyStep(c.segments)
	case KindDragon:
		c.turns = dragonTurns(c.turns)
		next = dragonSegments(c.turns, c.initLength, c.initHeading)
	case KindSierpinski:
		next = sierpinskiStep(c.segments, c.parity)
		c.parity = -c.parity
	case KindHilbert:
		next, err = hilbertStep(c.segments, c.initLength)
	case KindMoore, KindGosper:
		c.symbols = c.grammar.rewrite(c.symbols)
		next = c.grammar.decode(c.symbols, c.initLength)
	default:
		err = fmt.Errorf("curves: unknown kind %d: %w", c.kind, core.ErrGeneration)
	}
	if err != nil {
		return fmt.Errorf("%s: step %d -> %d: %w", c.ID(), c.level, c.level+1, err)
	}

	c.segments = next
	c.level++
	return nil
}

// reset restores generation 0 from the original seed.
func (c *Curve) reset() {
	c.segments = core.CloneSegments(c.seed)
	c.level = 0
	c.turns = nil
	c.parity = 1
	if c.grammar != nil {
		c.symbols = c.grammar.axiom
	}
}

// ComputeCoordinates integrates segments starting at start.
func (c *Curve) ComputeCoordinates(segs []core.Segment, start core.Point) []core.Point {
	return ComputeCoordinates(segs, start)
}
