package curves

import (
	"strings"

	"github.com/vovakirdan/fractals/internal/core"
)

// grammar is a fixed L-system: an axiom, per-symbol rewrites and the turtle
// parameters used to decode a string into segments.
type grammar struct {
	axiom        string
	rules        map[rune]string
	startHeading float64
	turn         float64
	draw         string // symbols that emit a segment
}

var mooreGrammar = &grammar{
	axiom: "LFL+F+LFL",
	rules: map[rune]string{
		'L': "LFL+F+LFL",
		'R': "RFR-F-RFR",
	},
	startHeading: 90,
	turn:         90,
	draw:         "F",
}

var gosperGrammar = &grammar{
	axiom: "A",
	rules: map[rune]string{
		'A': "A-B--B+A++AA+B-",
		'B': "+A-BB--B-A++A+B",
	},
	startHeading: 0,
	turn:         60,
	draw:         "AB",
}

// NewMoore returns the Moore curve.
func NewMoore(length float64) *Curve {
	return newGrammarCurve(KindMoore, mooreGrammar, length)
}

// NewGosper returns the Gosper (flowsnake) curve.
func NewGosper(length float64) *Curve {
	return newGrammarCurve(KindGosper, gosperGrammar, length)
}

func newGrammarCurve(kind Kind, g *grammar, length float64) *Curve {
	c := &Curve{
		kind:        kind,
		initLength:  length,
		initHeading: g.startHeading,
		grammar:     g,
		seed:        g.decode(g.axiom, length),
	}
	c.reset()
	return c
}

// rewrite replaces every symbol with its production; symbols without a rule
// are copied.
func (g *grammar) rewrite(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 8)
	for _, r := range s {
		if rep, ok := g.rules[r]; ok {
			sb.WriteString(rep)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// decode walks s with a turtle: draw symbols emit a segment of length at the
// running heading, '+' and '-' rotate it, everything else is ignored.
func (g *grammar) decode(s string, length float64) []core.Segment {
	heading := g.startHeading
	var out []core.Segment
	for _, r := range s {
		switch {
		case r == '+':
			heading += g.turn
		case r == '-':
			heading -= g.turn
		case strings.ContainsRune(g.draw, r):
			out = append(out, core.Segment{Length: length, Heading: heading})
		}
	}
	return out
}
