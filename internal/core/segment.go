package core

// Segment is one straight piece of a curve: a length and an absolute heading
// in degrees, measured counter-clockwise from the positive x axis. Headings
// are never normalized; a generator may produce 270 or -90 for the same
// direction and both are valid.
type Segment struct {
	Length  float64
	Heading float64
}

// CloneSegments returns an independent copy of segs.
func CloneSegments(segs []Segment) []Segment {
	if segs == nil {
		return nil
	}
	out := make([]Segment, len(segs))
	copy(out, segs)
	return out
}

// Headings extracts the heading of every segment.
func Headings(segs []Segment) []float64 {
	out := make([]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Heading
	}
	return out
}
