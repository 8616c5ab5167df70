package cg

import "math"

// Dash defines a dash pattern.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Lengths contains alternating dash/gap lengths.
	// If it has an odd number of elements, it is logically repeated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Lengths []float64

	// Phase is the distance into the pattern at which dashing starts.
	Phase float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are treated as zero.
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or none is positive.
func NewDash(lengths ...float64) *Dash {
	d := &Dash{Lengths: make([]float64, len(lengths))}
	for i, l := range lengths {
		d.Lengths[i] = math.Max(l, 0)
	}
	if !d.IsDashed() {
		return nil
	}
	return d
}

// WithPhase returns a copy of d with the given phase.
func (d *Dash) WithPhase(phase float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	c.Phase = phase
	return c
}

// PatternLength returns the length of one complete pattern cycle,
// counting an odd-length pattern twice.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Lengths {
		total += l
	}
	if len(d.Lengths)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether d produces gaps. It is false for a nil Dash and
// for patterns without a positive length.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Lengths {
		if l > 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	lengths := make([]float64, len(d.Lengths))
	copy(lengths, d.Lengths)
	return &Dash{Lengths: lengths, Phase: d.Phase}
}

// NormalizedPhase returns the phase reduced to [0, PatternLength).
func (d *Dash) NormalizedPhase() float64 {
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	phase := math.Mod(d.Phase, n)
	if phase < 0 {
		phase += n
	}
	return phase
}

// Scale returns a copy of d with every length and the phase multiplied by
// factor. A non-positive factor returns d unchanged.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	c := d.Clone()
	for i := range c.Lengths {
		c.Lengths[i] *= factor
	}
	c.Phase *= factor
	return c
}

// effectiveLengths returns the pattern with odd-length patterns repeated.
func (d *Dash) effectiveLengths() []float64 {
	if len(d.Lengths)%2 == 0 {
		return d.Lengths
	}
	out := make([]float64, 2*len(d.Lengths))
	copy(out, d.Lengths)
	copy(out[len(d.Lengths):], d.Lengths)
	return out
}

// start returns the pattern index and the length remaining in that entry
// at the phase.
func (d *Dash) start(pattern []float64) (int, float64) {
	offset := d.NormalizedPhase()
	i := 0
	// A zero-length dash exactly at the phase is kept so it becomes a dot.
	for offset > pattern[i] || (offset == pattern[i] && pattern[i] > 0) {
		offset -= pattern[i]
		i = (i + 1) % len(pattern)
	}
	return i, pattern[i] - offset
}

// dashEpsilon is the length below which leftover pieces are dropped.
const dashEpsilon = 1e-9

// dashAccuracy is the arc length accuracy used to place dash ends.
const dashAccuracy = 1e-3

// CopyByDashingPath returns an immutable path holding the dashes of p,
// mapped through t. Dash lengths and phase are measured in p's coordinate
// space. Each subpath restarts the pattern at phase. On a closed subpath
// that starts and ends inside a dash, the two pieces are joined into one
// dash. A pattern without a positive length returns a copy of p.
func (p *Path) CopyByDashingPath(t *AffineTransform, phase float64, lengths ...float64) *Path {
	p.live()
	d := NewDash(lengths...)
	if d == nil {
		return p.CopyByTransformingPath(t)
	}
	d.Phase = phase

	var out []subpath
	for _, sp := range p.subpaths() {
		out = append(out, d.split(sp)...)
	}
	elements := pathFromSubpaths(out)
	if t != nil {
		elements = transformElements(elements, t)
	}
	return newPath(false, elements)
}

// split cuts sp into dashes. A zero-length dash becomes a degenerate
// dash holding a single zero-length line, which strokes to a dot with
// round or square caps.
func (d *Dash) split(sp subpath) []subpath {
	pattern := d.effectiveLengths()
	idx, rem := d.start(pattern)
	startsDot := idx%2 == 0 && rem <= dashEpsilon
	startsOn := idx%2 == 0 && !startsDot

	var dashes []subpath
	open := -1
	gapped := false

	next := func() {
		idx = (idx + 1) % len(pattern)
		rem = pattern[idx]
		if idx%2 == 1 {
			open = -1
			gapped = true
		}
	}
	// settle steps over exhausted pattern entries at pt.
	settle := func(pt Point) {
		for rem <= dashEpsilon {
			if idx%2 == 0 {
				dashes = append(dashes, subpath{start: pt, segs: []segment{lineSeg(pt, pt)}})
			}
			next()
		}
	}

	for _, s := range sp.segs {
		total := s.length(dashAccuracy)
		pos := 0.0
		for total-pos > dashEpsilon {
			if rem <= dashEpsilon {
				settle(pointAtLength(s, pos, total))
			}
			step := math.Min(rem, total-pos)
			if idx%2 == 0 {
				piece := subSegment(s, pos, pos+step, total)
				if open < 0 {
					dashes = append(dashes, subpath{start: piece.start()})
					open = len(dashes) - 1
				}
				dashes[open].segs = append(dashes[open].segs, piece)
			}
			pos += step
			rem -= step
			if rem <= dashEpsilon && idx%2 == 0 {
				next()
			}
		}
	}
	// Dots due exactly at the end of an open subpath. On a closed subpath
	// that point is the start, which already has its dot when the pattern
	// begins with one.
	if len(sp.segs) > 0 && (!sp.closed || !startsDot) {
		for rem <= dashEpsilon && idx%2 == 1 {
			next()
		}
		if rem <= dashEpsilon {
			settle(sp.end())
		}
	}

	if !sp.closed || !startsOn || open < 0 || len(dashes) == 0 {
		return dashes
	}
	if !gapped {
		// The whole subpath is one dash.
		return []subpath{sp}
	}
	if len(dashes) > 1 {
		last := &dashes[len(dashes)-1]
		last.segs = append(last.segs, dashes[0].segs...)
		dashes = dashes[1:]
	}
	return dashes
}

// pointAtLength returns the point at arc length l along s. total is the
// length of s.
func pointAtLength(s segment, l, total float64) Point {
	if l <= 0 {
		return s.start()
	}
	return subSegment(s, 0, l, total).end()
}

// subSegment returns the part of s between arc lengths a and b. total is
// the length of s.
func subSegment(s segment, a, b, total float64) segment {
	tb := 1.0
	if b < total {
		tb = s.paramAtLength(b, total, dashAccuracy)
	}
	head := s
	if tb < 1 {
		head, _ = s.splitAt(tb)
	}
	if a <= 0 {
		return head
	}
	if tb <= 0 {
		return lineSeg(head.start(), head.start())
	}
	ta := s.paramAtLength(a, total, dashAccuracy)
	_, piece := head.splitAt(math.Min(ta/tb, 1))
	return piece
}
