package cg

import "math"

// Path queries: bounding boxes, rectangle detection, hit-testing, area,
// length, flattening and reversal.

// FillRule selects how the interior of a self-overlapping path is found.
type FillRule int

const (
	// FillRuleWinding treats points with a non-zero winding number as inside.
	FillRuleWinding FillRule = iota
	// FillRuleEvenOdd treats points crossed an odd number of times as inside.
	FillRuleEvenOdd
)

// String returns the name of the fill rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "EvenOdd"
	}
	return "Winding"
}

// DefaultTolerance is the flattening tolerance used when none is given.
const DefaultTolerance = 0.1

// BoundingBox returns the smallest rectangle containing every point of p,
// control points included. An empty path yields RectNull.
func (p *Path) BoundingBox() Rect {
	p.live()
	b := newBBox()
	for _, e := range p.elements {
		for _, pt := range e.Points() {
			b.add(pt)
		}
	}
	return b.rect()
}

// PathBoundingBox returns the smallest rectangle containing the path's
// geometry. Unlike BoundingBox it excludes control points that lie off the
// curves. An empty path yields RectNull.
func (p *Path) PathBoundingBox() Rect {
	p.live()
	b := newBBox()
	var current Point
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			b.add(e.Point)
			current = e.Point
		case LineTo:
			b.add(e.Point)
			current = e.Point
		case QuadTo:
			r := QuadBez{P0: current, P1: e.Control, P2: e.Point}.BoundingBox()
			b.add(r.Origin)
			b.add(Pt(r.MaxX(), r.MaxY()))
			current = e.Point
		case CubicTo:
			r := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox()
			b.add(r.Origin)
			b.add(Pt(r.MaxX(), r.MaxY()))
			current = e.Point
		}
	}
	return b.rect()
}

// IsRect reports whether p consists of a single axis-aligned rectangle
// and returns it standardized.
func (p *Path) IsRect() (Rect, bool) {
	p.live()
	sps := p.subpaths()
	if len(sps) != 1 {
		return RectNull, false
	}
	sp := sps[0]

	pts := []Point{sp.start}
	for _, s := range sp.segs {
		if s.kind != segLine {
			return RectNull, false
		}
		pts = append(pts, s.end())
	}
	// A closed or returning polyline repeats the start.
	returned := len(pts) == 5 && pts[4] == pts[0]
	if returned {
		pts = pts[:4]
	}
	if len(pts) != 4 || !(sp.closed || returned) {
		return RectNull, false
	}

	for i := range 4 {
		a, b := pts[i], pts[(i+1)%4]
		horizontal := a.Y == b.Y && a.X != b.X
		vertical := a.X == b.X && a.Y != b.Y
		if !horizontal && !vertical {
			return RectNull, false
		}
		// Adjacent edges must alternate orientation.
		c := pts[(i+2)%4]
		if horizontal && !(b.X == c.X && b.Y != c.Y) {
			return RectNull, false
		}
		if vertical && !(b.Y == c.Y && b.X != c.X) {
			return RectNull, false
		}
	}

	b := newBBox()
	for _, pt := range pts {
		b.add(pt)
	}
	return b.rect(), true
}

// hitTolerance picks a flattening tolerance proportional to the path size.
func (p *Path) hitTolerance() float64 {
	r := p.BoundingBox()
	if r.IsNull() {
		return DefaultTolerance
	}
	extent := math.Max(r.Width(), r.Height())
	if extent == 0 {
		return DefaultTolerance
	}
	return math.Min(DefaultTolerance, extent*1e-4)
}

// Winding returns the winding number of p around pt. Open subpaths are
// treated as closed.
func (p *Path) Winding(pt Point) int {
	p.live()
	tol := p.hitTolerance()
	var winding int
	for _, sp := range p.subpaths() {
		prev := sp.start
		for _, s := range sp.segs {
			s.flatten(tol, func(q Point) {
				winding += lineWinding(prev, q, pt)
				prev = q
			})
		}
		winding += lineWinding(prev, sp.start, pt)
	}
	return winding
}

// lineWinding returns the signed crossing of a rightward ray from pt with
// the edge p0-p1.
func lineWinding(p0, p1, pt Point) int {
	switch {
	case p0.Y <= pt.Y && p1.Y > pt.Y:
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	case p0.Y > pt.Y && p1.Y <= pt.Y:
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive if pt is left of the line p0-p1, negative if right.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// ContainsPoint reports whether pt, mapped through t, lies inside p under
// the given fill rule. A nil t leaves pt unchanged.
func (p *Path) ContainsPoint(t *AffineTransform, pt Point, rule FillRule) bool {
	w := p.Winding(applyTransform(t, pt))
	if rule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// Area returns the signed area enclosed by p, treating open subpaths as
// closed. It is positive for paths that run counter-clockwise in a y-up
// coordinate system.
func (p *Path) Area() float64 {
	p.live()
	var area float64
	for _, sp := range p.subpaths() {
		for _, s := range sp.segs {
			area += segmentArea(s)
		}
		area += segmentArea(lineSeg(sp.end(), sp.start))
	}
	return area
}

// segmentArea returns the contribution of s to the area integral
// 1/2 * integral(x dy - y dx).
func segmentArea(s segment) float64 {
	p := s.p
	switch s.kind {
	case segQuad:
		return (2*p[0].Cross(p[1]) + p[0].Cross(p[2]) + 2*p[1].Cross(p[2])) / 6
	case segCubic:
		return (6*p[0].Cross(p[1]) + 3*p[0].Cross(p[2]) + p[0].Cross(p[3]) +
			3*p[1].Cross(p[2]) + 3*p[1].Cross(p[3]) + 6*p[2].Cross(p[3])) / 20
	default:
		return p[0].Cross(p[1]) / 2
	}
}

// Length returns the total arc length of p's drawn segments, including
// the closing lines of closed subpaths. accuracy bounds the error per
// curve; a non-positive value selects 1e-3.
func (p *Path) Length(accuracy float64) float64 {
	p.live()
	if accuracy <= 0 {
		accuracy = 1e-3
	}
	var length float64
	for _, sp := range p.subpaths() {
		for _, s := range sp.segs {
			length += s.length(accuracy)
		}
	}
	return length
}

// Flatten returns an immutable copy of p in which every curve is replaced
// by line segments that deviate from it by at most tolerance. A
// non-positive tolerance selects DefaultTolerance.
func (p *Path) Flatten(tolerance float64) *Path {
	p.live()
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	m := NewMutablePath()
	for _, sp := range p.subpaths() {
		m.append(MoveTo{Point: sp.start})
		for _, s := range sp.segs {
			s.flatten(tolerance, func(q Point) {
				m.append(LineTo{Point: q})
			})
		}
		if sp.closed {
			m.append(Close{})
		}
	}
	return m.freeze()
}

// Reversed returns an immutable copy of p with every subpath traversed in
// the opposite direction.
func (p *Path) Reversed() *Path {
	p.live()
	sps := p.subpaths()
	rev := make([]subpath, len(sps))
	for i, sp := range sps {
		segs := sp.segs
		// The closing line is implied by Close and is regenerated by it.
		if sp.closed && len(segs) > 0 && segs[len(segs)-1].kind == segLine && segs[len(segs)-1].end() == sp.start {
			segs = segs[:len(segs)-1]
		}
		r := subpath{start: sp.start, closed: sp.closed}
		if len(segs) > 0 {
			r.start = segs[len(segs)-1].end()
		}
		for j := len(segs) - 1; j >= 0; j-- {
			r.segs = append(r.segs, segs[j].reversed())
		}
		rev[i] = r
	}
	return newPath(false, pathFromSubpaths(rev))
}
