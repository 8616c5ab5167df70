package cg

// segKind is the degree of a segment.
type segKind uint8

const (
	segLine segKind = iota + 1
	segQuad
	segCubic
)

// segment is one drawn piece of a subpath. p[0] is the start point and
// p[kind] the end point.
type segment struct {
	kind segKind
	p    [4]Point
}

func lineSeg(a, b Point) segment {
	return segment{kind: segLine, p: [4]Point{a, b}}
}

func (s segment) start() Point { return s.p[0] }
func (s segment) end() Point   { return s.p[s.kind] }

func (s segment) quad() QuadBez   { return QuadBez{P0: s.p[0], P1: s.p[1], P2: s.p[2]} }
func (s segment) cubic() CubicBez { return CubicBez{P0: s.p[0], P1: s.p[1], P2: s.p[2], P3: s.p[3]} }

// element converts s back to a path element, dropping the start point.
func (s segment) element() Element {
	switch s.kind {
	case segQuad:
		return QuadTo{Control: s.p[1], Point: s.p[2]}
	case segCubic:
		return CubicTo{Control1: s.p[1], Control2: s.p[2], Point: s.p[3]}
	default:
		return LineTo{Point: s.p[1]}
	}
}

// reversed returns s traversed from end to start.
func (s segment) reversed() segment {
	r := segment{kind: s.kind}
	for i := 0; i <= int(s.kind); i++ {
		r.p[i] = s.p[int(s.kind)-i]
	}
	return r
}

// flatten emits points along s, excluding the start point.
func (s segment) flatten(tolerance float64, fn func(Point)) {
	switch s.kind {
	case segQuad:
		flattenQuad(s.quad(), tolerance, fn)
	case segCubic:
		flattenCubic(s.cubic(), tolerance, fn)
	default:
		fn(s.p[1])
	}
}

// length returns the arc length of s.
func (s segment) length(accuracy float64) float64 {
	switch s.kind {
	case segQuad:
		return quadLength(s.quad(), accuracy)
	case segCubic:
		return cubicLength(s.cubic(), accuracy)
	default:
		return s.p[0].Distance(s.p[1])
	}
}

// splitAt splits s at parameter t.
func (s segment) splitAt(t float64) (segment, segment) {
	switch s.kind {
	case segQuad:
		a, b := s.quad().SplitAt(t)
		return segment{kind: segQuad, p: [4]Point{a.P0, a.P1, a.P2}},
			segment{kind: segQuad, p: [4]Point{b.P0, b.P1, b.P2}}
	case segCubic:
		a, b := s.cubic().SplitAt(t)
		return segment{kind: segCubic, p: [4]Point{a.P0, a.P1, a.P2, a.P3}},
			segment{kind: segCubic, p: [4]Point{b.P0, b.P1, b.P2, b.P3}}
	default:
		mid := s.p[0].Lerp(s.p[1], t)
		return lineSeg(s.p[0], mid), lineSeg(mid, s.p[1])
	}
}

// paramAtLength returns the parameter at which the arc length from the
// start of s equals l. total is the full length of s.
func (s segment) paramAtLength(l, total, accuracy float64) float64 {
	if total <= 0 {
		return 0
	}
	switch s.kind {
	case segQuad:
		return cubicParamAtLength(s.quad().Raise(), l, total, accuracy)
	case segCubic:
		return cubicParamAtLength(s.cubic(), l, total, accuracy)
	default:
		return l / total
	}
}

// subpath is a run of connected segments beginning at start.
type subpath struct {
	start  Point
	segs   []segment
	closed bool
}

// end returns the last point of sp.
func (sp subpath) end() Point {
	if len(sp.segs) == 0 {
		return sp.start
	}
	return sp.segs[len(sp.segs)-1].end()
}

// subpaths splits the elements of p into subpaths. An explicit Close adds
// the closing line as a segment when the subpath does not already end at
// its start. Drawing elements after a Close continue from the closed
// subpath's start point.
func (p *Path) subpaths() []subpath {
	var out []subpath
	var cur *subpath
	var current, start Point

	begin := func(at Point) {
		out = append(out, subpath{start: at})
		cur = &out[len(out)-1]
	}
	add := func(s segment) {
		if cur == nil || cur.closed {
			begin(start)
		}
		cur.segs = append(cur.segs, s)
		current = s.end()
	}

	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			begin(e.Point)
			start, current = e.Point, e.Point
		case LineTo:
			add(lineSeg(current, e.Point))
		case QuadTo:
			add(segment{kind: segQuad, p: [4]Point{current, e.Control, e.Point}})
		case CubicTo:
			add(segment{kind: segCubic, p: [4]Point{current, e.Control1, e.Control2, e.Point}})
		case Close:
			if cur == nil || cur.closed {
				continue
			}
			if current != start {
				cur.segs = append(cur.segs, lineSeg(current, start))
			}
			cur.closed = true
			current = start
		}
	}
	return out
}

// pathFromSubpaths builds elements for the given subpaths.
func pathFromSubpaths(sps []subpath) []Element {
	var out []Element
	for _, sp := range sps {
		out = append(out, MoveTo{Point: sp.start})
		for _, s := range sp.segs {
			out = append(out, s.element())
		}
		if sp.closed {
			out = append(out, Close{})
		}
	}
	return out
}
