package cg

import (
	"math"
	"sort"
)

// Curve primitives used by the path engine. Based on kurbo patterns,
// adapted for Go idioms.

// bbox accumulates an axis-aligned bounding box.
type bbox struct {
	minX, minY, maxX, maxY float64
}

func newBBox() bbox {
	return bbox{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (b *bbox) add(p Point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b *bbox) empty() bool {
	return b.minX > b.maxX
}

// rect returns the accumulated box, or RectNull when nothing was added.
func (b *bbox) rect() Rect {
	if b.empty() {
		return RectNull
	}
	return rectFromBounds(b.minX, b.minY, b.maxX, b.maxY)
}

// QuadBez is a quadratic Bezier curve. P0 is the start point, P1 the
// control point and P2 the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// SplitAt splits the curve at t using de Casteljau's algorithm.
func (q QuadBez) SplitAt(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	mid := p01.Lerp(p12, t)
	return QuadBez{P0: q.P0, P1: p01, P2: mid}, QuadBez{P0: mid, P1: p12, P2: q.P2}
}

// Extrema returns the parameters in (0, 1) where the derivative of x or y
// vanishes, sorted ascending.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	b := newBBox()
	b.add(q.P0)
	b.add(q.P2)
	for _, t := range q.Extrema() {
		b.add(q.Eval(t))
	}
	return b.rect()
}

// Raise returns the exact cubic representation of the quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// CubicBez is a cubic Bezier curve. P0 is the start point, P1 and P2 the
// control points and P3 the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// SplitAt splits the curve at t using de Casteljau's algorithm.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameters in (0, 1) where the derivative of x or y
// vanishes, sorted ascending. A cubic has at most four.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// B'(t)/3 = (d0 - 2d1 + d2)t^2 + 2(d1 - d0)t + d0
	result = append(result, rootsInUnitInterval(solveQuadratic(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X))...)
	result = append(result, rootsInUnitInterval(solveQuadratic(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y))...)
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	b := newBBox()
	b.add(c.P0)
	b.add(c.P3)
	for _, t := range c.Extrema() {
		b.add(c.Eval(t))
	}
	return b.rect()
}

// flatness returns a squared distance bound between the curve and its
// chord, scaled by 16 relative to the true deviation.
func (c CubicBez) flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// maxSubdivision bounds recursion when flattening degenerate or huge curves.
const maxSubdivision = 16

// flattenQuad emits the end points of line segments approximating q.
// The start point is not emitted.
func flattenQuad(q QuadBez, tolerance float64, fn func(Point)) {
	flattenQuadRec(q, tolerance*tolerance, 0, fn)
}

func flattenQuadRec(q QuadBez, tolSq float64, depth int, fn func(Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if depth >= maxSubdivision || q.P1.Sub(mid).LengthSquared() <= tolSq*4 {
		fn(q.P2)
		return
	}
	a, b := q.SplitAt(0.5)
	flattenQuadRec(a, tolSq, depth+1, fn)
	flattenQuadRec(b, tolSq, depth+1, fn)
}

// flattenCubic emits the end points of line segments approximating c.
// The start point is not emitted.
func flattenCubic(c CubicBez, tolerance float64, fn func(Point)) {
	flattenCubicRec(c, tolerance*tolerance, 0, fn)
}

func flattenCubicRec(c CubicBez, tolSq float64, depth int, fn func(Point)) {
	if depth >= maxSubdivision || c.flatness() <= tolSq*16 {
		fn(c.P3)
		return
	}
	a, b := c.SplitAt(0.5)
	flattenCubicRec(a, tolSq, depth+1, fn)
	flattenCubicRec(b, tolSq, depth+1, fn)
}

// quadLength approximates the arc length of q to within accuracy.
func quadLength(q QuadBez, accuracy float64) float64 {
	return cubicLength(q.Raise(), accuracy)
}

// cubicLength approximates the arc length of c by comparing chord and
// control polygon lengths and subdividing until they agree.
func cubicLength(c CubicBez, accuracy float64) float64 {
	return cubicLengthRec(c, accuracy, 0)
}

func cubicLengthRec(c CubicBez, accuracy float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if depth >= maxSubdivision || polygon-chord <= accuracy {
		return (chord + polygon) / 2
	}
	a, b := c.SplitAt(0.5)
	return cubicLengthRec(a, accuracy/2, depth+1) + cubicLengthRec(b, accuracy/2, depth+1)
}

// cubicParamAtLength returns the parameter t at which the arc length
// measured from P0 equals length. total is the full arc length of c.
func cubicParamAtLength(c CubicBez, length, total, accuracy float64) float64 {
	if length <= 0 {
		return 0
	}
	if length >= total {
		return 1
	}
	lo, hi := 0.0, 1.0
	t := length / total
	for range 32 {
		head, _ := c.SplitAt(t)
		l := cubicLength(head, accuracy)
		if math.Abs(l-length) <= accuracy {
			break
		}
		if l < length {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
