package stroke

import "math"

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared length of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle.
	LineCapRound
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins with a circular arc.
	LineJoinRound
	// LineJoinBevel joins with a straight line across the corner.
	LineJoinBevel
)

// Style describes the stroke to expand.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a 1-unit wide stroke with butt caps and miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Verb identifies a Command.
type Verb uint8

const (
	VerbMove  Verb = iota // start a contour
	VerbLine              // straight line
	VerbCubic             // cubic Bezier curve
	VerbClose             // close the contour
)

// Command is one element of an expanded outline. Lines and moves use
// Pts[0]; cubic curves use Pts[0] and Pts[1] as control points and Pts[2]
// as the end point.
type Command struct {
	Verb Verb
	Pts  [3]Point
}

// End returns the point at which the command leaves the pen.
func (c Command) End() Point {
	if c.Verb == VerbCubic {
		return c.Pts[2]
	}
	return c.Pts[0]
}

// minSegmentLengthSq discards segments too short to have a direction.
const minSegmentLengthSq = 1e-18

// Expander converts polylines into the outline of their stroke.
//
// Each polyline is offset to both sides by half the stroke width. The
// forward side runs to the right of the direction of travel and the
// backward side to the left. An open polyline becomes one contour: the
// forward side, the end cap, the reversed backward side and the start
// cap. A closed polyline becomes two contours of opposite orientation,
// so the outline fills correctly under the non-zero rule.
type Expander struct {
	style     Style
	tolerance float64

	forward  builder
	backward builder
	output   builder

	start     Point
	startTan  Vec2
	startNorm Vec2
	last      Point
	lastTan   Vec2
	lastNorm  Vec2

	// joins turning by less than this (as sin of the angle) are straight
	joinThresh float64
}

// NewExpander creates an expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the maximum deviation allowed when deciding whether
// a join can be drawn as a straight connection. Non-positive values are
// ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline of the stroke of lines. A non-positive
// width yields no outline.
func (e *Expander) Expand(lines []Polyline) []Command {
	if e.style.Width <= 0 {
		return nil
	}
	e.output = builder{}
	e.joinThresh = 2 * e.tolerance / e.style.Width
	for _, pl := range lines {
		e.expand(pl)
	}
	return e.output.cmds
}

func (e *Expander) halfWidth() float64 {
	return e.style.Width / 2
}

func (e *Expander) expand(pl Polyline) {
	if len(pl.Points) == 0 {
		return
	}
	e.forward = builder{}
	e.backward = builder{}
	e.start, e.last = pl.Points[0], pl.Points[0]

	for _, p := range pl.Points[1:] {
		e.lineTo(p)
	}
	if pl.Closed {
		e.lineTo(e.start)
	}
	switch {
	case e.forward.empty():
		e.dot()
	case pl.Closed:
		e.join(e.startTan)
		e.finishClosed()
	default:
		e.finishOpen()
	}
}

// normal returns the left normal of tan scaled to half the stroke width.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(e.halfWidth() / tan.Length())
}

func (e *Expander) lineTo(p Point) {
	tan := p.Sub(e.last)
	if tan.LengthSquared() < minSegmentLengthSq {
		return
	}
	e.join(tan)
	norm := e.normal(tan)
	e.forward.lineTo(p.Add(norm.Neg()))
	e.backward.lineTo(p.Add(norm))
	e.last, e.lastTan, e.lastNorm = p, tan, norm
}

// join connects the previous segment to one leaving e.last along tan.
func (e *Expander) join(tan Vec2) {
	norm := e.normal(tan)
	p0 := e.last

	if e.forward.empty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan, e.startNorm = tan, norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	// A left turn puts the outer corner on the forward side.
	outer, inner := &e.forward, &e.backward
	lastOff, off := e.lastNorm.Neg(), norm.Neg()
	if cross < 0 {
		outer, inner = &e.backward, &e.forward
		lastOff, off = e.lastNorm, norm
	}

	inner.lineTo(p0)
	inner.lineTo(p0.Add(off.Neg()))

	switch e.style.Join {
	case LineJoinRound:
		outer.arc(p0, e.halfWidth(), lastOff.Angle(), math.Atan2(cross, dot))
	case LineJoinMiter:
		limit := e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit*limit {
			outer.lineTo(miterPoint(p0.Add(lastOff), ab, p0.Add(off), cd, cross))
		}
		outer.lineTo(p0.Add(off))
	default:
		outer.lineTo(p0.Add(off))
	}
}

// miterPoint intersects the line through a along ab with the line
// through b along cd.
func miterPoint(a Point, ab Vec2, b Point, cd Vec2, cross float64) Point {
	h := ab.Cross(b.Sub(a)) / cross
	return b.Add(cd.Scale(-h))
}

func (e *Expander) finishOpen() {
	e.output.extend(&e.forward)
	e.cap(e.last, e.lastNorm.Neg())
	e.output.extendReversed(&e.backward)
	e.cap(e.start, e.startNorm)
	e.output.close()
}

func (e *Expander) finishClosed() {
	e.output.extend(&e.forward)
	e.output.close()
	e.output.moveTo(e.backward.end())
	e.output.extendReversed(&e.backward)
	e.output.close()
}

// cap draws the line cap at center, from center+n to center-n.
func (e *Expander) cap(center Point, n Vec2) {
	switch e.style.Cap {
	case LineCapRound:
		e.output.arc(center, e.halfWidth(), n.Angle(), math.Pi)
	case LineCapSquare:
		out := n.Perp()
		e.output.lineTo(center.Add(n).Add(out))
		e.output.lineTo(center.Add(n.Neg()).Add(out))
		e.output.lineTo(center.Add(n.Neg()))
	default:
		e.output.lineTo(center.Add(n.Neg()))
	}
}

// dot draws the cap shape of a zero-length subpath. Butt caps draw
// nothing.
func (e *Expander) dot() {
	r := e.halfWidth()
	c := e.start
	switch e.style.Cap {
	case LineCapRound:
		e.output.moveTo(Point{X: c.X + r, Y: c.Y})
		e.output.arc(c, r, 0, 2*math.Pi)
		e.output.close()
	case LineCapSquare:
		e.output.moveTo(Point{X: c.X - r, Y: c.Y - r})
		e.output.lineTo(Point{X: c.X + r, Y: c.Y - r})
		e.output.lineTo(Point{X: c.X + r, Y: c.Y + r})
		e.output.lineTo(Point{X: c.X - r, Y: c.Y + r})
		e.output.close()
	}
}

// builder accumulates commands.
type builder struct {
	cmds []Command
}

func (b *builder) empty() bool {
	return len(b.cmds) == 0
}

func (b *builder) end() Point {
	return b.cmds[len(b.cmds)-1].End()
}

func (b *builder) moveTo(p Point) {
	b.cmds = append(b.cmds, Command{Verb: VerbMove, Pts: [3]Point{p}})
}

func (b *builder) lineTo(p Point) {
	b.cmds = append(b.cmds, Command{Verb: VerbLine, Pts: [3]Point{p}})
}

func (b *builder) cubicTo(c1, c2, p Point) {
	b.cmds = append(b.cmds, Command{Verb: VerbCubic, Pts: [3]Point{c1, c2, p}})
}

func (b *builder) close() {
	b.cmds = append(b.cmds, Command{Verb: VerbClose})
}

// arc appends cubic curves for a circular arc around center that starts
// at angle a0 and sweeps delta radians. The pen must be at the arc start.
func (b *builder) arc(center Point, radius, a0, delta float64) {
	if delta == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius
	for range n {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		p0 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
		p1 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}
		b.cubicTo(
			Point{X: p0.X - k*sin0, Y: p0.Y + k*cos0},
			Point{X: p1.X + k*sin1, Y: p1.Y - k*cos1},
			p1,
		)
		a0 = a1
	}
}

// extend appends all of other's commands.
func (b *builder) extend(other *builder) {
	b.cmds = append(b.cmds, other.cmds...)
}

// extendReversed appends other's drawing commands traversed backwards,
// continuing from other's end point.
func (b *builder) extendReversed(other *builder) {
	cmds := other.cmds
	for i := len(cmds) - 1; i >= 1; i-- {
		prev := cmds[i-1].End()
		switch c := cmds[i]; c.Verb {
		case VerbLine:
			b.lineTo(prev)
		case VerbCubic:
			b.cubicTo(c.Pts[1], c.Pts[0], prev)
		}
	}
}
