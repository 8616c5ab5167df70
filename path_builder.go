package cg

import "math"

// Construction operations for MutablePath. Every operation takes an
// optional transform: when t is non-nil the supplied coordinates are
// mapped through it before they are stored.

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier curve: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// MoveTo starts a new subpath at (x, y).
func (m *MutablePath) MoveTo(t *AffineTransform, x, y float64) {
	m.live()
	m.append(MoveTo{Point: applyTransform(t, Pt(x, y))})
}

// AddLineTo adds a line from the current point to (x, y).
// It is ignored if the path has no current point.
func (m *MutablePath) AddLineTo(t *AffineTransform, x, y float64) {
	if !m.beginSegment("AddLineTo") {
		return
	}
	m.append(LineTo{Point: applyTransform(t, Pt(x, y))})
}

// AddQuadCurveTo adds a quadratic Bezier curve from the current point to
// (x, y) with control point (cpx, cpy).
// It is ignored if the path has no current point.
func (m *MutablePath) AddQuadCurveTo(t *AffineTransform, cpx, cpy, x, y float64) {
	if !m.beginSegment("AddQuadCurveTo") {
		return
	}
	m.append(QuadTo{
		Control: applyTransform(t, Pt(cpx, cpy)),
		Point:   applyTransform(t, Pt(x, y)),
	})
}

// AddCurveTo adds a cubic Bezier curve from the current point to (x, y)
// with control points (cp1x, cp1y) and (cp2x, cp2y).
// It is ignored if the path has no current point.
func (m *MutablePath) AddCurveTo(t *AffineTransform, cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !m.beginSegment("AddCurveTo") {
		return
	}
	m.append(CubicTo{
		Control1: applyTransform(t, Pt(cp1x, cp1y)),
		Control2: applyTransform(t, Pt(cp2x, cp2y)),
		Point:    applyTransform(t, Pt(x, y)),
	})
}

// CloseSubpath closes the current subpath. Closing an empty path or a
// subpath that is already closed does nothing.
func (m *MutablePath) CloseSubpath() {
	m.live()
	n := len(m.elements)
	if n == 0 {
		return
	}
	if _, closed := m.elements[n-1].(Close); closed {
		return
	}
	m.append(Close{})
}

// beginSegment reports whether a drawing element can be appended. After a
// Close it starts a new subpath at the closed subpath's start point.
func (m *MutablePath) beginSegment(op string) bool {
	m.live()
	n := len(m.elements)
	if n == 0 {
		Logger().Debug("cg: no current point", "op", op)
		return false
	}
	if _, closed := m.elements[n-1].(Close); closed {
		m.append(MoveTo{Point: m.start})
	}
	return true
}

// hasCurrentPoint reports whether the path has a current point.
func (m *MutablePath) hasCurrentPoint() bool {
	return len(m.elements) > 0
}

// AddRect adds rect as a closed subpath.
func (m *MutablePath) AddRect(t *AffineTransform, rect Rect) {
	c := rect.Standardize().corners()
	m.MoveTo(t, c[0].X, c[0].Y)
	for _, p := range c[1:] {
		m.AddLineTo(t, p.X, p.Y)
	}
	m.CloseSubpath()
}

// AddRects adds each rectangle as a closed subpath.
func (m *MutablePath) AddRects(t *AffineTransform, rects ...Rect) {
	for _, r := range rects {
		m.AddRect(t, r)
	}
}

// AddLines adds an open polyline through points as a new subpath.
func (m *MutablePath) AddLines(t *AffineTransform, points ...Point) {
	if len(points) == 0 {
		return
	}
	m.MoveTo(t, points[0].X, points[0].Y)
	for _, p := range points[1:] {
		m.AddLineTo(t, p.X, p.Y)
	}
}

// AddEllipseInRect adds the ellipse inscribed in rect as a closed subpath
// made of four cubic curves. It starts at the rightmost point and runs in
// the direction of increasing angle.
func (m *MutablePath) AddEllipseInRect(t *AffineTransform, rect Rect) {
	r := rect.Standardize()
	cx, cy := r.MidX(), r.MidY()
	rx, ry := r.Width()/2, r.Height()/2
	ox, oy := rx*kappa, ry*kappa

	m.MoveTo(t, cx+rx, cy)
	m.AddCurveTo(t, cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	m.AddCurveTo(t, cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	m.AddCurveTo(t, cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	m.AddCurveTo(t, cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	m.CloseSubpath()
}

// AddRoundedRect adds a rectangle with elliptical corners as a closed
// subpath. Corner sizes are clamped to half the rectangle's size; a zero
// corner size produces a plain rectangle.
func (m *MutablePath) AddRoundedRect(t *AffineTransform, rect Rect, cornerWidth, cornerHeight float64) {
	r := rect.Standardize()
	cw := math.Min(math.Max(cornerWidth, 0), r.Width()/2)
	ch := math.Min(math.Max(cornerHeight, 0), r.Height()/2)
	if cw == 0 || ch == 0 {
		m.AddRect(t, r)
		return
	}

	minX, minY, maxX, maxY := r.MinX(), r.MinY(), r.MaxX(), r.MaxY()
	ox, oy := cw*kappa, ch*kappa

	m.MoveTo(t, minX+cw, minY)
	m.AddLineTo(t, maxX-cw, minY)
	m.AddCurveTo(t, maxX-cw+ox, minY, maxX, minY+ch-oy, maxX, minY+ch)
	m.AddLineTo(t, maxX, maxY-ch)
	m.AddCurveTo(t, maxX, maxY-ch+oy, maxX-cw+ox, maxY, maxX-cw, maxY)
	m.AddLineTo(t, minX+cw, maxY)
	m.AddCurveTo(t, minX+cw-ox, maxY, minX, maxY-ch+oy, minX, maxY-ch)
	m.AddLineTo(t, minX, minY+ch)
	m.AddCurveTo(t, minX, minY+ch-oy, minX+cw-ox, minY, minX+cw, minY)
	m.CloseSubpath()
}

// AddRelativeArc adds a circular arc centred at (x, y) that starts at
// startAngle and sweeps delta radians. Positive delta runs in the
// direction of increasing angle. If the path has a current point, a line
// joins it to the start of the arc; otherwise the arc starts a subpath.
func (m *MutablePath) AddRelativeArc(t *AffineTransform, x, y, radius, startAngle, delta float64) {
	center := Pt(x, y)
	sin, cos := math.Sincos(startAngle)
	start := Pt(x+radius*cos, y+radius*sin)
	if m.hasCurrentPoint() {
		m.AddLineTo(t, start.X, start.Y)
	} else {
		m.MoveTo(t, start.X, start.Y)
	}
	m.appendArc(t, center, radius, startAngle, delta)
}

// AddArc adds a circular arc centred at (x, y) from startAngle to
// endAngle. When clockwise is true the arc runs in the direction of
// decreasing angle, which appears clockwise in a y-up coordinate system.
// If the path has a current point, a line joins it to the arc start.
func (m *MutablePath) AddArc(t *AffineTransform, x, y, radius, startAngle, endAngle float64, clockwise bool) {
	m.AddRelativeArc(t, x, y, radius, startAngle, arcSweep(startAngle, endAngle, clockwise))
}

// arcSweep converts a start and end angle into a signed sweep of at most
// one full turn in the requested direction.
func arcSweep(start, end float64, clockwise bool) float64 {
	const twoPi = 2 * math.Pi
	d := end - start
	if !clockwise {
		switch {
		case d < 0:
			d = math.Mod(d, twoPi)
			if d < 0 {
				d += twoPi
			}
		case d > twoPi:
			d = math.Mod(d, twoPi)
			if d == 0 {
				d = twoPi
			}
		}
		return d
	}
	switch {
	case d > 0:
		d = math.Mod(d, twoPi)
		if d > 0 {
			d -= twoPi
		}
	case d < -twoPi:
		d = math.Mod(d, twoPi)
		if d == 0 {
			d = -twoPi
		}
	}
	return d
}

// appendArc appends cubic curves approximating an arc. The current point
// must already be at the arc's start. Each curve spans at most 90 degrees.
func (m *MutablePath) appendArc(t *AffineTransform, center Point, radius, startAngle, delta float64) {
	if delta == 0 || radius == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	// Control point distance for a circular arc of angle step.
	alpha := 4.0 / 3.0 * math.Tan(step/4)

	a0 := startAngle
	for range n {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		p0 := Pt(center.X+radius*cos0, center.Y+radius*sin0)
		p1 := Pt(center.X+radius*cos1, center.Y+radius*sin1)
		c1 := Pt(p0.X-alpha*radius*sin0, p0.Y+alpha*radius*cos0)
		c2 := Pt(p1.X+alpha*radius*sin1, p1.Y-alpha*radius*cos1)
		m.AddCurveTo(t, c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y)
		a0 = a1
	}
}

// AddArcToPoint adds an arc of the given radius tangent to the line from
// the current point to (x1, y1) and to the line from (x1, y1) to
// (x2, y2). A line joins the current point to the first tangent point.
// Degenerate input (zero radius, coincident or collinear points) adds a
// straight line to (x1, y1) instead. It is ignored if the path has no
// current point.
func (m *MutablePath) AddArcToPoint(t *AffineTransform, x1, y1, x2, y2, radius float64) {
	m.live()
	if !m.hasCurrentPoint() {
		Logger().Debug("cg: no current point", "op", "AddArcToPoint")
		return
	}

	// The current point is stored in transformed space; the arc is built
	// in the caller's space.
	p0 := m.current
	if t != nil {
		if inv, ok := t.Invert(); ok {
			p0 = inv.ApplyToPoint(p0)
		}
	}
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	l1, l2 := v1.Length(), v2.Length()
	if radius <= 0 || l1 == 0 || l2 == 0 {
		m.AddLineTo(t, x1, y1)
		return
	}
	u1 := v1.Mul(1 / l1)
	u2 := v2.Mul(1 / l2)
	cross := u1.Cross(u2)
	if math.Abs(cross) < 1e-12 {
		m.AddLineTo(t, x1, y1)
		return
	}

	theta := math.Acos(math.Max(-1, math.Min(1, u1.Dot(u2))))
	dist := radius / math.Tan(theta/2)
	t1 := p1.Add(u1.Mul(dist))
	t2 := p1.Add(u2.Mul(dist))

	bisector := u1.Add(u2)
	bisector = bisector.Mul(1 / bisector.Length())
	center := p1.Add(bisector.Mul(radius / math.Sin(theta/2)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	sweep := a2 - a1
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	m.AddLineTo(t, t1.X, t1.Y)
	m.appendArc(t, center, radius, a1, sweep)
}

// AddPath appends the elements of other, mapped through t.
func (m *MutablePath) AddPath(t *AffineTransform, other *Path) {
	m.live()
	other.live()
	// Snapshot first so that adding a path to itself terminates.
	for _, e := range other.snapshot() {
		m.append(e.transform(t))
	}
}
