package cg

import (
	"math"

	"github.com/gogpu/cg/internal/stroke"
)

// LineCap specifies the shape of the endpoints of an open stroked subpath.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle of diameter Width.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
)

// LineJoin specifies the shape of the corners of a stroked path.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight line.
	LineJoinBevel
)

// StrokeStyle defines how a path is stroked.
type StrokeStyle struct {
	// Width is the line width. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the ratio of miter length to line width above which a
	// miter join is drawn as a bevel. Zero or negative means the default
	// of 10.0.
	MiterLimit float64

	// Dash is the dash pattern applied before stroking.
	// nil means a solid line.
	Dash *Dash
}

// DefaultStrokeStyle returns a solid 1-unit line with butt caps and miter
// joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

const defaultMiterLimit = 10.0

// WithWidth returns a copy of s with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy of s with the given line cap.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of s with the given line join.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of s with the given miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of s with the given dash pattern. Pass nil for a
// solid line.
func (s StrokeStyle) WithDash(dash *Dash) StrokeStyle {
	s.Dash = dash.Clone()
	return s
}

// WithDashPattern returns a copy of s dashed with the given lengths.
//
//	style.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s StrokeStyle) WithDashPattern(lengths ...float64) StrokeStyle {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashPhase returns a copy of s with the dash phase set. It has no
// effect on a solid style.
func (s StrokeStyle) WithDashPhase(phase float64) StrokeStyle {
	if s.Dash != nil {
		s.Dash = s.Dash.WithPhase(phase)
	}
	return s
}

// IsDashed reports whether s has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return s.Dash.IsDashed()
}

// RoundStrokeStyle returns a 1-unit style with round caps and joins.
func RoundStrokeStyle() StrokeStyle {
	return DefaultStrokeStyle().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

func (s StrokeStyle) expanderStyle() stroke.Style {
	limit := s.MiterLimit
	if limit <= 0 {
		limit = defaultMiterLimit
	}
	return stroke.Style{
		Width:      s.Width,
		Cap:        stroke.LineCap(s.Cap),
		Join:       stroke.LineJoin(s.Join),
		MiterLimit: limit,
	}
}

// flattenTolerance returns a user-space tolerance that stays within
// DefaultTolerance after mapping through t.
func flattenTolerance(t *AffineTransform) float64 {
	if t == nil {
		return DefaultTolerance
	}
	scale := math.Sqrt(math.Abs(t.Determinant()))
	if scale < 1e-12 || !isFinite(scale) {
		return DefaultTolerance
	}
	return DefaultTolerance / scale
}

// CopyByStrokingPath returns an immutable path whose filled interior,
// under the non-zero winding rule, is the area painted by stroking p with
// style. The outline is built in p's coordinate space and then mapped
// through t. A non-positive width yields an empty path.
func (p *Path) CopyByStrokingPath(t *AffineTransform, style StrokeStyle) *Path {
	p.live()
	src := p
	if style.IsDashed() {
		src = p.CopyByDashingPath(nil, style.Dash.Phase, style.Dash.Lengths...)
		defer src.Release()
	}

	tol := flattenTolerance(t)
	e := stroke.NewExpander(style.expanderStyle())
	e.SetTolerance(tol)
	cmds := e.Expand(src.polylines(tol))

	m := NewMutablePath()
	for _, c := range cmds {
		var el Element
		switch c.Verb {
		case stroke.VerbMove:
			el = MoveTo{Point: Point(c.Pts[0])}
		case stroke.VerbLine:
			el = LineTo{Point: Point(c.Pts[0])}
		case stroke.VerbCubic:
			el = CubicTo{Control1: Point(c.Pts[0]), Control2: Point(c.Pts[1]), Point: Point(c.Pts[2])}
		default:
			el = Close{}
		}
		m.append(el.transform(t))
	}
	Logger().Debug("cg: stroked path", "width", style.Width, "elements", len(m.elements))
	return m.freeze()
}

// polylines flattens p's subpaths for stroke expansion.
func (p *Path) polylines(tolerance float64) []stroke.Polyline {
	sps := p.subpaths()
	lines := make([]stroke.Polyline, 0, len(sps))
	for _, sp := range sps {
		// A MoveTo with nothing drawn after it paints nothing.
		if len(sp.segs) == 0 && !sp.closed {
			continue
		}
		pts := []stroke.Point{stroke.Point(sp.start)}
		for _, s := range sp.segs {
			s.flatten(tolerance, func(q Point) {
				pts = append(pts, stroke.Point(q))
			})
		}
		lines = append(lines, stroke.Polyline{Points: pts, Closed: sp.closed})
	}
	return lines
}
