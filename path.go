package cg

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// ElementKind identifies the operation a path element performs.
type ElementKind int

const (
	// ElementMoveToPoint starts a new subpath.
	ElementMoveToPoint ElementKind = iota
	// ElementAddLineToPoint adds a straight line.
	ElementAddLineToPoint
	// ElementAddQuadCurveToPoint adds a quadratic Bezier curve.
	ElementAddQuadCurveToPoint
	// ElementAddCurveToPoint adds a cubic Bezier curve.
	ElementAddCurveToPoint
	// ElementCloseSubpath closes the current subpath.
	ElementCloseSubpath
)

// String returns the name of the element kind.
func (k ElementKind) String() string {
	switch k {
	case ElementMoveToPoint:
		return "MoveToPoint"
	case ElementAddLineToPoint:
		return "AddLineToPoint"
	case ElementAddQuadCurveToPoint:
		return "AddQuadCurveToPoint"
	case ElementAddCurveToPoint:
		return "AddCurveToPoint"
	case ElementCloseSubpath:
		return "CloseSubpath"
	default:
		return "ElementKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Element is a single element of a path. The set of implementations is
// closed: MoveTo, LineTo, QuadTo, CubicTo and Close.
type Element interface {
	// Kind reports the operation the element performs.
	Kind() ElementKind
	// Points returns the element's points, end point last.
	Points() []Point

	transform(t *AffineTransform) Element
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) Kind() ElementKind { return ElementMoveToPoint }
func (e MoveTo) Points() []Point { return []Point{e.Point} }
func (e MoveTo) transform(t *AffineTransform) Element {
	return MoveTo{Point: applyTransform(t, e.Point)}
}

// LineTo adds a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) Kind() ElementKind { return ElementAddLineToPoint }
func (e LineTo) Points() []Point { return []Point{e.Point} }
func (e LineTo) transform(t *AffineTransform) Element {
	return LineTo{Point: applyTransform(t, e.Point)}
}

// QuadTo adds a quadratic Bezier curve to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) Kind() ElementKind { return ElementAddQuadCurveToPoint }
func (e QuadTo) Points() []Point { return []Point{e.Control, e.Point} }
func (e QuadTo) transform(t *AffineTransform) Element {
	return QuadTo{Control: applyTransform(t, e.Control), Point: applyTransform(t, e.Point)}
}

// CubicTo adds a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) Kind() ElementKind { return ElementAddCurveToPoint }
func (e CubicTo) Points() []Point { return []Point{e.Control1, e.Control2, e.Point} }
func (e CubicTo) transform(t *AffineTransform) Element {
	return CubicTo{
		Control1: applyTransform(t, e.Control1),
		Control2: applyTransform(t, e.Control2),
		Point:    applyTransform(t, e.Point),
	}
}

// Close closes the current subpath with a line back to its start.
type Close struct{}

func (Close) Kind() ElementKind                    { return ElementCloseSubpath }
func (Close) Points() []Point                      { return nil }
func (e Close) transform(*AffineTransform) Element { return e }

// Path is a reference-counted, read-only handle to vector path data.
//
// A new path starts with a reference count of one. Retain adds a
// reference and Release drops one; when the count reaches zero the
// element storage is dropped and the hooks registered with OnRelease run.
// Using or releasing a path after that point panics with ErrReleased.
//
// Retain and Release are safe for concurrent use. Path data is not
// synchronized: an immutable Path may be read from many goroutines, but a
// MutablePath must not be read while it is being modified.
type Path struct {
	refs    atomic.Int64
	mutable bool

	elements []Element
	start    Point // start of the current subpath
	current  Point

	hooksMu sync.Mutex
	hooks   []func()
}

// MutablePath is a Path that can be modified.
//
// The embedded Path is the read-only view of the same data; pass
// AsPath() wherever a *Path is expected.
type MutablePath struct {
	Path
}

// newPath returns a path holding elements with a reference count of one.
func newPath(mutable bool, elements []Element) *Path {
	p := &Path{mutable: mutable}
	p.refs.Store(1)
	for _, e := range elements {
		p.append(e)
	}
	return p
}

// NewMutablePath creates an empty mutable path.
func NewMutablePath() *MutablePath {
	m := &MutablePath{}
	m.mutable = true
	m.refs.Store(1)
	m.elements = make([]Element, 0, 16)
	return m
}

// AsPath returns the read-only view of m. It shares m's data and
// reference count. AsPath of a nil MutablePath is nil.
func (m *MutablePath) AsPath() *Path {
	if m == nil {
		return nil
	}
	return &m.Path
}

// Retain adds a reference to m. Retaining a nil path does nothing.
func (m *MutablePath) Retain() {
	m.AsPath().Retain()
}

// Release drops a reference to m. Releasing a nil path does nothing.
func (m *MutablePath) Release() {
	m.AsPath().Release()
}

// freeze turns a freshly built mutable path into an immutable one. The
// MutablePath must not be used afterwards.
func (m *MutablePath) freeze() *Path {
	m.mutable = false
	return &m.Path
}

// Retain adds a reference to p. Retaining a nil path does nothing.
func (p *Path) Retain() {
	if p == nil {
		return
	}
	if p.refs.Add(1) <= 1 {
		p.refs.Add(-1)
		panic(ErrReleased)
	}
}

// Release drops a reference to p. When the last reference is dropped the
// path data is freed and the release hooks run. Releasing a nil path does
// nothing; releasing a path that is already freed panics with ErrReleased.
func (p *Path) Release() {
	if p == nil {
		return
	}
	n := p.refs.Add(-1)
	switch {
	case n > 0:
		return
	case n < 0:
		p.refs.Add(1)
		panic(ErrReleased)
	}
	p.deallocate()
}

// RetainCount returns the current reference count. It is zero once the
// path has been freed.
func (p *Path) RetainCount() int {
	return int(p.refs.Load())
}

// OnRelease registers fn to run once when the path is freed.
func (p *Path) OnRelease(fn func()) {
	p.live()
	p.hooksMu.Lock()
	p.hooks = append(p.hooks, fn)
	p.hooksMu.Unlock()
}

func (p *Path) deallocate() {
	Logger().Debug("cg: path released", "elements", len(p.elements), "mutable", p.mutable)

	p.elements = nil
	p.start = Point{}
	p.current = Point{}

	p.hooksMu.Lock()
	hooks := p.hooks
	p.hooks = nil
	p.hooksMu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// live panics if p has been freed.
func (p *Path) live() {
	if p.refs.Load() <= 0 {
		panic(ErrReleased)
	}
}

// append adds e and keeps the subpath start and current point in sync.
func (p *Path) append(e Element) {
	p.elements = append(p.elements, e)
	switch e := e.(type) {
	case MoveTo:
		p.start = e.Point
		p.current = e.Point
	case LineTo:
		p.current = e.Point
	case QuadTo:
		p.current = e.Point
	case CubicTo:
		p.current = e.Point
	case Close:
		p.current = p.start
	}
}

// snapshot returns a copy of the element slice.
func (p *Path) snapshot() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

func transformElements(elements []Element, t *AffineTransform) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = e.transform(t)
	}
	return out
}

// Copy returns an immutable copy of p. Copying an immutable path returns
// p itself with an extra reference; copying the view of a mutable path
// takes a snapshot of its current contents.
func (p *Path) Copy() *Path {
	p.live()
	if !p.mutable {
		p.Retain()
		return p
	}
	return newPath(false, p.snapshot())
}

// CopyByTransformingPath returns an immutable copy of p with every point
// mapped through t. A nil t behaves like Copy.
func (p *Path) CopyByTransformingPath(t *AffineTransform) *Path {
	p.live()
	if t == nil || t.IsIdentity() {
		return p.Copy()
	}
	return newPath(false, transformElements(p.elements, t))
}

// MutableCopy returns a mutable copy of p.
func (p *Path) MutableCopy() *MutablePath {
	return p.MutableCopyByTransformingPath(nil)
}

// MutableCopyByTransformingPath returns a mutable copy of p with every
// point mapped through t. A nil t copies the points unchanged.
func (p *Path) MutableCopyByTransformingPath(t *AffineTransform) *MutablePath {
	p.live()
	m := NewMutablePath()
	for _, e := range p.elements {
		m.append(e.transform(t))
	}
	return m
}

// NewPathWithRect returns an immutable path containing rect, mapped
// through t.
func NewPathWithRect(rect Rect, t *AffineTransform) *Path {
	m := NewMutablePath()
	m.AddRect(t, rect)
	return m.freeze()
}

// NewPathWithEllipseInRect returns an immutable path containing the
// ellipse inscribed in rect, mapped through t.
func NewPathWithEllipseInRect(rect Rect, t *AffineTransform) *Path {
	m := NewMutablePath()
	m.AddEllipseInRect(t, rect)
	return m.freeze()
}

// NewPathWithRoundedRect returns an immutable path containing a rounded
// rectangle, mapped through t.
func NewPathWithRoundedRect(rect Rect, cornerWidth, cornerHeight float64, t *AffineTransform) *Path {
	m := NewMutablePath()
	m.AddRoundedRect(t, rect, cornerWidth, cornerHeight)
	return m.freeze()
}

// Apply calls fn for every element of p in order.
func (p *Path) Apply(fn func(Element)) {
	p.live()
	for _, e := range p.elements {
		fn(e)
	}
}

// Elements returns a copy of p's elements.
func (p *Path) Elements() []Element {
	p.live()
	return p.snapshot()
}

// Len returns the number of elements in p.
func (p *Path) Len() int {
	p.live()
	return len(p.elements)
}

// IsEmpty reports whether p has no elements.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// IsMutable reports whether p is the view of a MutablePath.
func (p *Path) IsMutable() bool {
	return p.mutable
}

// CurrentPoint returns the point at which the next element would start.
// It is the zero point for an empty path.
func (p *Path) CurrentPoint() Point {
	p.live()
	return p.current
}

// Equal reports whether p and other contain the same elements.
func (p *Path) Equal(other *Path) bool {
	p.live()
	other.live()
	if p == other {
		return true
	}
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i, e := range p.elements {
		if e != other.elements[i] {
			return false
		}
	}
	return true
}

// String returns p in SVG path data notation.
func (p *Path) String() string {
	p.live()
	var sb strings.Builder
	for i, e := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e.(type) {
		case MoveTo:
			sb.WriteByte('M')
		case LineTo:
			sb.WriteByte('L')
		case QuadTo:
			sb.WriteByte('Q')
		case CubicTo:
			sb.WriteByte('C')
		case Close:
			sb.WriteByte('Z')
		}
		for _, pt := range e.Points() {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
	}
	return sb.String()
}
