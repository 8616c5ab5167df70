package cg

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size is a width and height pair. Either may be negative.
type Size struct {
	Width, Height float64
}

// Rect is a rectangle described by an origin and a size.
//
// The size may be negative, in which case the origin is not the minimum
// corner. All accessors and operations standardize the rectangle first,
// so {0,0,-10,-10} and {-10,-10,10,10} describe the same area.
type Rect struct {
	Origin Point
	Size   Size
}

var (
	// RectNull is the null rectangle: the result of intersecting disjoint
	// rectangles and the bounding box of an empty path. Its origin is at
	// positive infinity.
	RectNull = Rect{Origin: Point{X: math.Inf(1), Y: math.Inf(1)}}

	// RectInfinite is a rectangle with no bounds.
	RectInfinite = Rect{
		Origin: Point{X: -math.MaxFloat64 / 2, Y: -math.MaxFloat64 / 2},
		Size:   Size{Width: math.MaxFloat64, Height: math.MaxFloat64},
	}

	// RectZero is the rectangle at the origin with zero size.
	RectZero = Rect{}
)

// MakeRect creates a rectangle from its origin and size.
func MakeRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// rectFromBounds creates a standardized rectangle from min and max corners.
func rectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return MakeRect(minX, minY, maxX-minX, maxY-minY)
}

// MinX returns the smallest x coordinate of the rectangle.
func (r Rect) MinX() float64 {
	return math.Min(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MidX returns the x coordinate of the rectangle's center.
func (r Rect) MidX() float64 {
	return r.Origin.X + r.Size.Width/2
}

// MaxX returns the largest x coordinate of the rectangle.
func (r Rect) MaxX() float64 {
	return math.Max(r.Origin.X, r.Origin.X+r.Size.Width)
}

// MinY returns the smallest y coordinate of the rectangle.
func (r Rect) MinY() float64 {
	return math.Min(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// MidY returns the y coordinate of the rectangle's center.
func (r Rect) MidY() float64 {
	return r.Origin.Y + r.Size.Height/2
}

// MaxY returns the largest y coordinate of the rectangle.
func (r Rect) MaxY() float64 {
	return math.Max(r.Origin.Y, r.Origin.Y+r.Size.Height)
}

// Width returns the absolute width of the rectangle.
func (r Rect) Width() float64 {
	return math.Abs(r.Size.Width)
}

// Height returns the absolute height of the rectangle.
func (r Rect) Height() float64 {
	return math.Abs(r.Size.Height)
}

// Standardize returns an equivalent rectangle with non-negative size.
func (r Rect) Standardize() Rect {
	if r.IsNull() {
		return RectNull
	}
	return MakeRect(r.MinX(), r.MinY(), r.Width(), r.Height())
}

// IsNull reports whether r is the null rectangle.
func (r Rect) IsNull() bool {
	return math.IsInf(r.Origin.X, 1) || math.IsInf(r.Origin.Y, 1)
}

// IsEmpty reports whether r is null or has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.IsNull() || r.Size.Width == 0 || r.Size.Height == 0
}

// IsInfinite reports whether r is RectInfinite.
func (r Rect) IsInfinite() bool {
	return r == RectInfinite
}

// Union returns the smallest rectangle containing both r and other.
// The null rectangle is the identity element.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsNull():
		return other.Standardize()
	case other.IsNull():
		return r.Standardize()
	}
	return rectFromBounds(
		math.Min(r.MinX(), other.MinX()),
		math.Min(r.MinY(), other.MinY()),
		math.Max(r.MaxX(), other.MaxX()),
		math.Max(r.MaxY(), other.MaxY()),
	)
}

// Intersection returns the overlap of r and other.
// Disjoint rectangles yield RectNull; rectangles sharing only an edge
// yield a rectangle with zero width or height.
func (r Rect) Intersection(other Rect) Rect {
	if r.IsNull() || other.IsNull() {
		return RectNull
	}
	minX := math.Max(r.MinX(), other.MinX())
	minY := math.Max(r.MinY(), other.MinY())
	maxX := math.Min(r.MaxX(), other.MaxX())
	maxY := math.Min(r.MaxY(), other.MaxY())
	if minX > maxX || minY > maxY {
		return RectNull
	}
	return rectFromBounds(minX, minY, maxX, maxY)
}

// Intersects reports whether r and other overlap with a non-empty area.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersection(other).IsEmpty()
}

// ContainsPoint reports whether p lies inside r.
// The minimum edges are inside, the maximum edges are not.
func (r Rect) ContainsPoint(p Point) bool {
	if r.IsNull() {
		return false
	}
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	if r.IsNull() || other.IsNull() {
		return false
	}
	return other.MinX() >= r.MinX() && other.MaxX() <= r.MaxX() &&
		other.MinY() >= r.MinY() && other.MaxY() <= r.MaxY()
}

// Inset shrinks r by dx on the left and right and by dy on the top and
// bottom. Negative values grow the rectangle. If the result would have a
// negative size, RectNull is returned.
func (r Rect) Inset(dx, dy float64) Rect {
	if r.IsNull() {
		return RectNull
	}
	s := r.Standardize()
	w := s.Size.Width - 2*dx
	h := s.Size.Height - 2*dy
	if w < 0 || h < 0 {
		return RectNull
	}
	return MakeRect(s.Origin.X+dx, s.Origin.Y+dy, w, h)
}

// Offset moves r by (dx, dy). The null rectangle is unchanged.
func (r Rect) Offset(dx, dy float64) Rect {
	if r.IsNull() {
		return RectNull
	}
	return MakeRect(r.Origin.X+dx, r.Origin.Y+dy, r.Size.Width, r.Size.Height)
}

// Integral returns the smallest rectangle with integer coordinates that
// contains r.
func (r Rect) Integral() Rect {
	if r.IsNull() {
		return RectNull
	}
	return rectFromBounds(
		math.Floor(r.MinX()),
		math.Floor(r.MinY()),
		math.Ceil(r.MaxX()),
		math.Ceil(r.MaxY()),
	)
}

// Equal reports whether r and other describe the same area.
func (r Rect) Equal(other Rect) bool {
	if r.IsNull() || other.IsNull() {
		return r.IsNull() && other.IsNull()
	}
	return r.Standardize() == other.Standardize()
}

// corners returns the four corners of r in order min-min, max-min,
// max-max, min-max.
func (r Rect) corners() [4]Point {
	minX, minY, maxX, maxY := r.MinX(), r.MinY(), r.MaxX(), r.MaxY()
	return [4]Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}
