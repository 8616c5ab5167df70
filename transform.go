package cg

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// AffineTransform is a 2D affine transformation.
//
// The six coefficients form the matrix
//
//	| a   b   0 |
//	| c   d   0 |
//	| tx  ty  1 |
//
// and map a point (x, y) to
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// AffineTransform is a plain value: copy it freely.
type AffineTransform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// singularEpsilon bounds the determinant below which a transform is
// treated as non-invertible.
const singularEpsilon = 1e-12

// IdentityTransform returns the identity transformation.
func IdentityTransform() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// MakeTransform creates a transform from its six coefficients.
func MakeTransform(a, b, c, d, tx, ty float64) AffineTransform {
	return AffineTransform{A: a, B: b, C: c, D: d, Tx: tx, Ty: ty}
}

// MakeTranslation creates a translation transform.
func MakeTranslation(tx, ty float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, Tx: tx, Ty: ty}
}

// MakeScale creates a scaling transform.
func MakeScale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// MakeRotation creates a rotation transform. The angle is in radians;
// positive angles rotate counter-clockwise in a y-up coordinate system.
func MakeRotation(angle float64) AffineTransform {
	sin, cos := math.Sincos(angle)
	return AffineTransform{A: cos, B: sin, C: -sin, D: cos}
}

// Concat returns the transform that applies t first and then t2.
func (t AffineTransform) Concat(t2 AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*t2.A + t.B*t2.C,
		B:  t.A*t2.B + t.B*t2.D,
		C:  t.C*t2.A + t.D*t2.C,
		D:  t.C*t2.B + t.D*t2.D,
		Tx: t.Tx*t2.A + t.Ty*t2.C + t2.Tx,
		Ty: t.Tx*t2.B + t.Ty*t2.D + t2.Ty,
	}
}

// Translate returns t with a translation applied before it.
func (t AffineTransform) Translate(tx, ty float64) AffineTransform {
	return MakeTranslation(tx, ty).Concat(t)
}

// Scale returns t with a scale applied before it.
func (t AffineTransform) Scale(sx, sy float64) AffineTransform {
	return MakeScale(sx, sy).Concat(t)
}

// Rotate returns t with a rotation applied before it.
func (t AffineTransform) Rotate(angle float64) AffineTransform {
	return MakeRotation(angle).Concat(t)
}

// Determinant returns a*d - b*c.
func (t AffineTransform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// Invert returns the inverse transform.
// If t is singular, it returns t unchanged and false.
func (t AffineTransform) Invert() (AffineTransform, bool) {
	det := t.Determinant()
	if math.Abs(det) < singularEpsilon {
		return t, false
	}
	inv := 1 / det
	return AffineTransform{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		Tx: (t.C*t.Ty - t.D*t.Tx) * inv,
		Ty: (t.B*t.Tx - t.A*t.Ty) * inv,
	}, true
}

// InvertErr is like Invert but returns ErrNotInvertible for singular
// transforms.
func (t AffineTransform) InvertErr() (AffineTransform, error) {
	inv, ok := t.Invert()
	if !ok {
		return t, fmt.Errorf("invert %v: %w", t, ErrNotInvertible)
	}
	return inv, nil
}

// IsIdentity reports whether t is exactly the identity transform.
func (t AffineTransform) IsIdentity() bool {
	return t == AffineTransform{A: 1, D: 1}
}

// IsTranslationOnly reports whether t only translates.
func (t AffineTransform) IsTranslationOnly() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1
}

// Equal reports whether t and t2 have identical coefficients.
func (t AffineTransform) Equal(t2 AffineTransform) bool {
	return t == t2
}

// ApplyToPoint maps p through t.
func (t AffineTransform) ApplyToPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// ApplyToSize maps s through the linear part of t (no translation).
func (t AffineTransform) ApplyToSize(s Size) Size {
	return Size{
		Width:  t.A*s.Width + t.C*s.Height,
		Height: t.B*s.Width + t.D*s.Height,
	}
}

// ApplyToRect returns the bounding box of r after mapping its four
// corners through t. The null rectangle maps to itself.
func (t AffineTransform) ApplyToRect(r Rect) Rect {
	if r.IsNull() {
		return RectNull
	}
	bbox := newBBox()
	for _, c := range r.corners() {
		bbox.add(t.ApplyToPoint(c))
	}
	return bbox.rect()
}

// Aff3 converts t to the row-major matrix used by golang.org/x/image.
func (t AffineTransform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.A, t.C, t.Tx,
		t.B, t.D, t.Ty,
	}
}

// TransformFromAff3 converts a golang.org/x/image matrix to an
// AffineTransform.
func TransformFromAff3(m f64.Aff3) AffineTransform {
	return AffineTransform{
		A: m[0], C: m[1], Tx: m[2],
		B: m[3], D: m[4], Ty: m[5],
	}
}

// Decomposition is the result of splitting a transform into scale,
// rotation and translation.
type Decomposition struct {
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	Shear          float64
	Tx, Ty         float64
}

// Decompose splits t into translation, rotation, shear and scale such that
// t equals scale, then shear, then rotation, then translation:
//
//	MakeScale(sx, sy).Concat(MakeTransform(1, 0, shear, 1, 0, 0)).
//	    Concat(MakeRotation(rotation)).Concat(MakeTranslation(tx, ty))
//
// A singular t reports a zero shear.
func (t AffineTransform) Decompose() Decomposition {
	sx := math.Hypot(t.A, t.B)
	rotation := math.Atan2(t.B, t.A)
	det := t.Determinant()
	var sy, shear float64
	if sx != 0 {
		sy = det / sx
	}
	if det != 0 {
		// sx*sy == det
		shear = (t.A*t.C + t.B*t.D) / det
	}
	return Decomposition{
		ScaleX:   sx,
		ScaleY:   sy,
		Rotation: rotation,
		Shear:    shear,
		Tx:       t.Tx,
		Ty:       t.Ty,
	}
}

// String returns the coefficients in [a b c d tx ty] order.
func (t AffineTransform) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", t.A, t.B, t.C, t.D, t.Tx, t.Ty)
}

// applyTransform maps p through t, treating a nil t as identity.
func applyTransform(t *AffineTransform, p Point) Point {
	if t == nil {
		return p
	}
	return t.ApplyToPoint(p)
}
