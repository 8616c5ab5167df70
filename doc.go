// Package cg provides affine transforms and reference-counted vector paths
// along with the geometry built on them: hit-testing, stroking and
// rasterization to coverage masks.
//
// # Overview
//
// AffineTransform is a plain value with the six coefficients a, b, c, d,
// tx and ty. It maps a point as
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// Path is a reference-counted, read-only handle to path data and
// MutablePath the handle through which that data is built. A MutablePath
// embeds a Path, so it can be passed wherever a *Path is expected through
// AsPath; a *Path offers no way to modify the data.
//
// # Quick Start
//
//	import "github.com/gogpu/cg"
//
//	m := cg.NewMutablePath()
//	m.MoveTo(nil, 10, 10)
//	m.AddLineTo(nil, 100, 10)
//	m.AddArc(nil, 100, 60, 50, -math.Pi/2, math.Pi/2, false)
//	m.CloseSubpath()
//
//	outline := m.CopyByStrokingPath(nil, cg.RoundStrokeStyle().WithWidth(4))
//	mask, err := cg.Rasterize(outline, 200, 200)
//
//	outline.Release()
//	m.Release()
//
// # Lifecycle
//
// Every path starts with a reference count of one. Retain adds a reference
// and Release drops one; the data is freed when the count reaches zero.
// Functions named New* and Copy* return a path the caller owns. Using a
// path after it has been freed, or releasing it too often, panics with
// ErrReleased.
//
// # Transforms on Construction
//
// Every construction and copy operation takes an optional
// *AffineTransform. When it is non-nil the coordinates are mapped through
// it before they are stored; nil means identity.
//
// # Coordinate System
//
// Paths have no intrinsic orientation. Angles are in radians and increase
// from +x towards +y. Rasterize and the text functions treat y as growing
// downwards, as in image space.
//
// # Logging
//
// cg is silent by default. See SetLogger.
package cg
