// Package stroke expands stroked polylines into fillable outlines.
//
// A stroke is converted into a fill path in which:
//   - the right-hand offset of the polyline runs forward
//   - the left-hand offset runs backward
//   - line caps connect the two offsets at open ends
//   - line joins connect consecutive segments
//
// Curves are expected to be flattened by the caller. Round caps and joins
// are emitted as cubic Bezier arcs, so the outline itself contains curves.
//
// # Line Caps
//
//   - LineCapButt: flat cap ending exactly at the endpoint
//   - LineCapRound: semicircular cap with radius width/2
//   - LineCapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, beveled once the miter limit is exceeded
//   - LineJoinRound: circular arc around the corner
//   - LineJoinBevel: straight line across the corner
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width:      2,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 10,
//	})
//	outline := e.Expand([]stroke.Polyline{{
//	    Points: []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
//	}})
package stroke
