package cg

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"
)

// Rasterize renders the interior of p into a width x height coverage
// mask. Path coordinates are in pixels with the origin at the top-left
// corner of the mask.
//
// The non-zero winding rule is rendered with anti-aliasing by
// golang.org/x/image/vector, which takes curves natively. The even-odd
// rule flattens the path and samples four sub-scanlines per row.
func Rasterize(p *Path, width, height int, opts ...RasterOption) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	p.live()

	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := o.transform.Concat(MakeTranslation(o.offset.X, o.offset.Y))

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if p.IsEmpty() {
		return dst, nil
	}

	switch o.rule {
	case FillRuleEvenOdd:
		rasterizeEvenOdd(dst, p, &t)
	default:
		rasterizeNonZero(dst, p, &t)
	}
	Logger().Debug("cg: rasterized path",
		"width", width, "height", height, "rule", o.rule.String())
	return dst, nil
}

func f32(p Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func rasterizeNonZero(dst *image.Alpha, p *Path, t *AffineTransform) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src

	for _, sp := range p.subpaths() {
		z.MoveTo(f32(t.ApplyToPoint(sp.start)))
		for _, s := range sp.segs {
			switch s.kind {
			case segQuad:
				bx, by := f32(t.ApplyToPoint(s.p[1]))
				cx, cy := f32(t.ApplyToPoint(s.p[2]))
				z.QuadTo(bx, by, cx, cy)
			case segCubic:
				bx, by := f32(t.ApplyToPoint(s.p[1]))
				cx, cy := f32(t.ApplyToPoint(s.p[2]))
				dx, dy := f32(t.ApplyToPoint(s.p[3]))
				z.CubeTo(bx, by, cx, cy, dx, dy)
			default:
				z.LineTo(f32(t.ApplyToPoint(s.p[1])))
			}
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.Opaque, image.Point{})
}

// edge is a flattened line segment in device space.
type edge struct {
	a, b Point
}

// evenOddSamples is the number of sub-scanlines per pixel row.
const evenOddSamples = 4

func rasterizeEvenOdd(dst *image.Alpha, p *Path, t *AffineTransform) {
	tol := flattenTolerance(t)
	var edges []edge
	for _, sp := range p.subpaths() {
		start := t.ApplyToPoint(sp.start)
		prev := start
		for _, s := range sp.segs {
			s.flatten(tol, func(q Point) {
				q = t.ApplyToPoint(q)
				edges = append(edges, edge{prev, q})
				prev = q
			})
		}
		edges = append(edges, edge{prev, start})
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	cov := make([]float64, w)
	var xs []float64
	for y := range h {
		clear(cov)
		for s := range evenOddSamples {
			sy := float64(y) + (float64(s)+0.5)/evenOddSamples
			xs = xs[:0]
			for _, e := range edges {
				if (e.a.Y <= sy) == (e.b.Y <= sy) {
					continue
				}
				xs = append(xs, e.a.X+(sy-e.a.Y)*(e.b.X-e.a.X)/(e.b.Y-e.a.Y))
			}
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				addSpan(cov, xs[i], xs[i+1], 1.0/evenOddSamples)
			}
		}
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, c := range cov {
			row[x] = uint8(math.Min(c, 1)*255 + 0.5)
		}
	}
}

// addSpan adds weight times the horizontal coverage of [x0, x1) to cov.
func addSpan(cov []float64, x0, x1, weight float64) {
	x0 = math.Max(x0, 0)
	x1 = math.Min(x1, float64(len(cov)))
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		cov[i0] += (x1 - x0) * weight
		return
	}
	cov[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		cov[i] += weight
	}
	if i1 < len(cov) {
		cov[i1] += (x1 - float64(i1)) * weight
	}
}
