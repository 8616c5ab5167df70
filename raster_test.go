package cg

import (
	"errors"
	"image"
	"math"
	"testing"
)

func alphaAt(m *image.Alpha, x, y int) uint8 {
	return m.AlphaAt(x, y).A
}

func coverageSum(m *image.Alpha) float64 {
	var sum float64
	for _, a := range m.Pix {
		sum += float64(a) / 255
	}
	return sum
}

func TestRasterizeInvalidSize(t *testing.T) {
	p := NewPathWithRect(MakeRect(0, 0, 1, 1), nil)
	defer p.Release()

	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Rasterize(p, tt.width, tt.height)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Rasterize() error = %v, want ErrInvalidSize", err)
			}
			if m != nil {
				t.Error("Rasterize() should not return a mask on error")
			}
		})
	}
}

func TestRasterizeEmpty(t *testing.T) {
	p := NewMutablePath()
	defer p.Release()

	m, err := Rasterize(p.AsPath(), 8, 6)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if got := m.Bounds(); got != image.Rect(0, 0, 8, 6) {
		t.Errorf("Bounds() = %v, want 8x6", got)
	}
	if coverageSum(m) != 0 {
		t.Error("empty path should leave the mask blank")
	}
}

func TestRasterizeRect(t *testing.T) {
	p := NewPathWithRect(MakeRect(2, 2, 6, 6), nil)
	defer p.Release()

	for _, rule := range []FillRule{FillRuleWinding, FillRuleEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			m, err := Rasterize(p, 10, 10, WithFillRule(rule))
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			tests := []struct {
				x, y int
				want uint8
			}{
				{2, 2, 255},
				{4, 4, 255},
				{7, 7, 255},
				{1, 4, 0},
				{8, 4, 0},
				{4, 8, 0},
				{0, 0, 0},
			}
			for _, tt := range tests {
				if got := alphaAt(m, tt.x, tt.y); got != tt.want {
					t.Errorf("alpha at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
				}
			}
		})
	}
}

func TestRasterizeFillRules(t *testing.T) {
	m := NewMutablePath()
	defer m.Release()
	m.AddRect(nil, MakeRect(0, 0, 20, 20))
	m.AddRect(nil, MakeRect(5, 5, 10, 10))

	tests := []struct {
		name       string
		rule       FillRule
		hole, ring uint8
	}{
		{"winding", FillRuleWinding, 255, 255},
		{"even-odd", FillRuleEvenOdd, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Rasterize(m.AsPath(), 20, 20, WithFillRule(tt.rule))
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			if got := alphaAt(mask, 10, 10); got != tt.hole {
				t.Errorf("inner alpha = %d, want %d", got, tt.hole)
			}
			if got := alphaAt(mask, 2, 2); got != tt.ring {
				t.Errorf("ring alpha = %d, want %d", got, tt.ring)
			}
		})
	}
}

func TestRasterizeOptions(t *testing.T) {
	tests := []struct {
		name    string
		rect    Rect
		opts    []RasterOption
		inside  image.Point
		outside image.Point
	}{
		{"offset", MakeRect(0, 0, 4, 4), []RasterOption{WithOffset(5, 5)}, image.Pt(6, 6), image.Pt(1, 1)},
		{"transform", MakeRect(1, 1, 2, 2), []RasterOption{WithTransform(MakeScale(2, 2))}, image.Pt(3, 3), image.Pt(6, 6)},
		{"transform then offset", MakeRect(0, 0, 2, 2), []RasterOption{
			WithTransform(MakeScale(2, 2)), WithOffset(4, 0),
		}, image.Pt(5, 1), image.Pt(1, 1)},
	}
	for _, tt := range tests {
		for _, rule := range []FillRule{FillRuleWinding, FillRuleEvenOdd} {
			t.Run(tt.name+"/"+rule.String(), func(t *testing.T) {
				p := NewPathWithRect(tt.rect, nil)
				defer p.Release()

				opts := append([]RasterOption{WithFillRule(rule)}, tt.opts...)
				m, err := Rasterize(p, 10, 10, opts...)
				if err != nil {
					t.Fatalf("Rasterize() error = %v", err)
				}
				if got := alphaAt(m, tt.inside.X, tt.inside.Y); got != 255 {
					t.Errorf("alpha at %v = %d, want 255", tt.inside, got)
				}
				if got := alphaAt(m, tt.outside.X, tt.outside.Y); got != 0 {
					t.Errorf("alpha at %v = %d, want 0", tt.outside, got)
				}
			})
		}
	}
}

func TestRasterizeAntialiasing(t *testing.T) {
	p := NewPathWithRect(MakeRect(0, 0, 2.5, 4), nil)
	defer p.Release()

	for _, rule := range []FillRule{FillRuleWinding, FillRuleEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			m, err := Rasterize(p, 4, 4, WithFillRule(rule))
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			if got := int(alphaAt(m, 2, 1)); got < 125 || got > 130 {
				t.Errorf("half covered alpha = %d, want about 128", got)
			}
		})
	}
}

func TestRasterizeCircleCoverage(t *testing.T) {
	p := NewPathWithEllipseInRect(MakeRect(6, 6, 20, 20), nil)
	defer p.Release()

	want := math.Pi * 100
	for _, rule := range []FillRule{FillRuleWinding, FillRuleEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			m, err := Rasterize(p, 32, 32, WithFillRule(rule))
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			if got := coverageSum(m); math.Abs(got-want) > 2 {
				t.Errorf("total coverage = %v, want about %v", got, want)
			}
			if got := alphaAt(m, 16, 16); got != 255 {
				t.Errorf("center alpha = %d, want 255", got)
			}
			if got := alphaAt(m, 6, 6); got != 0 {
				t.Errorf("corner alpha = %d, want 0", got)
			}
		})
	}
}

func TestRasterizeClipsToMask(t *testing.T) {
	p := NewPathWithRect(MakeRect(-10, -10, 100, 100), nil)
	defer p.Release()

	for _, rule := range []FillRule{FillRuleWinding, FillRuleEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			m, err := Rasterize(p, 5, 5, WithFillRule(rule))
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			for i, a := range m.Pix {
				if a != 255 {
					t.Fatalf("pixel %d = %d, want 255", i, a)
				}
			}
		})
	}
}

func TestAddSpan(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 float64
		want   []float64
	}{
		{"whole pixels", 1, 3, []float64{0, 1, 1, 0}},
		{"inside one pixel", 1.25, 1.75, []float64{0, 0.5, 0, 0}},
		{"fractional ends", 0.5, 2.25, []float64{0.5, 1, 0.25, 0}},
		{"clipped", -5, 10, []float64{1, 1, 1, 1}},
		{"empty", 2, 2, []float64{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := make([]float64, 4)
			addSpan(cov, tt.x0, tt.x1, 1)
			for i := range tt.want {
				if !near(cov[i], tt.want[i]) {
					t.Errorf("cov = %v, want %v", cov, tt.want)
					break
				}
			}
		})
	}
}
