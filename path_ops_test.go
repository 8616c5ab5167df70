package cg

import (
	"math"
	"testing"
)

func quadPath() *MutablePath {
	m := NewMutablePath()
	m.MoveTo(nil, 0, 0)
	m.AddQuadCurveTo(nil, 5, 10, 10, 0)
	return m
}

func TestBoundingBoxes(t *testing.T) {
	m := quadPath()
	defer m.Release()

	if got, want := m.BoundingBox(), MakeRect(0, 0, 10, 10); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
	if got, want := m.PathBoundingBox(), MakeRect(0, 0, 10, 5); !nearRect(got, want) {
		t.Errorf("PathBoundingBox() = %v, want %v", got, want)
	}

	empty := NewMutablePath()
	defer empty.Release()
	if !empty.BoundingBox().IsNull() || !empty.PathBoundingBox().IsNull() {
		t.Error("empty path bounding boxes should be null")
	}

	c := NewMutablePath()
	defer c.Release()
	c.MoveTo(nil, 0, 0)
	c.AddCurveTo(nil, 0, 10, 10, 10, 10, 0)
	if got := c.PathBoundingBox(); !near(got.MaxY(), 7.5) {
		t.Errorf("cubic PathBoundingBox() MaxY = %v, want 7.5", got.MaxY())
	}
}

func TestIsRect(t *testing.T) {
	rot := MakeRotation(math.Pi / 4)
	tests := []struct {
		name  string
		build func(m *MutablePath)
		want  Rect
		ok    bool
	}{
		{"rect", func(m *MutablePath) { m.AddRect(nil, MakeRect(1, 2, 3, 4)) }, MakeRect(1, 2, 3, 4), true},
		{"negative rect", func(m *MutablePath) { m.AddRect(nil, MakeRect(4, 6, -3, -4)) }, MakeRect(1, 2, 3, 4), true},
		{"open returning", func(m *MutablePath) {
			m.AddLines(nil, Pt(0, 0), Pt(0, 5), Pt(5, 5), Pt(5, 0), Pt(0, 0))
		}, MakeRect(0, 0, 5, 5), true},
		{"open not returning", func(m *MutablePath) {
			m.AddLines(nil, Pt(0, 0), Pt(0, 5), Pt(5, 5), Pt(5, 0))
		}, RectNull, false},
		{"triangle", func(m *MutablePath) {
			m.AddLines(nil, Pt(0, 0), Pt(5, 0), Pt(5, 5))
			m.CloseSubpath()
		}, RectNull, false},
		{"rotated", func(m *MutablePath) { m.AddRect(&rot, MakeRect(0, 0, 1, 1)) }, RectNull, false},
		{"two rects", func(m *MutablePath) {
			m.AddRects(nil, MakeRect(0, 0, 1, 1), MakeRect(2, 2, 1, 1))
		}, RectNull, false},
		{"ellipse", func(m *MutablePath) { m.AddEllipseInRect(nil, MakeRect(0, 0, 1, 1)) }, RectNull, false},
		{"empty", func(*MutablePath) {}, RectNull, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMutablePath()
			defer m.Release()
			tt.build(m)

			got, ok := m.IsRect()
			if ok != tt.ok {
				t.Fatalf("IsRect() ok = %v, want %v", ok, tt.ok)
			}
			if !got.Equal(tt.want) {
				t.Errorf("IsRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsPointFillRules(t *testing.T) {
	m := NewMutablePath()
	defer m.Release()
	m.AddRect(nil, MakeRect(0, 0, 100, 100))
	m.AddRect(nil, MakeRect(25, 25, 50, 50))

	tests := []struct {
		name            string
		pt              Point
		winding, evenOd bool
	}{
		{"inner square", Pt(50, 50), true, false},
		{"outer ring", Pt(10, 10), true, true},
		{"outside", Pt(200, 200), false, false},
		{"left of path", Pt(-10, 50), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ContainsPoint(nil, tt.pt, FillRuleWinding); got != tt.winding {
				t.Errorf("ContainsPoint(winding) = %v, want %v", got, tt.winding)
			}
			if got := m.ContainsPoint(nil, tt.pt, FillRuleEvenOdd); got != tt.evenOd {
				t.Errorf("ContainsPoint(even-odd) = %v, want %v", got, tt.evenOd)
			}
		})
	}

	if w := m.Winding(Pt(50, 50)); w != 2 && w != -2 {
		t.Errorf("Winding() = %d, want +-2", w)
	}
}

func TestContainsPointTransform(t *testing.T) {
	p := NewPathWithRect(MakeRect(0, 0, 10, 10), nil)
	defer p.Release()

	tr := MakeTranslation(100, 0)
	if !p.ContainsPoint(&tr, Pt(-95, 5), FillRuleWinding) {
		t.Error("translated point should be inside")
	}
	if p.ContainsPoint(&tr, Pt(5, 5), FillRuleWinding) {
		t.Error("translated point should be outside")
	}
}

func TestContainsPointOpenSubpath(t *testing.T) {
	m := NewMutablePath()
	defer m.Release()
	m.AddLines(nil, Pt(0, 0), Pt(10, 0), Pt(10, 10))

	if !m.ContainsPoint(nil, Pt(8, 2), FillRuleWinding) {
		t.Error("open subpath should be treated as closed")
	}
}

func TestContainsPointCurve(t *testing.T) {
	p := NewPathWithEllipseInRect(MakeRect(0, 0, 100, 100), nil)
	defer p.Release()

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(50, 50), true},
		{Pt(50, 1), true},
		{Pt(5, 5), false},
		{Pt(95, 95), false},
	}
	for _, tt := range tests {
		if got := p.ContainsPoint(nil, tt.pt, FillRuleWinding); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestArea(t *testing.T) {
	rect := NewPathWithRect(MakeRect(0, 0, 10, 10), nil)
	defer rect.Release()
	if got := rect.Area(); !near(got, 100) {
		t.Errorf("rect Area() = %v, want 100", got)
	}

	rev := rect.Reversed()
	defer rev.Release()
	if got := rev.Area(); !near(got, -100) {
		t.Errorf("reversed Area() = %v, want -100", got)
	}

	circle := NewPathWithEllipseInRect(MakeRect(0, 0, 20, 20), nil)
	defer circle.Release()
	if got, want := circle.Area(), math.Pi*100; math.Abs(got-want)/want > 1e-3 {
		t.Errorf("circle Area() = %v, want about %v", got, want)
	}

	q := quadPath()
	defer q.Release()
	// Area between the parabola and its chord is 2/3 of the enclosing
	// triangle.
	if got := math.Abs(q.Area()); !near(got, 2.0/3.0*50) {
		t.Errorf("|quad Area()| = %v, want %v", got, 2.0/3.0*50)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name  string
		build func(m *MutablePath)
		want  float64
		tol   float64
	}{
		{"line", func(m *MutablePath) { m.AddLines(nil, Pt(0, 0), Pt(3, 4)) }, 5, 1e-12},
		{"closed rect", func(m *MutablePath) { m.AddRect(nil, MakeRect(0, 0, 10, 10)) }, 40, 1e-12},
		{"circle", func(m *MutablePath) { m.AddEllipseInRect(nil, MakeRect(0, 0, 20, 20)) }, 20 * math.Pi, 0.05},
		{"straight quad", func(m *MutablePath) {
			m.MoveTo(nil, 0, 0)
			m.AddQuadCurveTo(nil, 5, 0, 10, 0)
		}, 10, 1e-3},
		{"empty", func(*MutablePath) {}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMutablePath()
			defer m.Release()
			tt.build(m)
			if got := m.Length(0); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	circle := NewPathWithEllipseInRect(MakeRect(0, 0, 100, 100), nil)
	defer circle.Release()

	flat := circle.Flatten(0.1)
	defer flat.Release()

	var lines int
	flat.Apply(func(e Element) {
		switch e.Kind() {
		case ElementAddQuadCurveToPoint, ElementAddCurveToPoint:
			t.Fatalf("Flatten() left a curve: %v", e)
		case ElementAddLineToPoint:
			lines++
		}
	})
	if lines < 16 {
		t.Errorf("Flatten() produced %d lines, want at least 16", lines)
	}
	if got := kinds(flat); got[len(got)-1] != ElementCloseSubpath {
		t.Error("Flatten() should keep the close")
	}
	if got := flat.BoundingBox(); !nearRectTol(got, MakeRect(0, 0, 100, 100), 0.1) {
		t.Errorf("BoundingBox() = %v", got)
	}

	coarse := circle.Flatten(5)
	defer coarse.Release()
	if coarse.Len() >= flat.Len() {
		t.Errorf("coarse Len() = %d, fine Len() = %d, want coarse < fine", coarse.Len(), flat.Len())
	}
}

func TestReversed(t *testing.T) {
	tri := trianglePath()
	defer tri.Release()

	rev := tri.Reversed()
	defer rev.Release()
	want := []Element{
		MoveTo{Point: Pt(10, 10)},
		LineTo{Point: Pt(10, 0)},
		LineTo{Point: Pt(0, 0)},
		Close{},
	}
	assertElements(t, rev, want)

	open := NewMutablePath()
	defer open.Release()
	open.MoveTo(nil, 0, 0)
	open.AddLineTo(nil, 1, 0)
	open.AddQuadCurveTo(nil, 2, 0, 2, 1)

	ro := open.Reversed()
	defer ro.Release()
	assertElements(t, ro, []Element{
		MoveTo{Point: Pt(2, 1)},
		QuadTo{Control: Pt(2, 0), Point: Pt(1, 0)},
		LineTo{Point: Pt(0, 0)},
	})

	twice := ro.Reversed()
	defer twice.Release()
	if !twice.Equal(open.AsPath()) {
		t.Errorf("reversing twice = %v, want %v", twice, open)
	}
}

func TestFillRuleString(t *testing.T) {
	if got := FillRuleWinding.String(); got != "Winding" {
		t.Errorf("String() = %q, want Winding", got)
	}
	if got := FillRuleEvenOdd.String(); got != "EvenOdd" {
		t.Errorf("String() = %q, want EvenOdd", got)
	}
}

func assertElements(t *testing.T, p *Path, want []Element) {
	t.Helper()
	got := p.Elements()
	if len(got) != len(want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func nearRectTol(a, b Rect, tol float64) bool {
	return math.Abs(a.MinX()-b.MinX()) <= tol && math.Abs(a.MinY()-b.MinY()) <= tol &&
		math.Abs(a.MaxX()-b.MaxX()) <= tol && math.Abs(a.MaxY()-b.MaxY()) <= tol
}
