package cg

import (
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestDefaultRasterOptions(t *testing.T) {
	o := defaultRasterOptions()
	if o.rule != FillRuleWinding {
		t.Errorf("rule = %v, want winding", o.rule)
	}
	if !o.transform.IsIdentity() {
		t.Errorf("transform = %v, want identity", o.transform)
	}
	if o.offset != (Point{}) {
		t.Errorf("offset = %v, want zero", o.offset)
	}
}

func TestRasterOptions(t *testing.T) {
	o := defaultRasterOptions()
	for _, opt := range []RasterOption{
		WithFillRule(FillRuleEvenOdd),
		WithTransform(MakeScale(2, 3)),
		WithOffset(4, -1),
	} {
		opt(&o)
	}

	if o.rule != FillRuleEvenOdd {
		t.Errorf("rule = %v, want even-odd", o.rule)
	}
	if o.transform != MakeScale(2, 3) {
		t.Errorf("transform = %v, want scale(2, 3)", o.transform)
	}
	if o.offset != Pt(4, -1) {
		t.Errorf("offset = %v, want (4, -1)", o.offset)
	}
}

func TestTextOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []TextOption
		language string
		dir      di.Direction
		auto     bool
	}{
		{"default", nil, "en", di.DirectionLTR, true},
		{"language", []TextOption{WithLanguage("ar")}, "ar", di.DirectionLTR, true},
		{"forced rtl", []TextOption{WithDirection(di.DirectionRTL)}, "en", di.DirectionRTL, false},
		{"forced ltr", []TextOption{WithDirection(di.DirectionLTR)}, "en", di.DirectionLTR, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultTextOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.language != tt.language {
				t.Errorf("language = %q, want %q", o.language, tt.language)
			}
			if o.auto != tt.auto {
				t.Errorf("auto = %v, want %v", o.auto, tt.auto)
			}
			if !o.auto && o.direction != tt.dir {
				t.Errorf("direction = %v, want %v", o.direction, tt.dir)
			}
		})
	}
}

func TestFontOptions(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"positive", 64, 64},
		{"zero", 0, 0},
		{"negative ignored", -3, defaultGlyphCacheSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultFontOptions()
			WithGlyphCacheSize(tt.n)(&o)
			if o.glyphCacheSize != tt.want {
				t.Errorf("glyphCacheSize = %d, want %d", o.glyphCacheSize, tt.want)
			}
		})
	}
}
