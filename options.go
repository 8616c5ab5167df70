package cg

import "github.com/go-text/typesetting/di"

// RasterOption configures Rasterize.
//
// Example:
//
//	mask, err := cg.Rasterize(p, 256, 256,
//	    cg.WithFillRule(cg.FillRuleEvenOdd),
//	    cg.WithOffset(10, 10))
type RasterOption func(*rasterOptions)

type rasterOptions struct {
	rule      FillRule
	transform AffineTransform
	offset    Point
}

func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		rule:      FillRuleWinding,
		transform: IdentityTransform(),
	}
}

// WithFillRule selects the fill rule. The default is FillRuleWinding.
func WithFillRule(rule FillRule) RasterOption {
	return func(o *rasterOptions) {
		o.rule = rule
	}
}

// WithTransform maps the path through t before it is rasterized.
func WithTransform(t AffineTransform) RasterOption {
	return func(o *rasterOptions) {
		o.transform = t
	}
}

// WithOffset translates the path by (dx, dy) pixels after any transform.
func WithOffset(dx, dy float64) RasterOption {
	return func(o *rasterOptions) {
		o.offset = Pt(dx, dy)
	}
}

// TextOption configures AddText.
type TextOption func(*textOptions)

type textOptions struct {
	language  string
	direction di.Direction
	// auto picks the direction of each run from the bidi algorithm.
	auto bool
}

func defaultTextOptions() textOptions {
	return textOptions{
		language: "en",
		auto:     true,
	}
}

// WithLanguage sets the BCP 47 language tag used for shaping. The default
// is "en".
func WithLanguage(tag string) TextOption {
	return func(o *textOptions) {
		o.language = tag
	}
}

// WithDirection forces the text direction of every run instead of
// resolving it with the Unicode bidirectional algorithm.
func WithDirection(d di.Direction) TextOption {
	return func(o *textOptions) {
		o.direction = d
		o.auto = false
	}
}

// FontOption configures NewFont.
type FontOption func(*fontOptions)

type fontOptions struct {
	glyphCacheSize int
}

// defaultGlyphCacheSize is the number of glyph outlines a Font keeps.
const defaultGlyphCacheSize = 512

func defaultFontOptions() fontOptions {
	return fontOptions{glyphCacheSize: defaultGlyphCacheSize}
}

// WithGlyphCacheSize sets how many glyph outlines (per glyph and size)
// the font keeps. Zero disables the limit; negative values are ignored.
func WithGlyphCacheSize(n int) FontOption {
	return func(o *fontOptions) {
		if n >= 0 {
			o.glyphCacheSize = n
		}
	}
}
