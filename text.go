package cg

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/cg/internal/cache"
)

// GlyphID is the index of a glyph in a font.
type GlyphID uint16

// glyphKey identifies a cached outline.
type glyphKey struct {
	gid  GlyphID
	ppem fixed.Int26_6
}

// Font is a parsed TrueType or OpenType font used to convert text into
// path outlines.
//
// Font is safe for concurrent use. Outlines are cached per glyph and size;
// see WithGlyphCacheSize.
type Font struct {
	outlines *sfnt.Font
	// shaping is nil when the font could not be loaded for shaping; text
	// is then laid out from the cmap and advances only.
	shaping *gtfont.Font

	mu  sync.Mutex // guards buf
	buf sfnt.Buffer

	glyphs *cache.LRU[glyphKey, *Path]
}

// NewFont parses TrueType or OpenType font data.
func NewFont(data []byte, opts ...FontOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	o := defaultFontOptions()
	for _, opt := range opts {
		opt(&o)
	}

	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cg: failed to parse font: %w", err)
	}
	f := &Font{
		outlines: outlines,
		glyphs:   cache.New[glyphKey, *Path](o.glyphCacheSize),
	}
	f.glyphs.OnEvict(func(_ glyphKey, p *Path) { p.Release() })

	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		Logger().Warn("cg: font cannot be shaped", "err", err)
	} else {
		f.shaping = face.Font
	}

	Logger().Debug("cg: font parsed", "name", f.Name(), "glyphs", outlines.NumGlyphs())
	return f, nil
}

// Name returns the font's family name, or "" if it has none.
func (f *Font) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.outlines.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// UnitsPerEm returns the number of font units per em.
func (f *Font) UnitsPerEm() int {
	return int(f.outlines.UnitsPerEm())
}

// GlyphIndex returns the glyph that the font maps r to. It reports false
// if the font has no glyph for r.
func (f *Font) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, err := f.outlines.GlyphIndex(&f.buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// GlyphAdvance returns the unhinted horizontal advance of gid at size.
func (f *Font) GlyphAdvance(gid GlyphID, size float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.outlines.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), toFixed(size), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("cg: glyph %d advance: %w", gid, err)
	}
	return fromFixed(adv), nil
}

// ClearCache drops every cached glyph outline.
func (f *Font) ClearCache() {
	f.glyphs.Clear()
}

// toFixed converts a float64 size to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts a fixed.Int26_6 value to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fromFixedPoint(p fixed.Point26_6) Point {
	return Pt(fromFixed(p.X), fromFixed(p.Y))
}

// glyph returns the outline of gid at ppem with an extra reference that
// the caller must release. The outline is in y-down coordinates with the
// glyph origin at (0, 0).
func (f *Font) glyph(gid GlyphID, ppem fixed.Int26_6) *Path {
	return f.glyphs.GetOrCreate(glyphKey{gid, ppem}, func() *Path {
		return f.loadGlyph(gid, ppem)
	}, func(p *Path) {
		p.Retain()
	})
}

// loadGlyph decodes the outline of gid. Glyphs that fail to decode are
// cached as empty paths.
func (f *Font) loadGlyph(gid GlyphID, ppem fixed.Int26_6) *Path {
	Logger().Debug("cg: glyph cache miss", "gid", gid, "size", fromFixed(ppem))

	f.mu.Lock()
	segs, err := f.outlines.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	f.mu.Unlock()

	m := NewMutablePath()
	if err != nil {
		Logger().Debug("cg: glyph has no outline", "gid", gid, "err", err)
		return m.freeze()
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			m.CloseSubpath()
			m.append(MoveTo{Point: fromFixedPoint(s.Args[0])})
		case sfnt.SegmentOpLineTo:
			m.append(LineTo{Point: fromFixedPoint(s.Args[0])})
		case sfnt.SegmentOpQuadTo:
			m.append(QuadTo{
				Control: fromFixedPoint(s.Args[0]),
				Point:   fromFixedPoint(s.Args[1]),
			})
		case sfnt.SegmentOpCubeTo:
			m.append(CubicTo{
				Control1: fromFixedPoint(s.Args[0]),
				Control2: fromFixedPoint(s.Args[1]),
				Point:    fromFixedPoint(s.Args[2]),
			})
		}
	}
	m.CloseSubpath()
	return m.freeze()
}

// AddGlyph appends the outline of gid at size with its origin at origin,
// mapped through t. Glyph coordinates grow downwards from the baseline,
// matching image space.
func (m *MutablePath) AddGlyph(t *AffineTransform, f *Font, gid GlyphID, size float64, origin Point) error {
	m.live()
	if size <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidSize, size)
	}
	m.addGlyph(t, f, gid, toFixed(size), origin)
	return nil
}

func (m *MutablePath) addGlyph(t *AffineTransform, f *Font, gid GlyphID, ppem fixed.Int26_6, origin Point) {
	g := f.glyph(gid, ppem)
	defer g.Release()

	at := MakeTranslation(origin.X, origin.Y)
	if t != nil {
		at = at.Concat(*t)
	}
	for _, e := range g.elements {
		m.append(e.transform(&at))
	}
}

// shapedGlyph is a glyph positioned relative to the start of its run.
type shapedGlyph struct {
	gid     GlyphID
	x, y    float64
	advance float64
}

// textRun is a piece of text with a single direction.
type textRun struct {
	runes []rune
	dir   di.Direction
}

var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// AddText appends the outlines of text set in f at size, mapped through
// t. The baseline starts at origin and the pen advances towards +x; glyph
// coordinates grow downwards as in image space. Text is split into
// directional runs with the Unicode bidirectional algorithm, runs are
// placed in visual order and each run is shaped with HarfBuzz.
//
// AddText returns the total advance of the text.
func (m *MutablePath) AddText(t *AffineTransform, f *Font, size float64, origin Point, text string, opts ...TextOption) (float64, error) {
	m.live()
	if size <= 0 {
		return 0, fmt.Errorf("%w: font size %v", ErrInvalidSize, size)
	}
	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ppem := toFixed(size)
	pen := origin
	for _, run := range splitRuns(text, o) {
		glyphs := f.shape(run, ppem, o.language)
		for _, g := range glyphs {
			m.addGlyph(t, f, g.gid, ppem, Pt(pen.X+g.x, pen.Y+g.y))
		}
		for _, g := range glyphs {
			pen.X += g.advance
		}
	}
	return pen.X - origin.X, nil
}

// splitRuns divides text into directional runs in visual order, left to
// right. Runs nested two levels deep, such as numbers inside right-to-left
// text in a left-to-right paragraph, stay in text order.
func splitRuns(text string, o textOptions) []textRun {
	if text == "" {
		return nil
	}
	if !o.auto {
		return []textRun{{runes: []rune(text), dir: o.direction}}
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []textRun{{runes: []rune(text), dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil {
		Logger().Debug("cg: bidi ordering failed", "err", err)
		return []textRun{{runes: []rune(text), dir: di.DirectionLTR}}
	}

	runs := make([]textRun, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, textRun{runes: []rune(r.String()), dir: dir})
	}
	// Ordering lists runs in text order.
	if paragraphDirection(text) == bidi.RightToLeft {
		slices.Reverse(runs)
	}
	return runs
}

// paragraphDirection returns the direction of the first strong character
// of text, or left to right if there is none.
func paragraphDirection(text string) bidi.Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.LeftToRight
}

// shape converts a run into positioned glyphs in visual order.
func (f *Font) shape(run textRun, ppem fixed.Int26_6, lang string) []shapedGlyph {
	if len(run.runes) == 0 {
		return nil
	}
	if f.shaping == nil {
		Logger().Warn("cg: text run laid out without shaping", "runes", len(run.runes))
		return f.layoutUnshaped(run, ppem)
	}

	input := shaping.Input{
		Text:      run.runes,
		RunStart:  0,
		RunEnd:    len(run.runes),
		Direction: run.dir,
		// Face is not safe for concurrent use; Font is.
		Face:     gtfont.NewFace(f.shaping),
		Size:     ppem,
		Script:   runScript(run.runes),
		Language: language.NewLanguage(lang),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]shapedGlyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		glyphs[i] = shapedGlyph{
			gid: GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			x:   x + fromFixed(g.XOffset),
			// HarfBuzz offsets are y-up.
			y:       -fromFixed(g.YOffset),
			advance: fromFixed(g.Advance),
		}
		x += glyphs[i].advance
	}
	return glyphs
}

// layoutUnshaped maps runes through the cmap and advances by the unhinted
// glyph advances.
func (f *Font) layoutUnshaped(run textRun, ppem fixed.Int26_6) []shapedGlyph {
	runes := run.runes
	if run.dir == di.DirectionRTL {
		runes = slices.Clone(runes)
		slices.Reverse(runes)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	glyphs := make([]shapedGlyph, 0, len(runes))
	var x float64
	for _, r := range runes {
		gid, err := f.outlines.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		adv, err := f.outlines.GlyphAdvance(&f.buf, gid, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		glyphs = append(glyphs, shapedGlyph{gid: GlyphID(gid), x: x, advance: fromFixed(adv)})
		x += fromFixed(adv)
	}
	return glyphs
}

// runScript returns the script of the first rune that is not whitespace.
func runScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
