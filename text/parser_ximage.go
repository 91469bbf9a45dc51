package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// faceDPI makes one point equal one pixel.
const faceDPI = 72

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, which is why each method allocates one.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), h.xHinting())
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), h.xHinting())
	if err != nil {
		// ErrNotFound is the common case: the font has no kern table.
		return 0
	}
	return fixedToFloat(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), h.xHinting())
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	return FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: -fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent),
	}
}

// NewFace implements ParsedFont.NewFace.
func (f *ximageParsedFont) NewFace(ppem float64, h Hinting) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     faceDPI,
		Hinting: h.xHinting(),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
