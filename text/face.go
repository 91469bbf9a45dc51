package text

// Face is a FontSource at one size.
// Face is cheap to create and safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Hinting returns the hinting mode of this face.
func (f *Face) Hinting() Hinting {
	return f.config.hinting
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size, f.config.hinting)

	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  fm.Ascent,
		Descent: descent,
		LineGap: fm.LineGap,
	}
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	return parsed != nil && parsed.GlyphIndex(r) != 0
}

// HasGlyphs reports whether the font has a glyph for every rune in s.
func (f *Face) HasGlyphs(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !f.HasGlyph(r) {
			return false
		}
	}
	return true
}

// Advance returns the advance width of s using the face's shaper.
func (f *Face) Advance(s string) float64 {
	return f.shaper().Advance(s, f)
}

func (f *Face) shaper() Shaper {
	if f.config.shaper != nil {
		return f.config.shaper
	}
	return GetShaper()
}
