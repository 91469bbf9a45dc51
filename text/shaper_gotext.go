package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// GoTextShaper measures strings with HarfBuzz shaping from
// go-text/typesetting. Icon fonts that build glyphs from ligatures
// (e.g. Material Icons, where "home" shapes to one glyph) need it.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font
// objects, which are read-only, and creates a font.Face per call because
// font.Face is not safe for concurrent use. HarfbuzzShaper instances are
// pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper.
// It falls back to BuiltinShaper when go-text cannot parse the font.
func (s *GoTextShaper) Advance(str string, face *Face) float64 {
	if str == "" || face == nil || face.Source() == nil {
		return 0
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return BuiltinShaper{}.Advance(str, face)
	}

	runes := []rune(str)
	dir := di.DirectionLTR
	if detectDirection(runes) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	var total float64
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	return total
}

// getOrCreateFont returns the cached go-text font.Font for source,
// parsing and caching it on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// detectDirection returns the direction of the first strong character.
// Private use area codepoints are class L, so icon glyphs shape LTR.
func detectDirection(runes []rune) Direction {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
