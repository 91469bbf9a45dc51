package text

import (
	"fmt"
	"sync"
)

// Shaper measures how far a string advances the pen.
// Implementations:
//   - BuiltinShaper: per-glyph advances plus pair kerning (default)
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Advance returns the horizontal advance of s set with face.
	Advance(s string, face *Face) float64
}

// Shaper names accepted by ShaperByName.
const (
	ShaperBuiltin  = "builtin"
	ShaperHarfBuzz = "harfbuzz"
)

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by faces without their own.
// Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// ShaperByName returns a new shaper for one of the Shaper* names.
// The empty name selects the builtin shaper.
func ShaperByName(name string) (Shaper, error) {
	switch name {
	case "", ShaperBuiltin:
		return &BuiltinShaper{}, nil
	case ShaperHarfBuzz:
		return NewGoTextShaper(), nil
	default:
		return nil, fmt.Errorf("text: unknown shaper %q", name)
	}
}

// BuiltinShaper sums glyph advances and applies kern-table adjustments.
// It handles the single-glyph strings icon fonts use without any shaping
// engine. BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(s string, face *Face) float64 {
	parsed := face.Source().Parsed()
	if parsed == nil || s == "" {
		return 0
	}

	var (
		total float64
		prev  uint16
		first = true
	)
	for _, r := range s {
		gid := parsed.GlyphIndex(r)
		if !first {
			total += parsed.Kern(prev, gid, face.size, face.config.hinting)
		}
		total += parsed.GlyphAdvance(gid, face.size, face.config.hinting)
		prev = gid
		first = false
	}
	return total
}
