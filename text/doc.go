// Package text is the font subsystem used by glyphs.
// It plays the role a platform font manager plays on a phone.
//
// The pipeline is split the same way a text stack usually is:
//
//   - FontSource: heavyweight, parsed TTF/OTF data, shared process-wide
//   - Face: lightweight view of a FontSource at one point size
//   - Registry: process-scope font manager keyed by family name
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//   - Shaper: measures a glyph string (builtin or go-text/typesetting)
//
// # Example usage
//
//	reg := text.NewRegistry()
//	family, err := reg.Register(data)
//	if err != nil {
//	    log.Printf("font not registered: %v", err)
//	}
//
//	face, err := reg.Face(family, 32)
//	if errors.Is(err, text.ErrFamilyNotFound) {
//	    return // nothing to draw
//	}
//	ext := text.Measure(face, "\uF015")
//	err = text.DrawString(dst, face, "\uF015", x, y+ext.Ascent, color.Black)
//
// Sizes are in pixels at 72 DPI, so one point equals one pixel before the
// caller applies its display scale.
package text
