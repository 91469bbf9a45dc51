// Package glyphs renders named icons into bitmap images for mobile UIs.
//
// # Overview
//
// An icon is requested by name. glyphs looks the name up in an icon-font
// table (FontAwesome by default) and rasterizes the glyph centered in a
// square image. If the table has no such name, it can fall back to a
// built-in library of vector symbols.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphs"
//
//	// Initialize once at startup; a missing font file is reported here.
//	g, err := glyphs.New(glyphs.WithFontFS(assets, "fonts/FontAwesome.ttf"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := g.Resolve("home", glyphs.ModeAuto, 32)
//	if err != nil {
//	    return err // only for invalid sizes
//	}
//	if !res.Found() {
//	    return nil // unknown name: a normal outcome
//	}
//	img := res.Image() // 32x32 points, owned by the caller
//
// Applications that prefer a process-wide instance call Default, which
// initializes from GLYPHS_* environment variables on first use.
//
// # Modes
//
//   - ModeIconFont: icon font only
//   - ModeSystemSymbol: symbol library only
//   - ModeAuto: icon font first, symbol library on a miss
//
// # Architecture
//
// The module is organized into:
//   - glyphs: initialization, resolution policy, rasterization, public API
//   - text: font registry, faces, measuring and drawing strings
//   - symbols: named vector symbols (Material Design, SVG sets)
//   - icontable: icon name to codepoint tables
//   - internal/surface: pooled off-screen canvases
package glyphs
