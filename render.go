package glyphs

import (
	"fmt"

	"github.com/gogpu/glyphs/internal/surface"
	"github.com/gogpu/glyphs/text"
)

// renderIconFont draws the table glyph for name centered in a size x size
// image. It returns NotFound when the name is not in the table or the
// icon font family is not registered.
func (g *Glyphs) renderIconFont(name string, size float64) (Result, error) {
	code, ok := g.table.Lookup(name)
	if !ok {
		return NotFound, nil
	}
	// Faces are sized in pixels so metrics match the canvas.
	face, err := g.registry.Face(g.config.FontFamily, size*g.scale, text.WithShaper(g.shaper))
	if err != nil {
		Logger().Debug("glyphs: icon font unavailable", "name", name, "err", err)
		return NotFound, nil
	}
	if !face.HasGlyphs(code) {
		Logger().Warn("glyphs: icon font has no glyph for table entry",
			"name", name, "family", g.config.FontFamily, "codepoint", fmt.Sprintf("%+q", code))
	}
	ext := text.Measure(face, code)

	s, err := surface.Begin(g.pool, size, g.scale)
	if err != nil {
		return NotFound, fmt.Errorf("glyphs: %w", err)
	}
	defer s.Release()

	side := float64(s.Pixels())
	x := (side - ext.Width) / 2
	y := (side - ext.Height) / 2
	if err := text.DrawString(s.Canvas(), face, code, x, y+ext.Ascent, g.tint); err != nil {
		return NotFound, fmt.Errorf("glyphs: draw %q: %w", name, err)
	}
	return g.snapshot(s, name, ModeIconFont)
}

// renderSymbol draws the library symbol for name filling a size x size
// image. It returns NotFound when the library has no such symbol.
func (g *Glyphs) renderSymbol(name string, size float64) (Result, error) {
	sym, ok := g.symbols.Symbol(name)
	if !ok {
		return NotFound, nil
	}

	s, err := surface.Begin(g.pool, size, g.scale)
	if err != nil {
		return NotFound, fmt.Errorf("glyphs: %w", err)
	}
	defer s.Release()

	canvas := s.Canvas()
	if err := sym.Draw(canvas, canvas.Bounds(), g.tint); err != nil {
		return NotFound, fmt.Errorf("glyphs: draw symbol %q: %w", name, err)
	}
	return g.snapshot(s, name, ModeSystemSymbol)
}

func (g *Glyphs) snapshot(s *surface.Surface, name string, backend Mode) (Result, error) {
	pix, err := s.Snapshot()
	if err != nil {
		return NotFound, fmt.Errorf("glyphs: %w", err)
	}
	return found(&RenderedImage{
		NRGBA:   pix,
		name:    name,
		size:    s.Size(),
		scale:   s.Scale(),
		backend: backend,
	}), nil
}
