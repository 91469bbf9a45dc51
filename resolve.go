package glyphs

import (
	"fmt"
	"math"

	"github.com/gogpu/glyphs/internal/surface"
)

// Resolve renders name at size points using the backends mode allows.
//
//   - ModeIconFont: icon font only; its result is returned as is
//   - ModeSystemSymbol: symbol library only; its result is returned as is
//   - ModeAuto: icon font first, then the symbol library
//
// A name no allowed backend knows yields NotFound and a nil error. The
// error is reserved for invalid sizes (ErrInvalidSize) and draw failures.
func (g *Glyphs) Resolve(name string, mode Mode, size float64) (Result, error) {
	if err := g.checkSize(size); err != nil {
		return NotFound, err
	}

	var (
		res Result
		err error
	)
	switch mode {
	case ModeIconFont:
		res, err = g.renderIconFont(name, size)
	case ModeSystemSymbol:
		res, err = g.renderSymbol(name, size)
	case ModeAuto:
		res, err = g.renderIconFont(name, size)
		if err == nil && !res.Found() {
			res, err = g.renderSymbol(name, size)
		}
	default:
		res = NotFound
	}
	if err != nil {
		return NotFound, err
	}

	Logger().Debug("glyphs: resolve",
		"name", name, "mode", mode, "size", size,
		"found", res.Found(), "backend", res.Backend())
	return res, nil
}

// checkSize rejects sizes the rasterizer cannot honor.
func (g *Glyphs) checkSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if g.config.MaxSize > 0 && size > g.config.MaxSize {
		return fmt.Errorf("%w: %v exceeds maximum %v", ErrInvalidSize, size, g.config.MaxSize)
	}
	if _, err := surface.PixelSide(size, g.scale); err != nil {
		return fmt.Errorf("%w: %v points at scale %v: %w", ErrInvalidSize, size, g.scale, err)
	}
	return nil
}

// CreateRawImage resolves name and returns the bitmap result.
// A size of 0 selects Config.DefaultSize.
func (g *Glyphs) CreateRawImage(name string, mode Mode, size float64) (Result, error) {
	return g.Resolve(name, mode, g.sizeOrDefault(size))
}

// CreateImage resolves name and wraps the bitmap for UI use.
// It reports false when nothing was found.
// A size of 0 selects Config.DefaultSize.
func (g *Glyphs) CreateImage(name string, mode Mode, size float64) (*Image, bool, error) {
	res, err := g.CreateRawImage(name, mode, size)
	if err != nil || !res.Found() {
		return nil, false, err
	}
	return NewImage(res.Image()), true, nil
}

func (g *Glyphs) sizeOrDefault(size float64) float64 {
	if size == 0 {
		if g.config.DefaultSize > 0 {
			return g.config.DefaultSize
		}
		return DefaultSize
	}
	return size
}
