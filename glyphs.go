package glyphs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"

	"github.com/gogpu/glyphs/icontable"
	"github.com/gogpu/glyphs/internal/surface"
	"github.com/gogpu/glyphs/symbols"
	"github.com/gogpu/glyphs/text"
)

// Glyphs renders icons by name. It is created once with New and shared;
// all methods are safe for concurrent use.
type Glyphs struct {
	config   Config
	table    *icontable.Table
	symbols  symbols.Library
	registry *text.Registry
	shaper   text.Shaper
	pool     *surface.Pool
	scale    float64
	tint     color.Color

	// regErr is the non-fatal font registration failure, if any.
	regErr error
}

// New initializes glyphs: it loads the icon font and registers it with
// the font registry.
//
// A missing font file is returned as an error wrapping
// ErrFontAssetNotFound. A font that is found but cannot be registered
// (bad data, family taken by a different font) is not an error: it is
// logged, kept in RegistrationErr, and icon-font lookups simply miss.
// Calling New again with the same font on the same registry succeeds
// without registering it twice.
func New(opts ...Option) (*Glyphs, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src, err := o.loadFont()
	var fontErr error
	if err != nil {
		if !errors.Is(err, text.ErrInvalidFont) && !errors.Is(err, text.ErrEmptyFontData) {
			return nil, err
		}
		fontErr = err
	}

	shaper := o.shaper
	if shaper == nil {
		if shaper, err = text.ShaperByName(o.config.Shaper); err != nil {
			return nil, fmt.Errorf("glyphs: %w", err)
		}
	}

	scale := o.scale
	if scale <= 0 {
		scale = o.config.DeviceScale
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("glyphs: invalid device scale %v", scale)
	}

	g := &Glyphs{
		config:   o.config,
		table:    o.table,
		symbols:  o.symbols,
		registry: o.registry,
		shaper:   shaper,
		pool:     surface.DefaultPool(),
		scale:    scale,
		tint:     o.tint,
	}
	if g.symbols == nil {
		g.symbols = symbols.Empty
	}
	g.registerIconFont(src, fontErr)
	return g, nil
}

// loadFont opens the icon font from the first configured source.
// A missing file is ErrFontAssetNotFound. Unparsable data is returned as
// the text error so New can treat it as a registration failure.
func (o *options) loadFont() (*text.FontSource, error) {
	var (
		src   *text.FontSource
		err   error
		where string
	)
	switch {
	case o.fontData != nil:
		where = "font data"
		src, err = text.NewFontSource(o.fontData)
	case o.fontFS != nil:
		where = o.fontPath
		src, err = text.NewFontSourceFromFS(o.fontFS, o.fontPath)
	case o.config.FontPath != "":
		where = o.config.FontPath
		src, err = text.NewFontSourceFromFile(o.config.FontPath)
	default:
		return nil, fmt.Errorf("%w: no font source configured", ErrFontAssetNotFound)
	}
	switch {
	case err == nil:
		return src, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFontAssetNotFound, where)
	case errors.Is(err, text.ErrInvalidFont), errors.Is(err, text.ErrEmptyFontData):
		return nil, fmt.Errorf("glyphs: load icon font %s: %w", where, err)
	default:
		return nil, fmt.Errorf("glyphs: read icon font %s: %w", where, err)
	}
}

// registerIconFont registers src with the registry. Failure is logged
// and recorded, never returned. Registering the same font bytes again
// under its family is treated as already done.
func (g *Glyphs) registerIconFont(src *text.FontSource, loadErr error) {
	if loadErr != nil {
		g.regErr = loadErr
		Logger().Warn("glyphs: icon font registration failed", "err", loadErr)
		return
	}

	family := src.Name()
	err := g.registry.RegisterSource(family, src)
	switch {
	case err == nil:
		Logger().Info("glyphs: icon font registered", "family", family)
	case errors.Is(err, text.ErrFamilyRegistered) && g.sameFont(family, src):
		Logger().Debug("glyphs: icon font already registered", "family", family)
	default:
		g.regErr = err
		Logger().Warn("glyphs: icon font registration failed",
			"family", family, "err", err)
		return
	}
	if family != g.config.FontFamily {
		Logger().Warn("glyphs: registered family differs from configured family",
			"registered", family, "configured", g.config.FontFamily)
	}
}

// sameFont reports whether family is registered with the bytes of src.
func (g *Glyphs) sameFont(family string, src *text.FontSource) bool {
	cur, ok := g.registry.Source(family)
	return ok && bytes.Equal(cur.Data(), src.Data())
}

// RegistrationErr returns the font registration failure recorded by New,
// or nil if the icon font was registered.
func (g *Glyphs) RegistrationErr() error {
	return g.regErr
}

// Config returns the configuration the handle was built with.
func (g *Glyphs) Config() Config {
	return g.config
}

// Table returns the icon name table.
func (g *Glyphs) Table() *icontable.Table {
	return g.table
}

// Symbols returns the symbol library.
func (g *Glyphs) Symbols() symbols.Library {
	return g.symbols
}

// Scale returns the pixels per point images are rendered at.
func (g *Glyphs) Scale() float64 {
	return g.scale
}
