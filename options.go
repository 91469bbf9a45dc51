package glyphs

import (
	"image/color"
	"io/fs"

	"github.com/gogpu/glyphs/icontable"
	"github.com/gogpu/glyphs/symbols"
	"github.com/gogpu/glyphs/text"
)

// Option configures a Glyphs handle during New.
//
// Example:
//
//	// Font embedded in the binary, custom symbol set in front of Material
//	g, err := glyphs.New(
//	    glyphs.WithFontData(fontAwesomeTTF),
//	    glyphs.WithSymbols(symbols.Chain(appSymbols, symbols.Material())),
//	    glyphs.WithScale(3),
//	)
type Option func(*options)

type options struct {
	config   Config
	fontData []byte
	fontFS   fs.FS
	fontPath string
	table    *icontable.Table
	symbols  symbols.Library
	registry *text.Registry
	shaper   text.Shaper
	scale    float64
	tint     color.Color
}

func defaultOptions() options {
	return options{
		config:   DefaultConfig(),
		table:    icontable.FontAwesome(),
		symbols:  symbols.Material(),
		registry: text.SharedRegistry(),
		tint:     color.Black,
	}
}

// WithConfig replaces the base configuration.
// Options applied after it still take precedence.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithFontData supplies the icon font bytes directly, e.g. from go:embed.
func WithFontData(data []byte) Option {
	return func(o *options) {
		o.fontData = data
	}
}

// WithFontFS reads the icon font from path inside fsys.
func WithFontFS(fsys fs.FS, path string) Option {
	return func(o *options) {
		o.fontFS = fsys
		o.fontPath = path
	}
}

// WithFontFamily sets the family name the icon-font path looks up.
func WithFontFamily(family string) Option {
	return func(o *options) {
		o.config.FontFamily = family
	}
}

// WithTable sets the icon name table. The default is FontAwesome.
func WithTable(t *icontable.Table) Option {
	return func(o *options) {
		o.table = t
	}
}

// WithSymbols sets the symbol library. The default is symbols.Material.
// A nil library disables the symbol path.
func WithSymbols(lib symbols.Library) Option {
	return func(o *options) {
		o.symbols = lib
	}
}

// WithRegistry sets the font registry the icon font is registered in.
// The default is the process-scope text.SharedRegistry.
func WithRegistry(r *text.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithShaper sets the shaper used to measure glyph strings, overriding
// Config.Shaper.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithScale sets the pixels per point. A value of 0 selects
// Config.DeviceScale.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithTint sets the color glyphs and symbols are drawn in.
func WithTint(c color.Color) Option {
	return func(o *options) {
		o.tint = c
	}
}
