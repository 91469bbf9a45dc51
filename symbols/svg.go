package symbols

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGLibrary serves symbols from SVG files.
// The symbol name is the file's base name without the .svg extension.
type SVGLibrary struct {
	data map[string][]byte
}

// NewSVGLibrary loads every *.svg file under fsys.
// The set is fixed after load. Every file must parse; the first failure
// is returned. Two files with the same base name are an error.
func NewSVGLibrary(fsys fs.FS) (*SVGLibrary, error) {
	l := &SVGLibrary{data: make(map[string][]byte)}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".svg" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if _, err := parseSVG(data); err != nil {
			return fmt.Errorf("symbols: %s: %w", p, err)
		}
		name := strings.TrimSuffix(path.Base(p), ".svg")
		if _, dup := l.data[name]; dup {
			return fmt.Errorf("symbols: duplicate symbol %q at %s", name, p)
		}
		l.data[name] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Symbol implements Library.
func (l *SVGLibrary) Symbol(name string) (Symbol, bool) {
	data, ok := l.data[name]
	if !ok {
		return nil, false
	}
	return svgSymbol{name: name, data: data}, true
}

// Names returns the symbol names in sorted order.
func (l *SVGLibrary) Names() []string {
	return slices.Sorted(maps.Keys(l.data))
}

func parseSVG(data []byte) (*oksvg.SvgIcon, error) {
	return oksvg.ReadIconStream(bytes.NewReader(data), oksvg.StrictErrorMode)
}

type svgSymbol struct {
	name string
	data []byte
}

func (s svgSymbol) Name() string { return s.name }

// Draw implements Symbol. The SVG is rasterized into a coverage mask and
// the mask is filled with c, so every symbol takes the requested tint
// regardless of the colors in the file.
func (s svgSymbol) Draw(dst draw.Image, r image.Rectangle, c color.Color) error {
	if r.Empty() {
		return ErrEmptyRect
	}
	// SvgIcon is mutated by SetTarget, so each draw parses its own copy.
	icon, err := parseSVG(s.data)
	if err != nil {
		return err
	}

	w, h := r.Dx(), r.Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))

	mask := image.NewNRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}
