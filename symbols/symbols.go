// Package symbols provides named vector symbols, the stand-in for a
// platform's built-in symbol library.
//
// Two libraries ship with the package:
//
//   - Material: SF Symbols style names backed by the Material Design
//     icons in golang.org/x/exp/shiny, drawn with iconvg
//   - SVG: a fixed set of SVG files from an fs.FS, drawn with oksvg
//
// Chain combines libraries; the first library that knows a name wins.
package symbols

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"maps"
	"slices"
)

// ErrEmptyRect is returned when a symbol is drawn into an empty rectangle.
var ErrEmptyRect = errors.New("symbols: empty target rectangle")

// Symbol is a vector symbol that can be drawn at any size.
type Symbol interface {
	// Name returns the name the symbol was looked up by.
	Name() string

	// Draw renders the symbol scaled to fill r, composited over dst in c.
	Draw(dst draw.Image, r image.Rectangle, c color.Color) error
}

// Library resolves symbol names.
// Implementations must be safe for concurrent use.
type Library interface {
	// Symbol returns the symbol registered under name.
	// It reports false when the library has no such symbol.
	Symbol(name string) (Symbol, bool)
}

// Chain returns a Library that asks each lib in order.
// Nil entries are skipped.
func Chain(libs ...Library) Library {
	out := make(chain, 0, len(libs))
	for _, l := range libs {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

type chain []Library

func (c chain) Symbol(name string) (Symbol, bool) {
	for _, l := range c {
		if s, ok := l.Symbol(name); ok {
			return s, true
		}
	}
	return nil, false
}

// Names returns the sorted union of names from the chained libraries
// that can list theirs.
func (c chain) Names() []string {
	seen := make(map[string]bool)
	for _, l := range c {
		if n, ok := l.(interface{ Names() []string }); ok {
			for _, name := range n.Names() {
				seen[name] = true
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Empty is a Library with no symbols.
var Empty Library = chain(nil)
