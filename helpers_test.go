package glyphs

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphs/icontable"
	"github.com/gogpu/glyphs/symbols"
	"github.com/gogpu/glyphs/text"
)

// fakeLibrary is a symbols.Library that records every lookup.
type fakeLibrary struct {
	mu    sync.Mutex
	names map[string]bool
	calls []string
}

func newFakeLibrary(names ...string) *fakeLibrary {
	f := &fakeLibrary{names: make(map[string]bool)}
	for _, n := range names {
		f.names[n] = true
	}
	return f
}

func (f *fakeLibrary) Symbol(name string) (symbols.Symbol, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if !f.names[name] {
		return nil, false
	}
	return fakeSymbol{name: name}, true
}

func (f *fakeLibrary) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// fakeSymbol fills the middle half of the target rectangle.
type fakeSymbol struct {
	name string
}

func (s fakeSymbol) Name() string { return s.name }

func (s fakeSymbol) Draw(dst draw.Image, r image.Rectangle, c color.Color) error {
	inset := r.Inset(r.Dx() / 4)
	draw.Draw(dst, inset, image.NewUniform(c), image.Point{}, draw.Over)
	return nil
}

// newTestGlyphs builds a handle over the Go font registered as "Go" in a
// private registry, with table {"home": "H"} unless overridden.
func newTestGlyphs(t *testing.T, lib symbols.Library, opts ...Option) *Glyphs {
	t.Helper()
	base := []Option{
		WithFontData(goregular.TTF),
		WithFontFamily("Go"),
		WithRegistry(text.NewRegistry()),
		WithTable(icontable.New(map[string]string{"home": "H"})),
		WithSymbols(lib),
	}
	g, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := g.RegistrationErr(); err != nil {
		t.Fatalf("icon font not registered: %v", err)
	}
	return g
}

func mustResolve(t *testing.T, g *Glyphs, name string, mode Mode, size float64) Result {
	t.Helper()
	res, err := g.Resolve(name, mode, size)
	if err != nil {
		t.Fatalf("Resolve(%q, %v, %v) failed: %v", name, mode, size, err)
	}
	return res
}

func samePixels(a, b *RenderedImage) bool {
	if a.Bounds() != b.Bounds() || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

// inkBounds returns the bounding box of non-transparent pixels.
func inkBounds(img *image.NRGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

// recordingHandler collects log messages.
type recordingHandler struct {
	mu   sync.Mutex
	msgs []string
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, r.Message)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func captureLogs(t *testing.T) *recordingHandler {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	return h
}
