package glyphs

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphs/icontable"
	"github.com/gogpu/glyphs/internal/surface"
	"github.com/gogpu/glyphs/symbols"
	"github.com/gogpu/glyphs/text"
)

func TestNewMissingFontAsset(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"missing in fs", []Option{WithFontFS(fstest.MapFS{}, "fonts/FontAwesome.ttf")}},
		{"missing on disk", []Option{WithConfig(Config{FontPath: filepath.Join(t.TempDir(), "FontAwesome.ttf")})}},
		{"no source", []Option{WithConfig(Config{})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(append(tt.opts, WithRegistry(text.NewRegistry()))...)
			if !errors.Is(err, ErrFontAssetNotFound) {
				t.Errorf("New error = %v, want ErrFontAssetNotFound", err)
			}
			if g != nil {
				t.Error("New returned a handle alongside a fatal error")
			}
		})
	}
}

func TestNewFromFS(t *testing.T) {
	fsys := fstest.MapFS{"fonts/icons.ttf": {Data: goregular.TTF}}
	reg := text.NewRegistry()
	g, err := New(WithFontFS(fsys, "fonts/icons.ttf"), WithRegistry(reg), WithFontFamily("Go"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.RegistrationErr() != nil {
		t.Errorf("RegistrationErr() = %v", g.RegistrationErr())
	}
	if _, ok := reg.Source("Go"); !ok {
		t.Error("font not registered in the supplied registry")
	}
}

func TestNewFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.FontPath = path
	cfg.FontFamily = "Go"

	g, err := New(WithConfig(cfg), WithRegistry(text.NewRegistry()),
		WithTable(icontable.New(map[string]string{"home": "H"})))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if res := mustResolve(t, g, "home", ModeIconFont, 24); !res.Found() {
		t.Error("home not rendered from a font loaded by path")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"unknown shaper", []Option{WithConfig(Config{Shaper: "coretext", DeviceScale: 1})}},
		{"zero device scale", []Option{WithConfig(Config{DeviceScale: 0})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append(tt.opts, WithFontData(goregular.TTF), WithRegistry(text.NewRegistry()))
			if _, err := New(opts...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRegistrationFailureIsNonFatal(t *testing.T) {
	h := captureLogs(t)
	lib := newFakeLibrary("home")

	g, err := New(
		WithFontData([]byte("this is not a font")),
		WithRegistry(text.NewRegistry()),
		WithTable(icontable.New(map[string]string{"home": "H"})),
		WithSymbols(lib),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !errors.Is(g.RegistrationErr(), text.ErrInvalidFont) {
		t.Errorf("RegistrationErr() = %v, want text.ErrInvalidFont", g.RegistrationErr())
	}
	if h.count("glyphs: icon font registration failed") != 1 {
		t.Error("registration failure was not logged")
	}

	// Icon-font lookups miss, the symbol path still works.
	if res := mustResolve(t, g, "home", ModeIconFont, 32); res.Found() {
		t.Error("icon font path found a glyph without a registered font")
	}
	if res := mustResolve(t, g, "home", ModeAuto, 32); res.Backend() != ModeSystemSymbol {
		t.Errorf("Auto backend = %v, want system symbol fallback", res.Backend())
	}
}

func TestRepeatedRegistration(t *testing.T) {
	h := captureLogs(t)
	reg := text.NewRegistry()
	first := newTestGlyphs(t, nil, WithRegistry(reg))

	second, err := New(WithFontData(goregular.TTF), WithRegistry(reg), WithFontFamily("Go"),
		WithTable(icontable.New(map[string]string{"home": "H"})))
	if err != nil {
		t.Fatalf("second New failed: %v", err)
	}
	if err := second.RegistrationErr(); err != nil {
		t.Errorf("RegistrationErr() = %v, want nil for the same font", err)
	}
	if h.count("glyphs: icon font registration failed") != 0 {
		t.Error("re-registering the same font was logged as a failure")
	}
	if h.count("glyphs: icon font registered") != 1 {
		t.Error("the font should be registered exactly once")
	}
	if len(reg.Families()) != 1 {
		t.Errorf("Families() = %v, want one entry", reg.Families())
	}

	a := mustResolve(t, first, "home", ModeIconFont, 32)
	b := mustResolve(t, second, "home", ModeIconFont, 32)
	if !a.Found() || !b.Found() || !samePixels(a.Image(), b.Image()) {
		t.Error("handles sharing a registry should render the same glyph")
	}
}

func TestFamilyCollision(t *testing.T) {
	h := captureLogs(t)
	reg := text.NewRegistry()
	mono, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.RegisterSource("Go", mono); err != nil {
		t.Fatal(err)
	}

	g, err := New(WithFontData(goregular.TTF), WithRegistry(reg), WithFontFamily("Go"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !errors.Is(g.RegistrationErr(), text.ErrFamilyRegistered) {
		t.Errorf("RegistrationErr() = %v, want ErrFamilyRegistered", g.RegistrationErr())
	}
	if h.count("glyphs: icon font registration failed") != 1 {
		t.Error("a different font under a taken family should be logged")
	}
	if src, _ := reg.Source("Go"); src != mono {
		t.Error("collision replaced the registered source")
	}
}

func TestFamilyMismatch(t *testing.T) {
	h := captureLogs(t)
	g, err := New(WithFontData(goregular.TTF), WithRegistry(text.NewRegistry()),
		WithTable(icontable.New(map[string]string{"home": "H"})), WithSymbols(nil))
	if err != nil {
		t.Fatal(err)
	}
	if g.RegistrationErr() != nil {
		t.Fatalf("RegistrationErr() = %v", g.RegistrationErr())
	}
	if h.count("glyphs: registered family differs from configured family") != 1 {
		t.Error("family mismatch was not logged")
	}
	if res := mustResolve(t, g, "home", ModeAuto, 32); res.Found() {
		t.Error("glyph found although the configured family is not registered")
	}
}

func TestAccessors(t *testing.T) {
	tbl := icontable.New(map[string]string{"home": "H"})
	g := newTestGlyphs(t, symbols.Material(), WithTable(tbl), WithScale(2))
	if g.Table() != tbl {
		t.Error("Table() did not return the configured table")
	}
	if g.Symbols() != symbols.Library(symbols.Material()) {
		t.Error("Symbols() did not return the configured library")
	}
	if g.Scale() != 2 {
		t.Errorf("Scale() = %v, want 2", g.Scale())
	}
	if g.Config().FontFamily != "Go" {
		t.Errorf("Config().FontFamily = %q, want Go", g.Config().FontFamily)
	}
	if g.pool != surface.DefaultPool() {
		t.Error("handle should render on the shared surface pool")
	}
}

func TestMaterialFallback(t *testing.T) {
	g := newTestGlyphs(t, symbols.Material())
	res := mustResolve(t, g, "gear", ModeAuto, 32)
	if !res.Found() || res.Backend() != ModeSystemSymbol {
		t.Fatalf("gear: found %v via %v", res.Found(), res.Backend())
	}
	if inkBounds(res.Image().NRGBA).Empty() {
		t.Error("Material gear rendered empty")
	}
}

// TestDefaultRegistersOnce exercises the process-wide handle. Default is
// initialized at most once per process, so with -count>1 later runs see
// the handle built by the first one.
func TestDefaultRegistersOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLYPHS_FONT_PATH", path)
	t.Setenv("GLYPHS_FONT_FAMILY", "Go")
	h := captureLogs(t)

	const n = 16
	handles := make([]*Glyphs, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := Default()
			if err != nil {
				t.Errorf("Default failed: %v", err)
				return
			}
			handles[i] = g
		}()
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if handles[i] != handles[0] {
			t.Fatal("Default returned different handles")
		}
	}

	for range 5 {
		if _, err := CreateRawImage("home", ModeAuto, 16); err != nil {
			t.Fatalf("CreateRawImage failed: %v", err)
		}
		if _, _, err := CreateImage("gear", ModeSystemSymbol, 16); err != nil {
			t.Fatalf("CreateImage failed: %v", err)
		}
	}

	if got := h.count("glyphs: icon font registered"); got > 1 {
		t.Errorf("icon font registered %d times, want at most once", got)
	}
	if h.count("glyphs: icon font registration failed") != 0 {
		t.Error("repeated use attempted a second registration")
	}
	if _, ok := text.SharedRegistry().Source("Go"); !ok {
		t.Error("Default did not register the font in the shared registry")
	}
}
