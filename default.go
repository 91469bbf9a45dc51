package glyphs

import "sync"

// defaultGlyphs builds the process-wide handle on first use. Concurrent
// first calls block until the single initialization finishes.
var defaultGlyphs = sync.OnceValues(func() (*Glyphs, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(WithConfig(cfg))
})

// Default returns the process-wide handle, initialized from the
// environment (see Config) on the first call. The icon font is registered
// exactly once for the process. An initialization error, such as
// ErrFontAssetNotFound, is returned by every call.
func Default() (*Glyphs, error) {
	return defaultGlyphs()
}

// CreateRawImage renders name with the Default handle.
// A size of 0 selects the configured default size.
func CreateRawImage(name string, mode Mode, size float64) (Result, error) {
	g, err := Default()
	if err != nil {
		return NotFound, err
	}
	return g.CreateRawImage(name, mode, size)
}

// CreateImage renders name with the Default handle and wraps it for UI use.
// It reports false when nothing was found.
func CreateImage(name string, mode Mode, size float64) (*Image, bool, error) {
	g, err := Default()
	if err != nil {
		return nil, false, err
	}
	return g.CreateImage(name, mode, size)
}
