package glyphs

import "errors"

// Sentinel errors for glyphs.
var (
	// ErrFontAssetNotFound is returned by New when the icon font file
	// cannot be located. It means the application was packaged without
	// its font, so callers usually treat it as fatal.
	ErrFontAssetNotFound = errors.New("glyphs: icon font asset not found")

	// ErrInvalidSize is returned for sizes that are not positive and
	// finite, or that exceed the configured maximum.
	ErrInvalidSize = errors.New("glyphs: invalid size")

	// ErrInvalidMode is returned when parsing an unknown mode name.
	ErrInvalidMode = errors.New("glyphs: invalid mode")
)
