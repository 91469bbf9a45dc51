package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("text: invalid font data")

	// ErrFamilyRegistered is returned when a family name is registered twice.
	ErrFamilyRegistered = errors.New("text: font family already registered")

	// ErrFamilyNotFound is returned when a family name is not registered.
	ErrFamilyNotFound = errors.New("text: font family not registered")

	// ErrSourceClosed is returned when drawing with a closed FontSource.
	ErrSourceClosed = errors.New("text: font source closed")
)

// FamilyError records a registry failure for a font family.
type FamilyError struct {
	Family string
	Err    error
}

func (e *FamilyError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Family)
}

func (e *FamilyError) Unwrap() error {
	return e.Err
}
