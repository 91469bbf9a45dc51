package glyphs

import (
	"fmt"
	"strings"
)

// Mode selects which backend supplies an icon.
type Mode int

const (
	// ModeAuto tries the icon font first and the symbol library on a miss.
	ModeAuto Mode = iota
	// ModeIconFont uses only the icon font.
	ModeIconFont
	// ModeSystemSymbol uses only the symbol library.
	ModeSystemSymbol
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeIconFont:
		return "iconfont"
	case ModeSystemSymbol:
		return "symbol"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name. Matching is case-insensitive and accepts
// "fontawesome" and "sf" as aliases for the icon font and symbols.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ModeAuto, nil
	case "iconfont", "icon-font", "fontawesome":
		return ModeIconFont, nil
	case "symbol", "system-symbol", "sf":
		return ModeSystemSymbol, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
