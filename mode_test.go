package glyphs

import (
	"errors"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeAuto, "auto"},
		{ModeIconFont, "iconfont"},
		{ModeSystemSymbol, "symbol"},
		{Mode(9), "Mode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"AUTO", ModeAuto, false},
		{"iconfont", ModeIconFont, false},
		{"fontAwesome", ModeIconFont, false},
		{"symbol", ModeSystemSymbol, false},
		{"sf", ModeSystemSymbol, false},
		{" sf ", ModeSystemSymbol, false},
		{"emoji", ModeAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMode) {
				t.Errorf("error %v does not wrap ErrInvalidMode", err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeAuto, ModeIconFont, ModeSystemSymbol} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Mode
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", b, err)
		}
		if got != m {
			t.Errorf("round trip of %v gave %v", m, got)
		}
	}

	m := ModeIconFont
	if err := m.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for bogus mode")
	}
	if m != ModeIconFont {
		t.Error("failed UnmarshalText modified the mode")
	}
}
