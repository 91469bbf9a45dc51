package text

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr must point to the FontSource itself.
	addr *FontSource

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont

	name     string
	fullName string
	config   sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:     dataCopy,
		parsed:   parsed,
		name:     parsed.Name(),
		fullName: parsed.FullName(),
		config:   config,
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// NewFontSourceFromFS loads a FontSource from a file in fsys.
// A missing file yields an error matching fs.ErrNotExist.
func NewFontSourceFromFS(fsys fs.FS, path string, opts ...SourceOption) (*FontSource, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in points.
// Panics if s is nil (e.g. when a NewFontSource error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSource?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{source: s, size: size, config: config}
}

// Name returns the font family name.
// Falls back to the full name when the font has no family record.
func (s *FontSource) Name() string {
	s.copyCheck()
	if s.name != "" {
		return s.name
	}
	return s.fullName
}

// FullName returns the full font name, or "" if the font has none.
func (s *FontSource) FullName() string {
	s.copyCheck()
	return s.fullName
}

// Data returns the raw font bytes. The caller must not modify them.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Parsed returns the parsed font, or nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
