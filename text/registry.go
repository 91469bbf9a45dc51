package text

import (
	"slices"
	"sync"
)

// Registry is a font manager keyed by family name.
// A family can be registered once; the first registration wins and later
// attempts fail with ErrFamilyRegistered.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*FontSource
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{families: make(map[string]*FontSource)}
}

var shared = NewRegistry()

// SharedRegistry returns the process-scope registry.
func SharedRegistry() *Registry {
	return shared
}

// Register parses data and registers it under the font's own family name.
// The family name is returned even when registration fails with
// ErrFamilyRegistered, so callers can still report which family collided.
func (r *Registry) Register(data []byte, opts ...SourceOption) (string, error) {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return "", err
	}
	family := src.Name()
	if err := r.RegisterSource(family, src); err != nil {
		return family, err
	}
	return family, nil
}

// RegisterSource registers src under family.
func (r *Registry) RegisterSource(family string, src *FontSource) error {
	if src == nil {
		return ErrEmptyFontData
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[family]; ok {
		return &FamilyError{Family: family, Err: ErrFamilyRegistered}
	}
	r.families[family] = src
	return nil
}

// Source returns the FontSource registered under family.
func (r *Registry) Source(family string) (*FontSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.families[family]
	return src, ok
}

// Face returns a face for family at size points.
// An unknown family is a *FamilyError wrapping ErrFamilyNotFound.
func (r *Registry) Face(family string, size float64, opts ...FaceOption) (*Face, error) {
	src, ok := r.Source(family)
	if !ok {
		return nil, &FamilyError{Family: family, Err: ErrFamilyNotFound}
	}
	return src.Face(size, opts...), nil
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
