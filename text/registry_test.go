package text

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	family, err := reg.Register(goregular.TTF)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if family != "Go" {
		t.Errorf("family = %q, want Go", family)
	}

	face, err := reg.Face("Go", 24)
	if err != nil {
		t.Fatalf("Face(Go) after Register: %v", err)
	}
	if face.Size() != 24 {
		t.Errorf("Size() = %v, want 24", face.Size())
	}

	_, err = reg.Face("FontAwesome", 24)
	if !errors.Is(err, ErrFamilyNotFound) {
		t.Errorf("Face(FontAwesome) error = %v, want ErrFamilyNotFound", err)
	}
	var famErr *FamilyError
	if !errors.As(err, &famErr) || famErr.Family != "FontAwesome" {
		t.Errorf("error = %#v, want *FamilyError for FontAwesome", err)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(goregular.TTF); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	first, _ := reg.Source("Go")

	family, err := reg.Register(goregular.TTF)
	if !errors.Is(err, ErrFamilyRegistered) {
		t.Fatalf("second Register error = %v, want ErrFamilyRegistered", err)
	}
	var famErr *FamilyError
	if !errors.As(err, &famErr) || famErr.Family != "Go" {
		t.Errorf("error = %#v, want *FamilyError for Go", err)
	}
	if family != "Go" {
		t.Errorf("family = %q, want Go even on collision", family)
	}

	if src, _ := reg.Source("Go"); src != first {
		t.Error("duplicate registration replaced the original source")
	}
}

func TestRegistryInvalidData(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register([]byte("not a font")); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Register error = %v, want ErrInvalidFont", err)
	}
	if len(reg.Families()) != 0 {
		t.Errorf("Families() = %v, want none", reg.Families())
	}
	if err := reg.RegisterSource("x", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("RegisterSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestRegistryFamilies(t *testing.T) {
	reg := NewRegistry()
	for _, data := range [][]byte{gomono.TTF, goregular.TTF} {
		if _, err := reg.Register(data); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}
	want := []string{"Go", "Go Mono"}
	if got := reg.Families(); !slices.Equal(got, want) {
		t.Errorf("Families() = %v, want %v", got, want)
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	reg := NewRegistry()

	const n = 16
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Register(goregular.TTF); err == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if oks != 1 {
		t.Errorf("%d registrations succeeded, want exactly 1", oks)
	}
}

func TestSharedRegistry(t *testing.T) {
	if SharedRegistry() != SharedRegistry() {
		t.Error("SharedRegistry() should return the same registry")
	}
}
