// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Errors returned by Begin and Snapshot.
var (
	ErrInvalidSize  = errors.New("surface: invalid size")
	ErrInvalidScale = errors.New("surface: invalid scale")
	ErrReleased     = errors.New("surface: already released")
)

// MaxPixels caps the side of a canvas in pixels.
const MaxPixels = 1 << 14

// Surface is a square off-screen canvas.
type Surface struct {
	pool  *Pool
	img   *image.NRGBA
	size  float64
	scale float64
}

// Begin acquires a canvas of size points at scale pixels per point.
// A nil pool selects DefaultPool.
func Begin(pool *Pool, size, scale float64) (*Surface, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	side, err := PixelSide(size, scale)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		pool = defaultPool
	}
	return &Surface{
		pool:  pool,
		img:   pool.get(side),
		size:  size,
		scale: scale,
	}, nil
}

// PixelSide returns the pixel side of a size-point canvas at scale.
// Fractional pixels round up so the glyph is never clipped. A side above
// MaxPixels is ErrInvalidSize.
func PixelSide(size, scale float64) (int, error) {
	// The epsilon absorbs float error, so 0.1*30 stays 3, not 4.
	px := math.Ceil(size*scale - 1e-9)
	if math.IsNaN(px) || px > MaxPixels {
		return 0, fmt.Errorf("%w: %v pixels exceeds %d", ErrInvalidSize, px, MaxPixels)
	}
	return max(int(px), 1), nil
}

// Size returns the logical side in points.
func (s *Surface) Size() float64 {
	return s.size
}

// Scale returns the pixels per point.
func (s *Surface) Scale() float64 {
	return s.scale
}

// Pixels returns the side of the canvas in pixels.
func (s *Surface) Pixels() int {
	return s.img.Rect.Dx()
}

// Canvas returns the canvas to draw into. Coordinates are pixels.
// The canvas is invalid after Release.
func (s *Surface) Canvas() *image.NRGBA {
	return s.img
}

// Snapshot returns a copy of the canvas owned by the caller.
func (s *Surface) Snapshot() (*image.NRGBA, error) {
	if s.img == nil {
		return nil, ErrReleased
	}
	out := image.NewNRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out, nil
}

// Release returns the canvas to its pool. It is safe to call more than once.
func (s *Surface) Release() {
	if s.img == nil {
		return
	}
	s.pool.put(s.img)
	s.img = nil
}

// Released reports whether Release has been called.
func (s *Surface) Released() bool {
	return s.img == nil
}
