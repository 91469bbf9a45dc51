// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing canvas pixel buffers.
//
// Pool groups buffers by side length. Icon sizes repeat heavily
// (16, 24, 32, 64 at a handful of scales), so a small pool per side
// removes nearly all canvas allocations.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][]*image.NRGBA
	maxSize int // max buffers per bucket
}

// NewPool creates a pool keeping at most maxPerBucket buffers per side.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][]*image.NRGBA),
		maxSize: maxPerBucket,
	}
}

// get returns a cleared side x side buffer.
func (p *Pool) get(side int) *image.NRGBA {
	p.mu.Lock()
	bucket := p.buckets[side]
	if n := len(bucket); n > 0 {
		img := bucket[n-1]
		p.buckets[side] = bucket[:n-1]
		p.mu.Unlock()

		clear(img.Pix)
		return img
	}
	p.mu.Unlock()

	return image.NewNRGBA(image.Rect(0, 0, side, side))
}

// put returns img to the pool. If the bucket is full the buffer is dropped.
func (p *Pool) put(img *image.NRGBA) {
	if img == nil {
		return
	}
	side := img.Rect.Dx()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[side]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[side] = append(bucket, img)
}

// Len returns the number of pooled buffers across all sides.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

var defaultPool = NewPool(8)

// DefaultPool returns the package-level pool shared by every Glyphs handle.
func DefaultPool() *Pool {
	return defaultPool
}
