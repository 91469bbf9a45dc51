// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the off-screen drawing surface glyphs renders
// into.
//
// A Surface is a square, transparent NRGBA canvas sized in logical points
// and backed by pixels at a display scale. It is a scoped resource: every
// Begin must be paired with Release, normally via defer:
//
//	s, err := surface.Begin(pool, 32, 2)
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//
//	draw(s.Canvas())
//	img, err := s.Snapshot()
//
// Snapshot returns a copy owned by the caller; the canvas pixels go back to
// the Pool on Release and must not be retained.
//
// Surfaces are never shared between goroutines. Concurrent renders each
// Begin their own Surface; only the Pool is shared.
package surface
