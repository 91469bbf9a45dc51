package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawString draws s onto dst with the pen starting at (x, y), where y is
// the baseline. Coordinates are in dst pixels.
//
// A fresh x/image face is created per call, so concurrent calls with the
// same Face are safe as long as they use different dst images.
func DrawString(dst draw.Image, face *Face, s string, x, y float64, c color.Color) error {
	parsed := face.Source().Parsed()
	if parsed == nil {
		return ErrSourceClosed
	}

	xf, err := parsed.NewFace(face.size, face.config.hinting)
	if err != nil {
		return err
	}
	defer func() {
		_ = xf.Close()
	}()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: xf,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
	return nil
}
