package glyphs

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Image wraps a RenderedImage for handing to UI code: encoding, saving
// and resampling to a view's pixel size.
type Image struct {
	raw *RenderedImage
}

// NewImage wraps raw.
func NewImage(raw *RenderedImage) *Image {
	return &Image{raw: raw}
}

// Raw returns the wrapped bitmap.
func (i *Image) Raw() *RenderedImage {
	return i.raw
}

// Bounds returns the pixel bounds of the bitmap.
func (i *Image) Bounds() image.Rectangle {
	return i.raw.Bounds()
}

// Resize returns a copy resampled to px x px pixels with a Lanczos filter.
func (i *Image) Resize(px int) *image.NRGBA {
	return imaging.Resize(i.raw.NRGBA, px, px, imaging.Lanczos)
}

// EncodePNG writes the bitmap to w as PNG.
func (i *Image) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, i.raw.NRGBA, imaging.PNG)
}

// Save writes the bitmap to path. The format follows the file extension.
func (i *Image) Save(path string) error {
	return imaging.Save(i.raw.NRGBA, path)
}
