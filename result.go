package glyphs

import "image"

// Result is the outcome of resolving an icon: either Found with an image,
// or NotFound. NotFound is the normal answer for unknown names and is not
// an error. The zero Result is NotFound.
type Result struct {
	image *RenderedImage
}

// NotFound is the Result for a name no backend could render.
var NotFound = Result{}

func found(img *RenderedImage) Result {
	return Result{image: img}
}

// Found reports whether an image was produced.
func (r Result) Found() bool {
	return r.image != nil
}

// Image returns the rendered image, or nil when not found.
func (r Result) Image() *RenderedImage {
	return r.image
}

// Backend returns the mode that produced the image: ModeIconFont or
// ModeSystemSymbol. It returns ModeAuto when not found.
func (r Result) Backend() Mode {
	if r.image == nil {
		return ModeAuto
	}
	return r.image.backend
}

// RenderedImage is a square bitmap of an icon. It implements image.Image
// through the embedded *image.NRGBA, whose side is the logical size times
// the scale, rounded up. The caller owns it; glyphs keeps no reference.
type RenderedImage struct {
	*image.NRGBA

	name    string
	size    float64
	scale   float64
	backend Mode
}

// Name returns the icon name the image was rendered for.
func (img *RenderedImage) Name() string {
	return img.name
}

// Size returns the logical side length in points.
func (img *RenderedImage) Size() float64 {
	return img.size
}

// LogicalSize returns the logical width and height in points.
// They are always equal.
func (img *RenderedImage) LogicalSize() (width, height float64) {
	return img.size, img.size
}

// Scale returns the pixels per point.
func (img *RenderedImage) Scale() float64 {
	return img.scale
}

// Backend returns ModeIconFont or ModeSystemSymbol.
func (img *RenderedImage) Backend() Mode {
	return img.backend
}
