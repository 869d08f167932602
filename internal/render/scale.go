package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// FitTo resamples img to an exact side x side square using Lanczos filtering,
// matching the form's resize-to-requested-size behavior. A non-positive side
// or an already-matching image is returned unchanged. Scaling happens after
// rendering, so the pixel-exact style invariants apply to the unscaled image
// only.
func FitTo(img image.Image, side int) image.Image {
	if img == nil || side <= 0 || img.Bounds().Dx() == side {
		return img
	}
	return imaging.Resize(img, side, side, imaging.Lanczos)
}
