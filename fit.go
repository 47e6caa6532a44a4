package ledwand

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// FitSize returns the size a srcW x srcH image is scaled to on a canvas. When
// keepAspect is set the image is scaled to fit and its width rounded up to a
// whole tile; otherwise it is stretched to the canvas.
func FitSize(srcW, srcH, canvasW, canvasH int, keepAspect bool) (int, int) {
	if !keepAspect {
		return canvasW, canvasH
	}
	scale := math.Min(float64(canvasW)/float64(srcW), float64(canvasH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	if rem := w % 8; rem != 0 {
		w += 8 - rem
	}
	return min(max(w, 8), canvasW), min(max(h, 1), canvasH)
}

// Fit converts img to grayscale and resamples it onto a canvas of the given
// size. The result is written to dst when dst already has the right size.
func Fit(dst *image.Gray, img image.Image, canvasW, canvasH int, keepAspect bool) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	// Gray first, resampling then touches one channel.
	gray := toGray(nil, imaging.Grayscale(img))
	w, h := FitSize(b.Dx(), b.Dy(), canvasW, canvasH, keepAspect)

	scaled := resize.Resize(uint(w), uint(h), gray, resize.Bilinear)
	return toGray(dst, scaled), nil
}

func toGray(dst *image.Gray, img image.Image) *image.Gray {
	b := img.Bounds()
	if dst == nil || dst.Rect.Dx() != b.Dx() || dst.Rect.Dy() != b.Dy() {
		dst = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	if g, ok := img.(*image.Gray); ok && g.Stride == b.Dx() && len(g.Pix) >= b.Dx()*b.Dy() {
		copy(dst.Pix, g.Pix)
		return dst
	}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}
