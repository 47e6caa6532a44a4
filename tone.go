package ledwand

import "image"

// ToneCorrection is the affine brightness remap
//
//	v' = clamp((v + PreOffset) * Factor + PostOffset, 0, 255)
type ToneCorrection struct {
	PreOffset  float32
	PostOffset float32
	Factor     float32
}

// IdentityTone leaves every pixel unchanged.
var IdentityTone = ToneCorrection{Factor: 1}

// Limits of the contrast stretch.
const (
	maxMinCut   = 20
	maxMinShift = 64
	minMaxShift = 192
)

// DetermineToneCorrection derives a contrast stretch from a histogram. The
// darkest and brightest pixels, about two rows worth for a canvas of
// canvasHeight rows, are treated as noise and not allowed to limit the
// stretch.
func DetermineToneCorrection(h *Histogram, canvasHeight int) ToneCorrection {
	total := h.Total()
	if total == 0 || canvasHeight <= 0 {
		return IdentityTone
	}
	unit := total / canvasHeight

	var n int
	b := 0
	for ; b < 255; b++ {
		n += h[b]
		if n >= unit {
			break
		}
	}
	mincut := min(b, maxMinCut)

	for b++; b < 255; b++ {
		n += h[b]
		if n >= 2*unit {
			break
		}
	}
	minshift := min(b, maxMinShift)

	n = 0
	b = 255
	for ; b > 0; b-- {
		n += h[b]
		if n >= 2*unit {
			break
		}
	}
	maxshift := max(b, minMaxShift)

	post := -float32(minshift)
	return ToneCorrection{
		PreOffset:  -float32(mincut) / 2,
		PostOffset: post,
		Factor:     (255 - post) / float32(maxshift),
	}
}

// Map applies the correction to one brightness value.
func (t ToneCorrection) Map(v uint8) uint8 {
	f := (float32(v)+t.PreOffset)*t.Factor + t.PostOffset
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}

// Apply remaps every pixel of img in place.
func (t ToneCorrection) Apply(img *image.Gray) {
	if t.Factor <= 0 {
		return
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = t.Map(uint8(i))
	}
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i, v := range row {
			row[i] = lut[v]
		}
	}
}

// CorrectTone stretches the contrast of img in place.
func CorrectTone(img *image.Gray, canvasHeight int) ToneCorrection {
	h := NewHistogram(img)
	t := DetermineToneCorrection(&h, canvasHeight)
	t.Apply(img)
	return t
}
