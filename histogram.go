package ledwand

import "image"

// Histogram counts the pixels of a grayscale image per brightness.
type Histogram [256]int

// NewHistogram counts the pixels of img.
func NewHistogram(img *image.Gray) Histogram {
	var h Histogram
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for _, v := range img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)] {
			h[v]++
		}
	}
	return h
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	var n int
	for _, c := range h {
		n += c
	}
	return n
}

// Median returns the smallest brightness b for which at least half of the
// pixels are at most b.
func (h *Histogram) Median() uint8 {
	total := h.Total()
	var n int
	for b, c := range h {
		n += c
		if 2*n >= total {
			return uint8(b)
		}
	}
	return 255
}

// MedianBrightness returns the median brightness of img.
func MedianBrightness(img *image.Gray) uint8 {
	h := NewHistogram(img)
	return h.Median()
}
