package ledwand

import "image"

// Kernel is a 3x3 convolution, weights in row-major order.
type Kernel struct {
	Weights [9]int
	Divisor int
}

var (
	// BlurKernel is a box blur that keeps half the weight on the centre.
	BlurKernel = Kernel{Weights: [9]int{1, 1, 1, 1, 8, 1, 1, 1, 1}, Divisor: 16}
	// SharpenKernel is an unsharp mask; its weights sum to 1.
	SharpenKernel = Kernel{Weights: [9]int{-1, -1, -1, -1, 9, -1, -1, -1, -1}, Divisor: 1}
)

// Blur writes a blurred copy of src to dst.
func Blur(dst, src *image.Gray) { BlurKernel.Convolve(dst, src) }

// Sharpen writes a sharpened copy of src to dst.
func Sharpen(dst, src *image.Gray) { SharpenKernel.Convolve(dst, src) }

// Convolve writes src convolved with k to dst. Both images must have the same
// size and must not share pixels. The outermost ring of pixels has no full
// neighbourhood and is copied unchanged.
func (k Kernel) Convolve(dst, src *image.Gray) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if dst.Rect.Dx() != w || dst.Rect.Dy() != h {
		panic("ledwand: convolution of differently sized images")
	}
	copyBorder(dst, src)

	ss, ds := src.Stride, dst.Stride
	so, do := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y), dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y)
	wt := k.Weights
	for y := 1; y < h-1; y++ {
		up, mid, down := so+(y-1)*ss, so+y*ss, so+(y+1)*ss
		out := dst.Pix[do+y*ds:]
		for x := 1; x < w-1; x++ {
			sum := wt[0]*int(src.Pix[up+x-1]) + wt[1]*int(src.Pix[up+x]) + wt[2]*int(src.Pix[up+x+1]) +
				wt[3]*int(src.Pix[mid+x-1]) + wt[4]*int(src.Pix[mid+x]) + wt[5]*int(src.Pix[mid+x+1]) +
				wt[6]*int(src.Pix[down+x-1]) + wt[7]*int(src.Pix[down+x]) + wt[8]*int(src.Pix[down+x+1])
			out[x] = clampByte(sum / k.Divisor)
		}
	}
}

func copyBorder(dst, src *image.Gray) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	row := func(y int) {
		s := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		d := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		copy(dst.Pix[d:d+w], src.Pix[s:s+w])
	}
	row(0)
	row(h - 1)
	for y := 1; y < h-1; y++ {
		s := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		d := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		dst.Pix[d] = src.Pix[s]
		dst.Pix[d+w-1] = src.Pix[s+w-1]
	}
}

func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
