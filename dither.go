package ledwand

import "image"

// Threshold sets every pixel of dst that is brighter than the median
// brightness of img, so that about half of the pixels end up lit.
func Threshold(dst *Bitmap, img *image.Gray) {
	median := MedianBrightness(img)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	dst.Fill(false)
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y):]
		for x := 0; x < w; x++ {
			if row[x] > median {
				dst.Set(x, y, true)
			}
		}
	}
}

// scanLine is one row of a serpentine scan: even rows run left to right,
// odd rows right to left.
type scanLine struct {
	y, width int
	dir      int
}

func serpentine(y, width int) scanLine {
	dir := 1
	if y%2 == 1 {
		dir = -1
	}
	return scanLine{y: y, width: width, dir: dir}
}

// X returns the column of the i-th pixel visited on the line.
func (l scanLine) X(i int) int {
	if l.dir > 0 {
		return i
	}
	return l.width - 1 - i
}

// Targets returns where the error of pixel x is diffused to: the next pixel
// in scan direction, the pixel below and behind, and the pixel below.
func (l scanLine) Targets(x int) [3]image.Point {
	return [3]image.Point{
		{x + l.dir, l.y},
		{x - l.dir, l.y + 1},
		{x, l.y + 1},
	}
}

// Ditherer binarizes images with Ostromoukhov's variable-coefficient error
// diffusion. The error buffer is kept between calls.
type Ditherer struct {
	Bias uint8
	buf  []uint8
}

// Dither writes the halftoned img to dst, which must have the same size.
func (d *Ditherer) Dither(dst *Bitmap, img *image.Gray) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if cap(d.buf) < w*h {
		d.buf = make([]uint8, w*h)
	}
	buf := d.buf[:w*h]
	for y := 0; y < h; y++ {
		o := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(buf[y*w:(y+1)*w], img.Pix[o:o+w])
	}

	dst.Fill(false)
	for y := 0; y < h; y++ {
		line := serpentine(y, w)
		for i := 0; i < w; i++ {
			x := line.X(i)
			v := buf[y*w+x]
			on := v > d.Bias
			quant := v
			if on {
				quant = 255 - v
				dst.Set(x, y, true)
			}

			coef := diffusionTable[quant]
			for k, t := range line.Targets(x) {
				if t.X < 0 || t.X >= w || t.Y >= h {
					continue
				}
				c := int(coef[k])
				if on {
					c = -c
				}
				j := t.Y*w + t.X
				buf[j] = clampByte(int(buf[j]) + c)
			}
		}
	}
}

// Dither halftones img with the given bias.
func Dither(img *image.Gray, bias uint8) *Bitmap {
	dst := NewBitmap(img.Rect.Dx(), img.Rect.Dy())
	d := Ditherer{Bias: bias}
	d.Dither(dst, img)
	return dst
}

// ThresholdImage binarizes img at its median brightness.
func ThresholdImage(img *image.Gray) *Bitmap {
	dst := NewBitmap(img.Rect.Dx(), img.Rect.Dy())
	Threshold(dst, img)
	return dst
}
