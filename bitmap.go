package ledwand

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"
)

// Bitmap is a packed 1-bit image. Rows are stored top to bottom, each row
// packs eight pixels per byte with the leftmost pixel in the most significant
// bit, which is the order the display expects on the wire.
type Bitmap struct {
	width, height, stride int
	pix                   []byte
}

// NewBitmap allocates a cleared bitmap. The width must be a multiple of 8.
func NewBitmap(width, height int) *Bitmap {
	if width%8 != 0 || width < 0 || height < 0 {
		panic(fmt.Sprintf("ledwand: bitmap of %dx%d", width, height))
	}
	return &Bitmap{
		width:  width,
		height: height,
		stride: width / 8,
		pix:    make([]byte, width/8*height),
	}
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

// Bytes returns the packed rows. The slice aliases the bitmap.
func (b *Bitmap) Bytes() []byte { return b.pix }

// Get reports whether the pixel at (x, y) is on.
func (b *Bitmap) Get(x, y int) bool {
	return b.pix[y*b.stride+x/8]&(0x80>>uint(x%8)) != 0
}

// Set switches the pixel at (x, y) on or off.
func (b *Bitmap) Set(x, y int, on bool) {
	i, mask := y*b.stride+x/8, byte(0x80>>uint(x%8))
	if on {
		b.pix[i] |= mask
	} else {
		b.pix[i] &^= mask
	}
}

// Fill sets every pixel to on.
func (b *Bitmap) Fill(on bool) {
	var v byte
	if on {
		v = 0xff
	}
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Invert flips every pixel.
func (b *Bitmap) Invert() {
	for i := range b.pix {
		b.pix[i] = ^b.pix[i]
	}
}

// Count returns the number of pixels that are on.
func (b *Bitmap) Count() int {
	var n int
	for _, v := range b.pix {
		n += bits.OnesCount8(v)
	}
	return n
}

// Row returns the packed bytes of row y.
func (b *Bitmap) Row(y int) []byte {
	return b.pix[y*b.stride : (y+1)*b.stride]
}

// Equal reports whether both bitmaps have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%dx%d)", b.width, b.height)
}

// ColorModel, Bounds and At make a Bitmap an image.Image where lit pixels are
// white, so it can be encoded as PNG or drawn as braille.
func (b *Bitmap) ColorModel() color.Model { return color.GrayModel }

func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.Black
	}
	if b.Get(x, y) {
		return color.White
	}
	return color.Black
}
