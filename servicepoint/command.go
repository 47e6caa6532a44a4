package servicepoint

import (
	"fmt"
	"image"
)

// TileSize is the edge length of a character cell in pixels. Horizontal
// bitmap coordinates are sent in whole tiles.
const TileSize = 8

// Brightness levels of the display.
const (
	MinBrightness uint8 = 0
	MaxBrightness uint8 = 11
)

// Bitmap is a packed 1-bit image, eight pixels per byte, most significant
// bit first.
type Bitmap interface {
	Width() int
	Height() int
	Bytes() []byte
}

// Clear switches off every pixel.
func Clear() Packet { return Packet{Header: Header{Code: CodeClear}} }

// HardReset restarts the display.
func HardReset() Packet { return Packet{Header: Header{Code: CodeHardReset}} }

// FadeOut slowly dims the display.
func FadeOut() Packet { return Packet{Header: Header{Code: CodeFadeOut}} }

// SetBrightness sets the brightness of the whole display. Values above
// MaxBrightness are saturated.
func SetBrightness(b uint8) Packet {
	if b > MaxBrightness {
		b = MaxBrightness
	}
	return Packet{Header: Header{Code: CodeBrightness}, Payload: []byte{b}}
}

// Cp437Data writes a width x height block of CP437 characters with its top
// left corner at the given tile.
func Cp437Data(origin image.Point, width, height int, text []byte) (Packet, error) {
	if len(text) != width*height {
		return Packet{}, fmt.Errorf("servicepoint: %d characters for a %dx%d grid", len(text), width, height)
	}
	return Packet{
		Header:  Header{Code: CodeCp437Data, A: uint16(origin.X), B: uint16(origin.Y), C: uint16(width), D: uint16(height)},
		Payload: text,
	}, nil
}

// Utf8Data writes a width x height block of characters encoded as UTF-8.
func Utf8Data(origin image.Point, width, height int, text string) Packet {
	return Packet{
		Header:  Header{Code: CodeUtf8Data, A: uint16(origin.X), B: uint16(origin.Y), C: uint16(width), D: uint16(height)},
		Payload: []byte(text),
	}
}

// BitmapLinearWin draws bm with its top left corner at origin, in pixels.
// origin.X and the bitmap width must be multiples of TileSize.
func BitmapLinearWin(origin image.Point, bm Bitmap, c Compression) (Packet, error) {
	if origin.X%TileSize != 0 || bm.Width()%TileSize != 0 {
		return Packet{}, fmt.Errorf("servicepoint: bitmap at x=%d width=%d is not tile aligned", origin.X, bm.Width())
	}
	var code Code
	switch c {
	case Uncompressed:
		code = CodeBitmapLinearWin
	case Zlib:
		code = CodeBitmapLinearWinZlib
	case Zstd:
		code = CodeBitmapLinearWinZstd
	default:
		return Packet{}, fmt.Errorf("%w: %v", ErrUnsupportedCompression, c)
	}
	payload, err := Compress(c, bm.Bytes())
	if err != nil {
		return Packet{}, err
	}
	return Packet{
		Header: Header{
			Code: code,
			A:    uint16(origin.X / TileSize),
			B:    uint16(origin.Y),
			C:    uint16(bm.Width() / TileSize),
			D:    uint16(bm.Height()),
		},
		Payload: payload,
	}, nil
}

// Op selects how BitmapLinear combines data with the pixels on the display.
type Op int

const (
	OpSet Op = iota
	OpAnd
	OpOr
	OpXor
)

// BitmapLinear combines the packed bits in data with the display buffer,
// starting offset bytes into it.
func BitmapLinear(op Op, offset int, data []byte, c Compression) (Packet, error) {
	var code Code
	switch op {
	case OpSet:
		code = CodeBitmapLinear
	case OpAnd:
		code = CodeBitmapLinearAnd
	case OpOr:
		code = CodeBitmapLinearOr
	case OpXor:
		code = CodeBitmapLinearXor
	default:
		return Packet{}, fmt.Errorf("servicepoint: unknown bitmap op %d", op)
	}
	payload, err := Compress(c, data)
	if err != nil {
		return Packet{}, err
	}
	return Packet{
		Header:  Header{Code: code, A: uint16(offset), B: uint16(len(payload)), C: uint16(c)},
		Payload: payload,
	}, nil
}
