package servicepoint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compression is the code the display uses to identify a payload encoding.
type Compression uint16

const (
	Uncompressed Compression = 0x0000
	Zlib         Compression = 0x677a
	Bzip2        Compression = 0x627a
	Lzma         Compression = 0x6c7a
	Zstd         Compression = 0x7a73
)

// ErrUnsupportedCompression is returned for encodings this package cannot
// produce.
var ErrUnsupportedCompression = errors.New("servicepoint: unsupported compression")

// ParseCompression maps a name such as "zstd" to its code.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none", "uncompressed":
		return Uncompressed, nil
	case "zlib":
		return Zlib, nil
	case "zstd":
		return Zstd, nil
	case "bzip2", "lzma":
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCompression, name)
	}
	return 0, fmt.Errorf("servicepoint: unknown compression %q", name)
}

func (c Compression) String() string {
	switch c {
	case Uncompressed:
		return "uncompressed"
	case Zlib:
		return "zlib"
	case Bzip2:
		return "bzip2"
	case Lzma:
		return "lzma"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("Compression(0x%04x)", uint16(c))
}

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func zstdCodec() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		if zstdEnc, zstdErr = zstd.NewWriter(nil); zstdErr != nil {
			return
		}
		zstdDec, zstdErr = zstd.NewReader(nil)
	})
	return zstdEnc, zstdDec, zstdErr
}

// Compress encodes data with c.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case Uncompressed:
		return data, nil
	case Zlib:
		var buf bytes.Buffer
		w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		enc, _, err := zstdCodec()
		if err != nil {
			return nil, err
		}
		return enc.EncodeAll(data, nil), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, c)
}

// Decompress reverses Compress.
func Decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case Uncompressed:
		return data, nil
	case Zlib:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case Zstd:
		_, dec, err := zstdCodec()
		if err != nil {
			return nil, err
		}
		return dec.DecodeAll(data, nil)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, c)
}
