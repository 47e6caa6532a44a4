package ledwand

import (
	"bufio"
	"bytes"
	"image"
	"image/jpeg"
	"io"
)

/*
MJPEGSource reads a motion JPEG stream, a plain concatenation of JPEG images
as written by `ffmpeg -f mjpeg -`. Frames are split on the end of image
marker and decoded one at a time; nothing is read ahead, so a slow consumer
slows down the producer of the stream.
*/
type MJPEGSource struct {
	r     *bufio.Reader
	buf   bytes.Buffer
	frame int
}

func NewMJPEGSource(r io.Reader) *MJPEGSource {
	return &MJPEGSource{r: bufio.NewReader(r)}
}

func (s *MJPEGSource) Next() (image.Image, error) {
	s.buf.Reset()
	for {
		c, err := s.r.ReadByte()
		if err == io.EOF {
			if s.buf.Len() == 0 {
				return nil, io.EOF
			}
			return nil, &DecodeError{Source: "mjpeg", Frame: s.frame, Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return nil, err
		}
		s.buf.WriteByte(c)

		data := s.buf.Bytes()
		if n := len(data); n > 1 && data[n-2] == 0xff && data[n-1] == 0xd9 {
			img, err := jpeg.Decode(&s.buf)
			if err != nil {
				return nil, &DecodeError{Source: "mjpeg", Frame: s.frame, Err: err}
			}
			s.frame++
			return img, nil
		}
	}
}
