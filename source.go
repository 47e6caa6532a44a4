package ledwand

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// FrameSource produces the frames to render. Next returns io.EOF once the
// source is exhausted; a frame that cannot be decoded is reported as a
// *DecodeError.
type FrameSource interface {
	Next() (image.Image, error)
}

// OpenInput opens a file, or failing that fetches a URL. An empty name or
// "-" reads standard input.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return os.Stdin, nil
	}
	if file, err := os.Open(name); err == nil {
		return file, nil
	}
	resp, err := http.Get(name)
	if err != nil {
		return nil, fmt.Errorf("ledwand: %s is neither a file nor a url: %w", name, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("ledwand: fetch %s: %s", name, resp.Status)
	}
	return resp.Body, nil
}

// StillSource yields a single image.
type StillSource struct {
	r    io.Reader
	done bool
}

// NewStillSource decodes one image from r. Any format with a registered
// decoder is accepted; EXIF orientation is applied.
func NewStillSource(r io.Reader) *StillSource {
	return &StillSource{r: r}
}

func (s *StillSource) Next() (image.Image, error) {
	if s.done {
		return nil, io.EOF
	}
	s.done = true
	img, err := imaging.Decode(s.r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Source: "image", Err: err}
	}
	return img, nil
}

// ImageSource yields the given images in order.
type ImageSource []image.Image

func (s *ImageSource) Next() (image.Image, error) {
	if len(*s) == 0 {
		return nil, io.EOF
	}
	img := (*s)[0]
	*s = (*s)[1:]
	return img, nil
}
