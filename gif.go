package ledwand

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

/*
GIFSource plays the frames of an animated GIF. Every frame is composited onto
a screen the size of the GIF, honouring the disposal method of the frame
before it, and Next waits for the delay of the previous frame before
returning. The returned image is reused by the next call.
*/
type GIFSource struct {
	giff     *gif.GIF
	screen   *image.RGBA
	previous *image.RGBA
	i, plays int
	due      time.Time

	// Repeat plays the GIF as often as its loop count says, forever for a
	// loop count of zero. Otherwise it is played once.
	Repeat bool
	// Sleep waits out frame delays. With a nil Sleep frames are returned
	// as fast as they are asked for.
	Sleep func(time.Duration)
}

// NewGIFSource decodes every frame of an animated GIF from r.
func NewGIFSource(r io.Reader) (*GIFSource, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		return nil, &DecodeError{Source: "gif", Err: err}
	}
	if len(giff.Image) == 0 {
		return nil, ErrEmptyImage
	}
	return newGIFSource(giff), nil
}

func newGIFSource(giff *gif.GIF) *GIFSource {
	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() {
		bounds = giff.Image[0].Bounds()
	}
	return &GIFSource{
		giff:   giff,
		screen: image.NewRGBA(bounds),
		Sleep:  time.Sleep,
	}
}

func (s *GIFSource) Next() (image.Image, error) {
	if s.i == len(s.giff.Image) {
		s.plays++
		if !s.Repeat || s.giff.LoopCount < 0 || (s.giff.LoopCount > 0 && s.plays > s.giff.LoopCount) {
			return nil, io.EOF
		}
		s.i = 0
	}
	if s.Sleep != nil && !s.due.IsZero() {
		if wait := time.Until(s.due); wait > 0 {
			s.Sleep(wait)
		}
	}

	if s.i > 0 {
		s.dispose(s.i - 1)
	} else {
		// Always draw the first frame from scratch
		draw.Draw(s.screen, s.screen.Rect, image.Transparent, image.Point{}, draw.Src)
	}

	frame := s.giff.Image[s.i]
	if s.disposal(s.i) == gif.DisposalPrevious {
		if s.previous == nil {
			s.previous = image.NewRGBA(s.screen.Rect)
		}
		copy(s.previous.Pix, s.screen.Pix)
	}
	draw.Draw(s.screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

	var delay time.Duration
	if s.i < len(s.giff.Delay) {
		delay = time.Duration(s.giff.Delay[s.i]) * time.Second / 100
	}
	s.due = time.Now().Add(delay)
	s.i++
	return s.screen, nil
}

func (s *GIFSource) disposal(i int) byte {
	if i < len(s.giff.Disposal) {
		return s.giff.Disposal[i]
	}
	return 0
}

func (s *GIFSource) dispose(i int) {
	switch s.disposal(i) {
	// Dispose background replaces everything just drawn with the background canvas
	case gif.DisposalBackground:
		r := s.giff.Image[i].Bounds()
		draw.Draw(s.screen, r, image.Transparent, image.Point{}, draw.Src)
	// Dispose previous essentially means draw then undo
	case gif.DisposalPrevious:
		if s.previous != nil {
			copy(s.screen.Pix, s.previous.Pix)
		}
	}
}
