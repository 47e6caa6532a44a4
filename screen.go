package ledwand

import (
	"fmt"
	"image"
	"time"

	"github.com/kbinani/screenshot"
)

// ScreenSource captures one of the active displays of this machine, at most
// once per Pacing.
type ScreenSource struct {
	Display int
	Pacing  time.Duration
	last    time.Time
}

// NewScreenSource captures display n, 0 being the primary display.
func NewScreenSource(n int) (*ScreenSource, error) {
	if active := screenshot.NumActiveDisplays(); n < 0 || n >= active {
		return nil, fmt.Errorf("ledwand: display %d not found, %d active", n, active)
	}
	return &ScreenSource{Display: n, Pacing: FramePacing}, nil
}

func (s *ScreenSource) Next() (image.Image, error) {
	if !s.last.IsZero() {
		if wait := s.Pacing - time.Since(s.last); wait > 0 {
			time.Sleep(wait)
		}
	}
	s.last = time.Now()
	img, err := screenshot.CaptureDisplay(s.Display)
	if err != nil {
		return nil, fmt.Errorf("ledwand: capture display %d: %w", s.Display, err)
	}
	return img, nil
}
