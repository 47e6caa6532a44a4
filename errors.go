package ledwand

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyImage is returned when a frame has no pixels.
	ErrEmptyImage = errors.New("ledwand: empty image")
	// ErrGeometry is returned for canvas or tile layouts the display cannot show.
	ErrGeometry = errors.New("ledwand: invalid geometry")
	// ErrDecode is returned when a frame source cannot decode its input.
	ErrDecode = errors.New("ledwand: cannot decode frame")
)

// DecodeError reports which frame of a source failed to decode.
type DecodeError struct {
	Source string
	Frame  int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ledwand: %s frame %d: %v", e.Source, e.Frame, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
