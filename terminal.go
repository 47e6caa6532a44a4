package ledwand

import (
	"fmt"
	"image"
	"io"
)

type Terminal interface {
	ResetCursor(rows int)
	ShowCursor(show bool)
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the beginning of the line and up rows
func (term *Xterm) ResetCursor(rows int) {
	fmt.Fprintf(term.Writer, "\033[999D\033[%dA", rows)
}

func (term *Xterm) ShowCursor(show bool) {
	if show {
		io.WriteString(term.Writer, "\033[?12l\033[?25h")
	} else {
		io.WriteString(term.Writer, "\033[?25l")
	}
}

// TerminalSink draws bitmaps as braille, rewinding the cursor between frames
// so that a stream plays in place.
type TerminalSink struct {
	w      io.Writer
	t      Terminal
	frames int
	rows   int
}

// NewTerminalSink writes to w. If t is nil an Xterm on w is used.
func NewTerminalSink(w io.Writer, t Terminal) *TerminalSink {
	if t == nil {
		t = &Xterm{Writer: w}
	}
	return &TerminalSink{w: w, t: t}
}

func (s *TerminalSink) SendBitmap(origin image.Point, b *Bitmap) error {
	if s.frames > 0 {
		s.t.ResetCursor(s.rows)
	} else {
		s.t.ShowCursor(false)
	}
	if err := EncodeBraille(s.w, b); err != nil {
		return err
	}
	s.frames++
	s.rows = BrailleLines(b)
	return nil
}

// Close shows the cursor again.
func (s *TerminalSink) Close() error {
	s.t.ShowCursor(true)
	return nil
}
