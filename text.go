package ledwand

import (
	"bufio"
	"image"
	"io"
	"time"

	"github.com/kevin-cantwell/ledwand/servicepoint"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

// FramePacing is the minimum time between two frames the display can show.
const FramePacing = 30 * time.Millisecond

// CharGrid is a block of characters, one per tile.
type CharGrid struct {
	width, height int
	cells         []rune
}

// NewCharGrid returns a grid filled with spaces.
func NewCharGrid(width, height int) *CharGrid {
	g := &CharGrid{width: width, height: height, cells: make([]rune, width*height)}
	for i := range g.cells {
		g.cells[i] = ' '
	}
	return g
}

func (g *CharGrid) Width() int  { return g.width }
func (g *CharGrid) Height() int { return g.height }

// Get returns the character at column x of row y.
func (g *CharGrid) Get(x, y int) rune { return g.cells[y*g.width+x] }

// SetLine replaces row y with line, cut at the grid width.
func (g *CharGrid) SetLine(y int, line string) {
	row := g.cells[y*g.width : (y+1)*g.width]
	for i := range row {
		row[i] = ' '
	}
	x := 0
	for _, r := range line {
		if x >= g.width {
			break
		}
		row[x] = r
		x++
	}
}

// ScrollUp moves every row up by one and blanks the last row.
func (g *CharGrid) ScrollUp() {
	copy(g.cells, g.cells[g.width:])
	g.SetLine(g.height-1, "")
}

// CP437 encodes rows from y0 (inclusive) to y1 (exclusive). Characters
// missing from code page 437 become '?'.
func (g *CharGrid) CP437(y0, y1 int) []byte {
	out := make([]byte, 0, (y1-y0)*g.width)
	for _, r := range g.cells[y0*g.width : y1*g.width] {
		b, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// Text returns rows from y0 (inclusive) to y1 (exclusive) as one string.
func (g *CharGrid) Text(y0, y1 int) string {
	return string(g.cells[y0*g.width : y1*g.width])
}

// TextStreamer writes lines of text onto the display like a terminal,
// scrolling once the last row is reached.
type TextStreamer struct {
	display *Display
	grid    *CharGrid
	y       int

	// Delay is waited after every line.
	Delay time.Duration
	// UTF8 sends text unchanged instead of encoding it to code page 437.
	UTF8 bool
}

// NewTextStreamer returns a streamer filling the whole display.
func NewTextStreamer(d *Display) *TextStreamer {
	return &TextStreamer{
		display: d,
		grid:    NewCharGrid(d.Geometry.TilesX, d.Geometry.TilesY),
	}
}

// Grid returns the characters currently shown.
func (s *TextStreamer) Grid() *CharGrid { return s.grid }

// Run clears the display and streams r line by line until EOF.
func (s *TextStreamer) Run(r io.Reader) error {
	if !s.UTF8 {
		log.Warn("text mode does not support multi-cell characters or ANSI escape sequences")
	}
	if err := s.display.Clear(); err != nil {
		return err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := s.WriteLine(scanner.Text()); err != nil {
			return err
		}
		if s.Delay > 0 {
			time.Sleep(s.Delay)
		}
	}
	return scanner.Err()
}

// WriteLine shows one more line of text.
func (s *TextStreamer) WriteLine(line string) error {
	last := s.grid.height - 1
	if s.y <= last {
		s.grid.SetLine(s.y, line)
		y := s.y
		s.y++
		return s.send(y, y+1)
	}
	s.grid.ScrollUp()
	s.grid.SetLine(last, line)
	return s.send(0, s.grid.height)
}

func (s *TextStreamer) send(y0, y1 int) error {
	origin := image.Pt(0, y0)
	if s.UTF8 {
		return s.display.Transport.Send(servicepoint.Utf8Data(origin, s.grid.width, y1-y0, s.grid.Text(y0, y1)))
	}
	p, err := servicepoint.Cp437Data(origin, s.grid.width, y1-y0, s.grid.CP437(y0, y1))
	if err != nil {
		return err
	}
	return s.display.Transport.Send(p)
}
