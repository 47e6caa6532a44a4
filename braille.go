package ledwand

import (
	"bufio"
	"io"
)

// Braille represents an 8 dot braille pattern in x,y coordinates space. Eg:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
type Braille [2][4]int

// Rune maps each point in braille to a dot identifier and
// calculates the corresponding unicode symbol.
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
func (b Braille) Rune() rune {
	lowEndian := [8]int{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v int
	for i, x := range lowEndian {
		v += x << uint(i)
	}
	return rune(v) + '\u2800'
}

func (b Braille) String() string {
	return string(b.Rune())
}

// BrailleLines returns how many lines of text EncodeBraille writes for b.
func BrailleLines(b *Bitmap) int {
	return (b.Height() + 3) / 4
}

/*
EncodeBraille writes b as lines of braille symbols, one symbol per 2x4 block
of pixels, lit pixels drawn as raised dots. A 448x160 display fits into
224 columns and 40 lines of a terminal.
*/
func EncodeBraille(w io.Writer, b *Bitmap) error {
	bw := bufio.NewWriter(w)
	for py := 0; py < b.Height(); py += 4 {
		for px := 0; px < b.Width(); px += 2 {
			var sym Braille
			// Draw left-right, top-bottom.
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if px+x >= b.Width() || py+y >= b.Height() {
						continue
					}
					if b.Get(px+x, py+y) {
						sym[x][y] = 1
					}
				}
			}
			bw.WriteRune(sym.Rune())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
