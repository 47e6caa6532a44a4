package ledwand

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Braille", func() {
	It("maps dots to code points", func() {
		Expect(Braille{}.String()).To(Equal("⠀"))
		Expect(Braille{{1, 1, 1, 1}, {1, 1, 1, 1}}.String()).To(Equal("⣿"))
		Expect(Braille{{1, 0, 0, 0}, {0, 0, 0, 0}}.String()).To(Equal("⠁"))
		Expect(Braille{{0, 0, 0, 0}, {0, 0, 0, 1}}.String()).To(Equal("⢀"))
	})

	It("draws lit pixels as dots", func() {
		b := NewBitmap(8, 6)
		b.Set(0, 0, true)
		b.Set(1, 0, true)
		b.Set(0, 4, true)
		var buf bytes.Buffer
		Expect(EncodeBraille(&buf, b)).To(Succeed())
		Expect(BrailleLines(b)).To(Equal(2))
		Expect(buf.String()).To(Equal("⠉⠀⠀⠀\n⠁⠀⠀⠀\n"))
	})

	It("rewinds the cursor between frames", func() {
		var buf bytes.Buffer
		sink := NewTerminalSink(&buf, nil)
		b := NewBitmap(8, 8)
		Expect(sink.SendBitmap(b.Bounds().Min, b)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("\033[?25l"))
		buf.Reset()

		Expect(sink.SendBitmap(b.Bounds().Min, b)).To(Succeed())
		Expect(buf.String()).To(HavePrefix("\033[999D\033[2A"))
		Expect(strings.Count(buf.String(), "\n")).To(Equal(2))

		buf.Reset()
		Expect(sink.Close()).To(Succeed())
		Expect(buf.String()).To(Equal("\033[?12l\033[?25h"))
	})
})
