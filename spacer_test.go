package ledwand

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RemoveSpacers", func() {
	g := Geometry{TileWidth: 8, TileHeight: 8, SpacerHeight: 4, TilesX: 1, TilesY: 4}

	// numbered writes the row index into the first byte of every row.
	numbered := func(h int) *Bitmap {
		b := NewBitmap(8, h)
		for y := 0; y < h; y++ {
			b.Row(y)[0] = byte(y)
		}
		return b
	}

	It("drops the gap rows between tile rows", func() {
		out := RemoveSpacers(numbered(44), g)
		Expect(out.Width()).To(Equal(8))
		Expect(out.Height()).To(Equal(32))

		var rows []byte
		for y := 0; y < out.Height(); y++ {
			rows = append(rows, out.Row(y)[0])
		}
		Expect(rows).To(Equal([]byte{
			0, 1, 2, 3, 4, 5, 6, 7,
			12, 13, 14, 15, 16, 17, 18, 19,
			24, 25, 26, 27, 28, 29, 30, 31,
			36, 37, 38, 39, 40, 41, 42, 43,
		}))
	})

	It("keeps only tile rows", func() {
		src := NewBitmap(8, 44)
		for y := 0; y < 44; y++ {
			src.Set(0, y, y%12 < 8)
		}
		out := RemoveSpacers(src, g)
		Expect(out.Count()).To(Equal(32))
	})

	It("matches DisplayHeight for every canvas height", func() {
		for h := 0; h < 100; h++ {
			Expect(RemoveSpacers(numbered(h), g).Height()).To(Equal(g.DisplayHeight(h)))
		}
	})

	It("does nothing without spacers", func() {
		flat := g
		flat.SpacerHeight = 0
		src := numbered(20)
		Expect(RemoveSpacers(src, flat).Equal(src)).To(BeTrue())
	})
})
