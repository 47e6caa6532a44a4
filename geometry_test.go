package ledwand

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Geometry", func() {
	g := Geometry{TileWidth: 8, TileHeight: 8, SpacerHeight: 4, TilesX: 2, TilesY: 4}

	It("describes the CCCB display by default", func() {
		Expect(DefaultGeometry.PixelWidth()).To(Equal(448))
		Expect(DefaultGeometry.PixelHeight()).To(Equal(160))
		Expect(DefaultGeometry.CanvasHeight(true)).To(Equal(236))
		Expect(DefaultGeometry.CanvasHeight(false)).To(Equal(160))
		Expect(DefaultGeometry.DisplayHeight(236)).To(Equal(160))
		Expect(DefaultGeometry.Validate()).To(Succeed())
	})

	table.DescribeTable("DisplayHeight",
		func(canvas, want int) {
			Expect(g.DisplayHeight(canvas)).To(Equal(want))
		},
		table.Entry("three tile rows and a last one", 44, 32),
		table.Entry("a single tile row", 8, 8),
		table.Entry("a partial gap", 10, 8),
		table.Entry("a full trailing gap", 12, 8),
		table.Entry("one row into the second tile", 13, 9),
		table.Entry("empty", 0, 0),
	)

	It("never removes more rows than it has", func() {
		for h := 0; h < 500; h++ {
			d := DefaultGeometry.DisplayHeight(h)
			Expect(d).To(BeNumerically("<=", h))
			Expect(d).To(BeNumerically(">=", 0))
		}
	})

	table.DescribeTable("Validate rejects",
		func(g Geometry) {
			Expect(g.Validate()).To(MatchError(ErrGeometry))
		},
		table.Entry("tiles that are not a byte wide", Geometry{TileWidth: 6, TileHeight: 8, TilesX: 1, TilesY: 1}),
		table.Entry("negative spacers", Geometry{TileWidth: 8, TileHeight: 8, SpacerHeight: -1, TilesX: 1, TilesY: 1}),
		table.Entry("no tiles", Geometry{TileWidth: 8, TileHeight: 8}),
		table.Entry("flat tiles", Geometry{TileWidth: 8, TilesX: 1, TilesY: 1}),
	)
})
