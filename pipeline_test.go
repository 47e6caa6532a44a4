package ledwand

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// photo is a wide image with a bright disc on a dark background.
func photo(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy, r := w/2, h/2, h/3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: uint8(x * 255 / w), G: 40, B: uint8(y * 255 / h), A: 255}
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) < r*r {
				c = color.RGBA{R: 240, G: 230, B: 220, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var _ = Describe("Pipeline", func() {
	It("refuses invalid geometry", func() {
		_, err := NewPipeline(DefaultConfig(), Geometry{TileWidth: 8})
		Expect(err).To(MatchError(ErrGeometry))
	})

	It("works on a canvas with room for the gaps", func() {
		p, err := NewPipeline(DefaultConfig(), DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Canvas()).To(Equal(image.Pt(448, 236)))

		cfg := DefaultConfig()
		cfg.DisableSpacerRemoval = true
		p, err = NewPipeline(cfg, DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Canvas()).To(Equal(image.Pt(448, 160)))
		Expect(p.Config().DitherBias).To(Equal(uint8(DefaultBias)))
	})

	It("renders to the device geometry", func() {
		p, err := NewPipeline(DefaultConfig(), DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		b, err := p.Process(photo(896, 472))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Width()).To(Equal(448))
		Expect(b.Height()).To(Equal(160))
		Expect(b.Count()).To(BeNumerically(">", 0))
		Expect(b.Count()).To(BeNumerically("<", 448*160))
		Expect(p.Placement(b)).To(Equal(image.Point{}))
	})

	It("keeps the aspect ratio of tall images", func() {
		p, err := NewPipeline(DefaultConfig(), DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		b, err := p.Process(photo(100, 400))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Width()).To(Equal(64))
		Expect(b.Height()).To(Equal(DefaultGeometry.DisplayHeight(236)))
		Expect(p.Placement(b)).To(Equal(image.Pt(192, 0)))
	})

	It("stretches when asked to", func() {
		p, err := NewPipeline(Config{DisableAspectPreservation: true}, DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		b, err := p.Process(photo(100, 400))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Bounds()).To(Equal(DefaultGeometry.Bounds()))
	})

	It("runs with every stage disabled", func() {
		cfg := Config{
			DisableHistogram:     true,
			DisableBlur:          true,
			DisableSharpen:       true,
			DisableDither:        true,
			DisableSpacerRemoval: true,
		}
		p, err := NewPipeline(cfg, DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		b, err := p.Process(photo(448, 160))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Height()).To(Equal(160))
		Expect(b.Count()).To(BeNumerically("~", 448*160/2, 448*160/10))
	})

	It("dithers with the configured bias, zero included", func() {
		cfg := Config{
			DisableHistogram:          true,
			DisableSpacerRemoval:      true,
			DisableAspectPreservation: true,
		}
		dark := uniformGray(16, 16, 60)

		cfg.DitherBias = 0
		zero, err := NewPipeline(cfg, DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())
		Expect(zero.Config().DitherBias).To(BeZero())
		cfg.DitherBias = DefaultBias
		middle, err := NewPipeline(cfg, DefaultGeometry)
		Expect(err).NotTo(HaveOccurred())

		a, err := zero.Process(dark)
		Expect(err).NotTo(HaveOccurred())
		b, err := middle.Process(dark)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Count()).To(BeNumerically(">", b.Count()))
	})

	It("produces identical bitmaps for identical input", func() {
		a, _ := NewPipeline(DefaultConfig(), DefaultGeometry)
		b, _ := NewPipeline(DefaultConfig(), DefaultGeometry)
		first, err := a.Process(photo(640, 480))
		Expect(err).NotTo(HaveOccurred())
		second, err := b.Process(photo(640, 480))
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Equal(second)).To(BeTrue())

		_, err = a.Process(photo(300, 900))
		Expect(err).NotTo(HaveOccurred())
		third, err := a.Process(photo(640, 480))
		Expect(err).NotTo(HaveOccurred())
		Expect(third.Equal(first)).To(BeTrue())
	})

	It("hands out bitmaps that later frames do not change", func() {
		p, _ := NewPipeline(DefaultConfig(), DefaultGeometry)
		first, _ := p.Process(photo(640, 480))
		kept := NewBitmap(first.Width(), first.Height())
		copy(kept.Bytes(), first.Bytes())
		_, err := p.Process(photo(800, 200))
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Equal(kept)).To(BeTrue())
	})

	It("inverts the result", func() {
		plain, _ := NewPipeline(DefaultConfig(), DefaultGeometry)
		cfg := DefaultConfig()
		cfg.Invert = true
		inverted, _ := NewPipeline(cfg, DefaultGeometry)
		a, _ := plain.Process(photo(640, 480))
		b, _ := inverted.Process(photo(640, 480))
		Expect(a.Count() + b.Count()).To(Equal(a.Width() * a.Height()))
	})

	It("rejects empty frames", func() {
		p, _ := NewPipeline(DefaultConfig(), DefaultGeometry)
		_, err := p.Process(image.NewRGBA(image.Rectangle{}))
		Expect(err).To(MatchError(ErrEmptyImage))
	})
})
