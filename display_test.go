package ledwand

import (
	"errors"
	"image"

	"github.com/kevin-cantwell/ledwand/servicepoint"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Display", func() {
	var (
		fake *servicepoint.FakeTransport
		d    *Display
	)

	BeforeEach(func() {
		fake = &servicepoint.FakeTransport{}
		d = NewDisplay(fake, DefaultGeometry)
	})

	It("sends bitmaps in tile coordinates", func() {
		b := NewBitmap(64, 160)
		b.Set(0, 0, true)
		Expect(d.SendBitmap(image.Pt(192, 0), b)).To(Succeed())
		Expect(fake.Packets).To(HaveLen(1))
		p := fake.Packets[0]
		Expect(p.Code).To(Equal(servicepoint.CodeBitmapLinearWin))
		Expect([]uint16{p.A, p.B, p.C, p.D}).To(Equal([]uint16{24, 0, 8, 160}))
		Expect(p.Payload).To(HaveLen(8 * 160))
		Expect(p.Payload[0]).To(Equal(byte(0x80)))
	})

	It("compresses bitmaps when asked to", func() {
		d.Compression = servicepoint.Zstd
		b := NewBitmap(448, 160)
		Expect(d.SendBitmap(image.Point{}, b)).To(Succeed())
		p := fake.Packets[0]
		Expect(p.Code).To(Equal(servicepoint.CodeBitmapLinearWinZstd))
		Expect(len(p.Payload)).To(BeNumerically("<", len(b.Bytes())))
		raw, err := servicepoint.Decompress(servicepoint.Zstd, p.Payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(Equal(b.Bytes()))
	})

	It("rejects bitmaps off the tile grid", func() {
		Expect(d.SendBitmap(image.Pt(3, 0), NewBitmap(8, 8))).NotTo(Succeed())
		Expect(fake.Packets).To(BeEmpty())
	})

	It("fills and inverts the whole display", func() {
		Expect(d.Fill()).To(Succeed())
		Expect(d.Invert()).To(Succeed())
		Expect(fake.Packets).To(HaveLen(2))
		Expect(fake.Packets[0].Code).To(Equal(servicepoint.CodeBitmapLinear))
		Expect(fake.Packets[1].Code).To(Equal(servicepoint.CodeBitmapLinearXor))
		for _, p := range fake.Packets {
			Expect(p.A).To(BeZero())
			Expect(int(p.B)).To(Equal(448 * 160 / 8))
			Expect(p.Payload).To(HaveEach(byte(0xff)))
		}
	})

	It("resets brightness and pixels", func() {
		Expect(d.Reset()).To(Succeed())
		Expect(fake.Packets).To(HaveLen(2))
		Expect(fake.Packets[0].Code).To(Equal(servicepoint.CodeBrightness))
		Expect(fake.Packets[0].Payload).To(Equal([]byte{servicepoint.MaxBrightness}))
		Expect(fake.Packets[1].Code).To(Equal(servicepoint.CodeClear))
	})

	It("restarts and dims the display", func() {
		Expect(d.HardReset()).To(Succeed())
		Expect(d.FadeOut()).To(Succeed())
		Expect(fake.Packets).To(HaveLen(2))
		Expect(fake.Packets[0].Code).To(Equal(servicepoint.CodeHardReset))
		Expect(fake.Packets[1].Code).To(Equal(servicepoint.CodeFadeOut))
	})

	It("stops at the first failed packet", func() {
		boom := errors.New("unplugged")
		fake.OnSend = func(servicepoint.Packet) error { return boom }
		err := d.Reset()
		Expect(err).To(MatchError(boom))
		Expect(fake.Packets).To(HaveLen(1))
	})
})
