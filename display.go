package ledwand

import (
	"image"

	"github.com/kevin-cantwell/ledwand/servicepoint"
	log "github.com/sirupsen/logrus"
)

// Sink receives finished bitmaps.
type Sink interface {
	SendBitmap(origin image.Point, b *Bitmap) error
}

// Display sends bitmaps and control commands to a servicepoint display.
type Display struct {
	Transport   servicepoint.Transport
	Geometry    Geometry
	Compression servicepoint.Compression
}

// NewDisplay wraps t. Bitmaps are sent uncompressed unless Compression is set.
func NewDisplay(t servicepoint.Transport, g Geometry) *Display {
	return &Display{Transport: t, Geometry: g}
}

// SendBitmap draws b with its top left corner at origin.
func (d *Display) SendBitmap(origin image.Point, b *Bitmap) error {
	p, err := servicepoint.BitmapLinearWin(origin, b, d.Compression)
	if err != nil {
		return err
	}
	return d.Transport.Send(p)
}

// Clear switches every pixel off.
func (d *Display) Clear() error {
	if err := d.Transport.Send(servicepoint.Clear()); err != nil {
		return err
	}
	log.Info("reset pixels")
	return nil
}

// Fill switches every pixel on.
func (d *Display) Fill() error {
	b := NewBitmap(d.Geometry.PixelWidth(), d.Geometry.PixelHeight())
	b.Fill(true)
	if err := d.linear(servicepoint.OpSet, b); err != nil {
		return err
	}
	log.Info("turned on all pixels")
	return nil
}

// Invert flips every pixel.
func (d *Display) Invert() error {
	b := NewBitmap(d.Geometry.PixelWidth(), d.Geometry.PixelHeight())
	b.Fill(true)
	if err := d.linear(servicepoint.OpXor, b); err != nil {
		return err
	}
	log.Info("inverted all pixels")
	return nil
}

func (d *Display) linear(op servicepoint.Op, b *Bitmap) error {
	p, err := servicepoint.BitmapLinear(op, 0, b.Bytes(), d.Compression)
	if err != nil {
		return err
	}
	return d.Transport.Send(p)
}

// SetBrightness sets the brightness of the whole display.
func (d *Display) SetBrightness(level uint8) error {
	if err := d.Transport.Send(servicepoint.SetBrightness(level)); err != nil {
		return err
	}
	log.WithField("level", level).Info("set brightness")
	return nil
}

// HardReset restarts the display firmware.
func (d *Display) HardReset() error {
	if err := d.Transport.Send(servicepoint.HardReset()); err != nil {
		return err
	}
	log.Info("hard reset")
	return nil
}

// FadeOut dims the display slowly until it is dark.
func (d *Display) FadeOut() error {
	if err := d.Transport.Send(servicepoint.FadeOut()); err != nil {
		return err
	}
	log.Info("fading out")
	return nil
}

// Reset restores full brightness and clears the display.
func (d *Display) Reset() error {
	if err := d.SetBrightness(servicepoint.MaxBrightness); err != nil {
		return err
	}
	return d.Clear()
}
