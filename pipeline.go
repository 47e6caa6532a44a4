package ledwand

import (
	"image"

	log "github.com/sirupsen/logrus"
)

// Pipeline renders images for one display. A Pipeline keeps scratch buffers
// between calls to Process and must not be used from several goroutines.
type Pipeline struct {
	cfg    Config
	geom   Geometry
	canvas image.Point

	// gray holds the current stage's output, scratch is the destination of
	// the next convolution. They are swapped after every filter pass.
	gray, scratch *image.Gray
	working       *Bitmap
	ditherer      Ditherer
}

// NewPipeline returns a pipeline rendering to the given display.
func NewPipeline(cfg Config, geom Geometry) (*Pipeline, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:      cfg,
		geom:     geom,
		canvas:   image.Pt(geom.PixelWidth(), geom.CanvasHeight(!cfg.DisableSpacerRemoval)),
		ditherer: Ditherer{Bias: cfg.DitherBias},
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Geometry returns the display the pipeline renders to.
func (p *Pipeline) Geometry() Geometry { return p.geom }

// Canvas returns the size of the working canvas images are fitted to.
func (p *Pipeline) Canvas() image.Point { return p.canvas }

// Process renders img to a bitmap in device geometry. The returned bitmap is
// newly allocated and stays valid across later calls.
func (p *Pipeline) Process(img image.Image) (*Bitmap, error) {
	gray, err := Fit(p.gray, img, p.canvas.X, p.canvas.Y, !p.cfg.DisableAspectPreservation)
	if err != nil {
		return nil, err
	}
	p.gray = gray

	if !p.cfg.DisableHistogram {
		t := CorrectTone(p.gray, p.canvas.Y)
		log.WithFields(log.Fields{
			"pre":    t.PreOffset,
			"post":   t.PostOffset,
			"factor": t.Factor,
		}).Debug("tone correction")
	}
	if !p.cfg.DisableBlur {
		p.convolve(BlurKernel)
	}
	if !p.cfg.DisableSharpen {
		p.convolve(SharpenKernel)
	}

	w, h := p.gray.Rect.Dx(), p.gray.Rect.Dy()
	if p.working == nil || p.working.Width() != w || p.working.Height() != h {
		p.working = NewBitmap(w, h)
	}
	if p.cfg.DisableDither {
		Threshold(p.working, p.gray)
	} else {
		p.ditherer.Dither(p.working, p.gray)
	}

	var out *Bitmap
	if p.cfg.DisableSpacerRemoval {
		out = NewBitmap(w, h)
		copy(out.Bytes(), p.working.Bytes())
	} else {
		out = RemoveSpacers(p.working, p.geom)
	}
	if p.cfg.Invert {
		out.Invert()
	}
	return out, nil
}

func (p *Pipeline) convolve(k Kernel) {
	if p.scratch == nil || p.scratch.Rect != p.gray.Rect {
		p.scratch = image.NewGray(p.gray.Rect)
	}
	k.Convolve(p.scratch, p.gray)
	p.gray, p.scratch = p.scratch, p.gray
}

// Placement returns the origin at which b is centred on the display. The x
// coordinate is aligned to a tile.
func (p *Pipeline) Placement(b *Bitmap) image.Point {
	x := (p.geom.PixelWidth() - b.Width()) / 2
	x -= x % p.geom.TileWidth
	y := (p.geom.PixelHeight() - b.Height()) / 2
	return image.Pt(max(x, 0), max(y, 0))
}
