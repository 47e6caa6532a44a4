package main

import (
	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/ledwand"
)

var pipelineFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "no-hist",
		Usage: "Disable histogram correction.",
	},
	cli.BoolFlag{
		Name:  "no-blur",
		Usage: "Disable the blur pass.",
	},
	cli.BoolFlag{
		Name:  "no-sharp",
		Usage: "Disable the sharpen pass.",
	},
	cli.BoolFlag{
		Name:  "no-dither",
		Usage: "Cut at the median brightness instead of dithering - improves performance.",
	},
	cli.BoolFlag{
		Name:  "no-spacers",
		Usage: "Do not remove the rows hidden behind the gaps between tile rows.",
	},
	cli.BoolFlag{
		Name:  "no-aspect",
		Usage: "Stretch images to the whole display.",
	},
	cli.IntFlag{
		Name:  "bias",
		Usage: "`BIAS` = 127 is the brightness above which a dithered pixel is lit.",
		Value: ledwand.DefaultBias,
	},
	cli.BoolFlag{
		Name:  "invert",
		Usage: "Inverts the image.",
	},
	cli.BoolFlag{
		Name:  "preview",
		Usage: "Draw frames as braille in the terminal instead of sending them.",
	},
}

func loadConfig(c *cli.Context) (ledwand.File, error) {
	if name := c.GlobalString("config"); name != "" {
		return ledwand.LoadFile(name)
	}
	return ledwand.File{
		Geometry: ledwand.DefaultGeometry,
		Pipeline: ledwand.DefaultConfig(),
	}, nil
}

// pipelineConfig overrides cfg with the flags given on the command line.
func pipelineConfig(c *cli.Context, cfg ledwand.Config) ledwand.Config {
	if c.IsSet("no-hist") {
		cfg.DisableHistogram = c.Bool("no-hist")
	}
	if c.IsSet("no-blur") {
		cfg.DisableBlur = c.Bool("no-blur")
	}
	if c.IsSet("no-sharp") {
		cfg.DisableSharpen = c.Bool("no-sharp")
	}
	if c.IsSet("no-dither") {
		cfg.DisableDither = c.Bool("no-dither")
	}
	if c.IsSet("no-spacers") {
		cfg.DisableSpacerRemoval = c.Bool("no-spacers")
	}
	if c.IsSet("no-aspect") {
		cfg.DisableAspectPreservation = c.Bool("no-aspect")
	}
	if c.IsSet("bias") {
		cfg.DitherBias = uint8(min(max(c.Int("bias"), 0), 255))
	}
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	return cfg
}
