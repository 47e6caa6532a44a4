package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/ledwand"
	"github.com/kevin-cantwell/ledwand/servicepoint"
	log "github.com/sirupsen/logrus"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "ledwand"
	app.Usage = "A command line interface for the ServicePoint display."
	app.UsageText = "1) ledwand [options] image [file|url]\n" +
		/*      */ "   2) ledwand [options] stream screen"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "destination,d",
			Usage: "`HOST:PORT` of the display, or a ws:// url for the websocket transport.",
			Value: servicepoint.DefaultDestination,
		},
		cli.StringFlag{
			Name:  "transport,t",
			Usage: "`PROTOCOL` used to talk to the display: udp, websocket or fake.",
			Value: string(servicepoint.UDP),
		},
		cli.StringFlag{
			Name:  "compression",
			Usage: "`CODEC` for bitmaps: none, zlib or zstd.",
			Value: "none",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with geometry and pipeline settings.",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Verbose logging.",
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetOutput(os.Stderr)
		if c.Bool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:    "reset",
			Aliases: []string{"r"},
			Usage:   "Reset both pixels and brightness",
			Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
				return d.Reset()
			}),
		},
		{
			Name:  "hard-reset",
			Usage: "Restart the display",
			Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
				return d.HardReset()
			}),
		},
		{
			Name:  "fade-out",
			Usage: "Slowly dim the display until it is dark",
			Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
				return d.FadeOut()
			}),
		},
		{
			Name:    "pixels",
			Aliases: []string{"p"},
			Usage:   "Commands for manipulating pixels",
			Subcommands: []cli.Command{
				{
					Name:    "off",
					Aliases: []string{"r", "reset", "clear"},
					Usage:   "Reset all pixels to the default (off) state",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						return d.Clear()
					}),
				},
				{
					Name:    "invert",
					Aliases: []string{"i"},
					Usage:   "Invert the state of all pixels",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						return d.Invert()
					}),
				},
				{
					Name:  "on",
					Usage: "Set all pixels to the on state",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						return d.Fill()
					}),
				},
			},
		},
		{
			Name:    "brightness",
			Aliases: []string{"b"},
			Usage:   "Commands for manipulating the brightness",
			Subcommands: []cli.Command{
				{
					Name:    "max",
					Aliases: []string{"r", "reset"},
					Usage:   "Reset brightness to the default (max) level",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						return d.SetBrightness(servicepoint.MaxBrightness)
					}),
				},
				{
					Name:  "min",
					Usage: "Set brightness to lowest possible level",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						return d.SetBrightness(servicepoint.MinBrightness)
					}),
				},
				{
					Name:      "set",
					Aliases:   []string{"s"},
					Usage:     "Set one brightness for the whole screen",
					ArgsUsage: "LEVEL",
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						level, err := strconv.ParseUint(c.Args().First(), 10, 8)
						if err != nil {
							return fmt.Errorf("brightness must be a number between 0 and 255: %v", err)
						}
						return d.SetBrightness(uint8(level))
					}),
				},
			},
		},
		{
			Name:      "image",
			Aliases:   []string{"i"},
			Usage:     "Send one image to the display",
			ArgsUsage: "[file|url]",
			Flags:     pipelineFlags,
			Action: func(c *cli.Context) error {
				r, err := ledwand.OpenInput(c.Args().First())
				if err != nil {
					return err
				}
				defer r.Close()
				return render(c, ledwand.NewStillSource(r))
			},
		},
		{
			Name:      "preview",
			Usage:     "Render an image as braille, or as PNG with --png, without a display",
			ArgsUsage: "[file|url]",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "png",
					Usage: "Write the bitmap to `FILE` as PNG.",
				},
			}, pipelineFlags...),
			Action: preview,
		},
		{
			Name:    "stream",
			Aliases: []string{"s"},
			Usage:   "Continuously send data to the display",
			Subcommands: []cli.Command{
				{
					Name:  "stdin",
					Usage: "Pipe text to the display, example: `journalctl | ledwand stream stdin`",
					Flags: []cli.Flag{
						cli.BoolFlag{
							Name:  "slow,s",
							Usage: "Wait for a short amount of time before sending the next line.",
						},
						cli.BoolFlag{
							Name:  "utf8",
							Usage: "Send text as UTF-8 instead of code page 437.",
						},
					},
					Action: withDisplay(func(c *cli.Context, d *ledwand.Display) error {
						s := ledwand.NewTextStreamer(d)
						s.UTF8 = c.Bool("utf8")
						if c.Bool("slow") {
							s.Delay = ledwand.FramePacing
						}
						return s.Run(os.Stdin)
					}),
				},
				{
					Name:  "screen",
					Usage: "Stream a screen of this machine to the display",
					Flags: append([]cli.Flag{
						cli.IntFlag{
							Name:  "screen",
							Usage: "`INDEX` of the screen to capture, 0 is the primary screen.",
						},
					}, pipelineFlags...),
					Action: func(c *cli.Context) error {
						src, err := ledwand.NewScreenSource(c.Int("screen"))
						if err != nil {
							return err
						}
						return render(c, src)
					},
				},
				{
					Name:      "video",
					Usage:     "Stream MJPEG, example: `ffmpeg -i in.mp4 -f mjpeg - | ledwand stream video`",
					ArgsUsage: "[file|url]",
					Flags:     pipelineFlags,
					Action: func(c *cli.Context) error {
						r, err := ledwand.OpenInput(c.Args().First())
						if err != nil {
							return err
						}
						defer r.Close()
						return render(c, ledwand.NewMJPEGSource(r))
					},
				},
				{
					Name:      "gif",
					Usage:     "Play an animated gif",
					ArgsUsage: "[file|url]",
					Flags: append([]cli.Flag{
						cli.BoolFlag{
							Name:  "loop,l",
							Usage: "Repeat the animation as often as the gif asks for.",
						},
					}, pipelineFlags...),
					Action: func(c *cli.Context) error {
						r, err := ledwand.OpenInput(c.Args().First())
						if err != nil {
							return err
						}
						defer r.Close()
						src, err := ledwand.NewGIFSource(r)
						if err != nil {
							return err
						}
						src.Repeat = c.Bool("loop")
						return render(c, src)
					},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

// render streams src through a pipeline, to the terminal with --preview and
// to the display otherwise.
func render(c *cli.Context, src ledwand.FrameSource) error {
	file, err := loadConfig(c)
	if err != nil {
		return err
	}
	p, err := ledwand.NewPipeline(pipelineConfig(c, file.Pipeline), file.Geometry)
	if err != nil {
		return err
	}
	log.WithField("config", fmt.Sprintf("%+v", p.Config())).Debug("pipeline ready")

	if c.Bool("preview") {
		sink := ledwand.NewTerminalSink(os.Stdout, nil)
		defer sink.Close()
		ledwand.HandleInterrupt(func() { sink.Close() })
		return ledwand.Stream(src, p, sink)
	}

	d, err := connect(c, file.Geometry)
	if err != nil {
		return err
	}
	defer d.Transport.Close()
	ledwand.HandleInterrupt(func() { d.Transport.Close() })
	log.Info("now starting to stream images")
	return ledwand.Stream(src, p, d)
}

func preview(c *cli.Context) error {
	file, err := loadConfig(c)
	if err != nil {
		return err
	}
	p, err := ledwand.NewPipeline(pipelineConfig(c, file.Pipeline), file.Geometry)
	if err != nil {
		return err
	}
	r, err := ledwand.OpenInput(c.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()
	img, err := ledwand.NewStillSource(r).Next()
	if err != nil {
		return err
	}
	bitmap, err := p.Process(img)
	if err != nil {
		return err
	}

	if name := c.String("png"); name != "" {
		out, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := png.Encode(out, bitmap); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
	return ledwand.EncodeBraille(os.Stdout, bitmap)
}

func withDisplay(action func(*cli.Context, *ledwand.Display) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		file, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, err := connect(c, file.Geometry)
		if err != nil {
			return err
		}
		defer d.Transport.Close()
		return action(c, d)
	}
}

func connect(c *cli.Context, g ledwand.Geometry) (*ledwand.Display, error) {
	kind, err := servicepoint.ParseKind(c.GlobalString("transport"))
	if err != nil {
		return nil, err
	}
	compression, err := servicepoint.ParseCompression(c.GlobalString("compression"))
	if err != nil {
		return nil, err
	}
	t, err := servicepoint.Dial(kind, c.GlobalString("destination"))
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"transport":   kind,
		"destination": c.GlobalString("destination"),
	}).Debug("connection established")

	d := ledwand.NewDisplay(t, g)
	d.Compression = compression
	return d, nil
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
