package ledwand

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Stream renders every frame of src and hands it to sink before asking src
// for the next one. It returns nil when src is exhausted and stops at the
// first error.
func Stream(src FrameSource, p *Pipeline, sink Sink) error {
	for n := 0; ; n++ {
		img, err := src.Next()
		if err == io.EOF {
			log.WithField("frames", n).Debug("end of input")
			return nil
		}
		if err != nil {
			return err
		}
		bitmap, err := p.Process(img)
		if err != nil {
			return fmt.Errorf("ledwand: frame %d: %w", n, err)
		}
		if err := sink.SendBitmap(p.Placement(bitmap), bitmap); err != nil {
			return err
		}
	}
}

// HandleInterrupt runs cleanup once SIGINT or SIGTERM arrives and then
// delivers the signal again, so the process ends the way it would have
// without the handler.
func HandleInterrupt(cleanup func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-signals
		cleanup()
		// Stop notifying this channel
		signal.Stop(signals)
		// All Signals returned by the signal package should be of type syscall.Signal
		if signum, ok := s.(syscall.Signal); ok {
			// Calling os.Exit here would be a bad idea if there are other goroutines
			// waiting to catch the same signal.
			unix.Kill(unix.Getpid(), signum)
		} else {
			panic(fmt.Sprintf("unexpected signal: %v", s))
		}
	}()
}
