// Package clipboard copies text to the clipboard through a replaceable
// write function, turning every failure into a logged false.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned by [System] when the platform has no usable
// clipboard utility.
var ErrUnsupported = errors.New("no system clipboard available")

// WriteFunc places text on a clipboard.
type WriteFunc func(text string) error

// System writes to the operating system clipboard.
func System(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52 returns a WriteFunc that asks the terminal on w to set its
// clipboard. It works over SSH, and inside tmux or screen when the
// multiplexer passes the sequence through.
func OSC52(w io.Writer) WriteFunc {
	return func(text string) error {
		seq := osc52.New(text)
		switch {
		case os.Getenv("TMUX") != "":
			seq = seq.Tmux()
		case strings.HasPrefix(os.Getenv("TERM"), "screen"):
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(w)
		return err
	}
}

// Fallback returns a WriteFunc trying each of fns in turn until one
// succeeds. If all fail, their errors are joined.
func Fallback(fns ...WriteFunc) WriteFunc {
	return func(text string) error {
		var errs []error
		for _, fn := range fns {
			err := fn(text)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return ErrUnsupported
		}
		return errors.Join(errs...)
	}
}

// Copier copies text with a WriteFunc, logging failures.
type Copier struct {
	write  WriteFunc
	logger *slog.Logger
}

// New returns a Copier. A nil write uses the system clipboard with an
// OSC 52 fallback on stderr; a nil logger uses slog.Default.
func New(write WriteFunc, logger *slog.Logger) *Copier {
	if write == nil {
		write = Fallback(System, OSC52(os.Stderr))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Copier{write: write, logger: logger}
}

// Copy writes text and reports whether it succeeded. It never panics;
// errors and panics from the WriteFunc are logged and reported as false.
func (c *Copier) Copy(text string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("failed to copy", "err", fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()

	if err := c.write(text); err != nil {
		c.logger.Error("failed to copy", "bytes", len(text), "err", err)
		return false
	}
	return true
}
