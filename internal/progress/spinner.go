// Package progress draws the cosmetic spinner shown while an external tool
// runs. It never touches registry files.
package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var defaultFrames = []string{"⢿", "⣻", "⣽", "⣾", "⣷", "⣯", "⣟", "⡿"}

var frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C05"))

// Spinner redraws a frame and message on an interval until stopped.
type Spinner struct {
	w        io.Writer
	interval time.Duration
	frames   []string
	animate  bool
}

// New creates a Spinner writing to w. Animation is only enabled when w is a
// terminal; otherwise the message and final line are printed once each.
func New(w io.Writer, interval time.Duration) *Spinner {
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}
	animate := false
	if f, ok := w.(*os.File); ok {
		animate = term.IsTerminal(int(f.Fd()))
	}
	return &Spinner{w: w, interval: interval, frames: defaultFrames, animate: animate}
}

// Start begins drawing message and returns a function that stops the
// spinner, waits for the drawing goroutine to exit, and prints final.
func (s *Spinner) Start(ctx context.Context, message string) (stop func(final string)) {
	if !s.animate {
		fmt.Fprintln(s.w, message)
		return func(final string) {
			if final != "" {
				fmt.Fprintln(s.w, final)
			}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i = (i + 1) % len(s.frames) {
			fmt.Fprintf(s.w, "\r%s %s", frameStyle.Render(s.frames[i]), message)
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
			}
		}
	})

	return func(final string) {
		interrupted := ctx.Err() != nil
		cancel()
		if err := g.Wait(); interrupted {
			slog.Debug("spinner interrupted before stop", "message", message, "error", err)
		}
		fmt.Fprint(s.w, "\r\x1b[K")
		if final != "" {
			fmt.Fprintln(s.w, final)
		}
	}
}
