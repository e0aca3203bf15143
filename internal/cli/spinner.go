package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line on stderr while a composition or render is
// in flight. It disappears when Stop is called or the bound context ends.
type Spinner struct {
	ctx     context.Context
	message string
	halt    chan struct{}
	idle    chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

// newSpinnerWithContext creates a spinner bound to ctx. Cancelled reports
// whether ctx ended, so callers can tell an interrupt from a normal stop.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return &Spinner{
		ctx:     ctx,
		message: message,
		halt:    make(chan struct{}),
		idle:    make(chan struct{}),
	}
}

// Start begins the animation in a background goroutine.
func (s *Spinner) Start() {
	go func() {
		defer close(s.idle)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.erase()
				return
			case <-s.halt:
				return
			case <-ticker.C:
				glyph := spinnerFrames[frame%len(spinnerFrames)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleSpin.Render(glyph), styleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// Stop halts the animation and erases the status line. Calling Stop more
// than once is safe, and a plain Stop does not count as a cancellation.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.halt) })
	<-s.idle
	s.erase()
}

// Cancelled reports whether the bound context ended.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *Spinner) erase() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
