package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders a one-line progress indicator while a network call is in
// flight. Each Start launches a worker scoped to one call; the returned stop
// function signals it, joins it and clears the line. Idempotent to call twice.
type Spinner struct {
	w        io.Writer
	interval time.Duration
}

func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		w:        w,
		interval: 100 * time.Millisecond,
	}
}

func (s *Spinner) Start(label string) (stop func()) {
	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		frame := 0
		for {
			fmt.Fprintf(s.w, "\r%s %s", label, spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)]))
			frame++
			select {
			case <-stopCh:
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
			<-done
			// Clear the spinner line before handing the terminal back.
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(label)+4))
		})
	}
}
