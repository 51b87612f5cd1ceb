package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// SpinnerSink renders progress with a terminal spinner while a bridge
// operation waits on the chain.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner message, starting or stopping the spinner
// as requested.
func (r *SpinnerSink) OnProgress(ctx context.Context, message string, spin bool) {
	if spin {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + message
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message, pausing the spinner around it.
func (r *SpinnerSink) Info(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgCyan).Println(message)

	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message, pausing the spinner around it.
func (r *SpinnerSink) Error(message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	color.New(color.FgRed).Println(message)

	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner if it is running.
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
