package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// ConsoleNotifier renders user-facing toasts to a terminal. It is the CLI
// stand-in for the web app's toast surface.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stderr.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stderr}
}

// NewConsoleNotifierTo creates a notifier writing to w.
func NewConsoleNotifierTo(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: w}
}

// Success renders a success toast.
func (n *ConsoleNotifier) Success(title, message string) {
	fmt.Fprintf(n.out, "%s %s: %s\n", color.GreenString("✓"), color.New(color.Bold).Sprint(title), message)
}

// Error renders an error toast.
func (n *ConsoleNotifier) Error(title, message string) {
	fmt.Fprintf(n.out, "%s %s: %s\n", color.RedString("✗"), color.New(color.Bold).Sprint(title), message)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Error(string, string)   {}

var _ usecase.Notifier = (*ConsoleNotifier)(nil)
var _ usecase.Notifier = NopNotifier{}
