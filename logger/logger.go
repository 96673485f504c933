package logger

import (
	"fmt"
	"io"
	"os"

	callbacks "github.com/cosim-project/callbacks"
	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Client is the logging contract a callback table expects.
type Client interface {
	Log(handle callbacks.Handle, instanceName string, status callbacks.Status, category, format string, args ...any)
}

// Config controls where and how log lines are written.
type Config struct {
	// Output receives log lines. Defaults to os.Stdout.
	Output io.Writer

	// Color forces color annotation of the status label. When Output is
	// unset, color is also enabled automatically if stdout is a terminal.
	Color bool
}

// Console writes log lines to an output stream with optional color support.
type Console struct {
	out   io.Writer
	color bool
}

// Ensure Console satisfies the Client interface at compile time.
var _ Client = (*Console)(nil)

// New creates a console logger. Color output is automatically enabled when
// writing to a terminal stdout.
func New(config Config) (*Console, error) {
	out := config.Output
	color := config.Color

	if out == nil {
		out = os.Stdout
		if !color {
			color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		}
	}

	return &Console{out: out, color: color}, nil
}

// Log renders the message with printf substitution rules and writes one
// line to the output stream. Mismatched placeholders and arguments are a
// caller contract violation and show up verbatim in the rendered message.
// Log cannot report its own failures; write errors are dropped.
func (c *Console) Log(handle callbacks.Handle, instanceName string, status callbacks.Status, category, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	label := status.String()
	if c.color {
		label = colorize(status, label)
	}

	fmt.Fprintf(c.out, "[%s][%s][%s]: %s\n", label, category, instanceName, message)
}

// colorize wraps the canonical label in a terminal color annotation. The
// label text itself stays untouched so parsers can strip the markup.
func colorize(status callbacks.Status, label string) string {
	switch status {
	case callbacks.StatusOK:
		return colorGreen + label + colorReset
	case callbacks.StatusWarning, callbacks.StatusDiscard, callbacks.StatusPending:
		return colorYellow + label + colorReset
	default:
		// Error, Fatal, and anything outside the enumeration.
		return colorRed + label + colorReset
	}
}
