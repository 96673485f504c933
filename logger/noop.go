package logger

import (
	callbacks "github.com/cosim-project/callbacks"
)

// Noop is a logger that discards all messages. Used by environments that
// want a quiet component.
type Noop struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *Noop {
	return &Noop{}
}

// Log does nothing.
func (*Noop) Log(handle callbacks.Handle, instanceName string, status callbacks.Status, category, format string, args ...any) {
}
