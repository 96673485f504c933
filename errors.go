package callbacks

import "errors"

var (
	// ErrLoggerNil is returned when no logger callback is provided.
	ErrLoggerNil = errors.New("logger callback cannot be nil")
)
