package callbacks

import (
	"github.com/cosim-project/callbacks/memory"
)

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "cosim"

// Handle is the opaque component-environment reference supplied by the
// caller. The table never interprets it, only forwards it.
type Handle any

// LogFunc reports a formatted message on behalf of a component. It follows
// printf substitution rules and has no way to signal failure back to the
// caller.
type LogFunc func(handle Handle, instanceName string, status Status, category, format string, args ...any)

// AllocFunc returns a zero-initialized block of count*elementSize bytes, or
// nil when the request cannot be satisfied.
type AllocFunc func(count, elementSize uint64) *memory.Block

// FreeFunc releases a block obtained from the paired AllocFunc. A nil block
// is a safe no-op.
type FreeFunc func(block *memory.Block)

// StepFunc notifies the environment that an asynchronous computation step
// has completed.
type StepFunc func(handle Handle, status Status)

// Config provides configuration options for table assembly.
type Config struct {
	// Namespace controls the namespace transport adapters use when routing
	// calls back to the environment. If empty, DefaultNamespace is used.
	Namespace string

	// Logger receives log messages from the component. Required.
	Logger LogFunc

	// AllocateMemory hands out scratch memory. Defaults to the memory shim.
	AllocateMemory AllocFunc

	// FreeMemory releases scratch memory. Defaults to the memory shim.
	FreeMemory FreeFunc

	// StepFinished signals asynchronous step completion. Defaults to a no-op.
	StepFinished StepFunc
}

// RuntimeConfig carries configuration that is shared with transport adapters.
type RuntimeConfig struct {
	// Namespace scopes calls routed between component and environment.
	Namespace string
}

// Table is the fixed set of functions the environment passes to a component.
// The environment may invoke any of them at arbitrary points during a
// running component's lifetime.
type Table struct {
	// runtime holds the current runtime configuration snapshot.
	runtime RuntimeConfig

	// Logger reports a severity-tagged, categorized message.
	Logger LogFunc

	// AllocateMemory returns zero-initialized scratch memory, nil on failure.
	AllocateMemory AllocFunc

	// FreeMemory releases scratch memory. Accepts nil.
	FreeMemory FreeFunc

	// StepFinished signals that an asynchronous step has completed.
	StepFinished StepFunc
}

// New assembles a callback table, filling unset memory and step-completion
// entries with their defaults.
func New(config Config) (*Table, error) {
	// Validate Logger is not empty
	if config.Logger == nil {
		return nil, ErrLoggerNil
	}

	// Create runtime configuration with defaults
	cfg := RuntimeConfig{Namespace: DefaultNamespace}

	// Override defaults with provided configuration
	if config.Namespace != "" {
		cfg.Namespace = config.Namespace
	}

	table := &Table{
		runtime:        cfg,
		Logger:         config.Logger,
		AllocateMemory: config.AllocateMemory,
		FreeMemory:     config.FreeMemory,
		StepFinished:   config.StepFinished,
	}

	if table.AllocateMemory == nil {
		table.AllocateMemory = memory.Allocate
	}

	if table.FreeMemory == nil {
		table.FreeMemory = memory.Free
	}

	if table.StepFinished == nil {
		table.StepFinished = func(Handle, Status) {}
	}

	return table, nil
}

// Config returns the current runtime configuration snapshot.
func (t *Table) Config() RuntimeConfig { return t.runtime }
