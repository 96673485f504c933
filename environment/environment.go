package environment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	callbacks "github.com/cosim-project/callbacks"
	"github.com/cosim-project/callbacks/wire"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// hostModuleName is the import namespace guests use to reach the table.
const hostModuleName = "cosim_env"

var (
	// ErrTableNil is returned when no callback table is provided.
	ErrTableNil = errors.New("callback table cannot be nil")
)

// Config provides configuration options for environment creation.
type Config struct {
	// Table is the callback table handed to every loaded component.
	// Required.
	Table *callbacks.Table
}

// Environment manages the lifecycle of WebAssembly components and routes
// their callback invocations to the table.
type Environment struct {
	runtime wazero.Runtime
	table   *callbacks.Table

	mu         sync.RWMutex
	components map[string]*Component
}

// New creates an environment with the given callback table and registers
// the host functions components import.
func New(ctx context.Context, config Config) (*Environment, error) {
	if config.Table == nil {
		return nil, ErrTableNil
	}

	e := &Environment{
		table:      config.Table,
		components: make(map[string]*Component),
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases the runtime and every component still loaded.
func (e *Environment) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

func (e *Environment) registerHostFunctions(ctx context.Context) error {
	builder := e.runtime.NewHostModuleBuilder(hostModuleName)

	// logger(packed): upper 32 bits are the payload pointer, lower 32 bits
	// the payload length, both in the calling module's memory.
	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, packed uint64) {
			ptr := uint32(packed >> 32)
			length := uint32(packed)
			payload, ok := m.Memory().Read(ptr, length)
			if !ok {
				return
			}
			e.dispatchLog(m.Name(), payload)
		}).
		Export("logger")

	builder.NewFunctionBuilder().
		WithFunc(func(ctx context.Context, m api.Module, status uint32) {
			e.dispatchStep(m.Name(), callbacks.Status(int32(status)))
		}).
		Export("step_finished")

	_, err := builder.Instantiate(ctx)
	return err
}

// dispatchLog parses a wire-encoded log message and forwards it to the
// table's logger. The logger contract is void, so malformed payloads are
// dropped.
func (e *Environment) dispatchLog(moduleName string, payload []byte) {
	msg, err := wire.ParseLogMessage(payload)
	if err != nil {
		return
	}

	e.table.Logger(e.handleFor(moduleName), msg.Instance, msg.Status, msg.Category,
		msg.Template, wire.Values(msg.Args)...)
}

func (e *Environment) dispatchStep(moduleName string, status callbacks.Status) {
	e.table.StepFinished(e.handleFor(moduleName), status)
}

// handleFor resolves the opaque handle registered for a component. Calls
// from modules the environment did not load carry a nil handle.
func (e *Environment) handleFor(moduleName string) callbacks.Handle {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if c, ok := e.components[moduleName]; ok {
		return c.handle
	}
	return nil
}

func (e *Environment) forget(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.components, id)
}
