package environment

import (
	"context"
	"fmt"

	callbacks "github.com/cosim-project/callbacks"
	"github.com/google/uuid"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Component is one instantiated WebAssembly component.
type Component struct {
	module api.Module
	env    *Environment
	id     string
	handle callbacks.Handle
}

// Load instantiates a component from its binary and associates the given
// opaque handle with every callback it later issues. The handle is never
// interpreted, only forwarded.
func (e *Environment) Load(ctx context.Context, binary []byte, handle callbacks.Handle) (*Component, error) {
	// Instance IDs double as wazero module names so host functions can
	// resolve the caller.
	id := uuid.New().String()

	mod, err := e.runtime.InstantiateWithConfig(ctx, binary, wazero.NewModuleConfig().WithName(id))
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate component: %w", err)
	}

	c := &Component{module: mod, env: e, id: id, handle: handle}

	e.mu.Lock()
	e.components[id] = c
	e.mu.Unlock()

	return c, nil
}

// ID returns the environment-assigned instance identifier.
func (c *Component) ID() string { return c.id }

// Handle returns the opaque handle registered at Load time.
func (c *Component) Handle() callbacks.Handle { return c.handle }

// Invoke calls an exported guest function that takes no parameters.
func (c *Component) Invoke(ctx context.Context, export string) error {
	fn := c.module.ExportedFunction(export)
	if fn == nil {
		return fmt.Errorf("export %q not found", export)
	}

	if _, err := fn.Call(ctx); err != nil {
		return fmt.Errorf("failed to invoke %q: %w", export, err)
	}

	return nil
}

// Close unloads the component. Callbacks issued after Close carry a nil
// handle.
func (c *Component) Close(ctx context.Context) error {
	c.env.forget(c.id)
	return c.module.Close(ctx)
}
