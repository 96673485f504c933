package guest

import (
	callbacks "github.com/cosim-project/callbacks"
	"github.com/cosim-project/callbacks/wire"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "callbacks"
	fnLogger       = "logger"
	fnStepFinished = "stepFinished"
)

// HostCall defines the waPC host function signature used by callback
// forwarding.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client exposes the environment's callback table to guest code.
type Client interface {
	// Log forwards one log message to the environment's logger callback.
	Log(instanceName string, status callbacks.Status, category, template string, args ...any)

	// StepFinished signals the environment that an asynchronous step
	// completed.
	StepFinished(status callbacks.Status)
}

// Config controls how a Client instance interacts with the environment.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig callbacks.RuntimeConfig

	// HostCall overrides the waPC host function used for callback
	// forwarding.
	HostCall HostCall
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  callbacks.RuntimeConfig
	hostCall HostCall
}

// Ensure client satisfies the Client interface at compile time.
var _ Client = (*client)(nil)

// New creates a Client that forwards callback invocations to the
// environment.
func New(cfg Config) (Client, error) {
	runtimeCfg := cfg.SDKConfig
	if runtimeCfg.Namespace == "" {
		runtimeCfg.Namespace = callbacks.DefaultNamespace
	}

	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{
		runtime:  runtimeCfg,
		hostCall: hostCall,
	}, nil
}

// Log forwards one log message as a best-effort call. Serialization or
// transport failures are dropped, matching the void logger contract.
func (c *client) Log(instanceName string, status callbacks.Status, category, template string, args ...any) {
	msg := wire.LogMessage{
		Instance: instanceName,
		Status:   status,
		Category: category,
		Template: template,
		Args:     wire.Args(args...),
	}

	payload, err := msg.Marshal()
	if err != nil {
		return
	}

	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fnLogger, payload)
}

// StepFinished signals step completion as a best-effort call.
func (c *client) StepFinished(status callbacks.Status) {
	payload, err := (&wire.StepSignal{Status: status}).Marshal()
	if err != nil {
		return
	}

	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, fnStepFinished, payload)
}
