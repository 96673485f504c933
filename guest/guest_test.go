package guest

import (
	"errors"
	"reflect"
	"testing"

	callbacks "github.com/cosim-project/callbacks"
	"github.com/cosim-project/callbacks/envmock"
	"github.com/cosim-project/callbacks/wire"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    HostCall
		wantNS      string
		wantHostPtr uintptr
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:        "default namespace with override",
			hostCall:    customHostCall,
			wantNS:      callbacks.DefaultNamespace,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(Config{SDKConfig: callbacks.RuntimeConfig{Namespace: tc.namespace}, HostCall: tc.hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			impl, ok := c.(*client)
			if !ok {
				t.Fatalf("expected *client implementation, got %T", c)
			}

			if impl.runtime.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, impl.runtime.Namespace)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(impl.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestLogRouting(t *testing.T) {
	t.Parallel()

	// Log is void, so a failed validation cannot surface through the
	// client; record it on the side instead.
	validationErr := errors.New("validator never ran")
	mock, err := envmock.New(envmock.Config{
		ExpectedNamespace:  callbacks.DefaultNamespace,
		ExpectedCapability: "callbacks",
		ExpectedFunction:   "logger",
		PayloadValidator: func(payload []byte) error {
			validationErr = validateLogPayload(payload)
			return validationErr
		},
	})
	if err != nil {
		t.Fatalf("envmock.New returned error: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Log("inst", callbacks.StatusWarning, "cat", "hello %s %d", "world", 2)

	if mock.Calls() != 1 {
		t.Fatalf("expected exactly one host call, got %d", mock.Calls())
	}
	if validationErr != nil {
		t.Fatalf("payload validation failed: %v", validationErr)
	}
}

func validateLogPayload(payload []byte) error {
	msg, err := wire.ParseLogMessage(payload)
	if err != nil {
		return err
	}
	if msg.Instance != "inst" || msg.Category != "cat" {
		return errors.New("routing fields not preserved")
	}
	if msg.Status != callbacks.StatusWarning {
		return errors.New("status not preserved")
	}
	if got := msg.Render(); got != "hello world 2" {
		return errors.New("unexpected rendered message: " + got)
	}
	return nil
}

func TestStepFinishedRouting(t *testing.T) {
	t.Parallel()

	validationErr := errors.New("validator never ran")
	mock, err := envmock.New(envmock.Config{
		ExpectedNamespace:  "sim",
		ExpectedCapability: "callbacks",
		ExpectedFunction:   "stepFinished",
		PayloadValidator: func(payload []byte) error {
			sig, err := wire.ParseStepSignal(payload)
			if err == nil && sig.Status != callbacks.StatusOK {
				err = errors.New("status not preserved")
			}
			validationErr = err
			return err
		},
	})
	if err != nil {
		t.Fatalf("envmock.New returned error: %v", err)
	}

	c, err := New(Config{SDKConfig: callbacks.RuntimeConfig{Namespace: "sim"}, HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.StepFinished(callbacks.StatusOK)

	if mock.Calls() != 1 {
		t.Fatalf("expected exactly one host call, got %d", mock.Calls())
	}
	if validationErr != nil {
		t.Fatalf("payload validation failed: %v", validationErr)
	}
}

func TestVoidContractOnFailure(t *testing.T) {
	t.Parallel()

	mock, err := envmock.New(envmock.Config{Fail: true})
	if err != nil {
		t.Fatalf("envmock.New returned error: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// Neither call has a way to surface the failure; both must return
	// normally.
	c.Log("inst", callbacks.StatusFatal, "cat", "unreachable environment")
	c.StepFinished(callbacks.StatusError)

	if mock.Calls() != 2 {
		t.Fatalf("expected both calls to reach the host, got %d", mock.Calls())
	}
}
