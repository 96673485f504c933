package step

import (
	"sync"

	callbacks "github.com/cosim-project/callbacks"
)

// Hook receives step-completion notifications from a component.
type Hook interface {
	StepFinished(handle callbacks.Handle, status callbacks.Status)
}

// Noop is the standard step-completion hook: it performs no action and has
// no observable side effect. Reserved extension point.
type Noop struct{}

// StepFinished does nothing.
func (Noop) StepFinished(handle callbacks.Handle, status callbacks.Status) {}

// Func adapts a plain function into a Hook.
type Func func(handle callbacks.Handle, status callbacks.Status)

// StepFinished invokes the wrapped function.
func (f Func) StepFinished(handle callbacks.Handle, status callbacks.Status) {
	f(handle, status)
}

// Notification is one recorded step-completion call.
type Notification struct {
	Handle callbacks.Handle
	Status callbacks.Status
}

// Recorder is a Hook that remembers every notification it receives. Safe
// for concurrent use.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// StepFinished records the notification.
func (r *Recorder) StepFinished(handle callbacks.Handle, status callbacks.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Handle: handle, Status: status})
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

var (
	_ Hook = Noop{}
	_ Hook = Func(nil)
	_ Hook = (*Recorder)(nil)
)
