package midi

import (
	"context"
	"sync"
	"time"

	"melody-keyboard/debug"
)

// Output owns the session's output port. Discovery happens at most once;
// a failure is final and later dispatches become no-ops.
type Output struct {
	open    Opener
	timeout time.Duration

	once sync.Once
	done chan struct{}

	mu   sync.RWMutex
	port *Port
	err  error
}

func NewOutput(open Opener, timeout time.Duration) *Output {
	return &Output{
		open:    open,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Acquire discovers the port on the first call. Later calls return the
// first result without trying again.
func (o *Output) Acquire(ctx context.Context) (*Port, error) {
	o.once.Do(func() {
		port, err := Acquire(ctx, o.open, o.timeout)

		o.mu.Lock()
		o.port, o.err = port, err
		o.mu.Unlock()

		if err != nil {
			debug.Log("midi", "no MIDI output, continuing without it: %v", err)
		} else {
			debug.Log("midi", "using output %q", port.Name())
		}
		close(o.done)
	})
	return o.Port(), o.Err()
}

// Port is nil until a successful acquisition
func (o *Output) Port() *Port {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.port
}

func (o *Output) Err() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}

// Done is closed once acquisition has finished, either way
func (o *Output) Done() <-chan struct{} {
	return o.done
}
