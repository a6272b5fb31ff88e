package midi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

var (
	// ErrNoOutputPorts means the host has no usable MIDI output
	ErrNoOutputPorts  = errors.New("no MIDI output ports")
	ErrAcquireTimeout = errors.New("timed out waiting for MIDI ports")
)

// Sender writes one message to a device
type Sender func(msg gomidi.Message) error

// Port is an open output device. Send is safe to call from timer goroutines.
type Port struct {
	name  string
	send  Sender
	close func() error
	mu    sync.Mutex
}

// NewPort wraps a sender; closeFn may be nil
func NewPort(name string, send Sender, closeFn func() error) *Port {
	return &Port{name: name, send: send, close: closeFn}
}

func (p *Port) Name() string {
	return p.name
}

func (p *Port) Send(msg gomidi.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.send(msg)
}

func (p *Port) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// Opener discovers and opens a single output port
type Opener func() (*Port, error)

// OpenFirstOut opens the first output port the driver reports
func OpenFirstOut() (*Port, error) {
	outs := gomidi.GetOutPorts()
	if len(outs) == 0 {
		return nil, ErrNoOutputPorts
	}

	out := outs[0]
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", out.String(), err)
	}
	return NewPort(out.String(), send, out.Close), nil
}

// ListOutPorts returns output port names, giving up after timeout
// (CoreMIDI can hang)
func ListOutPorts(ctx context.Context, timeout time.Duration) ([]string, error) {
	ch := make(chan []string, 1)
	go func() {
		var names []string
		for _, out := range gomidi.GetOutPorts() {
			names = append(names, out.String())
		}
		ch <- names
	}()

	select {
	case names := <-ch:
		return names, nil
	case <-time.After(timeout):
		return nil, ErrAcquireTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Acquire runs open in the background and waits up to timeout for it.
// A port that turns up after we gave up is closed.
func Acquire(ctx context.Context, open Opener, timeout time.Duration) (*Port, error) {
	type result struct {
		port *Port
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("midi driver panic: %v", r)}
			}
		}()
		port, err := open()
		ch <- result{port: port, err: err}
	}()

	abandon := func() {
		go func() {
			if r := <-ch; r.port != nil {
				r.port.Close()
			}
		}()
	}

	select {
	case r := <-ch:
		if r.port == nil && r.err == nil {
			return nil, ErrNoOutputPorts
		}
		return r.port, r.err
	case <-time.After(timeout):
		abandon()
		return nil, ErrAcquireTimeout
	case <-ctx.Done():
		abandon()
		return nil, ctx.Err()
	}
}
