package output

import (
	"time"

	"melody-keyboard/debug"
	"melody-keyboard/keyboard"
	"melody-keyboard/midi"
	"melody-keyboard/theory"
)

const (
	DefaultNoteLength = 1000 * time.Millisecond
	DefaultToast      = 2000 * time.Millisecond
)

// Dispatcher turns a resolved pitch class into output. It keeps no state
// between calls.
type Dispatcher struct {
	notifier   Notifier
	noteLength time.Duration
	velocity   uint8
	toast      time.Duration

	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

func WithNoteLength(d time.Duration) Option {
	return func(disp *Dispatcher) {
		disp.noteLength = d
	}
}

func WithVelocity(v uint8) Option {
	return func(disp *Dispatcher) {
		disp.velocity = v
	}
}

func WithToastDuration(d time.Duration) Option {
	return func(disp *Dispatcher) {
		disp.toast = d
	}
}

// WithClock replaces time.Now and time.AfterFunc
func WithClock(now func() time.Time, afterFunc func(time.Duration, func())) Option {
	return func(disp *Dispatcher) {
		disp.now = now
		disp.afterFunc = afterFunc
	}
}

func NewDispatcher(notifier Notifier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		notifier:   notifier,
		noteLength: DefaultNoteLength,
		velocity:   midi.MaxVelocity,
		toast:      DefaultToast,
		now:        time.Now,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch plays pc through mode. A nil port makes MIDI mode a no-op.
func (d *Dispatcher) Dispatch(pc theory.PitchClass, mode keyboard.Mode, port *midi.Port) {
	switch mode {
	case keyboard.ModeNotify:
		if d.notifier != nil {
			d.notifier.Notify(Notification{Note: pc, Mode: mode, Duration: d.toast})
		}
	case keyboard.ModeMIDI:
		d.playMIDI(pc, port)
	}
}

// playMIDI sends note-on now and leaves note-off to a timer due
// noteLength after the call started.
func (d *Dispatcher) playMIDI(pc theory.PitchClass, port *midi.Port) {
	if port == nil {
		return
	}
	start := d.now()
	note := midi.NoteNumber(pc)

	if err := port.Send(midi.NoteOnMessage(note, d.velocity)); err != nil {
		debug.Error("output", err, "note on %d to %s", note, port.Name())
		return
	}

	delay := d.noteLength - d.now().Sub(start)
	if delay < 0 {
		delay = 0
	}
	d.afterFunc(delay, func() {
		if err := port.Send(midi.NoteOffMessage(note)); err != nil {
			debug.Error("output", err, "note off %d to %s", note, port.Name())
		}
	})
	debug.Log("output", "%s (%d) on %s, off in %s", pc, note, port.Name(), delay)
}
