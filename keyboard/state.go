package keyboard

import (
	"errors"
	"fmt"
	"strings"

	"melody-keyboard/theory"
)

// Mode selects where a played note goes
type Mode int

const (
	ModeMIDI Mode = iota
	ModeNotify
)

var ErrUnknownMode = errors.New("unknown output mode")

func (m Mode) String() string {
	switch m {
	case ModeMIDI:
		return "MIDI"
	case ModeNotify:
		return "Notify"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next toggles between the two modes
func (m Mode) Next() Mode {
	if m == ModeMIDI {
		return ModeNotify
	}
	return ModeMIDI
}

// Modes lists the selectable modes
func Modes() []Mode {
	return []Mode{ModeMIDI, ModeNotify}
}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if strings.EqualFold(m.String(), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// State is what the player has selected plus the note the pointer is on.
// It is a value: every method returns a modified copy.
type State struct {
	Root       theory.PitchClass
	Scale      string
	LastPlayed theory.PitchClass
	Mode       Mode
}

// DefaultState is C Major in MIDI mode
func DefaultState() State {
	return State{
		Root:       theory.C,
		Scale:      theory.DefaultScaleName,
		LastPlayed: theory.C,
		Mode:       ModeMIDI,
	}
}

// WithRoot selects a new root and moves the pointer back to it
func (s State) WithRoot(root theory.PitchClass) State {
	s.Root = root
	s.LastPlayed = root
	return s
}

func (s State) WithScale(name string) State {
	s.Scale = name
	return s
}

func (s State) WithMode(m Mode) State {
	s.Mode = m
	return s
}

// Step moves the pointer from LastPlayed through the active scale.
// Scale names come from the table, so an unknown one is a programming error.
func (s State) Step(table *theory.ScaleTable, step int) State {
	pattern, err := table.Lookup(s.Scale)
	if err != nil {
		panic(err)
	}
	s.LastPlayed = theory.ResolveStep(s.LastPlayed, pattern, step)
	return s
}
