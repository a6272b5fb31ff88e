package theory

import (
	"errors"
	"fmt"
	"strings"
)

// NumPitchClasses is the size of the chromatic ring
const NumPitchClasses = 12

// PitchClass is a note name without octave, 0 = C
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchNames = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var ErrUnknownPitchClass = errors.New("unknown pitch class")

// PitchClasses returns all 12 pitch classes starting at C
func PitchClasses() []PitchClass {
	out := make([]PitchClass, NumPitchClasses)
	for i := range out {
		out[i] = PitchClass(i)
	}
	return out
}

// ParsePitchClass accepts one of the 12 sharp names, case-insensitive
func ParsePitchClass(name string) (PitchClass, error) {
	name = strings.TrimSpace(name)
	for i, n := range pitchNames {
		if strings.EqualFold(n, name) {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPitchClass, name)
}

func (p PitchClass) String() string {
	return pitchNames[mod12(int(p))]
}

// Add moves by a signed number of semitones, wrapping around the octave
func (p PitchClass) Add(semitones int) PitchClass {
	return PitchClass(mod12(int(p) + semitones))
}

// Valid reports whether p is inside [0,12)
func (p PitchClass) Valid() bool {
	return p >= 0 && p < NumPitchClasses
}

// mod12 always returns a non-negative residue
func mod12(n int) int {
	n %= NumPitchClasses
	if n < 0 {
		n += NumPitchClasses
	}
	return n
}
