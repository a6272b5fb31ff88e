package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"melody-keyboard/theory"
)

// MIDI message types
const (
	NoteOn  uint8 = 0x90
	NoteOff uint8 = 0x80
)

const (
	Channel     uint8 = 0
	MiddleC     uint8 = 60
	MaxVelocity uint8 = 0x7F
)

// NoteNumber places a pitch class in the octave starting at middle C
func NoteNumber(pc theory.PitchClass) uint8 {
	return MiddleC + uint8(pc.Add(0))
}

// NoteOnMessage builds a channel 0 note-on
func NoteOnMessage(note, velocity uint8) gomidi.Message {
	return gomidi.NoteOn(Channel, note, velocity)
}

// NoteOffMessage builds a channel 0 note-off with velocity 0
func NoteOffMessage(note uint8) gomidi.Message {
	return gomidi.NoteOff(Channel, note)
}
