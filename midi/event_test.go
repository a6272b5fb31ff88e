package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"melody-keyboard/theory"
)

func TestNoteNumber(t *testing.T) {
	assert.Equal(t, uint8(60), NoteNumber(theory.C))
	assert.Equal(t, uint8(69), NoteNumber(theory.A))
	assert.Equal(t, uint8(71), NoteNumber(theory.B))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, []byte{0x90, 60, 0x7F}, NoteOnMessage(60, MaxVelocity).Bytes())
	assert.Equal(t, []byte{0x80, 60, 0x00}, NoteOffMessage(60).Bytes())
	assert.Equal(t, NoteOn, NoteOnMessage(64, 1).Bytes()[0])
	assert.Equal(t, NoteOff, NoteOffMessage(64).Bytes()[0])
}
