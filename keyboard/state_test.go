package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melody-keyboard/theory"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, theory.C, s.Root)
	assert.Equal(t, "Major", s.Scale)
	assert.Equal(t, theory.C, s.LastPlayed)
	assert.Equal(t, ModeMIDI, s.Mode)
}

func TestStepUsesLastPlayed(t *testing.T) {
	table := theory.DefaultScales()
	s := DefaultState()

	s = s.Step(table, 1)
	assert.Equal(t, theory.D, s.LastPlayed)

	// second press starts from D, pattern index restarts at 0
	s = s.Step(table, 1)
	assert.Equal(t, theory.E, s.LastPlayed)

	s = s.Step(table, 0)
	assert.Equal(t, theory.E, s.LastPlayed)
	assert.Equal(t, theory.C, s.Root)
}

func TestStepDoesNotMutateReceiver(t *testing.T) {
	s := DefaultState()
	next := s.Step(theory.DefaultScales(), 3)
	assert.Equal(t, theory.C, s.LastPlayed)
	assert.Equal(t, theory.F, next.LastPlayed)
}

func TestStepUnknownScalePanics(t *testing.T) {
	s := DefaultState().WithScale("Lydian")
	assert.Panics(t, func() { s.Step(theory.DefaultScales(), 1) })
}

func TestWithRootResetsPointer(t *testing.T) {
	s := DefaultState().Step(theory.DefaultScales(), 2)
	require.Equal(t, theory.E, s.LastPlayed)

	s = s.WithRoot(theory.G)
	assert.Equal(t, theory.G, s.Root)
	assert.Equal(t, theory.G, s.LastPlayed)
}

func TestWithScaleKeepsPointer(t *testing.T) {
	s := DefaultState().Step(theory.DefaultScales(), 2)
	s = s.WithScale("Blues")
	assert.Equal(t, "Blues", s.Scale)
	assert.Equal(t, theory.E, s.LastPlayed)
}

func TestModes(t *testing.T) {
	assert.Equal(t, ModeNotify, ModeMIDI.Next())
	assert.Equal(t, ModeMIDI, ModeNotify.Next())
	assert.Equal(t, "MIDI", ModeMIDI.String())
	assert.Equal(t, "Notify", ModeNotify.String())

	m, err := ParseMode("notify")
	require.NoError(t, err)
	assert.Equal(t, ModeNotify, m)

	_, err = ParseMode("SoundEngine")
	assert.ErrorIs(t, err, ErrUnknownMode)

	s := DefaultState().WithMode(ModeNotify)
	assert.Equal(t, ModeNotify, s.Mode)
}
