package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassNames(t *testing.T) {
	want := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for i, pc := range PitchClasses() {
		assert.Equal(t, want[i], pc.String())
	}
}

func TestParsePitchClass(t *testing.T) {
	pc, err := ParsePitchClass("c#")
	require.NoError(t, err)
	assert.Equal(t, CSharp, pc)

	pc, err = ParsePitchClass(" A ")
	require.NoError(t, err)
	assert.Equal(t, A, pc)

	_, err = ParsePitchClass("H")
	assert.ErrorIs(t, err, ErrUnknownPitchClass)

	_, err = ParsePitchClass("Db")
	assert.ErrorIs(t, err, ErrUnknownPitchClass)
}

func TestAddWraps(t *testing.T) {
	assert.Equal(t, ASharp, C.Add(-2))
	assert.Equal(t, C, B.Add(1))
	assert.Equal(t, D, C.Add(26))
	assert.Equal(t, C, C.Add(-24))
	assert.True(t, C.Add(-13).Valid())
}
