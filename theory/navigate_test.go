package theory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pattern(t *testing.T, name string) IntervalPattern {
	t.Helper()
	p, err := DefaultScales().Lookup(name)
	require.NoError(t, err)
	return p
}

func TestResolveStep(t *testing.T) {
	tests := []struct {
		name  string
		root  PitchClass
		scale string
		step  int
		want  PitchClass
	}{
		{"major up two", C, "Major", 2, E},
		{"major up one", C, "Major", 1, D},
		{"major full octave", C, "Major", 7, C},
		{"major wraps pattern", C, "Major", 8, D},
		{"major from G", G, "Major", 3, C},
		{"major down one uses first interval", C, "Major", -1, ASharp},
		{"major down past pattern", C, "Major", -8, ASharp},
		{"minor down one", C, "Minor", -1, ASharp},
		{"minor up two", C, "Minor", 2, DSharp},
		{"pentatonic major octave", C, "PentatonicMajor", 5, C},
		{"blues wraps to first interval", C, "Blues", 7, DSharp},
		{"harmonic minor up four", A, "HarmonicMinor", 4, E},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStep(tt.root, pattern(t, tt.scale), tt.step)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestResolveStepZeroIsIdentity(t *testing.T) {
	table := DefaultScales()
	for _, name := range table.Names() {
		p := pattern(t, name)
		for _, root := range PitchClasses() {
			assert.Equal(t, root, ResolveStep(root, p, 0), "%s %s", root, name)
		}
	}
}

func TestResolveStepStaysInRange(t *testing.T) {
	table := DefaultScales()
	for _, name := range table.Names() {
		p := pattern(t, name)
		for _, root := range PitchClasses() {
			for step := -30; step <= 30; step++ {
				got := ResolveStep(root, p, step)
				assert.True(t, got.Valid(), "%s %s %d -> %d", root, name, step, got)
			}
		}
	}
}

func TestResolveStepSingleIntervalRoundTrip(t *testing.T) {
	tritone := IntervalPattern{6}
	for _, root := range PitchClasses() {
		up := ResolveStep(root, tritone, 1)
		assert.Equal(t, root, ResolveStep(up, tritone, -1))
	}
}

// Stepping is indexed by iteration, so -1 after +2 does not land on +1.
func TestResolveStepIterationIndexed(t *testing.T) {
	minor := pattern(t, "Minor")

	two := ResolveStep(C, minor, 2)
	require.Equal(t, DSharp, two)

	back := ResolveStep(two, minor, -1)
	assert.Equal(t, CSharp, back)
	assert.NotEqual(t, ResolveStep(C, minor, 1), back)
}

// walk is the iteration-by-iteration definition, one wrap per move.
func walk(root PitchClass, pattern IntervalPattern, step int) PitchClass {
	dir, n := 1, step
	if step < 0 {
		dir, n = -1, -step
	}
	idx := int(root)
	for i := 0; i < n; i++ {
		idx = mod12(idx + dir*pattern[i%len(pattern)])
	}
	return PitchClass(idx)
}

func TestResolveStepMatchesWalk(t *testing.T) {
	table := DefaultScales()
	for _, name := range table.Names() {
		p := pattern(t, name)
		for _, root := range PitchClasses() {
			for step := -100; step <= 100; step++ {
				assert.Equal(t, walk(root, p, step), ResolveStep(root, p, step), "%s %s %d", root, name, step)
			}
		}
	}
}

func TestResolveStepExtremeCounts(t *testing.T) {
	tritone := IntervalPattern{6}
	// 2^63 and 2^63-1 iterations: even lands on root, odd on the tritone
	assert.Equal(t, C, ResolveStep(C, tritone, math.MinInt))
	assert.Equal(t, FSharp, ResolveStep(C, tritone, math.MaxInt))

	got := ResolveStep(G, pattern(t, "Blues"), math.MinInt)
	assert.True(t, got.Valid())
}
