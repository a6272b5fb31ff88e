package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScales(t *testing.T) {
	table := DefaultScales()
	assert.Equal(t, []string{
		"Major", "Minor", "HarmonicMinor", "PentatonicMajor",
		"PentatonicMinor", "Blues", "MelodicMinor",
	}, table.Names())

	major, err := table.Lookup("Major")
	require.NoError(t, err)
	assert.Equal(t, IntervalPattern{2, 2, 1, 2, 2, 2, 1}, major)

	for _, name := range table.Names() {
		p, err := table.Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := DefaultScales().Lookup("Lydian")
	assert.ErrorIs(t, err, ErrUnknownScale)
	assert.False(t, DefaultScales().Has("Lydian"))
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := DefaultScales().Lookup("Minor")
	require.NoError(t, err)
	p[0] = 11

	again, err := DefaultScales().Lookup("Minor")
	require.NoError(t, err)
	assert.Equal(t, 2, again[0])
}

func TestNewScaleTableRejectsBadPatterns(t *testing.T) {
	tests := []struct {
		name    string
		scales  []Scale
		wantErr error
	}{
		{
			name:    "empty pattern",
			scales:  []Scale{{Name: "Nothing", Pattern: IntervalPattern{}}},
			wantErr: ErrEmptyPattern,
		},
		{
			name:    "zero step",
			scales:  []Scale{{Name: "Stuck", Pattern: IntervalPattern{2, 0, 2}}},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "negative step",
			scales:  []Scale{{Name: "Back", Pattern: IntervalPattern{-1}}},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "step over an octave",
			scales:  []Scale{{Name: "Wide", Pattern: IntervalPattern{13}}},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "duplicate name",
			scales: []Scale{
				{Name: "Tritone", Pattern: IntervalPattern{6}},
				{Name: "Tritone", Pattern: IntervalPattern{6}},
			},
			wantErr: ErrDuplicateScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScaleTable(tt.scales)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewScaleTableCopiesInput(t *testing.T) {
	in := IntervalPattern{6}
	table, err := NewScaleTable([]Scale{{Name: "Tritone", Pattern: in}})
	require.NoError(t, err)
	in[0] = 1

	p, err := table.Lookup("Tritone")
	require.NoError(t, err)
	assert.Equal(t, IntervalPattern{6}, p)
	assert.Equal(t, 1, table.Len())
}

func TestMustScaleTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustScaleTable([]Scale{{Name: "Nothing"}})
	})
}
