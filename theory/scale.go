package theory

import (
	"errors"
	"fmt"
)

// IntervalPattern is the semitone distance between consecutive scale degrees.
// Navigation repeats it cyclically.
type IntervalPattern []int

var (
	ErrEmptyPattern    = errors.New("interval pattern is empty")
	ErrInvalidInterval = errors.New("interval out of range")
	ErrUnknownScale    = errors.New("unknown scale")
	ErrDuplicateScale  = errors.New("duplicate scale name")
)

// Validate checks the pattern is non-empty and every step is 1..12 semitones
func (p IntervalPattern) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	for i, step := range p {
		if step < 1 || step > NumPitchClasses {
			return fmt.Errorf("%w: step %d is %d", ErrInvalidInterval, i, step)
		}
	}
	return nil
}

// Scale is a named interval pattern
type Scale struct {
	Name    string
	Pattern IntervalPattern
}

// ScaleTable is the registry of selectable scales. It is read-only once built.
type ScaleTable struct {
	names    []string
	patterns map[string]IntervalPattern
}

// NewScaleTable validates every scale and keeps the given order for Names
func NewScaleTable(scales []Scale) (*ScaleTable, error) {
	t := &ScaleTable{
		patterns: make(map[string]IntervalPattern, len(scales)),
	}
	for _, s := range scales {
		if _, exists := t.patterns[s.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScale, s.Name)
		}
		if err := s.Pattern.Validate(); err != nil {
			return nil, fmt.Errorf("scale %s: %w", s.Name, err)
		}
		// copy so callers can't mutate the registry through their slice
		p := make(IntervalPattern, len(s.Pattern))
		copy(p, s.Pattern)
		t.patterns[s.Name] = p
		t.names = append(t.names, s.Name)
	}
	return t, nil
}

// MustScaleTable is NewScaleTable for package-level tables known to be valid
func MustScaleTable(scales []Scale) *ScaleTable {
	t, err := NewScaleTable(scales)
	if err != nil {
		panic(fmt.Sprintf("invalid scale table: %v", err))
	}
	return t
}

// Lookup returns a copy of the named pattern
func (t *ScaleTable) Lookup(name string) (IntervalPattern, error) {
	p, ok := t.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
	out := make(IntervalPattern, len(p))
	copy(out, p)
	return out, nil
}

// Has reports whether name is registered
func (t *ScaleTable) Has(name string) bool {
	_, ok := t.patterns[name]
	return ok
}

// Names returns scale names in registration order
func (t *ScaleTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *ScaleTable) Len() int {
	return len(t.names)
}

// DefaultScaleName is selected at startup
const DefaultScaleName = "Major"

// DefaultScales returns the built-in registry
func DefaultScales() *ScaleTable {
	return defaultTable
}

var defaultTable = MustScaleTable([]Scale{
	{Name: "Major", Pattern: IntervalPattern{2, 2, 1, 2, 2, 2, 1}},
	{Name: "Minor", Pattern: IntervalPattern{2, 1, 2, 2, 1, 2, 2}},
	{Name: "HarmonicMinor", Pattern: IntervalPattern{2, 1, 2, 2, 1, 3, 1}},
	{Name: "PentatonicMajor", Pattern: IntervalPattern{2, 2, 3, 2, 3}},
	{Name: "PentatonicMinor", Pattern: IntervalPattern{3, 2, 2, 3, 2}},
	{Name: "Blues", Pattern: IntervalPattern{3, 2, 1, 1, 3, 2}},
	{Name: "MelodicMinor", Pattern: IntervalPattern{2, 1, 2, 2, 2, 2, 1}},
})
