package widgets

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "-4", StepLabel(-4))
	assert.Equal(t, "+0", StepLabel(0))
	assert.Equal(t, "+3", StepLabel(3))
}

func TestStepRowHitTest(t *testing.T) {
	row := NewStepRow([]int{-1, 0, 1}, []string{"f", "g", "h"})
	style := lipgloss.NewStyle().Padding(0, 1)

	// each button is "+0" padded to width 4, one space between
	view := row.View(style, style)
	assert.Contains(t, view, "+0")
	assert.Contains(t, view, "-1")

	tests := []struct {
		x      int
		want   int
		wantOK bool
	}{
		{0, -1, true},
		{3, -1, true},
		{4, 0, false},
		{5, 0, true},
		{8, 0, true},
		{9, 0, false},
		{10, 1, true},
		{13, 1, true},
		{14, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		step, ok := row.HitTest(tt.x)
		assert.Equal(t, tt.wantOK, ok, "x=%d", tt.x)
		if tt.wantOK {
			assert.Equal(t, tt.want, step, "x=%d", tt.x)
		}
	}
}

func TestStepRowPress(t *testing.T) {
	row := NewStepRow([]int{-1, 0, 1}, nil)
	_, down := row.Pressed()
	assert.False(t, down)

	row.Press(1)
	step, down := row.Pressed()
	assert.True(t, down)
	assert.Equal(t, 1, step)

	row.Release()
	_, down = row.Pressed()
	assert.False(t, down)
}

func TestRenderToast(t *testing.T) {
	out := RenderToast(lipgloss.NewStyle(), "Note E played", "Output: Notify")
	assert.Contains(t, out, "Note E played")
	assert.Contains(t, out, "Output: Notify")
}
