package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepLabel formats a step the way the buttons show it: +0, +3, -2
func StepLabel(step int) string {
	if step >= 0 {
		return fmt.Sprintf("+%d", step)
	}
	return fmt.Sprintf("%d", step)
}

// StepRow is a row of step buttons. View records where each button landed
// so mouse clicks can be mapped back to steps.
type StepRow struct {
	steps   []int
	keys    []string
	pressed int
	down    bool
	Spans   [][2]int // [start, end) column of each button
}

// NewStepRow pairs each step with its key label; keys may be shorter than steps
func NewStepRow(steps []int, keys []string) *StepRow {
	return &StepRow{steps: steps, keys: keys}
}

// Press highlights step until Release
func (r *StepRow) Press(step int) {
	r.pressed = step
	r.down = true
}

func (r *StepRow) Release() {
	r.down = false
}

// Pressed returns the highlighted step, if any
func (r *StepRow) Pressed() (int, bool) {
	return r.pressed, r.down
}

// View renders the buttons left to right, one space apart
func (r *StepRow) View(normal, pressed lipgloss.Style) string {
	r.Spans = r.Spans[:0]
	var rendered []string
	x := 0
	for i, step := range r.steps {
		label := StepLabel(step)
		if i < len(r.keys) {
			label += "\n" + r.keys[i]
		}

		style := normal
		if r.down && step == r.pressed {
			style = pressed
		}
		btn := style.Render(label)
		w := lipgloss.Width(btn)

		if i > 0 {
			rendered = append(rendered, " ")
			x++
		}
		rendered = append(rendered, btn)
		r.Spans = append(r.Spans, [2]int{x, x + w})
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// HitTest maps a column (relative to the row) to a step. Only valid after View.
func (r *StepRow) HitTest(x int) (int, bool) {
	for i, span := range r.Spans {
		if x >= span[0] && x < span[1] {
			return r.steps[i], true
		}
	}
	return 0, false
}

// RenderToast renders a notification card: title line plus description
func RenderToast(style lipgloss.Style, title, desc string) string {
	return style.Render(strings.TrimSpace(title + "\n" + desc))
}
