package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"melody-keyboard/debug"
	"melody-keyboard/keyboard"
	"melody-keyboard/midi"
	"melody-keyboard/output"
	"melody-keyboard/theme"
	"melody-keyboard/theory"
	"melody-keyboard/widgets"
)

// how long a step button stays lit after a press
const pressFlash = 150 * time.Millisecond

// layoutBounds holds cached layout info
type layoutBounds struct {
	buttonsTop    int
	buttonsHeight int
}

type toast struct {
	id int
	n  output.Notification
}

type Model struct {
	State      keyboard.State
	Table      *theory.ScaleTable
	Output     *midi.Output
	Dispatcher *output.Dispatcher
	Notes      *output.NotifyQueue
	Theme      *theme.Theme

	ctx     context.Context
	keys    keyMap
	help    help.Model
	buttons *widgets.StepRow
	bounds  *layoutBounds

	port      *midi.Port
	portErr   error
	portReady bool

	toasts    []toast
	nextToast int
	pressSeq  int
	quitting  bool
}

// PortMsg reports the outcome of the one-time port acquisition
type PortMsg struct {
	Port *midi.Port
	Err  error
}

type NotificationMsg output.Notification

type toastExpiredMsg struct{ id int }

type releaseMsg struct{ seq int }

func NewModel(ctx context.Context, state keyboard.State, table *theory.ScaleTable, out *midi.Output,
	disp *output.Dispatcher, notes *output.NotifyQueue, th *theme.Theme) Model {
	return Model{
		State:      state,
		Table:      table,
		Output:     out,
		Dispatcher: disp,
		Notes:      notes,
		Theme:      th,
		ctx:        ctx,
		keys:       newKeyMap(),
		help:       help.New(),
		buttons:    widgets.NewStepRow(keyboard.Steps(), keyboard.StepKeys),
		bounds:     &layoutBounds{},
	}
}

// AcquirePort runs the output discovery off the UI loop
func AcquirePort(ctx context.Context, out *midi.Output) tea.Cmd {
	return func() tea.Msg {
		port, err := out.Acquire(ctx)
		return PortMsg{Port: port, Err: err}
	}
}

func ListenForNotifications(q *output.NotifyQueue) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(<-q.C())
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		AcquirePort(m.ctx, m.Output),
		ListenForNotifications(m.Notes),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y < m.bounds.buttonsTop || msg.Y >= m.bounds.buttonsTop+m.bounds.buttonsHeight {
			return m, nil
		}
		if step, ok := m.buttons.HitTest(msg.X); ok {
			return m.step(step)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case PortMsg:
		m.port = msg.Port
		m.portErr = msg.Err
		m.portReady = true

	case NotificationMsg:
		m.nextToast++
		id := m.nextToast
		m.toasts = append(m.toasts, toast{id: id, n: output.Notification(msg)})
		return m, tea.Batch(
			ListenForNotifications(m.Notes),
			tea.Tick(msg.Duration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} }),
		)

	case toastExpiredMsg:
		m.toasts = removeToast(m.toasts, msg.id)

	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.buttons.Release()
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.RootUp):
		m.State = m.State.WithRoot(m.State.Root.Add(1))

	case key.Matches(msg, m.keys.RootDown):
		m.State = m.State.WithRoot(m.State.Root.Add(-1))

	case key.Matches(msg, m.keys.ScaleNext):
		m.State = m.State.WithScale(m.cycleScale(1))

	case key.Matches(msg, m.keys.ScalePrev):
		m.State = m.State.WithScale(m.cycleScale(-1))

	case key.Matches(msg, m.keys.Mode):
		m.State = m.State.WithMode(m.State.Mode.Next())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		if step, ok := keyboard.StepForKey(msg.String()); ok {
			return m.step(step)
		}
	}
	return m, nil
}

// step advances the pointer, then plays the new note
func (m Model) step(n int) (tea.Model, tea.Cmd) {
	m.State = m.State.Step(m.Table, n)
	m.Dispatcher.Dispatch(m.State.LastPlayed, m.State.Mode, m.port)
	debug.Log("tui", "step %+d -> %s (%s)", n, m.State.LastPlayed, m.State.Mode)

	m.buttons.Press(n)
	m.pressSeq++
	seq := m.pressSeq
	return m, tea.Tick(pressFlash, func(time.Time) tea.Msg { return releaseMsg{seq: seq} })
}

func (m Model) cycleScale(dir int) string {
	names := m.Table.Names()
	cur := 0
	for i, n := range names {
		if n == m.State.Scale {
			cur = i
			break
		}
	}
	next := (cur + dir + len(names)) % len(names)
	return names[next]
}

func removeToast(toasts []toast, id int) []toast {
	out := toasts[:0]
	for _, t := range toasts {
		if t.id != id {
			out = append(out, t)
		}
	}
	return out
}

// portStatus describes the output port and picks its color
func (m Model) portStatus() (string, lipgloss.Color) {
	sym := m.Theme.Symbols
	switch {
	case !m.portReady:
		return fmt.Sprintf("%c looking for MIDI output", sym.Pending), m.Theme.Muted()
	case m.port != nil:
		return fmt.Sprintf("%c %s", sym.Port, m.port.Name()), m.Theme.Success()
	case errors.Is(m.portErr, midi.ErrNoOutputPorts):
		return fmt.Sprintf("%c no MIDI output", sym.NoPort), m.Theme.Muted()
	default:
		return fmt.Sprintf("%c MIDI unavailable", sym.NoPort), m.Theme.Warning()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	noteStyle := lipgloss.NewStyle().Foreground(m.Theme.NoteColor(m.State.LastPlayed)).Bold(true)
	buttonStyle := lipgloss.NewStyle().
		Foreground(m.Theme.FG()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Muted()).
		Padding(0, 1).
		Align(lipgloss.Center)
	pressedStyle := buttonStyle.
		Foreground(m.Theme.BG()).
		Background(m.Theme.Active()).
		BorderForeground(m.Theme.Active())
	toastStyle := lipgloss.NewStyle().
		Foreground(m.Theme.FG()).
		Background(m.Theme.Surface()).
		Border(lipgloss.NormalBorder()).
		BorderForeground(m.Theme.Cursor()).
		Padding(0, 1)

	status, statusColor := m.portStatus()
	header := headerStyle.Render("melody-keyboard") + "  " +
		dimStyle.Render(fmt.Sprintf("root:%s  scale:%s  mode:%s  ", m.State.Root, m.State.Scale, m.State.Mode)) +
		lipgloss.NewStyle().Foreground(statusColor).Render(status)

	last := noteStyle.Render(fmt.Sprintf("%c %s", m.Theme.Symbols.Note, m.State.LastPlayed))
	buttons := m.buttons.View(buttonStyle, pressedStyle)

	// Compute layout bounds
	headerHeight := lipgloss.Height(header)
	lastHeight := lipgloss.Height(last)
	m.bounds.buttonsTop = 1 + headerHeight + 1 + lastHeight + 1
	m.bounds.buttonsHeight = lipgloss.Height(buttons)

	// Build output
	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(last)
	out.WriteString("\n\n")
	out.WriteString(buttons)
	out.WriteString("\n\n")

	if len(m.toasts) > 0 {
		var cards []string
		for _, t := range m.toasts {
			cards = append(cards, widgets.RenderToast(toastStyle, t.n.Title(), t.n.Description()))
		}
		out.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		out.WriteString("\n\n")
	}

	out.WriteString(m.help.View(m.keys))
	return out.String()
}
