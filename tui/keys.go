package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"melody-keyboard/keyboard"
	"melody-keyboard/widgets"
)

type keyMap struct {
	Steps     []key.Binding
	RootUp    key.Binding
	RootDown  key.Binding
	ScaleNext key.Binding
	ScalePrev key.Binding
	Mode      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		RootUp:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "root up")),
		RootDown:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "root down")),
		ScaleNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next scale")),
		ScalePrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev scale")),
		Mode:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "midi/notify")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for _, step := range keyboard.Steps() {
		k, _ := keyboard.KeyForStep(step)
		km.Steps = append(km.Steps, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, widgets.StepLabel(step)),
		))
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RootDown, k.RootUp, k.ScalePrev, k.ScaleNext, k.Mode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Steps,
		{k.RootDown, k.RootUp, k.ScalePrev, k.ScaleNext},
		{k.Mode, k.Help, k.Quit},
	}
}
