package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"melody-keyboard/config"
	"melody-keyboard/debug"
	"melody-keyboard/midi"
	"melody-keyboard/output"
	"melody-keyboard/theme"
	"melody-keyboard/theory"
	"melody-keyboard/tui"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	table := theory.DefaultScales()
	if err := cfg.Validate(table); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("Debug log unavailable: %v\n", err)
		}
		defer debug.Disable()
	}
	if debug.Enabled() {
		debug.Log("config", "root=%s scale=%s mode=%s noteLength=%s velocity=%d toast=%s timeout=%s palette=%q",
			cfg.Root, cfg.Scale, cfg.Mode, cfg.NoteLength(), cfg.Velocity, cfg.ToastDuration(), cfg.AcquireTimeout(), cfg.Palette)
	}

	// Load theme
	palette := theme.DefaultPalette()
	if cfg.Palette != "" {
		p, err := theme.LoadGPL(cfg.Palette)
		if err != nil {
			fmt.Printf("Using built-in palette: %v\n", err)
		} else {
			palette = p
		}
	}
	th := theme.New(palette)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Output port is looked up once, in the background, after the UI starts
	out := midi.NewOutput(midi.OpenFirstOut, cfg.AcquireTimeout())
	notes := output.NewNotifyQueue(16)
	disp := output.NewDispatcher(notes,
		output.WithNoteLength(cfg.NoteLength()),
		output.WithVelocity(uint8(cfg.Velocity)),
		output.WithToastDuration(cfg.ToastDuration()),
	)

	m := tui.NewModel(ctx, cfg.State(), table, out, disp, notes, th)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
