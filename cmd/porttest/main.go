package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"

	"melody-keyboard/debug"
	"melody-keyboard/keyboard"
	"melody-keyboard/midi"
	"melody-keyboard/output"
	"melody-keyboard/theory"
)

const portTimeout = 3 * time.Second

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = listPorts()
	case "play":
		err = play(os.Args[2:])
	case "walk":
		err = walk(os.Args[2:])
	default:
		usage()
		return
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("MIDI output test")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list                        - List MIDI output ports")
	fmt.Println("  play <note>                 - Play one note on the first output")
	fmt.Println("  walk <root> <scale> <step>… - Print where each step lands")
}

func listPorts() error {
	fmt.Println("=== MIDI Output Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	names, err := midi.ListOutPorts(context.Background(), portTimeout)
	if err != nil {
		fmt.Println("Fix on macOS: sudo killall coreaudiod midiserver")
		return err
	}
	if len(names) == 0 {
		fmt.Println("  (none)")
	}
	for i, name := range names {
		fmt.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func play(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: play <note>")
	}
	pc, err := theory.ParsePitchClass(args[0])
	if err != nil {
		return err
	}

	debug.EnableWriter(os.Stderr)
	defer debug.Disable()
	defer gomidi.CloseDriver()

	out := midi.NewOutput(midi.OpenFirstOut, portTimeout)
	go out.Acquire(context.Background())

	fmt.Println("Looking for a MIDI output...")
	<-out.Done()
	port := out.Port()
	if port == nil {
		return out.Err()
	}
	defer port.Close()
	fmt.Printf("Using output: %s\n", port.Name())

	done := make(chan struct{})
	disp := output.NewDispatcher(nil, output.WithClock(time.Now, func(d time.Duration, f func()) {
		time.AfterFunc(d, func() {
			f()
			close(done)
		})
	}))
	disp.Dispatch(pc, keyboard.ModeMIDI, port)

	select {
	case <-done:
		fmt.Printf("Played %s (note %d)\n", pc, midi.NoteNumber(pc))
	case <-time.After(output.DefaultNoteLength + time.Second):
		return fmt.Errorf("note off never sent")
	}
	return nil
}

func walk(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: walk <root> <scale> <step>...")
	}

	root, err := theory.ParsePitchClass(args[0])
	if err != nil {
		return err
	}
	table := theory.DefaultScales()
	if !table.Has(args[1]) {
		return fmt.Errorf("%w: %q (have %v)", theory.ErrUnknownScale, args[1], table.Names())
	}

	s := keyboard.DefaultState().WithRoot(root).WithScale(args[1])
	fmt.Printf("start %s %s\n", s.Root, s.Scale)
	for _, a := range args[2:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("step %q: %w", a, err)
		}
		prev := s.LastPlayed
		s = s.Step(table, n)
		fmt.Printf("  %-2s %+d -> %s\n", prev, n, s.LastPlayed)
	}
	return nil
}
