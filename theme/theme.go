package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"melody-keyboard/theory"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Note    rune // ♪ last played
	Port    rune // ● output connected
	NoPort  rune // ○ no output
	Pending rune // … still looking for a port
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Note:    '♪',
			Port:    '●',
			NoPort:  '○',
			Pending: '…',
		},
	}
}

// Role is a position on the palette, 0 = darkest
type Role float64

const (
	RoleBG      Role = 0.0
	RoleSurface Role = 0.125 // toast cards
	RoleMuted   Role = 0.25  // borders, status line
	RoleFG      Role = 0.375 // button labels
	RoleAccent  Role = 0.5   // title
	RoleCursor  Role = 0.625 // toast border
	RoleActive  Role = 0.75  // pressed button
	RoleWarning Role = 0.875 // MIDI unavailable
	RoleSuccess Role = 1.0
)

func (t *Theme) role(r Role) lipgloss.Color {
	return hex(t.Palette.Lookup(float64(r)))
}

func (t *Theme) BG() lipgloss.Color      { return t.role(RoleBG) }
func (t *Theme) Surface() lipgloss.Color { return t.role(RoleSurface) }
func (t *Theme) Muted() lipgloss.Color   { return t.role(RoleMuted) }
func (t *Theme) FG() lipgloss.Color      { return t.role(RoleFG) }
func (t *Theme) Accent() lipgloss.Color  { return t.role(RoleAccent) }
func (t *Theme) Cursor() lipgloss.Color  { return t.role(RoleCursor) }
func (t *Theme) Active() lipgloss.Color  { return t.role(RoleActive) }
func (t *Theme) Warning() lipgloss.Color { return t.role(RoleWarning) }
func (t *Theme) Success() lipgloss.Color { return t.role(RoleSuccess) }

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return hex(t.Palette.Lookup(norm))
}

// NoteColor spreads the 12 pitch classes over the bright half of the
// palette, C at the middle and B at the top
func (t *Theme) NoteColor(pc theory.PitchClass) lipgloss.Color {
	return t.Color(0.5 + 0.5*float64(pc.Add(0))/float64(theory.NumPitchClasses-1))
}

func hex(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
