package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one catppuccin variant.
type Palette struct {
	Name     string
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
}

var (
	// Mocha is the dark variant.
	Mocha = Palette{
		Name:     "dark",
		Base:     lipgloss.Color("#1e1e2e"),
		Mantle:   lipgloss.Color("#181825"),
		Surface0: lipgloss.Color("#313244"),
		Surface1: lipgloss.Color("#45475a"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext0: lipgloss.Color("#a6adc8"),
		Lavender: lipgloss.Color("#b4befe"),
		Sapphire: lipgloss.Color("#74c7ec"),
		Green:    lipgloss.Color("#a6e3a1"),
		Peach:    lipgloss.Color("#fab387"),
	}

	// Latte is the light variant.
	Latte = Palette{
		Name:     "light",
		Base:     lipgloss.Color("#eff1f5"),
		Mantle:   lipgloss.Color("#e6e9ef"),
		Surface0: lipgloss.Color("#ccd0da"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext0: lipgloss.Color("#6c6f85"),
		Lavender: lipgloss.Color("#7287fd"),
		Sapphire: lipgloss.Color("#209fb5"),
		Green:    lipgloss.Color("#40a02b"),
		Peach:    lipgloss.Color("#fe640b"),
	}
)

// Package-level colors and styles views read at render time. Apply
// swaps them as a set. Only the TUI update loop calls Apply, so the
// mutation needs no locking.
var (
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style

	current Palette
)

func init() {
	Apply("dark")
}

// Apply switches the active palette by name and returns the name that
// actually took effect. Unknown names fall back to dark.
func Apply(name string) string {
	p := Mocha
	if name == Latte.Name {
		p = Latte
	}
	current = p

	Base = p.Base
	Mantle = p.Mantle
	Surface0 = p.Surface0
	Surface1 = p.Surface1
	Text = p.Text
	Subtext0 = p.Subtext0
	Lavender = p.Lavender
	Sapphire = p.Sapphire
	Green = p.Green
	Peach = p.Peach

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good = lipgloss.NewStyle().Foreground(Green)

	return p.Name
}

// Current returns the active palette name.
func Current() string {
	return current.Name
}

// GlamourStyle maps the active palette to a glamour style name.
func GlamourStyle() string {
	if current.Name == Latte.Name {
		return "light"
	}
	return "dark"
}
