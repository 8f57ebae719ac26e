package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command text.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg signals the palette was dismissed.
type PaletteCancelMsg struct{}

// hints must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []string{
	"note:new <title>",
	"todo:add <text>",
	"tag:filter <slug>",
	"export:note <markdown|html>",
	"export:all <markdown|html>",
	"export:zip",
	"assist:run <action>",
	"theme:set <dark|light>",
	"reindex",
}

const maxHints = 5

// Palette is the command overlay. It owns a textinput and reports
// results through submit and cancel messages.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open clears previous input and hands focus to the field.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, emit(PaletteCancelMsg{})
		case "enter":
			input := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, emit(PaletteSubmitMsg{Input: input})
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	// Styles are built per render so a theme switch takes effect
	// without recreating the palette.
	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Peach).
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(0, 1)
	faint := lipgloss.NewStyle().Foreground(theme.Subtext0)

	rows := []string{
		theme.Title.Render("Command Palette"),
		": " + p.input.View(),
	}
	if matches := p.matches(); len(matches) > 0 {
		rows = append(rows, "")
		for _, hint := range matches {
			rows = append(rows, faint.Render("  "+hint))
		}
	}

	width := p.width
	if width < 20 {
		width = 64
	}
	return frame.Width(width - 2).Render(strings.Join(rows, "\n"))
}

func (p Palette) matches() []string {
	prefix := strings.ToLower(strings.TrimSpace(p.input.Value()))
	out := make([]string, 0, maxHints)
	for _, hint := range paletteHints {
		if prefix != "" && !strings.HasPrefix(hint, prefix) {
			continue
		}
		out = append(out, hint)
		if len(out) == maxHints {
			break
		}
	}
	return out
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
