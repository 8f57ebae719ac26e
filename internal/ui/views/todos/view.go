package todos

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tododto "inkwell/internal/modules/todos/dto"
	"inkwell/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the todos use-case.
type Port interface {
	Add(ctx context.Context, text string) (tododto.TodoOutput, error)
	List(ctx context.Context, includeDone bool) ([]tododto.TodoOutput, error)
	Toggle(ctx context.Context, id string) (tododto.TodoOutput, error)
	Remove(ctx context.Context, id string) error
	ClearDone(ctx context.Context) (int, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TodosLoadedMsg struct {
	Todos []tododto.TodoOutput
	Err   error
}

type mutatedMsg struct {
	notice string
	err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Todos tab. The
// list is rendered by hand; a bubbles textinput takes new entries.
type Model struct {
	port     Port
	input    textinput.Model
	todos    []tododto.TodoOutput
	cursor   int
	showDone bool
	adding   bool
	notice   string
	width    int
	height   int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "what needs doing?"
	ti.CharLimit = 400
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)

	return Model{port: port, input: ti, showDone: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Typing reports whether the add input has focus. The app model yields
// global keys while true.
func (m Model) Typing() bool { return m.adding }

// Reload refreshes the list, keeping the done-visibility setting.
func (m Model) Reload() tea.Cmd { return m.loadCmd() }

// RefreshTheme re-applies palette-derived styles after a theme switch.
func (m *Model) RefreshTheme() {
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 8
		return m, nil

	case TodosLoadedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.todos = msg.Todos
		if m.cursor >= len(m.todos) {
			m.cursor = len(m.todos) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		m.notice = msg.notice
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.adding = false
			m.input.Blur()
			return m, nil
		}
		m.input.SetValue("")
		return m, m.addCmd(text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.adding = true
		m.notice = ""
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if todo, ok := m.current(); ok {
			return m, m.toggleCmd(todo.ID)
		}
	case "d":
		if todo, ok := m.current(); ok {
			return m, m.removeCmd(todo.ID)
		}
	case "c":
		return m, m.clearDoneCmd()
	case "v":
		m.showDone = !m.showDone
		return m, m.loadCmd()
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Todos") + "  " + theme.Muted.Render(m.summary()) + "\n\n")

	if m.adding {
		sb.WriteString("  " + m.input.View() + "\n\n")
	}

	if len(m.todos) == 0 {
		sb.WriteString(theme.Muted.Render("  Nothing here. Press a to add a todo.") + "\n")
	}
	for i, todo := range m.todos {
		sb.WriteString(m.renderRow(i, todo) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("a: add  space: toggle  d: delete  c: clear done  v: show/hide done"))
	if m.notice != "" {
		sb.WriteString("  " + theme.Hot.Render(m.notice))
	}

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(0, 1).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) current() (tododto.TodoOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return tododto.TodoOutput{}, false
	}
	return m.todos[m.cursor], true
}

func (m Model) summary() string {
	open := 0
	for _, t := range m.todos {
		if !t.Done {
			open++
		}
	}
	if m.showDone {
		return fmt.Sprintf("%d open / %d total", open, len(m.todos))
	}
	return fmt.Sprintf("%d open", open)
}

func (m Model) renderRow(i int, todo tododto.TodoOutput) string {
	marker := "  "
	if i == m.cursor && !m.adding {
		marker = theme.Hot.Render("> ")
	}
	box := "[ ]"
	text := todo.Text
	if todo.Done {
		box = theme.Good.Render("[x]")
		when := ""
		if todo.DoneAt != nil {
			when = "  " + todo.DoneAt.Format("2006-01-02 15:04")
		}
		text = theme.Muted.Render(todo.Text + when)
	}
	return fmt.Sprintf(" %s%s %s", marker, box, text)
}

func (m Model) loadCmd() tea.Cmd {
	includeDone := m.showDone
	return func() tea.Msg {
		todos, err := m.port.List(context.Background(), includeDone)
		return TodosLoadedMsg{Todos: todos, Err: err}
	}
}

func (m Model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Add(context.Background(), text)
		return mutatedMsg{notice: "added", err: err}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Toggle(context.Background(), id)
		return mutatedMsg{err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Remove(context.Background(), id)
		return mutatedMsg{notice: "removed", err: err}
	}
}

func (m Model) clearDoneCmd() tea.Cmd {
	return func() tea.Msg {
		n, err := m.port.ClearDone(context.Background())
		return mutatedMsg{notice: fmt.Sprintf("cleared %d done", n), err: err}
	}
}
