package assist

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistdto "inkwell/internal/modules/assist/dto"
	"inkwell/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the assist use-case.
type Port interface {
	Actions(ctx context.Context) ([]assistdto.ActionOutput, error)
	Transform(ctx context.Context, input assistdto.TransformInput) (assistdto.TransformOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ActionsLoadedMsg struct {
	Actions []assistdto.ActionOutput
	Err     error
}

type TransformDoneMsg struct {
	Out assistdto.TransformOutput
	Err error
}

// ApplyRequestMsg bubbles up to the app model, which checkpoints the
// pre-transform state and writes the transformed text back.
type ApplyRequestMsg struct {
	NoteID string
	Title  string
	Before string
	After  string
}

// ─── list item ───────────────────────────────────────────────────────────────

type actionItem struct {
	action assistdto.ActionOutput
}

func (i actionItem) Title() string       { return i.action.Title }
func (i actionItem) Description() string { return i.action.ID }
func (i actionItem) FilterValue() string { return i.action.ID + " " + i.action.Title }

// ─── pane ────────────────────────────────────────────────────────────────────

type pane int

const (
	paneActions pane = iota // user picks an action
	paneResult              // transform result is displayed
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Assist tab. The
// app model hands it the focused note's current buffers before each
// visit; transforms run against that text, and applying hands the
// result back up.
type Model struct {
	port    Port
	pane    pane
	actions list.Model
	output  viewport.Model
	spinner spinner.Model
	result  assistdto.TransformOutput
	running bool
	notice  string

	noteID    string
	noteTitle string
	noteText  string

	width  int
	height int
}

func New(port Port) Model {
	l := list.New(nil, newDelegate(), 0, 0)
	l.Title = "Assist"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Peach)

	return Model{port: port, actions: l, output: vp, spinner: sp}
}

func newDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Peach).BorderForeground(theme.Peach)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Peach)
	return delegate
}

func (m Model) Init() tea.Cmd {
	return m.loadActionsCmd()
}

// SetNote hands the view the note the next transform should run on.
func (m *Model) SetNote(id, title, text string) {
	m.noteID = id
	m.noteTitle = title
	m.noteText = text
}

// RunAction starts a transform without going through the list flow.
// Used by the command palette.
func (m *Model) RunAction(actionID string) tea.Cmd {
	if m.noteID == "" {
		m.notice = "open a note first"
		return nil
	}
	m.running = true
	m.notice = ""
	return tea.Batch(m.transformCmd(actionID), m.spinner.Tick)
}

// Filtering reports whether the action list's search filter is active.
func (m Model) Filtering() bool {
	return m.actions.FilterState() == list.Filtering
}

// RefreshTheme re-applies palette-derived styles after a theme switch.
func (m *Model) RefreshTheme() {
	m.actions.SetDelegate(newDelegate())
	m.actions.Styles.Title = theme.Title
	m.output.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Peach)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ActionsLoadedMsg:
		if msg.Err != nil {
			m.notice = "actions: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Actions))
		for i, a := range msg.Actions {
			items[i] = actionItem{action: a}
		}
		cmds = append(cmds, m.actions.SetItems(items))

	case TransformDoneMsg:
		m.running = false
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			m.pane = paneActions
			return m, nil
		}
		m.result = msg.Out
		m.output.SetContent(msg.Out.Text)
		m.output.GotoTop()
		m.pane = paneResult
		m.notice = ""

	case spinner.TickMsg:
		if m.running {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch m.pane {
		case paneActions:
			if msg.String() == "enter" && !m.Filtering() {
				if item, ok := m.actions.SelectedItem().(actionItem); ok {
					if m.noteID == "" {
						m.notice = "open a note first"
						return m, nil
					}
					m.running = true
					m.notice = ""
					cmds = append(cmds, m.transformCmd(item.action.ID), m.spinner.Tick)
					return m, tea.Batch(cmds...)
				}
			}
			var lCmd tea.Cmd
			m.actions, lCmd = m.actions.Update(msg)
			cmds = append(cmds, lCmd)
			return m, tea.Batch(cmds...)

		case paneResult:
			switch msg.String() {
			case "a":
				if m.noteID == "" {
					return m, nil
				}
				req := ApplyRequestMsg{
					NoteID: m.noteID,
					Title:  m.noteTitle,
					Before: m.noteText,
					After:  m.result.Text,
				}
				m.pane = paneActions
				return m, func() tea.Msg { return req }
			case "esc":
				m.pane = paneActions
				m.notice = "discarded"
				return m, nil
			}
			var vCmd tea.Cmd
			m.output, vCmd = m.output.Update(msg)
			cmds = append(cmds, vCmd)
			return m, tea.Batch(cmds...)
		}
	}

	// Non-key messages pass through to the active pane component.
	switch m.pane {
	case paneActions:
		var lCmd tea.Cmd
		m.actions, lCmd = m.actions.Update(msg)
		cmds = append(cmds, lCmd)
	case paneResult:
		var vCmd tea.Cmd
		m.output, vCmd = m.output.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.running {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Transforming…")
	}

	header := m.renderHeader()
	headerH := lipgloss.Height(header)
	bodyH := m.height - headerH
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	switch m.pane {
	case paneActions:
		listW := m.width * 4 / 10
		detailW := m.width - listW
		listPane := lipgloss.NewStyle().Width(listW).Height(bodyH).Render(m.actions.View())
		detailPane := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Surface1).
			Background(theme.Mantle).Width(detailW - 2).Height(bodyH - 2).
			Render(m.renderContext())
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	case paneResult:
		hint := theme.Muted.Render("a: apply to note  esc: discard  ↑/↓: scroll\n")
		hintH := lipgloss.Height(hint)
		m.output.Height = bodyH - hintH
		if m.output.Height < 1 {
			m.output.Height = 1
		}
		body = lipgloss.JoinVertical(lipgloss.Left, hint, m.output.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.actions.SetSize(m.width*4/10, m.height-3)
	m.output.Width = m.width - 4
	m.output.Height = m.height - 4
}

func (m Model) renderHeader() string {
	target := "(no note)"
	if m.noteID != "" {
		target = m.noteTitle
	}
	line := theme.Title.Render("Assist") + "  " + theme.Muted.Render("note: "+target)
	if m.result.Provider != "" && m.pane == paneResult {
		line += "  " + theme.Muted.Render("via "+m.result.Provider)
	}
	if m.notice != "" {
		line += "  " + theme.Hot.Render(m.notice)
	}
	return line + "\n"
}

func (m Model) renderContext() string {
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("enter: run the selected action on the note") + "\n\n")
	if m.noteText == "" {
		sb.WriteString(theme.Muted.Render("(note is empty)"))
		return sb.String()
	}
	excerpt := m.noteText
	const maxExcerpt = 500
	if len(excerpt) > maxExcerpt {
		excerpt = excerpt[:maxExcerpt] + "…"
	}
	sb.WriteString(excerpt)
	return sb.String()
}

func (m Model) loadActionsCmd() tea.Cmd {
	return func() tea.Msg {
		actions, err := m.port.Actions(context.Background())
		return ActionsLoadedMsg{Actions: actions, Err: err}
	}
}

func (m Model) transformCmd(actionID string) tea.Cmd {
	input := assistdto.TransformInput{ActionID: actionID, Text: m.noteText}
	return func() tea.Msg {
		out, err := m.port.Transform(context.Background(), input)
		return TransformDoneMsg{Out: out, Err: err}
	}
}
