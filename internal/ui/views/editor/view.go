package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editordto "inkwell/internal/modules/editor/dto"
	notesdto "inkwell/internal/modules/notes/dto"
	"inkwell/internal/ui/theme"
)

// saveQuiet is how long typing must pause before the buffer is written
// back to the vault.
const saveQuiet = time.Second

// ─── ports ───────────────────────────────────────────────────────────────────

// NotesPort is the slice of the notes use-case the editor needs.
type NotesPort interface {
	Get(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	Update(ctx context.Context, input notesdto.UpdateNoteInput) (notesdto.NoteDetailOutput, error)
}

// HistoryPort is the slice of the editor-core use-case the editor needs.
// Undo and Redo persist the restored snapshot themselves; the view only
// swaps its buffers to match.
type HistoryPort interface {
	OnEdit(ctx context.Context, documentID string, before editordto.SnapshotInput, fn func(context.Context) error) error
	Undo(ctx context.Context, documentID string, current editordto.SnapshotInput) (editordto.SnapshotOutput, bool, error)
	Redo(ctx context.Context, documentID string, current editordto.SnapshotInput) (editordto.SnapshotOutput, bool, error)
	Status(documentID string) editordto.HistoryStatusOutput
	OnFocusChange(documentID string)
}

// ─── messages ────────────────────────────────────────────────────────────────

type noteLoadedMsg struct {
	note notesdto.NoteDetailOutput
	err  error
}

type savedMsg struct {
	gen  int
	note notesdto.NoteDetailOutput
	err  error
}

type saveTickMsg struct {
	gen int
}

type restoredMsg struct {
	snap editordto.SnapshotOutput
	ok   bool
	err  error
	redo bool
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Editor tab. The
// buffers are the source of truth while typing; every change event is
// reported to the history core, and the buffer is flushed to the notes
// module after saveQuiet of silence.
type Model struct {
	notes   NotesPort
	history HistoryPort

	title textinput.Model
	body  textarea.Model

	noteID     string
	note       notesdto.NoteDetailOutput
	loaded     bool
	focusTitle bool
	dirty      bool
	saveGen    int
	hist       editordto.HistoryStatusOutput
	notice     string
	width      int
	height     int
}

func New(notes NotesPort, history HistoryPort) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Untitled"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Start writing…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := Model{notes: notes, history: history, title: ti, body: ta}
	m.applyStyles()
	return m
}

func (m *Model) applyStyles() {
	m.title.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
	m.title.TextStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	m.body.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(theme.Surface0)
	m.body.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Subtext0)
	m.body.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.Subtext0)
}

func (m Model) Init() tea.Cmd { return nil }

// Load pulls the note and makes it the focused document. The history
// core is told about the focus switch so the previous note's typing
// session closes cleanly.
func (m *Model) Load(noteID string) tea.Cmd {
	m.history.OnFocusChange(noteID)
	m.noteID = noteID
	m.loaded = false
	m.notice = ""
	return m.loadCmd(noteID)
}

// NoteID returns the focused note's ID, empty when nothing is loaded.
func (m Model) NoteID() string {
	if !m.loaded {
		return ""
	}
	return m.noteID
}

// Unload clears the buffers when noteID matches the loaded note. The
// app model calls it after a delete so the editor cannot write a
// removed note back.
func (m *Model) Unload(noteID string) {
	if m.noteID != noteID {
		return
	}
	m.loaded = false
	m.dirty = false
	m.saveGen++
	m.noteID = ""
	m.note = notesdto.NoteDetailOutput{}
	m.title.SetValue("")
	m.body.SetValue("")
	m.title.Blur()
	m.body.Blur()
}

// NoteTitle returns the current title buffer.
func (m Model) NoteTitle() string { return m.title.Value() }

// Snapshot returns the current buffer state.
func (m Model) Snapshot() editordto.SnapshotInput {
	return editordto.SnapshotInput{Title: m.title.Value(), Content: m.body.Value()}
}

// Editing reports whether a buffer has keyboard focus. The app model
// yields global keys while true so typing reaches the buffers.
func (m Model) Editing() bool {
	return m.title.Focused() || m.body.Focused()
}

// Dirty reports whether the buffers hold unsaved changes.
func (m Model) Dirty() bool { return m.dirty }

// RefreshTheme re-applies palette-derived styles after a theme switch.
func (m *Model) RefreshTheme() {
	m.applyStyles()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case noteLoadedMsg:
		if msg.err != nil {
			m.notice = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.note = msg.note
		m.noteID = msg.note.ID
		m.loaded = true
		m.dirty = false
		m.saveGen++
		m.title.SetValue(msg.note.Title)
		m.body.SetValue(msg.note.Content)
		m.hist = m.history.Status(m.noteID)
		m.focusTitle = false
		m.title.Blur()
		return m, m.body.Focus()

	case saveTickMsg:
		if m.loaded && m.dirty && msg.gen == m.saveGen {
			return m, m.saveCmd(msg.gen)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.notice = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.note = msg.note
		if msg.gen == m.saveGen {
			m.dirty = false
			m.notice = ""
		}
		return m, nil

	case restoredMsg:
		if msg.err != nil {
			m.notice = "history: " + msg.err.Error()
			return m, nil
		}
		if !msg.ok {
			if msg.redo {
				m.notice = "nothing to redo"
			} else {
				m.notice = "nothing to undo"
			}
			return m, nil
		}
		m.title.SetValue(msg.snap.Title)
		m.body.SetValue(msg.snap.Content)
		m.dirty = false
		m.saveGen++
		m.hist = m.history.Status(m.noteID)
		if msg.redo {
			m.notice = "redone"
		} else {
			m.notice = "undone"
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other component messages pass through.
	var cmd tea.Cmd
	if m.focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+z":
		return m, m.undoCmd()
	case "ctrl+y", "ctrl+shift+z":
		return m, m.redoCmd()
	case "ctrl+s":
		if m.dirty {
			m.saveGen++
			return m, m.saveCmd(m.saveGen)
		}
		return m, nil
	case "esc":
		m.title.Blur()
		m.body.Blur()
		return m, nil
	}

	if !m.Editing() {
		switch msg.String() {
		case "i", "enter":
			m.focusTitle = false
			return m, m.body.Focus()
		case "t":
			m.focusTitle = true
			m.body.Blur()
			return m, m.title.Focus()
		}
		return m, nil
	}

	// Enter on the title line drops into the body.
	if m.focusTitle && msg.String() == "enter" {
		m.focusTitle = false
		m.title.Blur()
		return m, m.body.Focus()
	}

	before := m.Snapshot()
	var cmd tea.Cmd
	if m.focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}

	var cmds []tea.Cmd
	cmds = append(cmds, cmd)
	if after := m.Snapshot(); after != before {
		// Change events are reported synchronously so the pre-edit
		// snapshot is exact even while typing fast.
		_ = m.history.OnEdit(context.Background(), m.noteID, before, nil)
		m.dirty = true
		m.notice = ""
		m.saveGen++
		gen := m.saveGen
		cmds = append(cmds, tea.Tick(saveQuiet, func(time.Time) tea.Msg {
			return saveTickMsg{gen: gen}
		}))
		m.hist = m.history.Status(m.noteID)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.loaded {
		empty := theme.Muted.Render("Open a note from the Notes tab (enter)")
		if m.notice != "" {
			empty = theme.Hot.Render(m.notice)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, empty)
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 1 {
		bodyH = 1
	}
	body := m.body
	body.SetHeight(bodyH)

	return lipgloss.JoinVertical(lipgloss.Left, header, body.View(), footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.title.Width = m.width - 10
	m.body.SetWidth(m.width)
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	m.body.SetHeight(h)
}

func (m Model) renderHeader() string {
	label := theme.Title.Render("Editor")
	titleLine := m.title.View()
	if m.focusTitle {
		titleLine = theme.Hot.Render("» ") + titleLine
	} else {
		titleLine = "  " + titleLine
	}
	return label + "  " + titleLine + "\n"
}

func (m Model) renderFooter() string {
	state := theme.Good.Render("saved")
	if m.dirty {
		state = theme.Hot.Render("● unsaved")
	}
	depths := theme.Muted.Render(fmt.Sprintf("undo:%d redo:%d", m.hist.PastDepth, m.hist.FutureDepth))
	hints := theme.Muted.Render("ctrl+z: undo  ctrl+y: redo  ctrl+s: save  esc: browse  i: edit  t: title")
	line := state + "  " + depths + "  " + hints
	if m.notice != "" {
		line += "  " + theme.Hot.Render(m.notice)
	}
	return "\n" + line
}

func (m Model) loadCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.Get(context.Background(), noteID)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m Model) saveCmd(gen int) tea.Cmd {
	input := notesdto.UpdateNoteInput{
		ID:      m.noteID,
		Title:   m.title.Value(),
		Content: m.body.Value(),
	}
	return func() tea.Msg {
		note, err := m.notes.Update(context.Background(), input)
		return savedMsg{gen: gen, note: note, err: err}
	}
}

func (m Model) undoCmd() tea.Cmd {
	current := m.Snapshot()
	id := m.noteID
	return func() tea.Msg {
		snap, ok, err := m.history.Undo(context.Background(), id, current)
		return restoredMsg{snap: snap, ok: ok, err: err}
	}
}

func (m Model) redoCmd() tea.Cmd {
	current := m.Snapshot()
	id := m.noteID
	return func() tea.Msg {
		snap, ok, err := m.history.Redo(context.Background(), id, current)
		return restoredMsg{snap: snap, ok: ok, err: err, redo: true}
	}
}
