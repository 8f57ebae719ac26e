package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistdto "inkwell/internal/modules/assist/dto"
	editordto "inkwell/internal/modules/editor/dto"
	exportdto "inkwell/internal/modules/export/dto"
	notesdto "inkwell/internal/modules/notes/dto"
	tododto "inkwell/internal/modules/todos/dto"
	"inkwell/internal/platform/config"
	"inkwell/internal/ui/components"
	"inkwell/internal/ui/theme"
	assistview "inkwell/internal/ui/views/assist"
	editorview "inkwell/internal/ui/views/editor"
	notesview "inkwell/internal/ui/views/notes"
	previewview "inkwell/internal/ui/views/preview"
	todosview "inkwell/internal/ui/views/todos"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type notesPort interface {
	Create(ctx context.Context, input notesdto.CreateNoteInput) (notesdto.NoteDetailOutput, error)
	Get(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	Update(ctx context.Context, input notesdto.UpdateNoteInput) (notesdto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	List(ctx context.Context, input notesdto.ListNotesInput) ([]notesdto.NoteOutput, error)
	Reindex(ctx context.Context) error
}

type todosPort interface {
	Add(ctx context.Context, text string) (tododto.TodoOutput, error)
	List(ctx context.Context, includeDone bool) ([]tododto.TodoOutput, error)
	Toggle(ctx context.Context, id string) (tododto.TodoOutput, error)
	Remove(ctx context.Context, id string) error
	ClearDone(ctx context.Context) (int, error)
}

type assistPort interface {
	Actions(ctx context.Context) ([]assistdto.ActionOutput, error)
	Transform(ctx context.Context, input assistdto.TransformInput) (assistdto.TransformOutput, error)
}

type exportPort interface {
	ExportNote(ctx context.Context, noteID, format string) (exportdto.ExportFileOutput, error)
	ExportAll(ctx context.Context, format string) ([]exportdto.ExportFileOutput, error)
	ExportArchive(ctx context.Context) (exportdto.ExportFileOutput, error)
}

// historyPort is the slice of the editor core this layer touches
// directly; the editor view narrows its own slice.
type historyPort interface {
	OnEdit(ctx context.Context, documentID string, before editordto.SnapshotInput, fn func(context.Context) error) error
	Undo(ctx context.Context, documentID string, current editordto.SnapshotInput) (editordto.SnapshotOutput, bool, error)
	Redo(ctx context.Context, documentID string, current editordto.SnapshotInput) (editordto.SnapshotOutput, bool, error)
	Status(documentID string) editordto.HistoryStatusOutput
	OnFocusChange(documentID string)
	Checkpoint(documentID string, current editordto.SnapshotInput)
	OnDocumentDeleted(documentID string)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabNotes tabID = iota
	tabEditor
	tabPreview
	tabTodos
	tabAssist
	tabCount
)

var tabLabels = [tabCount]string{
	"Notes", "Editor", "Preview", "Todos", "Assist",
}

// ─── async messages ───────────────────────────────────────────────────────────

type noteCreatedMsg struct {
	note notesdto.NoteDetailOutput
	err  error
}

type todoAddedMsg struct {
	todo tododto.TodoOutput
	err  error
}

type exportDoneMsg struct {
	paths []string
	err   error
}

type reindexedMsg struct {
	err error
}

type assistAppliedMsg struct {
	noteID string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Open    key.Binding
	Fav     key.Binding
	Del     key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Save    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open in editor")),
		Fav:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Del:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete note")),
		Undo:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save now")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Open, k.Fav, k.Del},
		{k.Undo, k.Redo, k.Save},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global
// help overlay, the command palette, and theme switching. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	cfg config.Config

	// ports used at this orchestration level only
	notes   notesPort
	todos   todosPort
	export  exportPort
	history historyPort

	// sub-views (one per tab)
	notesView   notesview.Model
	editorView  editorview.Model
	previewView previewview.Model
	todosView   todosview.Model
	assistView  assistview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	cfg config.Config,
	notes notesPort,
	todos todosPort,
	assist assistPort,
	export exportPort,
	history historyPort,
) Model {
	theme.Apply(cfg.Theme)

	return Model{
		cfg:         cfg,
		notes:       notes,
		todos:       todos,
		export:      export,
		history:     history,
		notesView:   notesview.New(notes),
		editorView:  editorview.New(notes, history),
		previewView: previewview.New(notes),
		todosView:   todosview.New(todos),
		assistView:  assistview.New(assist),
		activeTab:   tabNotes,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.notesView.Init(),
		m.todosView.Init(),
		m.assistView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// OpenEditorMsg is produced by the notes view but bubbles up through
	// the top level so we can switch to the Editor tab.
	case notesview.OpenEditorMsg:
		m.activeTab = tabEditor
		m.status = "editing"
		return m, m.editorView.Load(msg.NoteID)

	case notesview.DeletedMsg:
		if msg.Err != nil {
			m.status = "delete failed: " + msg.Err.Error()
		} else {
			m.history.OnDocumentDeleted(msg.NoteID)
			m.editorView.Unload(msg.NoteID)
			m.status = "deleted: " + msg.Title
		}
		var cmd tea.Cmd
		m.notesView, cmd = m.notesView.Update(msg)
		return m, cmd

	case assistview.ApplyRequestMsg:
		return m, m.applyAssistCmd(msg)

	case assistAppliedMsg:
		if msg.err != nil {
			m.status = "apply failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "assist result applied"
		cmds = append(cmds, m.notesView.Reload())
		if m.editorView.NoteID() == msg.noteID {
			cmds = append(cmds, m.editorView.Load(msg.noteID))
		}
		return m, tea.Batch(cmds...)

	case noteCreatedMsg:
		if msg.err != nil {
			m.status = "create failed: " + msg.err.Error()
			return m, nil
		}
		m.activeTab = tabEditor
		m.status = "created: " + msg.note.Title
		return m, tea.Batch(m.editorView.Load(msg.note.ID), m.notesView.Reload())

	case todoAddedMsg:
		if msg.err != nil {
			m.status = "todo failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "todo added: " + msg.todo.Text
		return m, m.todosView.Reload()

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else if len(msg.paths) == 1 {
			m.status = "exported: " + msg.paths[0]
		} else {
			m.status = fmt.Sprintf("exported %d files", len(msg.paths))
		}

	case reindexedMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "vault reindexed"
		return m, m.notesView.Reload()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it owns the keyboard: an open
		// list filter, the editor buffers, or the todo input.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabNotes:
		m.notesView, tabCmd = m.notesView.Update(msg)
	case tabEditor:
		m.editorView, tabCmd = m.editorView.Update(msg)
	case tabPreview:
		m.previewView, tabCmd = m.previewView.Update(msg)
	case tabTodos:
		m.todosView, tabCmd = m.todosView.Update(msg)
	case tabAssist:
		m.assistView, tabCmd = m.assistView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabNotes:
		return m.notesView.View()
	case tabEditor:
		return m.editorView.View()
	case tabPreview:
		return m.previewView.View()
	case tabTodos:
		return m.todosView.View()
	case tabAssist:
		return m.assistView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "inkwell  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.editorView.Dirty() {
		left = theme.Hot.Render("● "+m.editorView.NoteTitle()) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "note:new":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if title == "" {
			m.status = "usage: note:new <title>"
			return m, nil
		}
		return m, m.createNoteCmd(title)

	case "todo:add":
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if text == "" {
			m.status = "usage: todo:add <text>"
			return m, nil
		}
		return m, m.addTodoCmd(text)

	case "tag:filter":
		slug := ""
		if len(parts) >= 2 {
			slug = parts[1]
		}
		m.activeTab = tabNotes
		if slug == "" {
			m.status = "tag filter cleared"
		} else {
			m.status = "filtering by #" + slug
		}
		return m, m.notesView.FilterByTag(slug)

	case "export:note":
		id := m.focusedNoteID()
		if id == "" {
			m.status = "no note selected"
			return m, nil
		}
		return m, m.exportNoteCmd(id, formatArg(parts))

	case "export:all":
		return m, m.exportAllCmd(formatArg(parts))

	case "export:zip":
		return m, m.exportArchiveCmd()

	case "assist:run":
		if len(parts) < 2 {
			m.status = "usage: assist:run <action>"
			return m, nil
		}
		m.seedAssist()
		m.activeTab = tabAssist
		return m, m.assistView.RunAction(parts[1])

	case "theme:set":
		if len(parts) < 2 {
			m.status = "usage: theme:set <dark|light>"
			return m, nil
		}
		return m.setTheme(parts[1])

	case "reindex":
		m.status = "reindexing…"
		return m, m.reindexCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func formatArg(parts []string) string {
	if len(parts) >= 2 {
		return parts[1]
	}
	return "markdown"
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab currently owns the
// keyboard, in which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabNotes:
		return m.notesView.Filtering()
	case tabEditor:
		return m.editorView.Editing()
	case tabTodos:
		return m.todosView.Typing()
	case tabAssist:
		return m.assistView.Filtering()
	}
	return false
}

// switchTab changes the active tab and runs its entry side effects: the
// preview re-renders the focused note and the assist tab is reseeded
// with the current buffers.
func (m Model) switchTab(to tabID) (tea.Model, tea.Cmd) {
	m.activeTab = to
	switch to {
	case tabPreview:
		return m, m.previewView.Refresh(m.focusedNoteID())
	case tabAssist:
		m.seedAssist()
	}
	return m, nil
}

// focusedNoteID prefers the note loaded in the editor, falling back to
// the notes list selection.
func (m Model) focusedNoteID() string {
	if id := m.editorView.NoteID(); id != "" {
		return id
	}
	if id, ok := m.notesView.SelectedNoteID(); ok {
		return id
	}
	return ""
}

func (m *Model) seedAssist() {
	if id := m.editorView.NoteID(); id != "" {
		snap := m.editorView.Snapshot()
		m.assistView.SetNote(id, snap.Title, snap.Content)
	}
}

func (m Model) setTheme(name string) (tea.Model, tea.Cmd) {
	applied := theme.Apply(name)
	m.cfg.Theme = applied
	m.refreshViewThemes()
	if err := config.SaveTheme(m.cfg, applied); err != nil {
		m.status = "theme set (not saved: " + err.Error() + ")"
		return m, nil
	}
	m.status = "theme: " + applied
	return m, nil
}

func (m *Model) refreshViewThemes() {
	m.notesView.RefreshTheme()
	m.editorView.RefreshTheme()
	m.previewView.RefreshTheme()
	m.todosView.RefreshTheme()
	m.assistView.RefreshTheme()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.notesView, _ = m.notesView.Update(sz)
	m.editorView, _ = m.editorView.Update(sz)
	m.previewView, _ = m.previewView.Update(sz)
	m.todosView, _ = m.todosView.Update(sz)
	m.assistView, _ = m.assistView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) createNoteCmd(title string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.notes.Create(context.Background(), notesdto.CreateNoteInput{Title: title})
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m Model) addTodoCmd(text string) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.todos.Add(context.Background(), text)
		return todoAddedMsg{todo: todo, err: err}
	}
}

func (m Model) exportNoteCmd(noteID, format string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.export.ExportNote(context.Background(), noteID, format)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{out.Path}}
	}
}

func (m Model) exportAllCmd(format string) tea.Cmd {
	return func() tea.Msg {
		outs, err := m.export.ExportAll(context.Background(), format)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		paths := make([]string, len(outs))
		for i, out := range outs {
			paths[i] = out.Path
		}
		return exportDoneMsg{paths: paths}
	}
}

func (m Model) exportArchiveCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.export.ExportArchive(context.Background())
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{out.Path}}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		return reindexedMsg{err: m.notes.Reindex(context.Background())}
	}
}

// applyAssistCmd records the pre-transform state as an undo point, then
// writes the transformed text through the notes module. Undo in the
// editor brings the old text back.
func (m Model) applyAssistCmd(req assistview.ApplyRequestMsg) tea.Cmd {
	return func() tea.Msg {
		m.history.Checkpoint(req.NoteID, editordto.SnapshotInput{
			Title:   req.Title,
			Content: req.Before,
		})
		_, err := m.notes.Update(context.Background(), notesdto.UpdateNoteInput{
			ID:      req.NoteID,
			Title:   req.Title,
			Content: req.After,
		})
		return assistAppliedMsg{noteID: req.NoteID, err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
