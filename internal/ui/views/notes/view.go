package notes

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notesdto "inkwell/internal/modules/notes/dto"
	"inkwell/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the notes use-case.
type Port interface {
	List(ctx context.Context, input notesdto.ListNotesInput) ([]notesdto.NoteOutput, error)
	Get(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	ToggleFavorite(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type NotesLoadedMsg struct {
	Notes []notesdto.NoteOutput
	Err   error
}

type DetailLoadedMsg struct {
	Detail notesdto.NoteDetailOutput
	Err    error
}

// OpenEditorMsg bubbles up to the app model, which switches to the
// Editor tab and loads the note.
type OpenEditorMsg struct {
	NoteID string
}

// DeletedMsg bubbles up so the app model can drop the note's edit
// history and update the status bar.
type DeletedMsg struct {
	NoteID string
	Title  string
	Err    error
}

type favoriteToggledMsg struct {
	note notesdto.NoteDetailOutput
	err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type noteItem struct {
	note notesdto.NoteOutput
}

func (i noteItem) Title() string {
	if i.note.Favorite {
		return "★ " + i.note.Title
	}
	return i.note.Title
}

func (i noteItem) Description() string {
	if i.note.Excerpt == "" {
		return i.note.UpdatedAt.Format("2006-01-02 15:04")
	}
	return i.note.Excerpt
}

func (i noteItem) FilterValue() string { return i.note.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      Port
	list      list.Model
	detail    notesdto.NoteDetailOutput
	preview   viewport.Model
	spinner   spinner.Model
	tagFilter string
	loading   bool
	width     int
	height    int
}

func New(port Port) Model {
	l := list.New(nil, newDelegate(), 0, 0)
	l.Title = "Notes"
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
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func newDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)
	return delegate
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case NotesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Notes (load failed: " + msg.Err.Error() + ")"
			return m, nil
		}
		m.list.Title = m.listTitle()
		items := make([]list.Item, len(msg.Notes))
		for i, n := range msg.Notes {
			items[i] = noteItem{note: n}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Notes) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Notes[0].ID))
		} else {
			m.detail = notesdto.NoteDetailOutput{}
			m.preview.SetContent(m.renderDetail())
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case favoriteToggledMsg:
		if msg.err == nil {
			m.detail = msg.note
			m.preview.SetContent(m.renderDetail())
			cmds = append(cmds, m.loadNotesCmd())
		}

	case DeletedMsg:
		if msg.Err == nil {
			m.detail = notesdto.NoteDetailOutput{}
			cmds = append(cmds, m.loadNotesCmd())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				id := item.note.ID
				return m, func() tea.Msg { return OpenEditorMsg{NoteID: id} }
			}
		case "f":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.toggleFavoriteCmd(item.note.ID))
			}
		case "x":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.deleteCmd(item.note.ID, item.note.Title))
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.note.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading notes…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedNoteID returns the current selection's note ID, if any.
func (m Model) SelectedNoteID() (string, bool) {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.ID, true
	}
	return "", false
}

// SelectedNoteTitle returns the current selection's title.
func (m Model) SelectedNoteTitle() string {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.Title
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refreshes the list, keeping the current tag filter.
func (m Model) Reload() tea.Cmd {
	return m.loadNotesCmd()
}

// FilterByTag restricts the list to notes carrying tagSlug. An empty
// slug clears the filter.
func (m *Model) FilterByTag(tagSlug string) tea.Cmd {
	m.tagFilter = tagSlug
	m.list.Title = m.listTitle()
	return m.loadNotesCmd()
}

// RefreshTheme re-applies palette-derived styles after a theme switch.
func (m *Model) RefreshTheme() {
	m.list.SetDelegate(newDelegate())
	m.list.Styles.Title = theme.Title
	m.preview.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	m.preview.SetContent(m.renderDetail())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) listTitle() string {
	if m.tagFilter != "" {
		return "Notes #" + m.tagFilter
	}
	return "Notes"
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a note to see details")
	}
	var sb strings.Builder
	title := d.Title
	if d.Favorite {
		title = "★ " + title
	}
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:      ") + d.ID + "\n")
	sb.WriteString(theme.Muted.Render("slug:    ") + d.Slug + "\n")
	sb.WriteString(theme.Muted.Render("file:    ") + d.Path + "\n")
	if len(d.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("tags:    ") + strings.Join(d.Tags, ", ") + "\n")
	}
	sb.WriteString(theme.Muted.Render("created: ") + d.CreatedAt.Format("2006-01-02 15:04") + "\n")
	sb.WriteString(theme.Muted.Render("updated: ") + d.UpdatedAt.Format("2006-01-02 15:04") + "\n")

	if d.Content != "" {
		excerpt := d.Content
		const maxExcerpt = 600
		if len(excerpt) > maxExcerpt {
			excerpt = excerpt[:maxExcerpt] + "…"
		}
		sb.WriteString("\n" + excerpt + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: edit  f: favorite  x: delete"))
	return sb.String()
}

func (m Model) loadNotesCmd() tea.Cmd {
	tag := m.tagFilter
	return func() tea.Msg {
		notes, err := m.port.List(context.Background(), notesdto.ListNotesInput{Tag: tag})
		return NotesLoadedMsg{Notes: notes, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) toggleFavoriteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.port.ToggleFavorite(context.Background(), id)
		return favoriteToggledMsg{note: note, err: err}
	}
}

func (m Model) deleteCmd(id, title string) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Delete(context.Background(), id)
		return DeletedMsg{NoteID: id, Title: title, Err: err}
	}
}
