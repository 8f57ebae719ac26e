package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	notesdto "inkwell/internal/modules/notes/dto"
	"inkwell/internal/ui/theme"
)

const (
	renderTTL   = 15 * time.Minute
	renderSweep = 5 * time.Minute
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the notes use-case.
type Port interface {
	Get(ctx context.Context, id string) (notesdto.NoteDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ContentLoadedMsg struct {
	Note notesdto.NoteDetailOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Preview tab.
// Rendered pages are cached keyed by note version and width, so tabbing
// back and forth does not re-run glamour on unchanged notes.
type Model struct {
	port     Port
	viewport viewport.Model
	renderer *glamour.TermRenderer
	cache    *cache.Cache
	note     notesdto.NoteDetailOutput
	hasNote  bool
	loadErr  error
	width    int
	height   int
}

func New(port Port) Model {
	vp := viewport.New(0, 0)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(theme.GlamourStyle()),
		glamour.WithWordWrap(0),
	)

	return Model{
		port:     port,
		viewport: vp,
		renderer: r,
		cache:    cache.New(renderTTL, renderSweep),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Refresh loads noteID and renders it. The app model calls this when
// the Preview tab gains focus.
func (m Model) Refresh(noteID string) tea.Cmd {
	if noteID == "" {
		return nil
	}
	return func() tea.Msg {
		note, err := m.port.Get(context.Background(), noteID)
		return ContentLoadedMsg{Note: note, Err: err}
	}
}

// RefreshTheme rebuilds the renderer for the new palette and drops every
// cached page, since they were rendered with the old style.
func (m *Model) RefreshTheme() {
	m.rebuildRenderer()
	m.cache.Flush()
	if m.hasNote {
		m.viewport.SetContent(m.renderNote())
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.hasNote {
			m.viewport.SetContent(m.renderNote())
		}

	case ContentLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.loadErr = nil
		m.note = msg.Note
		m.hasNote = true
		m.viewport.SetContent(m.renderNote())
		m.viewport.GotoTop()
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("Preview: "+m.loadErr.Error()))
	}
	if !m.hasNote {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Open a note, then switch here to preview it"))
	}

	header := m.renderHeader()
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
	vpHeight := m.height - lipgloss.Height(header) - 1
	if vpHeight < 1 {
		vpHeight = 1
	}
	vp := m.viewport
	vp.Height = vpHeight

	return lipgloss.JoinVertical(lipgloss.Left, header, vp.View(), footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 3
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.rebuildRenderer()
}

func (m *Model) rebuildRenderer() {
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(theme.GlamourStyle()),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) renderHeader() string {
	return theme.Title.Render(m.note.Title) + "  " +
		theme.Muted.Render("updated "+m.note.UpdatedAt.Format("2006-01-02 15:04")) + "\n"
}

func (m Model) renderNote() string {
	if m.note.Content == "" {
		return theme.Muted.Render("(empty note)")
	}
	key := fmt.Sprintf("%s|%d|%d", m.note.ID, m.note.UpdatedAt.UnixNano(), m.width)
	if cached, ok := m.cache.Get(key); ok {
		if page, ok := cached.(string); ok {
			return page
		}
	}
	page := m.note.Content
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(m.note.Content); err == nil {
			page = rendered
		}
	}
	m.cache.Set(key, page, cache.DefaultExpiration)
	return page
}
