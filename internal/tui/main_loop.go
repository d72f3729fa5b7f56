package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/SeKiZo0/NotesApp/internal/adapter"
	"github.com/SeKiZo0/NotesApp/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFocusTitle = iota
	formFocusContent
)

type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	notes   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	detail  bool
	confirm bool

	formActive bool
	editing    bool
	editID     string
	titleInput textinput.Model
	contentTA  textarea.Model
	formFocus  int
	formErr    string
	saving     bool

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:     ctx,
		server:  server,
		spinner: s,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadNotes())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		if msg.created {
			m.notes = append([]models.Note{msg.note}, m.notes...)
			m.idx = 0
			m.status = "Note created"
		} else {
			for i := range m.notes {
				if m.notes[i].ID == msg.note.ID {
					m.notes[i] = msg.note
					break
				}
			}
			m.status = "Note updated"
		}
		m.errMsg = ""
		m.resetForm()
		return m, nil
	case noteDeletedMsg:
		m.confirm = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		kept := m.notes[:0]
		for _, n := range m.notes {
			if n.ID != msg.id {
				kept = append(kept, n)
			}
		}
		m.notes = kept
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		m.detail = false
		m.status = "Note deleted"
		m.errMsg = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formActive {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.confirm {
		return m.updateConfirm(keyMsg)
	}

	if m.formActive {
		return m.updateForm(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotes())
	case "n":
		m.startForm(nil)
		return m, nil
	case "e":
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		m.startForm(&note)
		return m, nil
	case "d":
		if _, ok := m.current(); !ok {
			m.status = "No notes"
			return m, nil
		}
		m.confirm = true
		return m, nil
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No notes"
			return m, nil
		}
		m.detail = true
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		m.quitByUser = true
		return m, tea.Quit
	case "esc":
		m.detail = false
	case "e":
		m.detail = false
		m.startForm(&note)
		return m, nil
	case "d":
		m.confirm = true
		return m, nil
	case "c":
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		m.errMsg = ""
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.confirm = false
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		return m, m.cmdDelete(note.ID)
	case "n", "esc":
		m.confirm = false
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab", "shift+tab":
			if m.formFocus == formFocusTitle {
				m.titleInput.Blur()
				m.contentTA.Focus()
				m.formFocus = formFocusContent
			} else {
				m.contentTA.Blur()
				m.titleInput.Focus()
				m.formFocus = formFocusTitle
			}
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			req := models.NoteRequest{
				Title:   strings.TrimSpace(m.titleInput.Value()),
				Content: strings.TrimSpace(m.contentTA.Value()),
			}
			if req.Title == "" || req.Content == "" {
				m.formErr = "title and content are required"
				return m, nil
			}

			m.formErr = ""
			m.saving = true
			if m.editing {
				return m, m.cmdUpdate(m.editID, req)
			}
			return m, m.cmdCreate(req)
		}
	}

	var cmd tea.Cmd
	if m.formFocus == formFocusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentTA, cmd = m.contentTA.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) startForm(note *models.Note) {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Content"
	content.SetWidth(54)
	content.SetHeight(8)

	m.formActive = true
	m.editing = false
	m.editID = ""
	m.formFocus = formFocusTitle
	m.formErr = ""
	m.saving = false

	if note != nil {
		m.editing = true
		m.editID = note.ID
		title.SetValue(note.Title)
		content.SetValue(note.Content)
	}

	m.titleInput = title
	m.contentTA = content
}

func (m *mainLoopModel) resetForm() {
	m.formActive = false
	m.editing = false
	m.editID = ""
	m.formErr = ""
	m.saving = false
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// ───────────────────────── views ─────────────────────────

func (m mainLoopModel) View() string {
	if m.confirm {
		note, ok := m.current()
		if ok {
			return renderPage("DELETE NOTE", confirmModel{message: note.Title}.View(), "y: delete │ n: cancel")
		}
	}

	if m.formActive {
		return m.viewForm()
	}

	if m.detail {
		return m.viewDetail()
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += m.spinner.View() + " Loading notes...\n"
		return renderPage("NOTES", strings.TrimRight(out, "\n"), "r: reload │ q: quit")
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += m.status + "\n"
	}

	if len(m.notes) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No notes yet. Press n to create one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Title                      │ Updated           │ Content\n"
		out += "───────────────────────────┼───────────────────┼──────────────────\n"
		for i, note := range m.notes {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-25s│ %-17s │ %s\n",
				cursor,
				fitText(note.Title, 25),
				formatTimestamp(note.UpdatedAt),
				fitText(firstLine(note.Content), 18),
			)
		}
	}

	return renderPage(
		"NOTES",
		strings.TrimRight(out, "\n"),
		"n: new │ enter: open │ e: edit │ d: delete │ r: reload │ ↑/↓: nav │ q: quit",
	)
}

func (m mainLoopModel) viewDetail() string {
	note, ok := m.current()
	if !ok {
		return renderPage("VIEW NOTE", "Note not found", "esc: back")
	}

	out := titleStyle.Render(note.Title) + "\n\n"
	out += note.Content + "\n\n"
	out += helpStyle.Render("Created: "+formatTimestamp(note.CreatedAt)) + "\n"
	out += helpStyle.Render("Updated: " + formatTimestamp(note.UpdatedAt))
	if m.status != "" {
		out += "\n\n" + m.status
	}
	if m.errMsg != "" {
		out += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return renderPage("VIEW NOTE", out, "e: edit │ d: delete │ c: copy content │ esc: back")
}

func (m mainLoopModel) viewForm() string {
	title := "NEW NOTE"
	if m.editing {
		title = "EDIT NOTE"
	}

	out := "Title   : [ " + m.titleInput.View() + " ]\n\n"
	out += "Content :\n"
	out += m.contentTA.View() + "\n"
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
	}
	if m.saving {
		out += "\nSaving...\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: switch field │ ctrl+s: save │ esc: cancel")
}

// ───────────────────────── commands ─────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		notes, err := server.ListNotes(ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdCreate(req models.NoteRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		note, err := server.CreateNote(ctx, req)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id string, req models.NoteRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		note, err := server.UpdateNote(ctx, id, req)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.DeleteNote(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}
