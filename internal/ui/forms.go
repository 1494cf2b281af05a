package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/editor"
	"github.com/atomicstack/note-editor/internal/logging"
	"github.com/atomicstack/note-editor/internal/logging/events"
	"github.com/atomicstack/note-editor/internal/note"
)

func (m *Model) handleEditorForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.editor == nil {
		return false, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return false, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			events.App.Quit("ctrl+c")
			return true, tea.Quit
		}
	}
	cmd, done, cancel := m.editor.Update(msg)
	if done {
		m.errMsg = ""
	}
	if cancel {
		m.forceClearInfo()
	}
	if m.routeBack {
		m.closeEditor()
	}
	return true, cmd
}

func (m *Model) handleOpenEditorMsg(msg tea.Msg) tea.Cmd {
	open, ok := msg.(openEditorMsg)
	if !ok {
		return nil
	}
	return m.startEditor(open.id)
}

// startEditor opens the editor for the note with the given id, or for a new
// note when id is empty.
func (m *Model) startEditor(id string) tea.Cmd {
	props := editor.Props{
		AvailableTags: m.catalog.Tags(),
		NewID:         m.newID,
		Width:         m.width,
	}
	if id != "" {
		existing, err := m.store.Get(id)
		if err != nil {
			m.errMsg = err.Error()
			logging.Error(err)
			return nil
		}
		data := existing.NoteData
		props.Initial = &data
		events.Notes.Open(id)
	}
	m.editingID = id
	m.routeBack = false
	m.errMsg = ""
	m.editor = editor.New(props, editor.Callbacks{
		OnSubmit: m.saveNote,
		OnAddTag: m.addTag,
		Navigate: m.navigateBack,
	})
	m.mode = ModeEditor
	return nil
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.editingID = ""
	m.routeBack = false
	m.mode = ModeList
	m.refreshNotes()
	if m.lastSaved != "" {
		m.selectNote(m.lastSaved)
		m.lastSaved = ""
	}
}

func (m *Model) saveNote(data note.NoteData) error {
	if m.editingID == "" {
		created := m.store.Create(data)
		events.Notes.Saved(created.ID, true)
		m.lastSaved = created.ID
		m.noteInfo(fmt.Sprintf("Created note %s", created.ShortID()))
		return nil
	}
	updated, err := m.store.Update(m.editingID, data)
	if err != nil {
		return err
	}
	events.Notes.Saved(updated.ID, false)
	m.lastSaved = updated.ID
	m.noteInfo(fmt.Sprintf("Updated note %s", updated.ShortID()))
	return nil
}

func (m *Model) addTag(tag note.Tag) {
	added := m.catalog.Add(tag)
	events.Tags.Catalog(m.catalog.Len(), added)
	if m.editor != nil {
		m.editor.SetAvailableTags(m.catalog.Tags())
	}
}

func (m *Model) navigateBack() {
	m.routeBack = true
}

func (m *Model) noteInfo(message string) {
	if m.verbose {
		m.setInfo(message)
		return
	}
	m.forceClearInfo()
}
