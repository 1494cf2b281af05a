package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeList {
		return nil
	}
	// Pasted text is not a command, even when it spells a key name.
	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) != 1 {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		events.App.Quit(keyMsg.String())
		return tea.Quit
	case "n":
		return m.startEditor("")
	case "enter", "e":
		return m.handleEnterKey()
	case "up", "k":
		m.moveCursor(m.list.MoveCursorUp)
	case "down", "j":
		m.moveCursor(m.list.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home", "g":
		m.moveCursor(m.list.MoveCursorHome)
	case "end", "G":
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	id := m.currentNoteID()
	if id == "" {
		return nil
	}
	return m.startEditor(id)
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.Notes.Cursor(m.list.Cursor)
	}
	m.syncViewport()
	m.clearInfo()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// selectNote moves the cursor onto the note with the given id.
func (m *Model) selectNote(id string) bool {
	for i, item := range m.list.Items {
		if item.Value == id {
			m.list.Cursor = i
			m.syncViewport()
			return true
		}
	}
	return false
}

// currentNoteID returns the id of the highlighted note.
func (m *Model) currentNoteID() string {
	opt, _, ok := m.list.Current()
	if !ok {
		return ""
	}
	return opt.Value
}
