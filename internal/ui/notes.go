package ui

import (
	"strings"

	"github.com/atomicstack/note-editor/internal/format/table"
	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/selector"
)

const (
	titleColumnWidth = 32
	tagsColumnWidth  = 40
	untitled         = "(untitled)"
)

var noteColumns = []table.Column{
	{},
	{MaxWidth: titleColumnWidth},
	{MaxWidth: tagsColumnWidth},
}

// refreshNotes reloads the list from the store.
func (m *Model) refreshNotes() {
	m.notes = m.store.List()
	m.list.SetOptions(noteOptions(m.notes))
	m.syncViewport()
}

// noteOptions renders one aligned row per note. The option value is the
// note id so the cursor resolves back to the store.
func noteOptions(notes []note.Note) []selector.Option {
	if len(notes) == 0 {
		return nil
	}
	rows := make([][]string, len(notes))
	for i, n := range notes {
		rows[i] = []string{n.ShortID(), noteTitle(n), strings.Join(note.TagLabels(n.Tags), ", ")}
	}
	lines := table.Format(rows, noteColumns)
	opts := make([]selector.Option, len(notes))
	for i, n := range notes {
		opts[i] = selector.Option{Label: lines[i], Value: n.ID}
	}
	return opts
}

// noteTitle returns the first line of the title.
func noteTitle(n note.Note) string {
	title, _, _ := strings.Cut(n.Title, "\n")
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}
