package events

import "github.com/atomicstack/note-editor/internal/logging"

type NoteTracer struct{}

var Notes = NoteTracer{}

func (NoteTracer) Saved(id string, created bool) {
	logging.Trace("notes.saved", map[string]interface{}{"id": id, "created": created})
}

func (NoteTracer) Open(id string) {
	logging.Trace("notes.open", map[string]interface{}{"id": id})
}

func (NoteTracer) Cursor(cursor int) {
	logging.Trace("notes.cursor", map[string]interface{}{"cursor": cursor})
}
