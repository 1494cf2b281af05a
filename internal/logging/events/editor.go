package events

import "github.com/atomicstack/note-editor/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Open(mode string, availableTags, selectedTags int) {
	logging.Trace("editor.open", map[string]interface{}{
		"mode":      mode,
		"available": availableTags,
		"selected":  selectedTags,
	})
}

func (EditorTracer) Focus(field string) {
	logging.Trace("editor.focus", map[string]interface{}{"field": field})
}

func (EditorTracer) Invalid(field string) {
	logging.Trace("editor.invalid", map[string]interface{}{"field": field})
}

func (EditorTracer) Submit(title string, tags int) {
	logging.Trace("editor.submit", map[string]interface{}{"title": title, "tags": tags})
}

func (EditorTracer) SubmitFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("editor.submit-failed", map[string]interface{}{"error": err.Error()})
}

func (EditorTracer) Cancel(mode string) {
	logging.Trace("editor.cancel", map[string]interface{}{"mode": mode})
}
