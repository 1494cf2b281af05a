package events

import "github.com/atomicstack/note-editor/internal/logging"

type TagTracer struct{}

type QueryTracer struct{}

var (
	Tags  = TagTracer{}
	Query = QueryTracer{}
)

func (TagTracer) Create(id, label string) {
	logging.Trace("tags.create", map[string]interface{}{"id": id, "label": label})
}

func (TagTracer) SelectionChanged(ids []string) {
	logging.Trace("tags.selection", map[string]interface{}{"ids": ids})
}

func (TagTracer) Catalog(size int, added bool) {
	logging.Trace("tags.catalog", map[string]interface{}{"size": size, "added": added})
}

func (QueryTracer) Changed(query string) {
	logging.Trace("tags.query", map[string]interface{}{"query": query})
}

func (QueryTracer) Cleared() {
	logging.Trace("tags.query-clear", nil)
}
