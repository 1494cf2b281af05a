package editor

import (
	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/selector"
)

// TagsToOptions projects tags onto picker options. The tag id becomes the
// option value; the label is copied unchanged and order is kept.
func TagsToOptions(tags []note.Tag) []selector.Option {
	if tags == nil {
		return nil
	}
	opts := make([]selector.Option, len(tags))
	for i, tag := range tags {
		opts[i] = selector.Option{Label: tag.Label, Value: tag.ID}
	}
	return opts
}

// OptionsToTags is the inverse of TagsToOptions: the option value becomes
// the tag id.
func OptionsToTags(opts []selector.Option) []note.Tag {
	if opts == nil {
		return nil
	}
	tags := make([]note.Tag, len(opts))
	for i, opt := range opts {
		tags[i] = note.Tag{ID: opt.Value, Label: opt.Label}
	}
	return tags
}
