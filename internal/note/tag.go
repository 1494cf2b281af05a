package note

import "github.com/google/uuid"

// Tag is a labelled category attachable to a note. Identity is by ID.
type Tag struct {
	ID    string
	Label string
}

// IDFunc produces globally unique tag identifiers without coordination.
type IDFunc func() string

// NewID returns a random 128-bit UUID string.
func NewID() string {
	return uuid.NewString()
}

// NewTag builds a tag with a fresh identifier. A nil generator falls back to
// NewID. The label is kept verbatim.
func NewTag(label string, newID IDFunc) Tag {
	if newID == nil {
		newID = NewID
	}
	return Tag{ID: newID(), Label: label}
}

// CloneTags produces a copy of the provided tags. Nil and empty inputs both
// return nil.
func CloneTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	dup := make([]Tag, len(tags))
	copy(dup, tags)
	return dup
}

// TagIDs projects the identifiers of tags in order.
func TagIDs(tags []Tag) []string {
	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids
}

// TagLabels projects the labels of tags in order.
func TagLabels(tags []Tag) []string {
	labels := make([]string, len(tags))
	for i, tag := range tags {
		labels[i] = tag.Label
	}
	return labels
}
