package note

import (
	"errors"
	"time"
)

// NoteData is the shape of a note handed to the persistence collaborator.
// Body is markdown but treated as opaque text.
type NoteData struct {
	Title string
	Body  string
	Tags  []Tag
}

// Clone returns a copy of the note data with its own tag slice.
func (d NoteData) Clone() NoteData {
	return NoteData{Title: d.Title, Body: d.Body, Tags: CloneTags(d.Tags)}
}

// ErrNoteNotFound is returned when a note id is unknown to the store.
var ErrNoteNotFound = errors.New("note not found")

// Note is a persisted note as held by the host.
type Note struct {
	ID string
	NoteData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShortID returns the leading characters of the id used in list views.
func (n Note) ShortID() string {
	if len(n.ID) <= 6 {
		return n.ID
	}
	return n.ID[:6]
}
