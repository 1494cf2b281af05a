package note

import (
	"fmt"
	"sync"
	"time"
)

// Store keeps saved notes in memory for the lifetime of the program.
type Store struct {
	mu    sync.RWMutex
	notes []Note
	index map[string]int
	newID IDFunc
	now   func() time.Time
}

// NewStore returns an empty store. A nil generator falls back to NewID.
func NewStore(newID IDFunc) *Store {
	if newID == nil {
		newID = NewID
	}
	return &Store{
		index: map[string]int{},
		newID: newID,
		now:   time.Now,
	}
}

// Create stores a new note built from data.
func (s *Store) Create(data NoteData) Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := Note{
		ID:        s.newID(),
		NoteData:  data.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.index[n.ID] = len(s.notes)
	s.notes = append(s.notes, n)
	return cloneNote(n)
}

// Update replaces the data of an existing note.
func (s *Store) Update(id string, data NoteData) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.index[id]
	if !ok {
		return Note{}, fmt.Errorf("update %s: %w", id, ErrNoteNotFound)
	}
	n := s.notes[idx]
	n.NoteData = data.Clone()
	n.UpdatedAt = s.now()
	s.notes[idx] = n
	return cloneNote(n), nil
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[id]
	if !ok {
		return Note{}, fmt.Errorf("get %s: %w", id, ErrNoteNotFound)
	}
	return cloneNote(s.notes[idx]), nil
}

// List returns every note in creation order.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.notes) == 0 {
		return nil
	}
	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = cloneNote(n)
	}
	return out
}

func cloneNote(n Note) Note {
	n.NoteData = n.NoteData.Clone()
	return n
}
