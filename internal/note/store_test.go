package note

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestStore() *Store {
	n := 0
	s := NewStore(func() string {
		n++
		return "note-" + string(rune('0'+n))
	})
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestStoreCreateAndList(t *testing.T) {
	s := newTestStore()
	data := NoteData{Title: "t", Body: "b", Tags: []Tag{{ID: "1", Label: "Work"}}}
	created := s.Create(data)
	if created.ID != "note-1" {
		t.Fatalf("expected generated id, got %q", created.ID)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected matching timestamps, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	data.Tags[0].Label = "mutated"
	list := s.List()
	if len(list) != 1 {
		t.Fatalf("expected one note, got %d", len(list))
	}
	if list[0].Tags[0].Label != "Work" {
		t.Fatalf("expected stored tags isolated from caller, got %#v", list[0].Tags)
	}
}

func TestStoreUpdate(t *testing.T) {
	s := newTestStore()
	created := s.Create(NoteData{Title: "old", Body: "b"})
	updated, err := s.Update(created.ID, NoteData{Title: "new", Body: "b2"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}
	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := NoteData{Title: "new", Body: "b2"}
	if diff := cmp.Diff(want, got.NoteData); diff != "" {
		t.Fatalf("note mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreUnknownID(t *testing.T) {
	s := newTestStore()
	if _, err := s.Update("missing", NoteData{}); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if _, err := s.Get("missing"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestShortID(t *testing.T) {
	if got := (Note{ID: "abcdef123"}).ShortID(); got != "abcdef" {
		t.Fatalf("expected abcdef, got %q", got)
	}
	if got := (Note{ID: "abc"}).ShortID(); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}
