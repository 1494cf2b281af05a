package ui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/note-editor/internal/editor"
	"github.com/atomicstack/note-editor/internal/note"
)

func TestCreateNoteThroughEditor(t *testing.T) {
	store := note.NewStore(seqIDs("note"))
	catalog := note.NewCatalog()
	h := NewHarness(newTestModel(t, Options{Store: store, Catalog: catalog}))

	h.Key("n")
	h.Type("Groceries")
	h.Key("enter")
	h.Type("home")
	h.Key("enter")
	h.Key("tab")
	h.Type("milk")
	h.Key("ctrl+s")

	m := h.Model()
	if m.Mode() != ModeList {
		t.Fatalf("expected list after submit, got %d", m.Mode())
	}
	home := note.Tag{ID: "tag-1", Label: "home"}
	notes := store.List()
	if len(notes) != 1 {
		t.Fatalf("expected one stored note, got %d", len(notes))
	}
	want := note.NoteData{Title: "Groceries", Body: "milk", Tags: []note.Tag{home}}
	if diff := cmp.Diff(want, notes[0].NoteData); diff != "" {
		t.Fatalf("stored note mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]note.Tag{home}, catalog.Tags()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
	if got := m.currentNoteID(); got != "note-1" {
		t.Fatalf("expected cursor on saved note, got %q", got)
	}
}

func TestCreatedTagIsPushedBackIntoEditor(t *testing.T) {
	catalog := note.NewCatalog(note.Tag{ID: "w", Label: "Work"})
	m := newTestModel(t, Options{Catalog: catalog})
	m.startEditor("")

	created := m.Editor().Tags().CreateTag("Errands")

	if catalog.Len() != 2 {
		t.Fatalf("expected catalog to grow, got %d", catalog.Len())
	}
	want := editor.TagsToOptions([]note.Tag{{ID: "w", Label: "Work"}, created})
	if diff := cmp.Diff(want, m.Editor().Tags().Options()); diff != "" {
		t.Fatalf("editor options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]note.Tag{created}, m.Editor().SelectedTags()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestEditExistingNote(t *testing.T) {
	store := note.NewStore(seqIDs("note"))
	work := note.Tag{ID: "w", Label: "Work"}
	store.Create(note.NoteData{Title: "Standup", Body: "notes", Tags: []note.Tag{work}})
	h := NewHarness(newTestModel(t, Options{Store: store, Catalog: note.NewCatalog(work)}))

	h.Key("enter")
	m := h.Model()
	if m.Editor() == nil || m.Editor().Mode() != editor.ModeEdit {
		t.Fatalf("expected edit mode editor")
	}
	if m.Editor().Title() != "Standup" {
		t.Fatalf("expected seeded title, got %q", m.Editor().Title())
	}

	h.Type(" v2")
	h.Key("ctrl+s")

	if h.Model().Mode() != ModeList {
		t.Fatalf("expected list after submit")
	}
	got, err := store.Get("note-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := note.NoteData{Title: "Standup v2", Body: "notes", Tags: []note.Tag{work}}
	if diff := cmp.Diff(want, got.NoteData); diff != "" {
		t.Fatalf("updated note mismatch (-want +got):\n%s", diff)
	}
	if len(store.List()) != 1 {
		t.Fatalf("expected update in place, got %d notes", len(store.List()))
	}
}

func TestCancelReturnsWithoutSaving(t *testing.T) {
	store := note.NewStore(seqIDs("note"))
	catalog := note.NewCatalog()
	h := NewHarness(newTestModel(t, Options{Store: store, Catalog: catalog}))

	h.Key("n")
	h.Type("draft")
	h.Key("esc")

	if h.Model().Mode() != ModeList {
		t.Fatalf("expected list after cancel")
	}
	if len(store.List()) != 0 {
		t.Fatalf("expected nothing saved")
	}
	if catalog.Len() != 0 {
		t.Fatalf("expected catalog untouched")
	}
}

func TestEmptySubmitKeepsEditorOpen(t *testing.T) {
	store := note.NewStore(seqIDs("note"))
	h := NewHarness(newTestModel(t, Options{Store: store}))

	h.Key("n")
	h.Key("ctrl+s")

	m := h.Model()
	if m.Mode() != ModeEditor {
		t.Fatalf("expected editor to stay open")
	}
	if m.Editor().FieldError(editor.FieldTitle) == "" {
		t.Fatalf("expected title marked required")
	}
	if len(store.List()) != 0 {
		t.Fatalf("expected nothing saved")
	}
}

func TestFailedUpdateKeepsEditorOpen(t *testing.T) {
	store := note.NewStore(seqIDs("note"))
	store.Create(note.NoteData{Title: "t", Body: "b"})
	m := newTestModel(t, Options{Store: store})
	m.startEditor("note-1")
	m.editingID = "gone"

	_, err := m.Editor().Submit()
	if !errors.Is(err, note.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if m.Mode() != ModeEditor || m.routeBack {
		t.Fatalf("expected editor to stay open")
	}
	if m.Editor().Error() == "" {
		t.Fatalf("expected error shown in editor")
	}
}

func TestOpenUnknownNoteShowsError(t *testing.T) {
	m := newTestModel(t, Options{})
	if cmd := m.startEditor("missing"); cmd != nil {
		t.Fatalf("expected no command")
	}
	if m.Mode() != ModeList {
		t.Fatalf("expected to stay on list")
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message")
	}
}

func TestSaveInfoOnlyWhenVerbose(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		m := newTestModel(t, Options{Verbose: verbose})
		m.startEditor("")
		m.Editor().SetTitle("t")
		m.Editor().SetBody("b")
		if _, err := m.Editor().Submit(); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if got := m.currentInfo() != ""; got != verbose {
			t.Fatalf("verbose=%v: expected info shown %v, got %q", verbose, verbose, m.currentInfo())
		}
	}
}
