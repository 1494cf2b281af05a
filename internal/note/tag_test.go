package note

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTagUsesInjectedGenerator(t *testing.T) {
	tag := NewTag("Work", func() string { return "fixed" })
	if tag.ID != "fixed" || tag.Label != "Work" {
		t.Fatalf("unexpected tag %#v", tag)
	}
}

func TestNewTagDefaultsToUUID(t *testing.T) {
	tag := NewTag("  Spaced  ", nil)
	if _, err := uuid.Parse(tag.ID); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", tag.ID, err)
	}
	if tag.Label != "  Spaced  " {
		t.Fatalf("expected label kept verbatim, got %q", tag.Label)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCloneTagsIsIndependent(t *testing.T) {
	orig := []Tag{{ID: "1", Label: "Work"}}
	dup := CloneTags(orig)
	dup[0].Label = "Home"
	if orig[0].Label != "Work" {
		t.Fatalf("expected original untouched, got %#v", orig)
	}
	if CloneTags(nil) != nil {
		t.Fatalf("expected nil clone for nil input")
	}
}

func TestTagProjections(t *testing.T) {
	tags := []Tag{{ID: "1", Label: "Work"}, {ID: "2", Label: "Home"}}
	ids := TagIDs(tags)
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected ids %v", ids)
	}
	labels := TagLabels(tags)
	if len(labels) != 2 || labels[0] != "Work" || labels[1] != "Home" {
		t.Fatalf("unexpected labels %v", labels)
	}
}
