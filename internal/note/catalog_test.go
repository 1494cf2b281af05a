package note

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogAddIgnoresKnownIDs(t *testing.T) {
	c := NewCatalog(Tag{ID: "1", Label: "Work"})
	if c.Add(Tag{ID: "1", Label: "Renamed"}) {
		t.Fatalf("expected duplicate id to be rejected")
	}
	if !c.Add(Tag{ID: "2", Label: "Work"}) {
		t.Fatalf("expected equal label with new id to be accepted")
	}
	want := []Tag{{ID: "1", Label: "Work"}, {ID: "2", Label: "Work"}}
	if diff := cmp.Diff(want, c.Tags()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogRejectsEmptyID(t *testing.T) {
	c := NewCatalog()
	if c.Add(Tag{Label: "nameless"}) {
		t.Fatalf("expected tag without id to be rejected")
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d", c.Len())
	}
}

func TestCatalogTagsReturnsCopy(t *testing.T) {
	c := NewCatalog(Tag{ID: "1", Label: "Work"})
	tags := c.Tags()
	tags[0].Label = "mutated"
	if got := c.Tags()[0].Label; got != "Work" {
		t.Fatalf("expected catalog untouched, got %q", got)
	}
}

func TestSeedCatalog(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return string(rune('a' + n - 1))
	}
	c := SeedCatalog([]string{"Work", "Home"}, gen)
	want := []Tag{{ID: "a", Label: "Work"}, {ID: "b", Label: "Home"}}
	if diff := cmp.Diff(want, c.Tags()); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}
}
