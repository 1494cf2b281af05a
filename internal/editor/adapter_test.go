package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/selector"
)

func TestTagOptionRoundTrip(t *testing.T) {
	cases := map[string][]note.Tag{
		"empty":           {},
		"single":          {{ID: "1", Label: "Work"}},
		"order kept":      {{ID: "b", Label: "Beta"}, {ID: "a", Label: "Alpha"}},
		"duplicate label": {{ID: "x", Label: "Foo"}, {ID: "y", Label: "Foo"}},
		"odd characters":  {{ID: "id with space", Label: "  padded  "}, {ID: "ü", Label: ""}},
	}
	for name, tags := range cases {
		t.Run(name, func(t *testing.T) {
			got := OptionsToTags(TagsToOptions(tags))
			if diff := cmp.Diff(tags, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTagsToOptionsRenamesIDToValue(t *testing.T) {
	got := TagsToOptions([]note.Tag{{ID: "1", Label: "Work"}})
	want := []selector.Option{{Label: "Work", Value: "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestAdapterNilInputs(t *testing.T) {
	if TagsToOptions(nil) != nil {
		t.Fatalf("expected nil options for nil tags")
	}
	if OptionsToTags(nil) != nil {
		t.Fatalf("expected nil tags for nil options")
	}
}

func TestSelectionChangedRoundTrip(t *testing.T) {
	tags := []note.Tag{{ID: "2", Label: "Home"}, {ID: "1", Label: "Work"}}
	s := NewTagSelector(nil, nil, nil, nil)
	s.SelectionChanged(TagsToOptions(tags))
	if diff := cmp.Diff(tags, s.Selected()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(TagsToOptions(tags), s.Value()); diff != "" {
		t.Fatalf("displayed value mismatch (-want +got):\n%s", diff)
	}
}
