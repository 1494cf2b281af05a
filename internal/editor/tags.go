package editor

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/logging/events"
	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/selector"
)

const defaultMaxVisibleOptions = 6

// TagSelector binds the local selection of tags to a pick-or-create picker
// offering the tag catalog. The selection is the source of truth; the picker
// only ever sees its option projection.
type TagSelector struct {
	selected   []note.Tag
	picker     *selector.Picker
	newID      note.IDFunc
	onAddTag   func(note.Tag)
	maxVisible int
}

// NewTagSelector seeds the selection from initial and offers available.
func NewTagSelector(available, initial []note.Tag, newID note.IDFunc, onAddTag func(note.Tag)) *TagSelector {
	if newID == nil {
		newID = note.NewID
	}
	s := &TagSelector{
		selected:   note.CloneTags(initial),
		newID:      newID,
		onAddTag:   onAddTag,
		maxVisible: defaultMaxVisibleOptions,
	}
	s.picker = selector.NewPicker(TagsToOptions(available), TagsToOptions(s.selected))
	return s
}

// SelectionChanged replaces the selection with the tags named by values.
// No collaborator is notified.
func (s *TagSelector) SelectionChanged(values []selector.Option) {
	s.selected = OptionsToTags(values)
	s.picker.SetSelected(TagsToOptions(s.selected))
	events.Tags.SelectionChanged(note.TagIDs(s.selected))
}

// CreateTag builds a tag with a fresh id, hands it to the OnAddTag
// collaborator, and appends it to the selection without waiting for the
// catalog to include it. Repeated labels produce distinct tags.
func (s *TagSelector) CreateTag(label string) note.Tag {
	tag := note.NewTag(label, s.newID)
	events.Tags.Create(tag.ID, tag.Label)
	if s.onAddTag != nil {
		s.onAddTag(tag)
	}
	s.selected = append(note.CloneTags(s.selected), tag)
	s.picker.SetSelected(TagsToOptions(s.selected))
	return tag
}

// SetAvailableTags replaces the offered catalog. The selection is left as is.
func (s *TagSelector) SetAvailableTags(tags []note.Tag) {
	s.picker.SetOptions(TagsToOptions(tags))
	s.picker.EnsureCursorVisible(s.maxVisible)
}

// Selected returns the current selection in order.
func (s *TagSelector) Selected() []note.Tag {
	return note.CloneTags(s.selected)
}

// Value is the selection as the picker displays it.
func (s *TagSelector) Value() []selector.Option {
	return TagsToOptions(s.selected)
}

// Options is the full catalog as the picker offers it, selected or not.
func (s *TagSelector) Options() []selector.Option {
	return selector.CloneOptions(s.picker.Full)
}

// DisplayLabels returns the labels of the selected tags in order.
func (s *TagSelector) DisplayLabels() []string {
	return note.TagLabels(s.selected)
}

// Picker exposes the underlying picker state.
func (s *TagSelector) Picker() *selector.Picker {
	return s.picker
}

// Query returns the current search text.
func (s *TagSelector) Query() string {
	return s.picker.Query
}

// ClearQuery empties the search text.
func (s *TagSelector) ClearQuery() bool {
	if !s.picker.ClearQuery() {
		return false
	}
	events.Query.Cleared()
	return true
}

// Choose acts on the row under the cursor: it creates a tag from the create
// row or toggles the highlighted option. The query is cleared afterwards.
func (s *TagSelector) Choose() bool {
	opt, create, ok := s.picker.Current()
	if !ok {
		return false
	}
	if create {
		s.CreateTag(opt.Label)
	} else {
		s.SelectionChanged(s.picker.Toggle(opt))
	}
	s.picker.ClearQuery()
	s.picker.EnsureCursorVisible(s.maxVisible)
	return true
}

// HandleKey applies a key press to the selector. It reports whether the key
// was consumed. Typed text always goes to the query, even when it spells a
// key name such as "home" or "enter".
func (s *TagSelector) HandleKey(msg tea.KeyMsg) bool {
	p := s.picker
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return s.queryChanged(p.InsertQueryText(string(msg.Runes)))
	case tea.KeySpace:
		return s.queryChanged(p.InsertQueryText(" "))
	case tea.KeyBackspace, tea.KeyCtrlH:
		if p.Query != "" {
			return s.queryChanged(p.DeleteQueryRuneBackward())
		}
		if !p.RemoveLast() {
			return false
		}
		s.SelectionChanged(p.Selected())
		return true
	case tea.KeyLeft:
		return p.MoveQueryCursorRuneBackward()
	case tea.KeyRight:
		return p.MoveQueryCursorRuneForward()
	}
	switch msg.String() {
	case "enter":
		return s.Choose()
	case "up", "ctrl+p":
		return s.moveCursor(p.MoveCursorUp)
	case "down", "ctrl+n":
		return s.moveCursor(p.MoveCursorDown)
	case "pgup":
		return s.moveCursor(func() bool { return p.MoveCursorPageUp(s.maxVisible) })
	case "pgdown":
		return s.moveCursor(func() bool { return p.MoveCursorPageDown(s.maxVisible) })
	case "home":
		return s.moveCursor(p.MoveCursorHome)
	case "end":
		return s.moveCursor(p.MoveCursorEnd)
	case "ctrl+u":
		return s.ClearQuery()
	case "ctrl+w":
		return s.queryChanged(p.DeleteQueryWordBackward())
	case "ctrl+a":
		return p.MoveQueryCursorStart()
	case "ctrl+e":
		return p.MoveQueryCursorEnd()
	}
	return false
}

func (s *TagSelector) moveCursor(move func() bool) bool {
	moved := move()
	s.picker.EnsureCursorVisible(s.maxVisible)
	return moved
}

func (s *TagSelector) queryChanged(changed bool) bool {
	if changed {
		s.picker.EnsureCursorVisible(s.maxVisible)
		events.Query.Changed(s.picker.Query)
	}
	return changed
}
