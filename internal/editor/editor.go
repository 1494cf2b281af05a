package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/logging"
	"github.com/atomicstack/note-editor/internal/logging/events"
	"github.com/atomicstack/note-editor/internal/note"
)

// Mode distinguishes creating a note from editing one. It is fixed when the
// editor is built.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Field identifies a focusable input of the editor.
type Field int

const (
	FieldTitle Field = iota
	FieldTags
	FieldBody
)

var fieldOrder = []Field{FieldTitle, FieldTags, FieldBody}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldTags:
		return "tags"
	case FieldBody:
		return "body"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

const (
	defaultWidth = 60
	bodyHeight   = 10
)

// Props are the inputs supplied by the host.
type Props struct {
	AvailableTags []note.Tag
	// Initial seeds the fields in edit mode; nil means create mode.
	Initial *note.NoteData
	NewID   note.IDFunc
	Width   int
}

// Callbacks are the collaborators the editor reports to. Nil entries are
// skipped.
type Callbacks struct {
	// OnSubmit persists the note. A returned error keeps the editor open.
	OnSubmit func(note.NoteData) error
	// OnAddTag must fold a newly created tag into the catalog.
	OnAddTag func(note.Tag)
	// Navigate requests a return to the parent view.
	Navigate func()
}

// Editor is a form for creating or editing a note with a title, a markdown
// body, and a set of tags picked from the catalog or created inline.
type Editor struct {
	mode      Mode
	focus     Field
	title     textinput.Model
	body      textarea.Model
	titleText string
	bodyText  string
	tags      *TagSelector
	callbacks Callbacks
	fieldErrs map[Field]string
	err       string
	width     int
}

// New builds an editor from props. The title field starts focused.
func New(props Props, callbacks Callbacks) *Editor {
	mode := ModeCreate
	var seed note.NoteData
	if props.Initial != nil {
		mode = ModeEdit
		seed = props.Initial.Clone()
	}

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)

	ta := textarea.New()
	ta.Placeholder = "Markdown body"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(bodyHeight)
	ta.Cursor.SetMode(cursor.CursorStatic)

	e := &Editor{
		mode:      mode,
		title:     ti,
		body:      ta,
		callbacks: callbacks,
		fieldErrs: map[Field]string{},
	}
	e.SetWidth(props.Width)
	e.tags = NewTagSelector(props.AvailableTags, seed.Tags, props.NewID, e.addTag)
	e.SetTitle(seed.Title)
	e.SetBody(seed.Body)
	e.setFocus(FieldTitle)
	events.Editor.Open(mode.String(), len(props.AvailableTags), len(seed.Tags))
	return e
}

func (e *Editor) Mode() Mode         { return e.mode }
func (e *Editor) Focused() Field     { return e.focus }
func (e *Editor) Title() string      { return e.titleText }
func (e *Editor) Body() string       { return e.bodyText }
func (e *Editor) Tags() *TagSelector { return e.tags }
func (e *Editor) Error() string      { return e.err }

func (e *Editor) SelectedTags() []note.Tag {
	return e.tags.Selected()
}

// FieldError returns the validation message attached to f, if any.
func (e *Editor) FieldError(f Field) string {
	return e.fieldErrs[f]
}

// SetTitle replaces the title text.
func (e *Editor) SetTitle(value string) {
	e.title.SetValue(value)
	e.title.CursorEnd()
	e.syncTitle()
}

// SetBody replaces the body text.
func (e *Editor) SetBody(value string) {
	e.body.SetValue(value)
	e.syncBody()
}

// SetWidth resizes the fields. Non-positive widths fall back to the default.
func (e *Editor) SetWidth(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	e.width = width
	e.title.Width = width - 4
	e.body.SetWidth(width)
}

func (e *Editor) Width() int { return e.width }

// SetAvailableTags pushes a newer catalog into the tag selector.
func (e *Editor) SetAvailableTags(tags []note.Tag) {
	e.tags.SetAvailableTags(tags)
}

// Submit validates the required fields, hands the note to OnSubmit, and
// requests navigation to the parent view. An empty title or body never
// reaches OnSubmit. When OnSubmit fails the editor stays put and the error is
// shown.
func (e *Editor) Submit() (note.NoteData, error) {
	if field, ok := e.firstEmptyField(); ok {
		e.fieldErrs[field] = "required"
		e.setFocus(field)
		events.Editor.Invalid(field.String())
		return note.NoteData{}, &FieldError{Field: field, Err: ErrRequiredField}
	}
	data := note.NoteData{
		Title: e.titleText,
		Body:  e.bodyText,
		Tags:  e.tags.Selected(),
	}
	events.Editor.Submit(data.Title, len(data.Tags))
	if e.callbacks.OnSubmit != nil {
		if err := e.callbacks.OnSubmit(data.Clone()); err != nil {
			e.err = err.Error()
			events.Editor.SubmitFailed(err)
			logging.Error(err)
			return data, fmt.Errorf("submit note: %w", err)
		}
	}
	e.err = ""
	e.navigate()
	return data, nil
}

// Cancel requests navigation to the parent view without submitting.
func (e *Editor) Cancel() {
	events.Editor.Cancel(e.mode.String())
	e.navigate()
}

// Update routes a message to the focused field. done reports a successful
// submit and cancel an abandoned edit; in both cases Navigate has already
// been called.
func (e *Editor) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e.updateFocused(msg), false, false
	}
	if key.Type == tea.KeyRunes {
		return e.routeKey(key), false, false
	}
	switch key.String() {
	case "ctrl+s":
		if _, err := e.Submit(); err != nil {
			return nil, false, false
		}
		return nil, true, false
	case "esc":
		if e.focus == FieldTags && e.tags.ClearQuery() {
			return nil, false, false
		}
		e.Cancel()
		return nil, false, true
	case "tab":
		return e.cycleFocus(1), false, false
	case "shift+tab":
		return e.cycleFocus(-1), false, false
	case "enter":
		if e.focus == FieldTitle {
			return e.setFocus(FieldTags), false, false
		}
	}
	return e.routeKey(key), false, false
}

// routeKey hands a key the editor did not claim to the focused field.
func (e *Editor) routeKey(key tea.KeyMsg) tea.Cmd {
	if e.focus == FieldTags {
		e.tags.HandleKey(key)
		return nil
	}
	return e.updateFocused(key)
}

func (e *Editor) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.focus {
	case FieldTitle:
		e.title, cmd = e.title.Update(msg)
		e.syncTitle()
	case FieldBody:
		e.body, cmd = e.body.Update(msg)
		e.syncBody()
	}
	return cmd
}

func (e *Editor) syncTitle() {
	e.titleText = e.title.Value()
	if e.titleText != "" {
		delete(e.fieldErrs, FieldTitle)
	}
}

func (e *Editor) syncBody() {
	e.bodyText = e.body.Value()
	if e.bodyText != "" {
		delete(e.fieldErrs, FieldBody)
	}
}

func (e *Editor) firstEmptyField() (Field, bool) {
	if e.titleText == "" {
		return FieldTitle, true
	}
	if e.bodyText == "" {
		return FieldBody, true
	}
	return 0, false
}

func (e *Editor) cycleFocus(delta int) tea.Cmd {
	idx := 0
	for i, f := range fieldOrder {
		if f == e.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fieldOrder)) % len(fieldOrder)
	return e.setFocus(fieldOrder[idx])
}

func (e *Editor) setFocus(f Field) tea.Cmd {
	e.focus = f
	e.title.Blur()
	e.body.Blur()
	events.Editor.Focus(f.String())
	switch f {
	case FieldTitle:
		return e.title.Focus()
	case FieldBody:
		return e.body.Focus()
	}
	return nil
}

func (e *Editor) addTag(tag note.Tag) {
	if e.callbacks.OnAddTag != nil {
		e.callbacks.OnAddTag(tag)
	}
}

func (e *Editor) navigate() {
	if e.callbacks.Navigate != nil {
		e.callbacks.Navigate()
	}
}
