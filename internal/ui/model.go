package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/editor"
	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/selector"
	"github.com/atomicstack/note-editor/internal/theme"
)

type Mode int

const (
	ModeList Mode = iota
	ModeEditor
)

const listTitle = "Notes"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// openEditorMsg asks the host to open the editor. An empty id opens it in
// create mode.
type openEditorMsg struct {
	id string
}

// Options configure a Model.
type Options struct {
	Catalog *note.Catalog
	Store   *note.Store
	// NewID generates tag ids for tags created in the editor.
	NewID       note.IDFunc
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	StartEditor bool
}

// Model implements the Bubble Tea model for the notes list and the editor.
type Model struct {
	list       *selector.Picker
	notes      []note.Note
	catalog    *note.Catalog
	store      *note.Store
	newID      note.IDFunc
	editor     *editor.Editor
	editingID  string
	routeBack  bool
	lastSaved  string
	mode       Mode
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	openOnStart bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the notes list.
func NewModel(opts Options) *Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = note.NewCatalog()
	}
	store := opts.Store
	if store == nil {
		store = note.NewStore(nil)
	}
	m := &Model{
		list:        selector.NewPicker(nil, nil),
		catalog:     catalog,
		store:       store,
		newID:       opts.NewID,
		mode:        ModeList,
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		openOnStart: opts.StartEditor,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.refreshNotes()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if !m.openOnStart {
		return nil
	}
	return func() tea.Msg { return openEditorMsg{} }
}

// Mode reports which route is showing.
func (m *Model) Mode() Mode { return m.mode }

// Editor returns the open editor, or nil on the notes list.
func (m *Model) Editor() *editor.Editor { return m.editor }

// Notes returns the notes in list order.
func (m *Model) Notes() []note.Note { return m.notes }

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeEditor:
		return m.handleEditorForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(openEditorMsg{}):     m.handleOpenEditorMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
