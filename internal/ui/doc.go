// Package ui contains the Bubble Tea program that hosts the note editor.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, the editor route, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the editor is open, Update forwards every message except window
//     resizes to it. When the editor asks to navigate back (after a submit
//     or a cancel) the host closes it and returns to the notes list.
//   - Otherwise the message is routed through a typed handler registry so
//     each tea.Msg is handled by a focused function (for example, list
//     navigation for key presses).
//
// State ownership:
//   - Notes live in a note.Store and tags in a note.Catalog. Both are owned
//     by the host; the editor only sees them through its props and
//     callbacks.
//   - The notes list reuses selector.Picker for its cursor and viewport,
//     with one option per note whose value is the note id.
//
// Collaborators wired into the editor:
//   - OnSubmit creates or updates the note in the store.
//   - OnAddTag folds a freshly created tag into the catalog and pushes the
//     updated catalog back into the open editor.
//   - Navigate marks the editor route as finished; the host closes it once
//     the editor's Update returns.
package ui
