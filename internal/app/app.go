package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/note-editor/internal/note"
	"github.com/atomicstack/note-editor/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	Tags       []string
	StartNew   bool
	ShowFooter bool
	Verbose    bool
}

// NewModel builds the host model with a catalog seeded from cfg.Tags and an
// empty note store.
func NewModel(cfg Config) *ui.Model {
	return ui.NewModel(ui.Options{
		Catalog:     note.SeedCatalog(cfg.Tags, note.NewID),
		Store:       note.NewStore(note.NewID),
		NewID:       note.NewID,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Verbose:     cfg.Verbose,
		StartEditor: cfg.StartNew,
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
