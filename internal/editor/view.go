package editor

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/note-editor/internal/theme"
)

var styles = theme.Default()

const (
	queryPrompt      = "» "
	queryPlaceholder = "type to search or create"
)

// Heading is the title line shown above the form.
func (e *Editor) Heading() string {
	if e.mode == ModeEdit {
		return "Edit Note"
	}
	return "New Note"
}

// Help describes the keys available for the focused field.
func (e *Editor) Help() string {
	switch e.focus {
	case FieldTags:
		return "Enter to pick or create · Backspace removes last · Tab next · Ctrl+S save · Esc cancel"
	case FieldBody:
		return "Tab next · Ctrl+S save · Esc cancel"
	default:
		return "Enter/Tab next · Ctrl+S save · Esc cancel"
	}
}

// View renders the form.
func (e *Editor) View() string {
	lines := []string{
		theme.Render(styles.Header, e.Heading()),
		"",
		e.fieldLabel(FieldTitle, "Title", true),
		e.title.View(),
	}
	lines = append(lines, e.fieldErrorLines(FieldTitle)...)
	lines = append(lines, "", e.fieldLabel(FieldTags, "Tags", false), e.chipsView())
	if e.focus == FieldTags {
		lines = append(lines, e.queryView())
		lines = append(lines, e.optionLines()...)
	}
	lines = append(lines, "", e.fieldLabel(FieldBody, "Body", true), e.body.View())
	lines = append(lines, e.fieldErrorLines(FieldBody)...)
	if e.err != "" {
		lines = append(lines, "", theme.Render(styles.Error, e.err))
	}
	lines = append(lines, "", theme.Render(styles.Help, e.Help()))
	return strings.Join(lines, "\n")
}

func (e *Editor) fieldLabel(f Field, text string, required bool) string {
	style := styles.Label
	if e.focus == f {
		style = styles.FocusedLabel
	}
	label := theme.Render(style, text)
	if required {
		label += theme.Render(styles.Required, " *")
	}
	return label
}

func (e *Editor) fieldErrorLines(f Field) []string {
	msg := e.fieldErrs[f]
	if msg == "" {
		return nil
	}
	return []string{theme.Render(styles.Error, fmt.Sprintf("%s is %s", f, msg))}
}

func (e *Editor) chipsView() string {
	labels := e.tags.DisplayLabels()
	if len(labels) == 0 {
		return theme.Render(styles.Placeholder, "(no tags)")
	}
	chips := make([]string, len(labels))
	for i, label := range labels {
		chips[i] = theme.Render(styles.Chip, e.clip(label))
	}
	return strings.Join(chips, " ")
}

func (e *Editor) queryView() string {
	prompt := theme.Render(styles.QueryPrompt, queryPrompt)
	p := e.tags.Picker()
	if p.Query == "" {
		return prompt + theme.Render(styles.Cursor, " ") + theme.Render(styles.Placeholder, queryPlaceholder)
	}
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	before := theme.Render(styles.Query, string(runes[:pos]))
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = theme.Render(styles.Query, string(runes[pos+1:]))
	}
	return prompt + before + theme.Render(styles.Cursor, caret) + after
}

func (e *Editor) optionLines() []string {
	p := e.tags.Picker()
	rows := p.RowCount()
	if rows == 0 {
		if len(p.Full) == 0 {
			return []string{theme.Render(styles.Info, "  (no tags yet, type to create one)")}
		}
		return []string{theme.Render(styles.Info, "  (all tags selected)")}
	}
	maxVisible := e.tags.maxVisible
	start := p.ViewportOffset
	end := start + maxVisible
	if end > rows {
		end = rows
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		var text string
		style := styles.Option
		if i < len(p.Items) {
			text = e.clip(p.Items[i].Label)
		} else {
			text = fmt.Sprintf("Create %q", e.clip(p.CreateLabel()))
			style = styles.CreateOption
		}
		if i == p.Cursor {
			lines = append(lines, theme.Render(styles.ActiveOption, "▌ "+text))
			continue
		}
		lines = append(lines, "  "+theme.Render(style, text))
	}
	return lines
}

func (e *Editor) clip(label string) string {
	limit := e.width - 4
	if limit <= 1 {
		return label
	}
	return truncate.StringWithTail(label, uint(limit), "…")
}
