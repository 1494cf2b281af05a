package selector

import "strings"

// Picker holds the state of a multi-value pick-or-create list: the offerable
// options, the ordered selection, the query, and the cursor and viewport over
// the visible rows.
//
// Rows are the filtered options that are not selected, followed by a single
// create row when the query names something new.
type Picker struct {
	Full           []Option
	Items          []Option
	Query          string
	QueryCursor    int
	Cursor         int
	ViewportOffset int

	selected []Option
	chosen   map[string]struct{}
}

// NewPicker constructs a picker over opts with the given initial selection.
func NewPicker(opts, selected []Option) *Picker {
	p := &Picker{chosen: map[string]struct{}{}}
	p.SetSelected(selected)
	p.SetOptions(opts)
	return p
}

// SetOptions replaces the offerable options. The selection is kept even when
// a selected value is absent from opts.
func (p *Picker) SetOptions(opts []Option) {
	prevOffset := p.ViewportOffset
	p.Full = CloneOptions(opts)
	p.applyFilter()
	if prevOffset < 0 || prevOffset > p.RowCount()-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

// SetSelected replaces the selection, preserving order.
func (p *Picker) SetSelected(opts []Option) {
	p.selected = CloneOptions(opts)
	p.chosen = make(map[string]struct{}, len(opts))
	for _, opt := range opts {
		p.chosen[opt.Value] = struct{}{}
	}
	p.applyFilter()
}

// Selected returns the selection in the order it was made.
func (p *Picker) Selected() []Option {
	return CloneOptions(p.selected)
}

// IsSelected reports whether the given value is selected.
func (p *Picker) IsSelected(value string) bool {
	_, ok := p.chosen[value]
	return ok
}

// Toggle adds opt to the end of the selection, or removes it when its value
// is already selected. The returned slice is the new selection.
func (p *Picker) Toggle(opt Option) []Option {
	if p.IsSelected(opt.Value) {
		next := make([]Option, 0, len(p.selected))
		for _, existing := range p.selected {
			if existing.Value != opt.Value {
				next = append(next, existing)
			}
		}
		p.SetSelected(next)
		return p.Selected()
	}
	p.SetSelected(append(p.Selected(), opt))
	return p.Selected()
}

// RemoveLast drops the most recently selected option. It reports whether
// anything was removed.
func (p *Picker) RemoveLast() bool {
	if len(p.selected) == 0 {
		return false
	}
	p.SetSelected(p.selected[:len(p.selected)-1])
	return true
}

// CreateLabel returns the trimmed query when it names something new, or an
// empty string. A query equal to the label or value of any offered or
// selected option, ignoring case, is not new.
func (p *Picker) CreateLabel() string {
	trimmed := strings.TrimSpace(p.Query)
	if trimmed == "" {
		return ""
	}
	for _, opt := range p.Full {
		if matchesOption(trimmed, opt) {
			return ""
		}
	}
	for _, opt := range p.selected {
		if matchesOption(trimmed, opt) {
			return ""
		}
	}
	return trimmed
}

// RowCount is the number of visible rows including the create row.
func (p *Picker) RowCount() int {
	n := len(p.Items)
	if p.CreateLabel() != "" {
		n++
	}
	return n
}

// Current returns the option under the cursor. create is true when the
// cursor rests on the create row, in which case opt.Label holds the label to
// create. ok is false when there are no rows.
func (p *Picker) Current() (opt Option, create bool, ok bool) {
	if p.Cursor < 0 || p.Cursor >= p.RowCount() {
		return Option{}, false, false
	}
	if p.Cursor < len(p.Items) {
		return p.Items[p.Cursor], false, true
	}
	return Option{Label: p.CreateLabel()}, true, true
}

func (p *Picker) applyFilter() {
	offerable := make([]Option, 0, len(p.Full))
	for _, opt := range p.Full {
		if !p.IsSelected(opt.Value) {
			offerable = append(offerable, opt)
		}
	}
	p.Items = FilterOptions(offerable, p.Query)
	rows := p.RowCount()
	if rows == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= rows {
		p.Cursor = rows - 1
	}
	if p.ViewportOffset > rows-1 {
		p.ViewportOffset = 0
	}
}
