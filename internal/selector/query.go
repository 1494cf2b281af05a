package selector

import (
	"strings"
	"unicode"
)

// SetQuery updates the query text and its cursor, refilters, and moves the
// row cursor to the best match.
func (p *Picker) SetQuery(query string, cursor int) {
	p.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.QueryCursor = cursor
	p.Cursor = 0
	p.applyFilter()
	if strings.TrimSpace(query) != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, query); idx >= 0 {
			p.Cursor = idx
		}
	}
}

// ClearQuery empties the query. It reports whether anything changed.
func (p *Picker) ClearQuery() bool {
	if p.Query == "" {
		return false
	}
	p.SetQuery("", 0)
	return true
}

// QueryCursorPos returns the rune offset of the query cursor.
func (p *Picker) QueryCursorPos() int {
	runes := []rune(p.Query)
	if p.QueryCursor < 0 {
		return 0
	}
	if p.QueryCursor > len(runes) {
		return len(runes)
	}
	return p.QueryCursor
}

// InsertQueryText inserts text at the query cursor.
func (p *Picker) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the query cursor.
func (p *Picker) DeleteQueryRuneBackward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the query cursor.
func (p *Picker) DeleteQueryWordBackward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	p.SetQuery(string(updated), i)
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune left.
func (p *Picker) MoveQueryCursorRuneBackward() bool {
	if p.QueryCursorPos() == 0 {
		return false
	}
	p.QueryCursor = p.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune right.
func (p *Picker) MoveQueryCursorRuneForward() bool {
	pos := p.QueryCursorPos()
	if pos >= len([]rune(p.Query)) {
		return false
	}
	p.QueryCursor = pos + 1
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (p *Picker) MoveQueryCursorStart() bool {
	if p.QueryCursorPos() == 0 {
		return false
	}
	p.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (p *Picker) MoveQueryCursorEnd() bool {
	end := len([]rune(p.Query))
	if p.QueryCursorPos() == end {
		return false
	}
	p.QueryCursor = end
	return true
}
