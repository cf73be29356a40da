package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vuecrm/internal/search"
)

// listState is the state shared by the contacts and creators views: a local
// query, a category filter index, the requested page and the selected row.
type listState struct {
	query     textinput.Model
	searching bool
	filterIdx int
	page      int // requested; clamped when rendered
	selected  int // row within the current page
}

// newListState builds a fresh list. A seed, when present, becomes the
// initial query and is consumed.
func newListState(placeholder string, seed *search.Seed) listState {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 30
	if q, ok := seed.Take(); ok {
		ti.SetValue(q)
	}
	return listState{query: ti, page: 1}
}

// pageInfo describes the page currently on screen.
type pageInfo struct {
	number int
	total  int
	rows   int
}

// handleKey applies list keys. filters is the number of filter options. It
// reports whether the key was consumed.
func (l *listState) handleKey(msg tea.KeyMsg, keys keyMap, filters int, pg pageInfo) (bool, tea.Cmd) {
	if l.searching {
		switch {
		case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Confirm):
			l.searching = false
			l.query.Blur()
			return true, nil
		}
		before := l.query.Value()
		var cmd tea.Cmd
		l.query, cmd = l.query.Update(msg)
		if l.query.Value() != before {
			l.selected = 0
		}
		return true, cmd
	}

	switch {
	case key.Matches(msg, keys.LocalSearch):
		l.searching = true
		return true, l.query.Focus()

	case key.Matches(msg, keys.Escape):
		if l.query.Value() == "" {
			return false, nil
		}
		l.query.SetValue("")
		l.selected = 0
		return true, nil

	case key.Matches(msg, keys.NextFilter):
		l.setFilter((l.filterIdx + 1) % filters)
		return true, nil

	case key.Matches(msg, keys.PrevFilter):
		l.setFilter((l.filterIdx - 1 + filters) % filters)
		return true, nil

	case key.Matches(msg, keys.NextPage):
		if pg.number < pg.total {
			l.page = pg.number + 1
			l.selected = 0
		}
		return true, nil

	case key.Matches(msg, keys.PrevPage):
		if pg.number > 1 {
			l.page = pg.number - 1
			l.selected = 0
		}
		return true, nil

	case key.Matches(msg, keys.Down):
		if l.selected < pg.rows-1 {
			l.selected++
		}
		return true, nil

	case key.Matches(msg, keys.Up):
		if l.selected > 0 {
			l.selected--
		}
		return true, nil

	case key.Matches(msg, keys.Top):
		l.selected = 0
		return true, nil

	case key.Matches(msg, keys.Bottom):
		l.selected = max(pg.rows-1, 0)
		return true, nil
	}
	return false, nil
}

// setFilter switches category and, like clicking a filter chip, returns to
// the first page.
func (l *listState) setFilter(idx int) {
	l.filterIdx = idx
	l.page = 1
	l.selected = 0
}

// selectedRow clamps the selection to the rows on screen.
func (l listState) selectedRow(rows int) int {
	if rows == 0 {
		return -1
	}
	return min(max(l.selected, 0), rows-1)
}
