package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFilterChips draws the category chips with the active one filled.
func (m Model) renderFilterChips(bg BgStyle, styles Styles, labels []string, active int) string {
	activeStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1)

	chips := make([]string, 0, len(labels)+1)
	chips = append(chips, bg.Render("f", styles.AccentText))
	for i, label := range labels {
		if i == active {
			chips = append(chips, activeStyle.Render(label))
			continue
		}
		chips = append(chips, bg.Spaces(1)+bg.Render(label, styles.MutedText)+bg.Spaces(1))
	}
	return strings.Join(chips, bg.Space())
}

// renderListQuery shows the local query input, or a hint when it is empty.
func (m Model) renderListQuery(bg BgStyle, styles Styles, l listState) string {
	if l.searching {
		return l.query.View()
	}
	if q := l.query.Value(); q != "" {
		return bg.Render("/"+truncate(q, 40), styles.AccentText) + bg.Spaces(2) +
			bg.Render("esc clears", styles.FaintText)
	}
	return bg.Render("/", styles.AccentText) + bg.Space() + bg.Render(l.query.Placeholder, styles.FaintText)
}

// renderPager renders "Page X of Y" with the filtered total.
func (m Model) renderPager(bg BgStyle, styles Styles, page, pages, total int, noun string) string {
	parts := []string{
		bg.Render(fmt.Sprintf("Page %d of %d", page, pages), styles.Text),
		bg.Render(fmt.Sprintf("%d %s", total, noun), styles.MutedText),
	}
	if pages > 1 {
		parts = append(parts, bg.Render("[ ] to page", styles.FaintText))
	}
	return bg.Join(parts, "  ·  ")
}
