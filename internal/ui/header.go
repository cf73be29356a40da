package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vuecrm/internal/appearance"
	"github.com/five82/vuecrm/internal/search"
)

var navViews = []search.View{search.ViewDashboard, search.ViewContacts, search.ViewCreators}

// renderHeader renders the logo, view tabs, global search and theme mode.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	activeTab := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1)

	parts := []string{bg.Render("vuecrm", styles.Logo)}

	tabs := make([]string, 0, len(navViews))
	for i, v := range navViews {
		label := string(rune('1'+i)) + " " + v.String()
		if v == m.currentView {
			tabs = append(tabs, activeTab.Render(label))
			continue
		}
		tabs = append(tabs, bg.Space()+bg.Render(label, styles.MutedText)+bg.Space())
	}
	parts = append(parts, strings.Join(tabs, bg.Space()))

	switch {
	case m.globalSearching:
		parts = append(parts, m.globalSearch.View())
	case m.currentView.Searchable():
		parts = append(parts, bg.Render("s", styles.AccentText)+bg.Space()+bg.Render("Search", styles.FaintText))
	}

	left := strings.Join(parts, sep)
	right := m.renderModeIndicator(styles, bg)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		return styles.Header.Width(m.width).Render(left)
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

func (m Model) renderModeIndicator(styles Styles, bg BgStyle) string {
	icon := "☾"
	if m.mode == appearance.Light {
		icon = "☀"
	}
	return bg.Render(icon, styles.WarningText) + bg.Space() + bg.Render(m.mode.String(), styles.MutedText)
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.globalSearching:
		commands = []cmd{
			{"Enter", "Go"},
			{"Esc", "Cancel"},
		}
	case m.currentView == search.ViewContacts && m.contacts.searching,
		m.currentView == search.ViewCreators && m.creators.searching:
		commands = []cmd{
			{"Enter", "Done"},
			{"Esc", "Done"},
		}
	case m.currentView == search.ViewContacts:
		commands = []cmd{
			{"/", "Filter"},
			{"f", "Status: " + m.contacts.status().Label()},
			{"[ ]", "Page"},
			{"j/k", "Navigate"},
			{"a", "Add contact"},
			{"s", "Search"},
			{"?", "More"},
		}
	case m.currentView == search.ViewCreators:
		commands = []cmd{
			{"/", "Filter"},
			{"f", "Tier: " + m.creators.tier().Label()},
			{"[ ]", "Page"},
			{"j/k", "Navigate"},
			{"a", "Add creator"},
			{"s", "Search"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"2", "Contacts"},
			{"3", "Creators"},
			{"s", "Search"},
		}
		if !m.welcomeDismissed {
			commands = append(commands, cmd{"x", "Dismiss welcome"})
		}
		commands = append(commands, cmd{"?", "More"})
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
