package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/vuecrm/internal/crm"
	"github.com/five82/vuecrm/internal/query"
)

const welcomeMarkdown = `## Welcome to vuecrm

Track **contacts** through your sales pipeline and manage the **creators** on your platform.

- Press **2** for contacts or **3** for creators, then **a** to add one.
- Press **s** to search; results open in the matching list.
- Press **T** to switch between light and dark.

Press **x** to dismiss this notice.`

// handleDashboardKey processes keyboard input for the dashboard.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.DismissWelcome) && !m.welcomeDismissed {
		m.welcomeDismissed = true
		m.logger.Debug("welcome dismissed")
	}
	return m, nil
}

// renderDashboard renders totals, recent contacts and the welcome notice.
func (m Model) renderDashboard(height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	innerWidth := max(m.width-4, 10)

	stats := query.Summarize(m.snapshot.Contacts, m.snapshot.Creators)

	var sections []string
	sections = append(sections, m.renderStatCards(stats, innerWidth), "")

	sections = append(sections, bg.Render("Recent contacts", styles.Text.Bold(true)))
	recent := query.MostRecent(m.snapshot.Contacts, RecentContactsLimit)
	if len(recent) == 0 {
		sections = append(sections, bg.Render(emptyContacts, styles.MutedText))
	}
	for _, c := range recent {
		sections = append(sections, m.recentContactLine(c, bg, styles, innerWidth))
	}

	if !m.welcomeDismissed {
		width := min(innerWidth, LayoutWelcomeMaxWidth)
		sections = append(sections, "", m.markdown.Render(welcomeMarkdown, m.mode, width))
	}

	return m.renderTitledBox("Dashboard", strings.Join(sections, "\n"), m.width, height, true)
}

// renderStatCards lays the totals out as bordered cards, stacking them in
// two rows on narrow terminals.
func (m Model) renderStatCards(stats query.Stats, width int) string {
	type card struct {
		label string
		value string
		color string
	}
	cards := []card{
		{"Contacts", humanizeCount(stats.Contacts), m.theme.Accent},
		{"Creators", humanizeCount(stats.Creators), m.theme.Info},
		{"Customers", humanizeCount(stats.Customers), m.theme.Success},
		{"Leads", humanizeCount(stats.Leads), m.theme.Warning},
		{"Pipeline", fmt.Sprintf("%d%%", stats.Pipeline), m.theme.Accent},
	}

	perRow := len(cards)
	if width < LayoutCompactWidth {
		perRow = 3
	}
	cardWidth := max(width/perRow-2, 10)

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Render(c.label) + "\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Bold(true).Render(c.value)
		rendered = append(rendered, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Border)).
			Padding(0, 1).
			Width(cardWidth).
			Render(body))
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) recentContactLine(c crm.Contact, bg BgStyle, styles Styles, width int) string {
	nameW := max(width/3, 12)
	line := bg.Render(cell(c.Name, nameW), styles.Text) + bg.Space()
	if width >= LayoutCompactWidth {
		line += bg.Render(cell(orDash(c.Company), nameW), styles.MutedText) + bg.Space()
	}
	line += styles.BadgeStyle(string(c.Status)).Render(c.Status.Label()) + bg.Spaces(2) +
		bg.Render(crm.FormatDay(c.CreatedAt), styles.FaintText)
	return line
}
