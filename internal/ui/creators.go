package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/vuecrm/internal/crm"
	"github.com/five82/vuecrm/internal/query"
	"github.com/five82/vuecrm/internal/search"
)

// creatorFilters are the tier chips, "all" first.
var creatorFilters = append([]crm.CreatorTier{crm.TierAll}, crm.CreatorTiers...)

const (
	emptyCreators   = "No creators yet. Add one to get started."
	noMatchCreators = "No creators match your search or filter."
)

type creatorsView struct {
	listState
}

func newCreatorsView(seed *search.Seed) creatorsView {
	return creatorsView{listState: newListState("Search by name or @handle", seed)}
}

func (v creatorsView) tier() crm.CreatorTier {
	return creatorFilters[v.filterIdx]
}

// visible filters and paginates creators for display.
func (v creatorsView) visible(creators []crm.Creator, size int) query.Page[crm.Creator] {
	filtered := query.FilterCreators(creators, v.query.Value(), v.tier())
	return query.Paginate(filtered, size, v.page)
}

func (m Model) creatorsPage() query.Page[crm.Creator] {
	return m.creators.visible(m.snapshot.Creators, m.creatorsPageSize)
}

// handleCreatorsKey processes keyboard input for the creators view.
func (m Model) handleCreatorsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.creators.searching && key.Matches(msg, m.keys.Add) {
		form := newCreatorForm()
		m.modal = form
		return m, form.Init()
	}

	pg := m.creatorsPage()
	info := pageInfo{number: pg.Number, total: pg.TotalPages, rows: len(pg.Items)}
	handled, cmd := m.creators.handleKey(msg, m.keys, len(creatorFilters), info)
	if !handled && key.Matches(msg, m.keys.Escape) {
		m.currentView = search.ViewDashboard
	}
	return m, cmd
}

// addCreator stores a submitted creator and confirms it with a toast.
func (m Model) addCreator(msg creatorSubmittedMsg) (tea.Model, tea.Cmd) {
	c := m.store.AddCreator(msg.input)
	m.snapshot = m.store.Snapshot()
	m.logger.Info("creator added", zap.String("id", c.ID), zap.String("tier", string(c.Tier)))
	cmd := m.pushToast(toastSuccess, "Creator added", c.DisplayHandle()+" joined as "+c.Tier.Label()+".")
	return m, cmd
}

// renderCreators renders the creators list view.
func (m Model) renderCreators(height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	innerWidth := max(m.width-4, 10)

	pg := m.creatorsPage()
	lines := []string{
		m.renderFilterChips(bg, styles, creatorChipLabels(), m.creators.filterIdx),
		m.renderListQuery(bg, styles, m.creators.listState),
		"",
	}

	switch {
	case len(m.snapshot.Creators) == 0:
		lines = append(lines, bg.Render(emptyCreators, styles.MutedText))
	case pg.Total == 0:
		lines = append(lines, bg.Render(noMatchCreators, styles.MutedText))
	default:
		compact := m.width < LayoutCompactWidth
		lines = append(lines, m.creatorHeader(bg, styles, innerWidth, compact))
		sel := m.creators.selectedRow(len(pg.Items))
		for i, c := range pg.Items {
			lines = append(lines, m.creatorRow(c, innerWidth, compact, i == sel))
		}
		lines = append(lines, "", m.renderPager(bg, styles, pg.Number, pg.TotalPages, pg.Total, "creators"))
		if sel >= 0 {
			c := pg.Items[sel]
			lines = append(lines, bg.Render(fmt.Sprintf("#%s · %s subscribers · joined %s", c.ID, humanizeCount(c.Subscribers), crm.FormatDay(c.JoinedAt)), styles.FaintText))
		}
	}

	title := fmt.Sprintf("Creators (%d)", len(m.snapshot.Creators))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, height, true)
}

func creatorChipLabels() []string {
	labels := make([]string, len(creatorFilters))
	for i, t := range creatorFilters {
		labels[i] = t.Label()
	}
	return labels
}

func creatorColumns(width int, compact bool) (name, handle, subs, tier int) {
	tier = 10
	subs = 8
	if compact {
		name = max(width-tier-subs-3, 8)
		return name, 0, subs, tier
	}
	name = max(width*4/10, 10)
	handle = max(width-name-subs-tier-4, 8)
	return
}

func (m Model) creatorHeader(bg BgStyle, styles Styles, width int, compact bool) string {
	nameW, handleW, subsW, tierW := creatorColumns(width, compact)
	cols := []string{cell("Name", nameW)}
	if !compact {
		cols = append(cols, cell("Handle", handleW))
	}
	cols = append(cols, cell("Subs", subsW), cell("Tier", tierW))
	return bg.Render(strings.Join(cols, " "), styles.MutedText.Bold(true))
}

func (m Model) creatorRow(c crm.Creator, width int, compact, selected bool) string {
	styles := m.theme.Styles()
	nameW, handleW, subsW, tierW := creatorColumns(width, compact)

	text := cell(c.Name, nameW)
	if !compact {
		text += " " + cell(c.DisplayHandle(), handleW)
	}
	text += " " + cell(crm.FormatSubscribers(c.Subscribers), subsW)
	badge := styles.BadgeStyle(string(c.Tier)).Render(c.Tier.Label())

	if selected {
		return styles.Selected.Render(text+" ") + badge
	}
	return NewBgStyle(m.theme.FocusBg).Render(text+" ", styles.Text) + padRight(badge, tierW)
}
