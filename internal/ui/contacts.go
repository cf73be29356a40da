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

// contactFilters are the status chips, "all" first.
var contactFilters = append([]crm.ContactStatus{crm.StatusAll}, crm.ContactStatuses...)

const (
	emptyContacts   = "No contacts yet. Add one to get started."
	noMatchContacts = "No contacts match your search or filter."
)

type contactsView struct {
	listState
}

func newContactsView(seed *search.Seed) contactsView {
	return contactsView{listState: newListState("Search by name, email, company", seed)}
}

func (v contactsView) status() crm.ContactStatus {
	return contactFilters[v.filterIdx]
}

// visible filters and paginates contacts for display.
func (v contactsView) visible(contacts []crm.Contact, size int) query.Page[crm.Contact] {
	filtered := query.FilterContacts(contacts, v.query.Value(), v.status())
	return query.Paginate(filtered, size, v.page)
}

func (m Model) contactsPage() query.Page[crm.Contact] {
	return m.contacts.visible(m.snapshot.Contacts, m.contactsPageSize)
}

// handleContactsKey processes keyboard input for the contacts view.
func (m Model) handleContactsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.contacts.searching && key.Matches(msg, m.keys.Add) {
		form := newContactForm()
		m.modal = form
		return m, form.Init()
	}

	pg := m.contactsPage()
	info := pageInfo{number: pg.Number, total: pg.TotalPages, rows: len(pg.Items)}
	handled, cmd := m.contacts.handleKey(msg, m.keys, len(contactFilters), info)
	if !handled && key.Matches(msg, m.keys.Escape) {
		m.currentView = search.ViewDashboard
	}
	return m, cmd
}

// addContact stores a submitted contact and confirms it with a toast.
func (m Model) addContact(msg contactSubmittedMsg) (tea.Model, tea.Cmd) {
	c := m.store.AddContact(msg.input)
	m.snapshot = m.store.Snapshot()
	m.logger.Info("contact added", zap.String("id", c.ID), zap.String("status", string(c.Status)))
	cmd := m.pushToast(toastSuccess, "Contact added", c.Name+" was added to your contacts.")
	return m, cmd
}

// renderContacts renders the contacts list view.
func (m Model) renderContacts(height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	innerWidth := max(m.width-4, 10)

	pg := m.contactsPage()
	lines := []string{
		m.renderFilterChips(bg, styles, contactChipLabels(), m.contacts.filterIdx),
		m.renderListQuery(bg, styles, m.contacts.listState),
		"",
	}

	switch {
	case len(m.snapshot.Contacts) == 0:
		lines = append(lines, bg.Render(emptyContacts, styles.MutedText))
	case pg.Total == 0:
		lines = append(lines, bg.Render(noMatchContacts, styles.MutedText))
	default:
		compact := m.width < LayoutCompactWidth
		lines = append(lines, m.contactHeader(bg, styles, innerWidth, compact))
		sel := m.contacts.selectedRow(len(pg.Items))
		for i, c := range pg.Items {
			lines = append(lines, m.contactRow(c, innerWidth, compact, i == sel))
		}
		lines = append(lines, "", m.renderPager(bg, styles, pg.Number, pg.TotalPages, pg.Total, "contacts"))
		if sel >= 0 {
			c := pg.Items[sel]
			lines = append(lines, bg.Render(fmt.Sprintf("#%s · %s · added %s", c.ID, c.Email, crm.FormatDay(c.CreatedAt)), styles.FaintText))
		}
	}

	title := fmt.Sprintf("Contacts (%d)", len(m.snapshot.Contacts))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, height, true)
}

func contactChipLabels() []string {
	labels := make([]string, len(contactFilters))
	for i, s := range contactFilters {
		labels[i] = s.Label()
	}
	return labels
}

func contactColumns(width int, compact bool) (name, email, company, status int) {
	status = 11
	if compact {
		name = max(width-status-2, 8)
		return name, 0, 0, status
	}
	name = max(width*3/10, 10)
	email = max(width*4/10, 12)
	company = max(width-name-email-status-4, 6)
	return
}

func (m Model) contactHeader(bg BgStyle, styles Styles, width int, compact bool) string {
	nameW, emailW, companyW, statusW := contactColumns(width, compact)
	cols := []string{cell("Name", nameW)}
	if !compact {
		cols = append(cols, cell("Email", emailW), cell("Company", companyW))
	}
	cols = append(cols, cell("Status", statusW))
	return bg.Render(strings.Join(cols, " "), styles.MutedText.Bold(true))
}

func (m Model) contactRow(c crm.Contact, width int, compact, selected bool) string {
	styles := m.theme.Styles()
	nameW, emailW, companyW, statusW := contactColumns(width, compact)

	text := cell(c.Name, nameW)
	if !compact {
		text += " " + cell(c.Email, emailW) + " " + cell(orDash(c.Company), companyW)
	}
	badge := styles.BadgeStyle(string(c.Status)).Render(c.Status.Label())

	if selected {
		return styles.Selected.Render(text+" ") + badge
	}
	return NewBgStyle(m.theme.FocusBg).Render(text+" ", styles.Text) + padRight(badge, statusW)
}
