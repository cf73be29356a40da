package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/vuecrm/internal/appearance"
	"github.com/five82/vuecrm/internal/search"
	"github.com/five82/vuecrm/internal/state"
)

// Options configures the UI.
type Options struct {
	Context          context.Context
	Store            *state.Store
	Resolver         *appearance.Resolver // nil keeps a fixed dark theme
	Logger           *zap.Logger
	ContactsPageSize int
	CreatorsPageSize int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx              context.Context
	store            *state.Store
	resolver         *appearance.Resolver
	logger           *zap.Logger
	contactsPageSize int
	creatorsPageSize int

	// UI state
	theme       Theme
	mode        appearance.Mode
	keys        keyMap
	currentView search.View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot

	// List views
	contacts contactsView
	creators creatorsView

	// Header search
	globalSearch    textinput.Model
	globalSearching bool

	// Overlays
	modal            Modal
	toasts           []toast
	showHelp         bool
	welcomeDismissed bool

	markdown *markdownRenderer
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	contactsSize := opts.ContactsPageSize
	if contactsSize <= 0 {
		contactsSize = DefaultContactsPageSize
	}
	creatorsSize := opts.CreatorsPageSize
	if creatorsSize <= 0 {
		creatorsSize = DefaultCreatorsPageSize
	}

	mode := appearance.Dark
	if opts.Resolver != nil {
		mode = opts.Resolver.Mode()
	}

	gs := textinput.New()
	gs.Placeholder = "Search contacts and creators..."
	gs.Prompt = "⌕ "
	gs.CharLimit = 100
	gs.Width = 32

	return Model{
		ctx:              ctx,
		store:            store,
		resolver:         opts.Resolver,
		logger:           logger,
		contactsPageSize: contactsSize,
		creatorsPageSize: creatorsSize,
		theme:            ThemeFor(mode),
		mode:             mode,
		keys:             DefaultKeyMap(),
		currentView:      search.ViewDashboard,
		snapshot:         store.Snapshot(),
		contacts:         newContactsView(nil),
		creators:         newCreatorsView(nil),
		globalSearch:     gs,
		markdown:         newMarkdownRenderer(logger),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return fetchSnapshotCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		return m, nil

	case themeChangedMsg:
		if m.resolver != nil {
			m.applyMode(m.resolver.Mode())
		}
		return m, nil

	case contactSubmittedMsg:
		return m.addContact(msg)

	case creatorSubmittedMsg:
		return m.addCreator(msg)

	case toastExpiredMsg:
		m.dismissToast(msg.id)
		return m, nil
	}

	// Cursor blink and other input messages go to whatever has focus.
	return m.forwardToFocused(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.globalSearching {
		return m.handleGlobalSearchKey(msg)
	}

	// A focused list query swallows everything but ctrl+c.
	if msg.String() != "ctrl+c" {
		switch {
		case m.currentView == search.ViewContacts && m.contacts.searching:
			return m.handleContactsKey(msg)
		case m.currentView == search.ViewCreators && m.creators.searching:
			return m.handleCreatorsKey(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		cmd := m.toggleTheme()
		return m, cmd

	case key.Matches(msg, m.keys.ViewDashboard):
		m.currentView = search.ViewDashboard
		return m, nil

	case key.Matches(msg, m.keys.ViewContacts):
		m.currentView = search.ViewContacts
		return m, nil

	case key.Matches(msg, m.keys.ViewCreators):
		m.currentView = search.ViewCreators
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = (m.currentView + 1) % viewCount
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.currentView = (m.currentView + viewCount - 1) % viewCount
		return m, nil

	case key.Matches(msg, m.keys.GlobalSearch):
		if !m.currentView.Searchable() {
			return m, nil
		}
		m.globalSearching = true
		m.globalSearch.SetValue("")
		cmd := m.globalSearch.Focus()
		return m, cmd
	}

	switch m.currentView {
	case search.ViewDashboard:
		return m.handleDashboardKey(msg)
	case search.ViewContacts:
		return m.handleContactsKey(msg)
	case search.ViewCreators:
		return m.handleCreatorsKey(msg)
	}

	return m, nil
}

const viewCount = 3

// handleGlobalSearchKey drives the header search input.
func (m Model) handleGlobalSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeGlobalSearch()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		raw := m.globalSearch.Value()
		m.closeGlobalSearch()
		handoff, ok := search.Route(m.currentView, raw)
		if !ok {
			return m, nil
		}
		m.applyHandoff(handoff)
		return m, nil
	}

	var cmd tea.Cmd
	m.globalSearch, cmd = m.globalSearch.Update(msg)
	return m, cmd
}

func (m *Model) closeGlobalSearch() {
	m.globalSearching = false
	m.globalSearch.Blur()
	m.globalSearch.SetValue("")
}

// applyHandoff navigates to the destination list, rebuilt around the query.
func (m *Model) applyHandoff(h search.Handoff) {
	m.logger.Debug("search handoff",
		zap.String("to", h.To.String()),
		zap.String("query", h.Query),
	)
	switch h.To {
	case search.ViewCreators:
		m.creators = newCreatorsView(h.Seed())
	default:
		m.contacts = newContactsView(h.Seed())
	}
	m.currentView = h.To
}

// forwardToFocused routes non-key messages such as cursor blinks.
func (m Model) forwardToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.modal != nil:
		var closed bool
		var modal Modal
		modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
	case m.globalSearching:
		m.globalSearch, cmd = m.globalSearch.Update(msg)
	case m.currentView == search.ViewContacts && m.contacts.searching:
		m.contacts.query, cmd = m.contacts.query.Update(msg)
	case m.currentView == search.ViewCreators && m.creators.searching:
		m.creators.query, cmd = m.creators.query.Update(msg)
	}
	return m, cmd
}

// toggleTheme flips the mode immediately and persists it through the resolver.
func (m *Model) toggleTheme() tea.Cmd {
	if m.resolver == nil {
		m.applyMode(m.mode.Opposite())
		return nil
	}
	mode, err := m.resolver.Toggle()
	m.applyMode(mode)
	if err != nil {
		m.logger.Warn("theme not saved", zap.Error(err))
		return m.pushToast(toastError, "Theme not saved", "The "+mode.String()+" theme applies to this session only.")
	}
	return nil
}

func (m *Model) applyMode(mode appearance.Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.theme = ThemeFor(mode)
}

// renderMain renders header, command bar, content and toasts.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	toasts := m.renderToasts()
	contentHeight := m.height - 2
	if toasts != "" {
		contentHeight -= strings.Count(toasts, "\n") + 1
	}
	b.WriteString(m.renderContent(max(contentHeight, 3)))

	if toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent(height int) string {
	switch m.currentView {
	case search.ViewDashboard:
		return m.renderDashboard(height)
	case search.ViewContacts:
		return m.renderContacts(height)
	case search.ViewCreators:
		return m.renderCreators(height)
	default:
		return ""
	}
}

// Messages

type storeChangedMsg struct{}

type themeChangedMsg struct{}

// Commands

func fetchSnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		return storeChangedMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	// Send blocks until the program reads it, and callbacks may fire from
	// inside Update, so deliver from a fresh goroutine.
	unsubscribe := m.store.Subscribe(func(state.Snapshot) {
		go p.Send(storeChangedMsg{})
	})
	defer unsubscribe()

	if m.resolver != nil {
		cancel := m.resolver.OnChange(func(appearance.Mode) {
			go p.Send(themeChangedMsg{})
		})
		defer cancel()
	}

	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Interrupted by signal
		return nil
	}
	return err
}
