package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Escape      key.Binding

	// View switching
	ViewDashboard key.Binding
	ViewContacts  key.Binding
	ViewCreators  key.Binding

	// Search
	GlobalSearch key.Binding
	LocalSearch  key.Binding

	// List actions
	NextFilter key.Binding
	PrevFilter key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Add        key.Binding

	// Dashboard
	DismissWelcome key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle light/dark"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view / field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view / field"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear query / back"),
		),

		// View switching
		ViewDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Dashboard"),
		),
		ViewContacts: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Contacts"),
		),
		ViewCreators: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Creators"),
		),

		// Search
		GlobalSearch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Search"),
		),
		LocalSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter list"),
		),

		// List actions
		NextFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Previous filter"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "Previous page"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add"),
		),

		DismissWelcome: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Dismiss welcome"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next option"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewDashboard, k.ViewContacts, k.ViewCreators, k.Tab, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.GlobalSearch, k.LocalSearch},
		{k.NextFilter, k.PrevFilter, k.NextPage, k.PrevPage, k.Add},
		{k.DismissWelcome},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
