// Package ui is the Bubble Tea front end of vuecrm.
//
// The root Model owns three views (dashboard, contacts, creators), a header
// with the global search input, a command bar of key hints, modal forms for
// adding records, transient toasts and a help overlay.
//
// Data flows one way. The state.Store is the single source of records; the
// views never cache filtered results and recompute them with the query
// package on every render. Store and theme changes reach the program as
// storeChangedMsg and themeChangedMsg, sent by subscriptions that Run sets
// up, and the model pulls fresh state when it handles them.
//
// Global search hands its query to a list through a search.Seed: the
// destination view is rebuilt with the seed and consumes it once, after
// which the list's own query is edited independently.
//
// # Key Bindings
//
//   - 1/2/3 or Tab: Dashboard, Contacts, Creators
//   - s: Global search (Enter to go, Esc to cancel)
//   - /: Filter the current list
//   - f/F: Next/previous status or tier filter
//   - [ and ]: Previous/next page
//   - j/k, g/G: Move selection
//   - a: Add a contact or creator
//   - x: Dismiss the dashboard welcome notice
//   - T: Toggle light/dark
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
