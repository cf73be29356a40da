// Package search routes a query typed in the header to the list view that
// should display it.
package search

import "strings"

// View identifies a top-level screen.
type View int

const (
	ViewDashboard View = iota
	ViewContacts
	ViewCreators
)

// DefaultDestination receives searches issued from views that have no list.
const DefaultDestination = ViewContacts

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewContacts:
		return "Contacts"
	case ViewCreators:
		return "Creators"
	default:
		return "Unknown"
	}
}

// Searchable reports whether the header search is offered on v.
func (v View) Searchable() bool {
	return v == ViewDashboard || v == ViewContacts || v == ViewCreators
}

// Handoff is a navigation request carrying the query to seed.
type Handoff struct {
	To    View
	Query string
}

// Route decides where a header search goes. A blank query produces no
// navigation. Contacts and Creators keep the search; anything else goes to
// DefaultDestination.
func Route(current View, raw string) (Handoff, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return Handoff{}, false
	}
	to := DefaultDestination
	if current == ViewContacts || current == ViewCreators {
		to = current
	}
	return Handoff{To: to, Query: q}, true
}

// Seed is a one-shot initial query. The zero value yields "" once.
type Seed struct {
	query string
	taken bool
}

// NewSeed wraps q. A blank q yields an empty seed.
func NewSeed(q string) *Seed {
	q = strings.TrimSpace(q)
	return &Seed{query: q, taken: q == ""}
}

// Seed returns a seed for the handoff's query.
func (h Handoff) Seed() *Seed { return NewSeed(h.Query) }

// Take returns the query the first time it is called and ("", false) after.
// A nil Seed is empty.
func (s *Seed) Take() (string, bool) {
	if s == nil || s.taken {
		return "", false
	}
	s.taken = true
	return s.query, true
}
