package query

import (
	"cmp"
	"math"
	"slices"

	"github.com/five82/vuecrm/internal/crm"
)

// Stats are the dashboard totals.
type Stats struct {
	Contacts  int
	Creators  int
	Customers int
	Leads     int
	// Pipeline is the share of contacts that are customers, as a rounded
	// percentage. Zero when there are no contacts.
	Pipeline int
}

// Summarize computes dashboard totals.
func Summarize(contacts []crm.Contact, creators []crm.Creator) Stats {
	st := Stats{Contacts: len(contacts), Creators: len(creators)}
	for _, c := range contacts {
		switch c.Status {
		case crm.StatusCustomer:
			st.Customers++
		case crm.StatusLead:
			st.Leads++
		}
	}
	if st.Contacts > 0 {
		st.Pipeline = int(math.Round(float64(st.Customers) / float64(st.Contacts) * 100))
	}
	return st
}

// MostRecent returns up to n contacts ordered by CreatedAt, newest first.
// Contacts created on the same day keep the later-inserted one first.
func MostRecent(contacts []crm.Contact, n int) []crm.Contact {
	out := slices.Clone(contacts)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b crm.Contact) int {
		return cmp.Compare(b.CreatedAt.Unix(), a.CreatedAt.Unix())
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
