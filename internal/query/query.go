// Package query implements the pure filter and pagination helpers behind the
// contact and creator list views. Nothing here caches: callers recompute on
// every render.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/five82/vuecrm/internal/crm"
)

// Matcher reports whether item matches an already case-folded, non-empty query.
type Matcher[T any] func(item T, folded string) bool

// Filter keeps items whose text matches q and whose category equals category.
// A blank or all-whitespace q matches everything, as does category == all.
// Any other q is matched as typed, surrounding spaces included. Order is
// preserved and the input slice is never modified.
func Filter[T any, C comparable](items []T, q string, category, all C, match Matcher[T], categoryOf func(T) C) []T {
	var folded string
	if strings.TrimSpace(q) != "" {
		folded = Fold(q)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if category != all && categoryOf(item) != category {
			continue
		}
		if folded != "" && !match(item, folded) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	// Casers are stateful and not safe for concurrent use.
	return cases.Fold().String(s)
}

// ContainsFolded reports whether field contains the case-folded query.
func ContainsFolded(field, folded string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(Fold(field), folded)
}

// FilterContacts matches q against name, email and company.
func FilterContacts(contacts []crm.Contact, q string, status crm.ContactStatus) []crm.Contact {
	return Filter(contacts, q, status, crm.StatusAll, matchContact, contactStatus)
}

// FilterCreators matches q against name and handle. The handle matches with
// or without its leading "@".
func FilterCreators(creators []crm.Creator, q string, tier crm.CreatorTier) []crm.Creator {
	return Filter(creators, q, tier, crm.TierAll, matchCreator, creatorTier)
}

func matchContact(c crm.Contact, folded string) bool {
	return ContainsFolded(c.Name, folded) ||
		ContainsFolded(c.Email, folded) ||
		ContainsFolded(c.Company, folded)
}

func matchCreator(c crm.Creator, folded string) bool {
	return ContainsFolded(c.Name, folded) ||
		ContainsFolded(c.Handle, folded) ||
		ContainsFolded(c.DisplayHandle(), folded)
}

func contactStatus(c crm.Contact) crm.ContactStatus { return c.Status }
func creatorTier(c crm.Creator) crm.CreatorTier     { return c.Tier }
