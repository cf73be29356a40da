// Package crm defines the contact and creator records shown by vuecrm.
package crm

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ContactStatus classifies a contact in the sales pipeline.
type ContactStatus string

const (
	StatusAll       ContactStatus = "all"
	StatusLead      ContactStatus = "lead"
	StatusQualified ContactStatus = "qualified"
	StatusCustomer  ContactStatus = "customer"
	StatusChurned   ContactStatus = "churned"
)

// ContactStatuses lists the concrete statuses in display order.
var ContactStatuses = []ContactStatus{StatusLead, StatusQualified, StatusCustomer, StatusChurned}

var statusLabels = map[ContactStatus]string{
	StatusAll:       "All",
	StatusLead:      "Lead",
	StatusQualified: "Qualified",
	StatusCustomer:  "Customer",
	StatusChurned:   "Churned",
}

// Label returns the human readable name of the status.
func (s ContactStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ParseContactStatus accepts a concrete status or "all".
func ParseContactStatus(value string) (ContactStatus, error) {
	s := ContactStatus(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := statusLabels[s]; !ok {
		return "", fmt.Errorf("unknown contact status %q", value)
	}
	return s, nil
}

// CreatorTier classifies a creator's plan.
type CreatorTier string

const (
	TierAll      CreatorTier = "all"
	TierStandard CreatorTier = "standard"
	TierPremium  CreatorTier = "premium"
	TierVIP      CreatorTier = "vip"
)

// CreatorTiers lists the concrete tiers in display order.
var CreatorTiers = []CreatorTier{TierStandard, TierPremium, TierVIP}

var tierLabels = map[CreatorTier]string{
	TierAll:      "All tiers",
	TierStandard: "Standard",
	TierPremium:  "Premium",
	TierVIP:      "VIP",
}

// Label returns the human readable name of the tier.
func (t CreatorTier) Label() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return string(t)
}

// ParseCreatorTier accepts a concrete tier or "all".
func ParseCreatorTier(value string) (CreatorTier, error) {
	t := CreatorTier(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := tierLabels[t]; !ok {
		return "", fmt.Errorf("unknown creator tier %q", value)
	}
	return t, nil
}

// Contact is a person tracked in the pipeline. An empty Company means none was given.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Status    ContactStatus
	CreatedAt time.Time
}

// Creator is a platform creator. Handle is stored without the leading "@".
type Creator struct {
	ID          string
	Name        string
	Handle      string
	Avatar      string
	Tier        CreatorTier
	Subscribers int
	JoinedAt    time.Time
}

// DisplayHandle returns the handle as shown to users.
func (c Creator) DisplayHandle() string {
	if c.Handle == "" {
		return ""
	}
	return "@" + c.Handle
}

// NewContact carries the caller-supplied fields of a contact to add.
type NewContact struct {
	Name    string
	Email   string
	Company string
	Status  ContactStatus
}

// NewCreator carries the caller-supplied fields of a creator to add.
type NewCreator struct {
	Name        string
	Handle      string
	Tier        CreatorTier
	Subscribers int
	Avatar      string
}

// NormalizeHandle strips surrounding space and a leading "@".
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// FormatSubscribers abbreviates subscriber counts: 125000 -> "125.0K".
func FormatSubscribers(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}
