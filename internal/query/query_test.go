package query

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vuecrm/internal/crm"
)

func seed(t *testing.T) crm.Seed {
	t.Helper()
	s, err := crm.DefaultSeed()
	require.NoError(t, err)
	return s
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	return out
}

func contactName(c crm.Contact) string { return c.Name }
func creatorName(c crm.Creator) string { return c.Name }

func TestFilterContacts(t *testing.T) {
	contacts := seed(t).Contacts

	tests := []struct {
		name   string
		query  string
		status crm.ContactStatus
		want   []string
	}{
		{"name case-insensitive", "jordan", crm.StatusAll, []string{"Jordan Lee"}},
		{"status only", "", crm.StatusCustomer, []string{"Jordan Lee", "Morgan Blake"}},
		{"whitespace query matches all", "   ", crm.StatusAll, names(contacts, contactName)},
		{"inner space matches", "n l", crm.StatusAll, []string{"Jordan Lee"}},
		{"trailing space is literal", "lee ", crm.StatusAll, []string{}},
		{"leading space is literal", " jordan", crm.StatusAll, []string{}},
		{"company", "agency", crm.StatusAll, []string{"Sam Rivera"}},
		{"email", "ALEX.CHEN@", crm.StatusAll, []string{"Alex Chen"}},
		{"query and status", "jordan", crm.StatusLead, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FilterContacts(contacts, tt.query, tt.status), contactName)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterContacts(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.status, diff)
			}
		})
	}
}

func TestFilterContacts_MissingCompanyNeverMatches(t *testing.T) {
	contacts := []crm.Contact{{ID: "1", Name: "A", Email: "a@x.io", Status: crm.StatusLead}}
	assert.Empty(t, FilterContacts(contacts, "studio", crm.StatusAll))
}

func TestFilterCreators(t *testing.T) {
	creators := seed(t).Creators

	got := names(FilterCreators(creators, "@RILEY", crm.TierAll), creatorName)
	assert.Equal(t, []string{"Riley Fox"}, got)

	got = names(FilterCreators(creators, "", crm.TierPremium), creatorName)
	assert.Equal(t, []string{"Riley Fox", "Skyler Vale"}, got)

	got = names(FilterCreators(creators, "quinnsterling", crm.TierAll), creatorName)
	assert.Equal(t, []string{"Quinn Sterling"}, got)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	contacts := seed(t).Contacts
	before := append([]crm.Contact(nil), contacts...)

	_ = FilterContacts(contacts, "lee", crm.StatusCustomer)
	assert.Equal(t, before, contacts)
}

func TestFilter_UnicodeFolding(t *testing.T) {
	contacts := []crm.Contact{{ID: "1", Name: "ÉLODIE DURAND", Status: crm.StatusLead}}
	assert.Len(t, FilterContacts(contacts, "élodie", crm.StatusAll), 1)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		size      int
		requested int
		wantItems []int
		wantPage  int
		wantPages int
	}{
		{"first page", 2, 1, []int{1, 2}, 1, 3},
		{"last page clamped", 2, 5, []int{5}, 3, 3},
		{"zero page clamped", 2, 0, []int{1, 2}, 1, 3},
		{"exact fit", 5, 1, []int{1, 2, 3, 4, 5}, 1, 1},
		{"non-positive size", 0, 2, []int{2}, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.size, tt.requested)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, len(items), p.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]crm.Contact{}, 8, 3)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPaginate_AppendDoesNotLeak(t *testing.T) {
	items := []int{1, 2, 3, 4}
	p := Paginate(items, 2, 1)
	_ = append(p.Items, 99)
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}

func TestSummarize(t *testing.T) {
	s := seed(t)
	st := Summarize(s.Contacts, s.Creators)
	assert.Equal(t, Stats{Contacts: 5, Creators: 5, Customers: 2, Leads: 2, Pipeline: 40}, st)

	assert.Equal(t, 0, Summarize(nil, nil).Pipeline)
}

func TestMostRecent(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 2, d, 0, 0, 0, 0, time.UTC) }
	contacts := []crm.Contact{
		{ID: "1", Name: "a", CreatedAt: day(3)},
		{ID: "2", Name: "b", CreatedAt: day(5)},
		{ID: "3", Name: "c", CreatedAt: day(5)},
		{ID: "4", Name: "d", CreatedAt: day(1)},
	}
	got := names(MostRecent(contacts, 3), contactName)
	assert.Equal(t, []string{"c", "b", "a"}, got)
	assert.Equal(t, "a", contacts[0].Name)
}
