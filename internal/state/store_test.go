package state

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vuecrm/internal/crm"
)

var fixedNow = time.Date(2025, 3, 14, 22, 30, 0, 0, time.FixedZone("EST", -5*3600))

func fixedClock() func() time.Time {
	return func() time.Time { return fixedNow }
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	seed, err := crm.DefaultSeed()
	require.NoError(t, err)
	return New(seed, WithClock(fixedClock()))
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		ids    []string
		want   string
	}{
		{"empty contacts", ContactIDPrefix, nil, "1"},
		{"empty creators", CreatorIDPrefix, nil, "c1"},
		{"gap", ContactIDPrefix, []string{"1", "2", "5"}, "6"},
		{"two digit", CreatorIDPrefix, []string{"c1", "c9"}, "c10"},
		{"malformed ignored", ContactIDPrefix, []string{"abc", "3", ""}, "4"},
		{"trailing junk", ContactIDPrefix, []string{"12abc"}, "13"},
		{"only malformed", CreatorIDPrefix, []string{"cx", "c"}, "c1"},
		{"negative ignored", ContactIDPrefix, []string{"-4"}, "1"},
		{"max int ignored", ContactIDPrefix, []string{"3", strconv.Itoa(math.MaxInt)}, "4"},
		{"out of range ignored", CreatorIDPrefix, []string{"c2", "c99999999999999999999999"}, "c3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.prefix, tt.ids))
		})
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	assert.Empty(t, s.Contacts())
	assert.Empty(t, s.Creators())

	c := s.AddContact(crm.NewContact{Name: "Ada", Email: "ada@example.com", Status: crm.StatusLead})
	assert.Equal(t, "1", c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestStore_ListingIsIdempotent(t *testing.T) {
	s := seededStore(t)
	first := s.Contacts()
	second := s.Contacts()
	assert.Equal(t, first, second)

	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", s.Contacts()[0].Name)
}

func TestStore_AddContact(t *testing.T) {
	s := seededStore(t)
	before := s.Contacts()

	got := s.AddContact(crm.NewContact{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical",
		Status:  crm.StatusQualified,
	})

	assert.Equal(t, NextID(ContactIDPrefix, idsOf(before)), got.ID)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got.CreatedAt)

	after := s.Contacts()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, got, after[len(after)-1])
}

func TestStore_AddCreator(t *testing.T) {
	s := seededStore(t)
	before := s.Creators()

	got := s.AddCreator(crm.NewCreator{Name: "Nova", Handle: "nova", Tier: crm.TierVIP, Subscribers: 1200})

	assert.Equal(t, NextID(CreatorIDPrefix, creatorIDs(before)), got.ID)
	assert.Equal(t, "nova", got.Handle)
	assert.Equal(t, crm.Day(fixedNow), got.JoinedAt)
	assert.Len(t, s.Creators(), len(before)+1)
}

func TestStore_AddCreatorStoresFieldsAsGiven(t *testing.T) {
	s := seededStore(t)
	got := s.AddCreator(crm.NewCreator{Name: "Raw", Handle: " @raw", Tier: crm.TierStandard})
	assert.Equal(t, " @raw", got.Handle)
}

func TestStore_SubscribeOrderAndUnsubscribe(t *testing.T) {
	s := seededStore(t)

	var calls []string
	unsubA := s.Subscribe(func(snap Snapshot) {
		calls = append(calls, "a")
		// subscribers may read the store
		assert.Len(t, s.Contacts(), len(snap.Contacts))
	})
	s.Subscribe(func(Snapshot) { calls = append(calls, "b") })

	s.AddContact(crm.NewContact{Name: "One", Email: "one@example.com"})
	assert.Equal(t, []string{"a", "b"}, calls)

	unsubA()
	unsubA()
	s.AddCreator(crm.NewCreator{Name: "Two", Handle: "two"})
	assert.Equal(t, []string{"a", "b", "b"}, calls)
}

func TestStore_SnapshotVersion(t *testing.T) {
	s := seededStore(t)
	v0 := s.Snapshot().Version
	s.AddContact(crm.NewContact{Name: "x", Email: "x@example.com"})
	snap := s.Snapshot()
	assert.Equal(t, v0+1, snap.Version)
	assert.True(t, fixedNow.Equal(snap.LastChanged))
}

func idsOf(cs []crm.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func creatorIDs(cs []crm.Creator) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
