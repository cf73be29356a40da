package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name    string
		current View
		raw     string
		want    Handoff
		wantOK  bool
	}{
		{"creators stays", ViewCreators, "ali", Handoff{To: ViewCreators, Query: "ali"}, true},
		{"contacts stays", ViewContacts, "  lee ", Handoff{To: ViewContacts, Query: "lee"}, true},
		{"dashboard defaults", ViewDashboard, "ali", Handoff{To: ViewContacts, Query: "ali"}, true},
		{"blank ignored", ViewCreators, "   ", Handoff{}, false},
		{"empty ignored", ViewDashboard, "", Handoff{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Route(tt.current, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeed_TakeOnce(t *testing.T) {
	s := NewSeed("jordan")

	q, ok := s.Take()
	assert.True(t, ok)
	assert.Equal(t, "jordan", q)

	q, ok = s.Take()
	assert.False(t, ok)
	assert.Empty(t, q)
}

func TestSeed_Empty(t *testing.T) {
	var nilSeed *Seed
	_, ok := nilSeed.Take()
	assert.False(t, ok)

	_, ok = NewSeed("  ").Take()
	assert.False(t, ok)

	_, ok = (&Seed{}).Take()
	assert.True(t, ok, "zero Seed yields one empty take")
}

func TestHandoffSeed(t *testing.T) {
	h, _ := Route(ViewDashboard, "sam")
	q, ok := h.Seed().Take()
	assert.True(t, ok)
	assert.Equal(t, "sam", q)
}

func TestViewSearchable(t *testing.T) {
	assert.True(t, ViewDashboard.Searchable())
	assert.False(t, View(42).Searchable())
	assert.Equal(t, "Creators", ViewCreators.String())
}
