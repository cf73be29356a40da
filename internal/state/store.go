package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/vuecrm/internal/crm"
)

// Snapshot is a point-in-time copy of both collections.
type Snapshot struct {
	Contacts    []crm.Contact
	Creators    []crm.Creator
	Version     uint64 // incremented on every mutation
	LastChanged time.Time
}

// Store owns the contact and creator collections. The zero value is an empty,
// ready-to-use store.
type Store struct {
	mu       sync.RWMutex
	contacts []crm.Contact
	creators []crm.Creator
	version  uint64
	changed  time.Time
	now      func() time.Time

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp added records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a store seeded with the given records.
func New(seed crm.Seed, opts ...Option) *Store {
	s := &Store{
		contacts: slices.Clone(seed.Contacts),
		creators: slices.Clone(seed.Creators),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Contacts returns the contacts in insertion order.
func (s *Store) Contacts() []crm.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

// Creators returns the creators in insertion order.
func (s *Store) Creators() []crm.Creator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.creators)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Contacts:    slices.Clone(s.contacts),
		Creators:    slices.Clone(s.creators),
		Version:     s.version,
		LastChanged: s.changed,
	}
}

// AddContact appends a contact with a freshly allocated id and today's date.
// Fields are stored as given; callers validate required fields.
func (s *Store) AddContact(in crm.NewContact) crm.Contact {
	s.mu.Lock()
	ids := make([]string, len(s.contacts))
	for i, c := range s.contacts {
		ids[i] = c.ID
	}
	now := s.clock()
	contact := crm.Contact{
		ID:        NextID(ContactIDPrefix, ids),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Status:    in.Status,
		CreatedAt: crm.Day(now),
	}
	s.contacts = append(s.contacts, contact)
	snap := s.bumpLocked(now)
	s.mu.Unlock()

	s.notify(snap)
	return contact
}

// AddCreator appends a creator with a freshly allocated "c"-prefixed id and
// today's date.
func (s *Store) AddCreator(in crm.NewCreator) crm.Creator {
	s.mu.Lock()
	ids := make([]string, len(s.creators))
	for i, c := range s.creators {
		ids[i] = c.ID
	}
	now := s.clock()
	creator := crm.Creator{
		ID:          NextID(CreatorIDPrefix, ids),
		Name:        in.Name,
		Handle:      in.Handle,
		Avatar:      in.Avatar,
		Tier:        in.Tier,
		Subscribers: in.Subscribers,
		JoinedAt:    crm.Day(now),
	}
	s.creators = append(s.creators, creator)
	snap := s.bumpLocked(now)
	s.mu.Unlock()

	s.notify(snap)
	return creator
}

// Subscribe registers fn to run synchronously after every mutation, in
// registration order. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
		})
	}
}

func (s *Store) bumpLocked(now time.Time) Snapshot {
	s.version++
	s.changed = now
	return s.snapshotLocked()
}

// notify runs outside the data lock so subscribers may read the store.
func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	subs := slices.Clone(s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
