// Package state holds the in-memory contact and creator collections.
//
// # Overview
//
// A single Store is shared by the TUI and the CLI subcommands. It is seeded at
// startup (see crm.DefaultSeed) and only ever grows: records are appended by
// AddContact and AddCreator and are never edited or removed.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - AddContact/AddCreator: acquire the write lock
//   - Contacts/Creators/Snapshot: acquire the read lock and return copies
//
// Subscribers registered with Subscribe run after the write lock is released,
// in registration order, on the goroutine that performed the mutation. A
// subscriber may therefore call back into the Store.
//
// # Identifiers
//
// Contact ids are plain decimal strings ("1", "2", ...). Creator ids carry a
// "c" prefix ("c1", "c2", ...). NextID scans the existing ids, takes the
// largest numeric suffix and adds one. Ids that do not parse are ignored, so
// an id is never reused even after a malformed record is seeded.
//
// # Dates
//
// Added records are stamped with the current UTC calendar day. Tests inject a
// fixed clock with WithClock.
//
//	store := state.New(seed, state.WithClock(func() time.Time { return fixed }))
//	c := store.AddContact(crm.NewContact{Name: "Ada", Email: "ada@example.com"})
//	// c.ID == "6", c.CreatedAt == crm.Day(fixed)
package state
