// Package state provides thread-safe view state for the storefront client.
//
// # Overview
//
// The Store is the single point where independently-timed operations
// (catalog load, debounced search, cart fetch, cart mutation) converge into
// one consistent view. Producers publish into it; the UI reads immutable
// snapshots out of it at its own cadence.
//
// # Architecture
//
//	Producers (app):                    Consumer (UI):
//	┌──────────────────────┐           ┌────────────────┐
//	│ SetCatalog()         │           │                │
//	│ BeginSearch()        │           │                │
//	│   ApplySearch(seq,…) │──────────→│ store.Snapshot()│
//	│ BeginCartUpdate()    │  (mutex)  │      ↓         │
//	│   ApplyCart(seq,…)   │           │   render       │
//	│ SetNotice()          │           │                │
//	└──────────────────────┘           └────────────────┘
//
// # Sequence Guards
//
// Search and cart responses are unversioned on the wire and can land out of
// order: a slow earlier response may arrive after a faster later one. The
// store therefore tracks a monotonically increasing sequence per channel
// (search and cart independently). Publishers reserve a sequence with Begin*
// before dispatching their request and pass it to the matching Apply*; an
// Apply whose sequence is no longer the latest reserved on its channel is
// dropped. The last *issued* request wins, not the last response to land.
//
// # Update Semantics
//
// Successful cart applies are total replacements: both the raw entries and
// the derived items are swapped wholesale, never patched. Failed operations
// never reach an Apply at all; they report through SetNotice and the
// previous view stays visible (stale-but-visible beats blanking on a
// transient failure).
//
// # Defensive Copying
//
// Update and Snapshot both deep-copy the slices they touch, so the UI and
// the publishers never share backing arrays. The lists involved are small
// (one user's catalog view and cart), making the copies cheap relative to
// the races they rule out.
//
// # Concurrency Model
//
// A readers-writer lock guards the snapshot: Apply/Set methods take the
// write lock, Snapshot and the accessors take the read lock. The lock is
// held only while copying, never across network I/O or rendering. The zero
// value Store is ready to use.
package state
