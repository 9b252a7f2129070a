// Package app provides the orchestration layer for the storefront client.
//
// # Overview
//
// This package wires together configuration, the HTTP client, the view-state
// store, and the UI, and owns the three operations that converge on the
// shared cart view:
//
//   - catalog load: once per session, gating everything downstream
//   - cart synchronization: fetch raw entries → reconcile → publish
//   - cart mutation: validate locally → POST → reconcile → publish
//
// plus the debounced search pipeline, which replaces the displayed product
// list and never touches the cart.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          file + env
//	       ├─────> session.Load()         opaque token, maybe absent
//	       ├─────> storefront.NewClient()
//	       ├─────> state.Store{}
//	       ├─────> Service.Start()        catalog → first cart sync
//	       ├─────> Service.StartRefresh() optional periodic re-sync
//	       └─────> ui.Run()               blocks
//
//	Search keystrokes ─> Service.Search ─> debounce ─> runSearch
//	                                       └─ BeginSearch/ApplySearch (seq)
//	Add to cart ───────> Service.AddOrUpdate
//	                                       └─ BeginCartUpdate/ApplyCart (seq)
//
// # Error Handling
//
// Every operation catches its own failure at the boundary and converts it
// into a user-facing notice on the store; nothing propagates further and
// nothing is fatal. Local validation failures (anonymous add, duplicate add)
// are warnings that never reach the network. Remote failures keep the
// previously-displayed data: a transient error must not blank the view.
// There are no retries; a failed call is terminal for that attempt.
//
// # Ordering
//
// The catalog load always precedes the first cart reconciliation. Responses
// on the search and cart channels are sequence-guarded by the store, so a
// slow superseded response can never overwrite a newer one; see the state
// package for the mechanism.
package app
