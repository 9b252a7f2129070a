package state

import (
	"sync"
	"time"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// Level classifies a user-facing notice.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notice is a message for the user: a validation warning, a server-provided
// error text, or a connectivity complaint. Never fatal.
type Notice struct {
	Level Level
	Text  string
	At    time.Time
}

// Snapshot represents the latest view data available to the UI.
type Snapshot struct {
	// Catalog is the authoritative product set, fetched once per session.
	// Reconciliation always runs against this, never against Products.
	Catalog      []storefront.Product
	CatalogReady bool

	// Products is the displayed list: the catalog, or the latest search
	// results when a search is active.
	Products []storefront.Product

	// RawEntries and CartItems are replaced wholesale on every successful
	// cart fetch or mutation; CartItems is always derived from RawEntries.
	RawEntries []storefront.CartEntry
	CartItems  []cart.Item
	HasCart    bool

	Loading      bool
	NothingFound bool
	Notice       Notice
	LastUpdated  time.Time
}

// Store coordinates concurrent updates to the snapshot.
//
// Responses from the search and cart endpoints can land out of order, so the
// store tracks a monotonically increasing sequence per channel. A publisher
// reserves a sequence with BeginSearch or BeginCartUpdate before dispatching
// its request, and the matching Apply is dropped unless that sequence is
// still the latest reserved on its channel.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	searchSeq uint64
	cartSeq   uint64
}

// SetCatalog stores the authoritative catalog and displays it. The loading
// flag clears because the initial fetch is the only thing it gates at start.
func (s *Store) SetCatalog(products []storefront.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Catalog = cloneProducts(products)
	s.snapshot.CatalogReady = true
	s.snapshot.Products = cloneProducts(products)
	s.snapshot.Loading = false
	s.snapshot.NothingFound = len(products) == 0
	s.snapshot.LastUpdated = time.Now()
}

// Catalog returns a copy of the authoritative catalog.
func (s *Store) Catalog() []storefront.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.snapshot.Catalog)
}

// CatalogReady reports whether the catalog has been loaded.
func (s *Store) CatalogReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.CatalogReady
}

// RawEntries returns a copy of the current raw cart entries.
func (s *Store) RawEntries() []storefront.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.snapshot.RawEntries)
}

// BeginSearch reserves a sequence on the search channel and raises the
// loading flag. The returned value must be passed to ApplySearch.
func (s *Store) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchSeq++
	s.snapshot.Loading = true
	return s.searchSeq
}

// ApplySearch publishes search results reserved under seq. A stale seq (a
// newer search has been issued since) is dropped and false is returned. An
// empty result set raises NothingFound; this is how both "no matches" and a
// failed search request present.
func (s *Store) ApplySearch(seq uint64, products []storefront.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.searchSeq {
		return false
	}
	s.snapshot.Products = cloneProducts(products)
	s.snapshot.NothingFound = len(products) == 0
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	return true
}

// BeginCartUpdate reserves a sequence on the cart channel. The returned
// value must be passed to ApplyCart.
func (s *Store) BeginCartUpdate() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cartSeq++
	return s.cartSeq
}

// ApplyCart publishes a reconciled cart reserved under seq: a total
// replacement of both the raw entries and the derived items. A stale seq is
// dropped and false is returned, leaving the previous cart view intact.
func (s *Store) ApplyCart(seq uint64, entries []storefront.CartEntry, items []cart.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.cartSeq {
		return false
	}
	s.snapshot.RawEntries = cloneEntries(entries)
	s.snapshot.CartItems = cloneItems(items)
	s.snapshot.HasCart = true
	s.snapshot.LastUpdated = time.Now()
	return true
}

// ClearCart empties the cart view. Used for anonymous sessions, which have
// no server-side cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.RawEntries = nil
	s.snapshot.CartItems = nil
	s.snapshot.HasCart = false
	s.snapshot.LastUpdated = time.Now()
}

// SetLoading sets the loading flag without touching any list.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = loading
	s.snapshot.LastUpdated = time.Now()
}

// SetNotice records a user-facing message. Prior state is untouched:
// a failed operation reports here and leaves its view alone.
func (s *Store) SetNotice(level Level, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Notice = Notice{Level: level, Text: text, At: time.Now()}
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
}

// ClearNotice removes the current notice.
func (s *Store) ClearNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Notice = Notice{}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = cloneProducts(s.snapshot.Catalog)
	snap.Products = cloneProducts(s.snapshot.Products)
	snap.RawEntries = cloneEntries(s.snapshot.RawEntries)
	snap.CartItems = cloneItems(s.snapshot.CartItems)
	return snap
}

func cloneProducts(products []storefront.Product) []storefront.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]storefront.Product, len(products))
	copy(dup, products)
	return dup
}

func cloneEntries(entries []storefront.CartEntry) []storefront.CartEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]storefront.CartEntry, len(entries))
	copy(dup, entries)
	return dup
}

func cloneItems(items []cart.Item) []cart.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]cart.Item, len(items))
	copy(dup, items)
	return dup
}
