package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// fakeAPI implements storefront.API and records every call.
type fakeAPI struct {
	mu sync.Mutex

	products   []storefront.Product
	productErr error

	searchResults []storefront.Product
	searchErr     error

	cartEntries []storefront.CartEntry
	cartErr     error

	addResult []storefront.CartEntry
	addErr    error

	searchCalls []string
	cartCalls   int
	addCalls    int
}

func (f *fakeAPI) FetchProducts(ctx context.Context) ([]storefront.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products, f.productErr
}

func (f *fakeAPI) SearchProducts(ctx context.Context, query string) ([]storefront.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	return f.searchResults, f.searchErr
}

func (f *fakeAPI) FetchCart(ctx context.Context, token string) ([]storefront.CartEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartCalls++
	return f.cartEntries, f.cartErr
}

func (f *fakeAPI) AddToCart(ctx context.Context, token, productID string, qty int) ([]storefront.CartEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	return f.addResult, f.addErr
}

func (f *fakeAPI) searched() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searchCalls...)
}

func (f *fakeAPI) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cartCalls + f.addCalls
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func newTestService(api *fakeAPI, quiet time.Duration) (*Service, *state.Store) {
	store := &state.Store{}
	svc := NewService(api, store, session.Session{}, discardLogger(), quiet)
	return svc, store
}

var authed = session.Session{Token: "tok"}

func TestLoadCatalog_PublishesProducts(t *testing.T) {
	api := &fakeAPI{products: []storefront.Product{{ID: "A", Name: "Ball", Cost: 10, Rating: 5}}}
	svc, store := newTestService(api, time.Hour)

	if err := svc.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}

	snap := store.Snapshot()
	if !snap.CatalogReady || len(snap.Products) != 1 || snap.Products[0].ID != "A" {
		t.Fatalf("snapshot = %#v, want catalog with product A", snap)
	}
}

func TestLoadCatalog_FailureReportsNotice(t *testing.T) {
	api := &fakeAPI{productErr: errors.New("connection refused")}
	svc, store := newTestService(api, time.Hour)

	if err := svc.LoadCatalog(context.Background()); err == nil {
		t.Fatal("LoadCatalog returned nil error, want failure")
	}

	snap := store.Snapshot()
	if snap.CatalogReady {
		t.Fatal("CatalogReady = true after failed load")
	}
	if snap.Notice.Level != state.LevelError || snap.Notice.Text == "" {
		t.Fatalf("Notice = %#v, want error notice", snap.Notice)
	}
}

func TestSyncCart_AnonymousClearsWithoutNetwork(t *testing.T) {
	api := &fakeAPI{}
	svc, store := newTestService(api, time.Hour)

	svc.SyncCart(context.Background(), session.Session{})

	if api.networkCalls() != 0 {
		t.Fatalf("network calls = %d, want 0 for anonymous sync", api.networkCalls())
	}
	snap := store.Snapshot()
	if snap.HasCart || snap.CartItems != nil {
		t.Fatalf("cart = %#v, want empty for anonymous session", snap.CartItems)
	}
	if snap.Notice.Text != "" {
		t.Fatalf("Notice = %#v, want none: anonymous is not an error", snap.Notice)
	}
}

func TestSyncCart_EnrichesAgainstCatalog(t *testing.T) {
	api := &fakeAPI{
		products:    []storefront.Product{{ID: "A", Name: "Ball", Category: "Sports", Cost: 10, Rating: 5}},
		cartEntries: []storefront.CartEntry{{ProductID: "A", Qty: 2}},
	}
	svc, store := newTestService(api, time.Hour)
	if err := svc.LoadCatalog(context.Background()); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	svc.SyncCart(context.Background(), authed)

	snap := store.Snapshot()
	want := []cart.Item{{Product: api.products[0], Qty: 2}}
	if diff := cmp.Diff(want, snap.CartItems); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
	if !snap.HasCart {
		t.Fatal("HasCart = false after successful sync")
	}
}

func TestSyncCart_UnknownProductDropped(t *testing.T) {
	api := &fakeAPI{
		products:    []storefront.Product{{ID: "A", Name: "Ball"}},
		cartEntries: []storefront.CartEntry{{ProductID: "Z", Qty: 1}},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())

	svc.SyncCart(context.Background(), authed)

	snap := store.Snapshot()
	if len(snap.CartItems) != 0 {
		t.Fatalf("cart = %#v, want empty when no entry matches the catalog", snap.CartItems)
	}
	if !snap.HasCart {
		t.Fatal("HasCart = false: an all-stale cart is still a synced cart")
	}
}

func TestSyncCart_FailureKeepsPreviousCart(t *testing.T) {
	api := &fakeAPI{
		products:    []storefront.Product{{ID: "A", Name: "Ball"}},
		cartEntries: []storefront.CartEntry{{ProductID: "A", Qty: 1}},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())
	svc.SyncCart(context.Background(), authed)

	api.mu.Lock()
	api.cartErr = errors.New("connection reset")
	api.mu.Unlock()
	svc.SyncCart(context.Background(), authed)

	snap := store.Snapshot()
	if len(snap.CartItems) != 1 || snap.CartItems[0].ID != "A" {
		t.Fatalf("cart = %#v, want previous view retained on failure", snap.CartItems)
	}
	if snap.Notice.Level != state.LevelError {
		t.Fatalf("Notice = %#v, want error notice", snap.Notice)
	}
}

func TestSyncCart_AuthFailureShowsServerMessage(t *testing.T) {
	api := &fakeAPI{cartErr: &storefront.APIError{Status: 400, Message: "Protected route, Oauth2 Bearer token not found"}}
	svc, store := newTestService(api, time.Hour)

	svc.SyncCart(context.Background(), authed)

	if got := store.Snapshot().Notice.Text; got != "Protected route, Oauth2 Bearer token not found" {
		t.Fatalf("Notice = %q, want server message", got)
	}
}

func TestAddOrUpdate_AuthGate(t *testing.T) {
	api := &fakeAPI{}
	svc, store := newTestService(api, time.Hour)

	svc.AddOrUpdate(context.Background(), session.Session{}, "P1", 1, false)

	if api.networkCalls() != 0 {
		t.Fatalf("network calls = %d, want 0 without a token", api.networkCalls())
	}
	notice := store.Snapshot().Notice
	if notice.Level != state.LevelWarning || notice.Text != "Log in to add items to the cart." {
		t.Fatalf("Notice = %#v, want log-in warning", notice)
	}
}

func TestAddOrUpdate_DuplicateGuard(t *testing.T) {
	api := &fakeAPI{}
	svc, store := newTestService(api, time.Hour)

	seq := store.BeginCartUpdate()
	store.ApplyCart(seq, []storefront.CartEntry{{ProductID: "P1", Qty: 1}}, nil)

	svc.AddOrUpdate(context.Background(), authed, "P1", 1, true)

	if api.networkCalls() != 0 {
		t.Fatalf("network calls = %d, want 0 for a duplicate add", api.networkCalls())
	}
	notice := store.Snapshot().Notice
	if notice.Level != state.LevelWarning {
		t.Fatalf("Notice = %#v, want duplicate warning", notice)
	}

	// The same product without the guard goes through (cart panel quantity
	// change path).
	api.mu.Lock()
	api.addResult = []storefront.CartEntry{{ProductID: "P1", Qty: 2}}
	api.mu.Unlock()
	svc.AddOrUpdate(context.Background(), authed, "P1", 2, false)
	if api.networkCalls() != 1 {
		t.Fatalf("network calls = %d, want 1 without the guard", api.networkCalls())
	}
}

func TestAddOrUpdate_SuccessReplacesCartWholesale(t *testing.T) {
	catalog := []storefront.Product{
		{ID: "A", Name: "Ball", Cost: 10},
		{ID: "B", Name: "Bat", Cost: 50},
	}
	api := &fakeAPI{
		products:  catalog,
		addResult: []storefront.CartEntry{{ProductID: "A", Qty: 2}, {ProductID: "B", Qty: 1}},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())

	// Seed a cart that the server response must fully supersede.
	seq := store.BeginCartUpdate()
	store.ApplyCart(seq,
		[]storefront.CartEntry{{ProductID: "A", Qty: 9}},
		[]cart.Item{{Product: catalog[0], Qty: 9}})

	svc.AddOrUpdate(context.Background(), authed, "B", 1, true)

	snap := store.Snapshot()
	want := []cart.Item{
		{Product: catalog[0], Qty: 2},
		{Product: catalog[1], Qty: 1},
	}
	if diff := cmp.Diff(want, snap.CartItems); diff != "" {
		t.Fatalf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestAddOrUpdate_NotFoundShowsServerMessage(t *testing.T) {
	api := &fakeAPI{
		products: []storefront.Product{{ID: "A", Name: "Ball"}},
		addErr:   &storefront.APIError{Status: 404, Message: "Product doesn't exist"},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())

	seq := store.BeginCartUpdate()
	store.ApplyCart(seq,
		[]storefront.CartEntry{{ProductID: "A", Qty: 1}},
		[]cart.Item{{Product: api.products[0], Qty: 1}})

	svc.AddOrUpdate(context.Background(), authed, "ghost", 1, true)

	snap := store.Snapshot()
	if snap.Notice.Text != "Product doesn't exist" {
		t.Fatalf("Notice = %q, want server message", snap.Notice.Text)
	}
	if len(snap.CartItems) != 1 || snap.CartItems[0].ID != "A" {
		t.Fatalf("cart = %#v, want unchanged on failure", snap.CartItems)
	}
}

func TestSearch_BurstCoalescesToOneRequest(t *testing.T) {
	api := &fakeAPI{
		products:      []storefront.Product{{ID: "A", Name: "Ball"}},
		searchResults: []storefront.Product{{ID: "B", Name: "Bat"}},
	}
	svc, store := newTestService(api, 50*time.Millisecond)
	_ = svc.LoadCatalog(context.Background())

	for _, text := range []string{"b", "ba", "bat"} {
		svc.Search(text)
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	if got := api.searched(); len(got) != 1 || got[0] != "bat" {
		t.Fatalf("search calls = %v, want exactly [bat]", got)
	}
	snap := store.Snapshot()
	if len(snap.Products) != 1 || snap.Products[0].ID != "B" {
		t.Fatalf("Products = %#v, want search results displayed", snap.Products)
	}
	if len(snap.Catalog) != 1 || snap.Catalog[0].ID != "A" {
		t.Fatalf("Catalog = %#v, want authoritative catalog untouched", snap.Catalog)
	}
}

func TestSearch_FailurePresentsAsNothingFound(t *testing.T) {
	api := &fakeAPI{
		products:  []storefront.Product{{ID: "A", Name: "Ball"}},
		searchErr: &storefront.APIError{Status: 404, Message: "No products found"},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())

	svc.Search("unobtainium")
	svc.searches.Flush()

	snap := store.Snapshot()
	if !snap.NothingFound {
		t.Fatal("NothingFound = false after failed search")
	}
	if len(snap.Products) != 0 {
		t.Fatalf("Products = %#v, want empty view", snap.Products)
	}
	if snap.Notice.Text != "" {
		t.Fatalf("Notice = %#v, want none: an empty search is not an error", snap.Notice)
	}
}

func TestSearch_EmptyTextRestoresCatalog(t *testing.T) {
	api := &fakeAPI{
		products:      []storefront.Product{{ID: "A", Name: "Ball"}},
		searchResults: []storefront.Product{{ID: "B", Name: "Bat"}},
	}
	svc, store := newTestService(api, time.Hour)
	_ = svc.LoadCatalog(context.Background())

	svc.Search("bat")
	svc.searches.Flush()
	svc.Search("   ")
	svc.searches.Flush()

	snap := store.Snapshot()
	if len(snap.Products) != 1 || snap.Products[0].ID != "A" {
		t.Fatalf("Products = %#v, want full catalog restored", snap.Products)
	}
	if got := api.searched(); len(got) != 1 {
		t.Fatalf("search calls = %v, want no request for empty text", got)
	}
}
