package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rajeebsahoo/qkart-frontend/internal/debounce"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// Service owns the catalog/cart synchronization pipeline. All operations
// publish into the shared state.Store and report failures as notices;
// none of them are fatal.
type Service struct {
	api   storefront.API
	store *state.Store
	sess  session.Session
	log   *logrus.Logger

	ctx      context.Context
	searches *debounce.Debouncer[string]
}

// NewService wires a Service. quiet is the search debounce window; zero
// uses the default.
func NewService(api storefront.API, store *state.Store, sess session.Session, log *logrus.Logger, quiet time.Duration) *Service {
	s := &Service{
		api:   api,
		store: store,
		sess:  sess,
		log:   log,
		ctx:   context.Background(),
	}
	s.searches = debounce.New(s.runSearch, quiet)
	return s
}

// Session returns the session this service was started with.
func (s *Service) Session() session.Session {
	return s.sess
}

// Start loads the catalog in the background and, once it is available,
// performs the first cart sync. The catalog load always precedes the first
// reconciliation attempt: an enriched cart cannot exist without products to
// join against.
func (s *Service) Start(ctx context.Context) {
	s.ctx = ctx
	s.store.SetLoading(true)
	go func() {
		if err := s.LoadCatalog(ctx); err != nil {
			return
		}
		s.SyncCart(ctx, s.sess)
	}()
}

// StartRefresh launches a background goroutine that re-syncs the cart at a
// fixed cadence, healing drift from mutations made elsewhere (another
// device, an expired reservation). A non-positive interval disables it.
func (s *Service) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.SyncCart(ctx, s.sess)
			}
		}
	}()
}

// LoadCatalog fetches the full product catalog and publishes it as both the
// authoritative catalog and the displayed list.
func (s *Service) LoadCatalog(ctx context.Context) error {
	products, err := s.api.FetchProducts(ctx)
	if err != nil {
		s.log.WithError(err).Error("catalog fetch failed")
		s.store.SetNotice(state.LevelError, storefront.ServerMessage(err,
			"Could not fetch products. Check that the backend is running, reachable and returns valid JSON."))
		return err
	}
	s.store.SetCatalog(products)
	s.log.WithField("products", len(products)).Info("catalog loaded")
	return nil
}
