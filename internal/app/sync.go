package app

import (
	"context"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// SyncCart fetches the user's raw cart entries, reconciles them against the
// authoritative catalog, and publishes the result wholesale.
//
// Anonymous sessions have no server-side cart: the view is cleared without
// a network call and without an error. A failed fetch reports a notice and
// leaves the previously-displayed cart untouched.
func (s *Service) SyncCart(ctx context.Context, sess session.Session) {
	if !sess.Authenticated() {
		s.store.ClearCart()
		return
	}

	seq := s.store.BeginCartUpdate()
	entries, err := s.api.FetchCart(ctx, sess.Token)
	if err != nil {
		s.log.WithError(err).Error("cart fetch failed")
		if storefront.IsAuth(err) {
			s.store.SetNotice(state.LevelError, storefront.ServerMessage(err, "Session is not valid. Log in again."))
		} else {
			s.store.SetNotice(state.LevelError,
				"Could not fetch cart details. Check that the backend is running, reachable and returns valid JSON.")
		}
		return
	}

	items := cart.Reconcile(entries, s.store.Catalog())
	if !s.store.ApplyCart(seq, entries, items) {
		s.log.WithField("seq", seq).Info("dropped stale cart fetch")
		return
	}
	s.log.WithField("entries", len(entries)).Info("cart synced")
}
