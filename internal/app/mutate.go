package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rajeebsahoo/qkart-frontend/internal/cart"
	"github.com/rajeebsahoo/qkart-frontend/internal/session"
	"github.com/rajeebsahoo/qkart-frontend/internal/state"
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// AddOrUpdate adds or updates one product in the user's cart.
//
// Two local gates run before any network call: the session must carry a
// token, and with preventDuplicate set the product must not already be in
// the cart (the primary "add to cart" action sets it; quantity changes from
// the cart panel do not). Either rejection surfaces a warning and changes
// nothing.
//
// On success the server's full updated entry list is the new source of
// truth: it is reconciled against the catalog and published as a total
// replacement, so any drift from concurrent external mutation self-heals.
// On failure a notice is reported and the existing cart view stays put.
func (s *Service) AddOrUpdate(ctx context.Context, sess session.Session, productID string, qty int, preventDuplicate bool) {
	if !sess.Authenticated() {
		s.store.SetNotice(state.LevelWarning, "Log in to add items to the cart.")
		return
	}
	if preventDuplicate && cart.Contains(s.store.RawEntries(), productID) {
		s.store.SetNotice(state.LevelWarning,
			"Item already in cart. Use the cart panel to update quantity or remove item.")
		return
	}

	seq := s.store.BeginCartUpdate()
	entries, err := s.api.AddToCart(ctx, sess.Token, productID, qty)
	if err != nil {
		s.log.WithError(err).WithField("product", productID).Error("cart update failed")
		if storefront.IsNotFound(err) || storefront.IsAuth(err) {
			s.store.SetNotice(state.LevelError, storefront.ServerMessage(err, "Could not update cart."))
		} else {
			s.store.SetNotice(state.LevelError,
				"Could not update cart. Check that the backend is running, reachable and returns valid JSON.")
		}
		return
	}

	items := cart.Reconcile(entries, s.store.Catalog())
	if !s.store.ApplyCart(seq, entries, items) {
		s.log.WithField("seq", seq).Info("dropped stale cart update")
		return
	}
	s.log.WithFields(logrus.Fields{"product": productID, "qty": qty}).Info("cart updated")
}
