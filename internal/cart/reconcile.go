// Package cart holds the pure merge logic that joins raw cart entries with
// the product catalog into display-ready items. It performs no I/O; every
// caller feeds it the complete current catalog, never a searched subset, so
// cart items whose product falls outside a filter are never lost.
package cart

import (
	"github.com/rajeebsahoo/qkart-frontend/internal/storefront"
)

// Item is a raw cart entry joined with its full product data. Items are
// derived, never mutated in place: every reconciliation rebuilds the whole
// list from the (entries, catalog) pair.
type Item struct {
	storefront.Product
	Qty int
}

// Reconcile joins entries with catalog, preserving entry order. An entry
// whose product id has no catalog match is dropped rather than errored: the
// catalog may lag the cart, and a stale entry is not the user's problem.
func Reconcile(entries []storefront.CartEntry, catalog []storefront.Product) []Item {
	if len(entries) == 0 {
		return nil
	}
	index := make(map[string]storefront.Product, len(catalog))
	for _, p := range catalog {
		index[p.ID] = p
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		p, ok := index[e.ProductID]
		if !ok {
			continue
		}
		items = append(items, Item{Product: p, Qty: e.Qty})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// Contains reports whether entries already hold productID.
func Contains(entries []storefront.CartEntry, productID string) bool {
	for _, e := range entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Total returns the combined cost of the items.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Cost * float64(it.Qty)
	}
	return total
}

// Quantity returns the qty recorded for productID, or zero when absent.
func Quantity(entries []storefront.CartEntry, productID string) int {
	for _, e := range entries {
		if e.ProductID == productID {
			return e.Qty
		}
	}
	return 0
}
