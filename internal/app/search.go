package app

import (
	"strings"
)

// Search is the debounced entry point for the search box. Each keystroke
// lands here; only the last call of a burst reaches the remote index, after
// the quiet window passes. Fire-and-forget: results and failures publish
// through the store.
func (s *Service) Search(text string) {
	s.searches.Call(text)
}

// CancelSearch drops any pending debounced search.
func (s *Service) CancelSearch() {
	s.searches.Cancel()
}

func (s *Service) runSearch(text string) {
	text = strings.TrimSpace(text)
	seq := s.store.BeginSearch()

	// Empty text restores the full catalog view. The authoritative catalog
	// is already held locally; no need to re-fetch it.
	if text == "" {
		s.store.ApplySearch(seq, s.store.Catalog())
		return
	}

	products, err := s.api.SearchProducts(s.ctx, text)
	if err != nil {
		// Any failed search presents as the empty result set: the
		// reference service answers 404 for "no matches", and transport
		// failures degrade the same way rather than surfacing an error.
		s.log.WithError(err).WithField("query", text).Info("search returned no products")
		s.store.ApplySearch(seq, nil)
		return
	}
	if !s.store.ApplySearch(seq, products) {
		s.log.WithField("seq", seq).Info("dropped stale search response")
	}
}
