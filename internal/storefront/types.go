package storefront

// Product mirrors a catalog entry returned by GET /products and
// GET /products/search.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	Image    string  `json:"image"`
}

// CartEntry is the server's minimal cart record: one entry per distinct
// product in the user's cart. The service owns quantities and duplicate
// merging; clients never patch entries locally.
type CartEntry struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// cartUpdateRequest is the POST /cart body.
type cartUpdateRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// errorEnvelope is the service's failure payload.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
