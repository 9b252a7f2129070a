// Package storefront provides an HTTP client for the QKart storefront API.
//
// # Overview
//
// The package defines the API client used by the synchronization pipeline to
// reach the remote catalog and cart service. It handles HTTP communication,
// JSON serialization, and type-safe representation of products and cart
// entries.
//
// # Endpoints
//
// Four operations are supported:
//
//   - GET /products: full product catalog, no auth
//   - GET /products/search?value=<text>: catalog subset matching text, no auth
//   - GET /cart: the user's raw cart entries, Bearer token required
//   - POST /cart {productId, qty}: add/update one entry, Bearer token
//     required; responds with the full updated entry list
//
// # Error Handling
//
// Failure responses carry a {"success": false, "message": ...} envelope. The
// client surfaces those as *APIError with the HTTP status and the server's
// message; the IsAuth and IsNotFound helpers classify them and ServerMessage
// extracts display text with a fallback for transport-level failures.
// Network errors, timeouts, and malformed JSON are wrapped with fmt.Errorf
// and carry no envelope, so they classify as connectivity failures.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, and share one timeout-configured http.Client. In-flight requests
// are not canceled when superseded; stale responses are discarded by the
// state layer instead.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling internally.
package storefront
