package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the remote operations the synchronization pipeline depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	FetchCart(ctx context.Context, token string) ([]CartEntry, error)
	AddToCart(ctx context.Context, token, productID string, qty int) ([]CartEntry, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the QKart HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "qkart/0.1"
)

// NewClient builds a Client for the given endpoint, e.g.
// "http://localhost:8082/api/v1". A zero timeout uses the default.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProducts retrieves the full product catalog.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, &url.URL{Path: "/products"}, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchProducts retrieves the products matching the given text. Callers
// decide how a failed search is presented; the reference service answers
// 404 when nothing matches.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("value", query)
	rel := &url.URL{Path: "/products/search", RawQuery: values.Encode()}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, rel, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchCart retrieves the authenticated user's raw cart entries.
func (c *Client) FetchCart(ctx context.Context, token string) ([]CartEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token required")
	}
	var payload []CartEntry
	if err := c.do(ctx, http.MethodGet, &url.URL{Path: "/cart"}, token, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AddToCart adds or updates one product in the user's cart and returns the
// server's full updated entry list, which is the new source of truth.
func (c *Client) AddToCart(ctx context.Context, token, productID string, qty int) ([]CartEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token required")
	}
	body := cartUpdateRequest{ProductID: productID, Qty: qty}
	var payload []CartEntry
	if err := c.do(ctx, http.MethodPost, &url.URL{Path: "/cart"}, token, body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, token string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{
		Path:     strings.TrimSuffix(c.baseURL.Path, "/") + rel.Path,
		RawQuery: rel.RawQuery,
	})

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Message
		}
		return fmt.Errorf("api %s: %w", rel.Path, apiErr)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
