// Package orca is a typed client for the Orca public REST API. Each method
// performs a single GET and decodes the JSON body into the wire schema in
// internal/model; there is no caching, no retry, and no cursor traversal.
package orca

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"whirlscope/internal/model"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.orca.so/v2"

const defaultTimeout = 30 * time.Second

// Client talks to the Orca API. It is safe for concurrent use; the only
// shared state is the underlying http.Client connection pool.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the given base URL; an empty baseURL selects
// DefaultBaseURL. A malformed base URL is a configuration error and is
// rejected here rather than on the first call.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// endpoint joins the base URL, the chain segment, and path parts. Path
// identifiers are passed through verbatim; malformed values surface as a
// server-side error, not a local one.
func (c *Client) endpoint(chain string, parts ...string) string {
	segments := append([]string{c.baseURL, chain}, parts...)
	return strings.Join(segments, "/")
}

// getJSON performs a GET and decodes the body into T. Connection failures
// and non-2xx statuses become *TransportError; invalid or mis-shaped bodies
// become *DecodeError.
func getJSON[T any](ctx context.Context, c *Client, endpoint, query string) (T, error) {
	var out T

	fullURL := endpoint
	if query != "" {
		fullURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return out, &TransportError{URL: fullURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &TransportError{URL: fullURL, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return out, &TransportError{
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &DecodeError{URL: fullURL, Err: err}
	}
	return out, nil
}

// GetProtocolInfo returns protocol-wide fees, revenue, TVL, and volume.
func (c *Client) GetProtocolInfo(ctx context.Context, chain string) (*model.ProtocolInfo, error) {
	info, err := getJSON[model.ProtocolInfo](ctx, c, c.endpoint(chain, "protocol"), "")
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetTokenInfo returns metadata and stats for the protocol's native token.
func (c *Client) GetTokenInfo(ctx context.Context, chain string) (*model.TokenInfo, error) {
	info, err := getJSON[model.TokenInfo](ctx, c, c.endpoint(chain, "protocol", "token"), "")
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetCirculatingSupply returns the circulating supply of the native token.
func (c *Client) GetCirculatingSupply(ctx context.Context, chain string) (*model.CirculatingSupplyResponse, error) {
	supply, err := getJSON[model.CirculatingSupplyResponse](ctx, c, c.endpoint(chain, "protocol", "token", "circulating_supply"), "")
	if err != nil {
		return nil, err
	}
	return &supply, nil
}

// GetTotalSupply returns the total supply of the native token.
func (c *Client) GetTotalSupply(ctx context.Context, chain string) (*model.TotalSupplyResponse, error) {
	supply, err := getJSON[model.TotalSupplyResponse](ctx, c, c.endpoint(chain, "protocol", "token", "total_supply"), "")
	if err != nil {
		return nil, err
	}
	return &supply, nil
}

// GetTokens returns one page of tokens with optional filtering and sorting.
func (c *Client) GetTokens(ctx context.Context, chain string, params TokensParams) (*model.Paginated[model.Token], error) {
	page, err := getJSON[model.Paginated[model.Token]](ctx, c, c.endpoint(chain, "tokens"), params.encode())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchTokens returns tokens matching the free-text query. An empty query
// is forwarded as-is.
func (c *Client) SearchTokens(ctx context.Context, chain, query string) (*model.Paginated[model.Token], error) {
	var q queryBuilder
	q.add("q", query)
	page, err := getJSON[model.Paginated[model.Token]](ctx, c, c.endpoint(chain, "tokens", "search"), q.encode())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetToken returns the token identified by its mint address. The server
// wraps even single-token lookups in the paginated envelope.
func (c *Client) GetToken(ctx context.Context, chain, mintAddress string) (*model.Paginated[model.Token], error) {
	page, err := getJSON[model.Paginated[model.Token]](ctx, c, c.endpoint(chain, "tokens", mintAddress), "")
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetLockInfo returns the locked-liquidity records for a pool.
func (c *Client) GetLockInfo(ctx context.Context, chain, address string) ([]model.LockInfo, error) {
	return getJSON[[]model.LockInfo](ctx, c, c.endpoint(chain, "lock", address), "")
}

// GetPools returns one page of pools with optional filtering and pagination.
func (c *Client) GetPools(ctx context.Context, chain string, params PoolsParams) (*model.Paginated[model.Whirlpool], error) {
	page, err := getJSON[model.Paginated[model.Whirlpool]](ctx, c, c.endpoint(chain, "pools"), params.encode())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchPools returns pools matching the free-text query and filters.
func (c *Client) SearchPools(ctx context.Context, chain string, params SearchPoolsParams) (*model.Paginated[model.Whirlpool], error) {
	page, err := getJSON[model.Paginated[model.Whirlpool]](ctx, c, c.endpoint(chain, "pools", "search"), params.encode())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPool returns the pool at the given address, wrapped in the paginated
// envelope like GetToken.
func (c *Client) GetPool(ctx context.Context, chain, address string) (*model.Paginated[model.Whirlpool], error) {
	page, err := getJSON[model.Paginated[model.Whirlpool]](ctx, c, c.endpoint(chain, "pools", address), "")
	if err != nil {
		return nil, err
	}
	return &page, nil
}
