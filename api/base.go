package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client queries an Etherscan-compatible explorer for a single
// account. The API key and address are fixed at construction and never
// mutated, so separate clients are independent and safe to use from
// separate goroutines. Each query is one best-effort GET: no retries,
// no backoff, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	address    string
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different explorer endpoint,
// e.g. SepoliaAPIURL or a self-hosted Etherscan-compatible instance.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout overrides the default 10s HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the given API key and account
// address. Neither value is validated locally; a bad key or malformed
// address surfaces as a RemoteError on the first query.
func NewClient(apiKey, address string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: MainnetAPIURL,
		apiKey:  apiKey,
		address: address,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Address returns the account address the client was built for.
func (c *Client) Address() string {
	return c.address
}

// query performs one GET against the explorer and unwraps the response
// envelope, returning the raw result payload.
func (c *Client) query(params url.Values) (json.RawMessage, error) {
	params.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, &TransportError{Op: "failed to send request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Op:  "request failed",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, body),
		}
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{Op: "failed to parse response", Err: err}
	}

	if envelope.Status != "1" {
		return nil, &RemoteError{Message: envelope.Message}
	}

	return envelope.Result, nil
}
