package jfkdex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the hosted archive API endpoint.
	DefaultBaseURL = "https://api.jfkarchive.dev/v1"

	defaultTimeout = 30 * time.Second
)

// Client is the archive API entry point. Every request carries the API
// key as a bearer token.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	obs     *observer
}

// New creates an archive Client. The API key is required; everything
// else has a default.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("jfkdex: api key is required")
	}

	cfg := &clientConfig{baseURL: DefaultBaseURL}
	for _, o := range opts {
		o.apply(cfg)
	}

	if _, err := url.Parse(cfg.baseURL); err != nil {
		return nil, fmt.Errorf("jfkdex: invalid base url %q: %w", cfg.baseURL, err)
	}

	httpc := cfg.httpClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		apiKey:  apiKey,
		httpc:   httpc,
		obs:     obs,
	}, nil
}

// Search returns the search service.
func (c *Client) Search() *SearchService { return &SearchService{c: c} }

// Pages returns the page retrieval service.
func (c *Client) Pages() *PagesService { return &PagesService{c: c} }

// Ping checks that the archive API is reachable and accepting the key.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	_, err = c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

// post sends a JSON body and returns the raw JSON response.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// do performs one HTTP round trip. Success requires a 2xx status and a
// valid JSON body, which is relayed without interpretation; structured
// service errors decode to *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("jfkdex: encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("jfkdex: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jfkdex: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jfkdex: read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if !json.Valid(respBody) {
			return nil, fmt.Errorf("jfkdex: %s %s returned a non-JSON body", method, path)
		}
		return json.RawMessage(respBody), nil
	}

	var apiErr APIError
	if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr != nil || apiErr.Message == "" {
		return nil, fmt.Errorf("jfkdex: unexpected %d response from %s %s: %s",
			resp.StatusCode, method, path, respBody)
	}
	apiErr.StatusCode = resp.StatusCode
	return nil, &apiErr
}
