// Package connection provides the HTTP client for cfwkv.
package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yndnr/cfwkv-go/internal/infra/buildinfo"
	"github.com/yndnr/cfwkv-go/internal/telemetry/logger"
)

// DefaultBaseURL is the account-scoped root of the Cloudflare API.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4/accounts/"

// Authentication and tracing headers.
const (
	HeaderAuthEmail = "X-Auth-Email"
	HeaderAuthKey   = "X-Auth-Key"
	HeaderRequestID = "X-Request-ID"
)

// Response is the status and body returned by the API.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HTTPClient provides HTTP communication with the API.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	email     string
	apiKey    string
	accountID string
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithBaseURL replaces DefaultBaseURL. Tests point it at httptest servers.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// NewHTTPClient creates a new HTTP client for one account.
func NewHTTPClient(email, apiKey, accountID string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:   DefaultBaseURL,
		client:    &http.Client{},
		email:     email,
		apiKey:    apiKey,
		accountID: accountID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// URL returns the absolute URL for a request path.
func (c *HTTPClient) URL(path string) string {
	return c.baseURL + url.PathEscape(c.accountID) + path
}

// Do performs the request and reads the whole response body.
// Non-2xx statuses are returned as a Response, not as an error.
func (c *HTTPClient) Do(ctx context.Context, r *Request) (*Response, error) {
	target := c.URL(r.Path)

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	c.addHeaders(ctx, req)

	log := logger.L(ctx)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug("request failed", "method", r.Method, "path", r.Path, "error", err)
		return nil, &TransportError{Method: r.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: r.Method, URL: target, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug("request completed",
		"method", r.Method,
		"path", r.Path,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// addHeaders adds authentication and common headers.
func (c *HTTPClient) addHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set(HeaderAuthEmail, c.email)
	req.Header.Set(HeaderAuthKey, c.apiKey)
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
}
