// Package apiclient is the single path to the backend REST API. It sends the
// session cookie with every request, turns 401 into a redirect to /login and
// normalizes error bodies into APIError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adrianAraqueG/gaston/internal/log"
)

const (
	LoginPath      = "/login"
	DefaultBaseURL = "http://localhost:3000"
)

// Navigator is the piece of the UI the client may redirect on 401.
type Navigator interface {
	Location() string
	Redirect(path string)
}

type Client struct {
	baseURL string
	http    *http.Client
	nav     Navigator
	logger  *log.Logger
	slog    *log.StructuredLogger
}

type Option func(*Client)

// WithHTTPClient sets the transport. Its Jar holds the session cookie.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithNavigator(nav Navigator) Option {
	return func(c *Client) { c.nav = nav }
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger.WithComponent(log.ComponentAPI) }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  log.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.slog = log.NewStructuredLogger(c.logger)
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// SetNavigator attaches the navigator after construction; the router and the
// client reference each other.
func (c *Client) SetNavigator(nav Navigator) { c.nav = nav }

type requestConfig struct {
	skipRedirect bool
	header       http.Header
}

type RequestOption func(*requestConfig)

// SkipUnauthorizedRedirect keeps a 401 from navigating to /login. The error
// is still ErrUnauthorized.
func SkipUnauthorizedRedirect() RequestOption {
	return func(rc *requestConfig) { rc.skipRedirect = true }
}

// WithHeader sets a request header. It is applied after the defaults, so it
// can replace Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.header == nil {
			rc.header = http.Header{}
		}
		rc.header.Set(key, value)
	}
}

// Do sends a JSON request to endpoint and decodes a JSON response into out.
// body and out may be nil. A 2xx response without a JSON body leaves out
// untouched.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	var rc requestConfig
	for _, opt := range opts {
		opt(&rc)
	}

	resp, err := c.send(ctx, method, endpoint, body, rc)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, rc); err != nil {
		return err
	}

	if !isJSON(resp.Header.Get("Content-Type")) || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPatch, endpoint, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, nil, opts...)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body any, rc requestConfig) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(b)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range rc.header {
		req.Header[k] = v
	}
	requestID = req.Header.Get("X-Request-ID")

	c.slog.LogRequestStart(ctx, method, url, requestID)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.slog.LogError(ctx, "API request failed", err, log.OpRead, log.NewFields().
			WithRequest(method, url).
			WithRequestID(requestID).
			WithErrorType(log.ErrorTypeNetwork))
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	c.slog.LogRequestEnd(ctx, method, url, requestID, resp.StatusCode, time.Since(start).Milliseconds())
	return resp, nil
}

// checkStatus returns nil for 2xx. A 401 redirects unless suppressed or the
// user is already on the login page.
func (c *Client) checkStatus(resp *http.Response, rc requestConfig) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		if !rc.skipRedirect && c.nav != nil && c.nav.Location() != LoginPath {
			c.logger.Debug("Redirecting to login", log.FieldTarget, LoginPath)
			c.nav.Redirect(LoginPath)
		}
		return ErrUnauthorized
	}

	data, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{}
	if err := json.Unmarshal(data, apiErr); err != nil {
		apiErr = &APIError{StatusCode: resp.StatusCode, Messages: []string{statusText(resp)}}
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = resp.StatusCode
	}
	return apiErr
}

// statusText matches the reason phrase a browser reports, e.g. "Bad Gateway".
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
