// Package core is the HTTP runtime generated projects talk to their backend
// with. Responses use the BaseResponse envelope; the client unwraps the data
// payload and turns failures into *APIError.
package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a request when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// RequestIDHeader is set on every request that does not carry one already.
const RequestIDHeader = "X-Request-Id"

// Config configures a Client. The zero value talks to relative URLs with
// a ten second timeout and success code 0.
type Config struct {
	BaseURL string
	// Timeout bounds each request; negative disables it.
	Timeout time.Duration
	// Headers are sent with every request. Defaults to a JSON content type.
	Headers     map[string]string
	SuccessCode int
	HTTPClient  *http.Client
	// RequestHook runs on each request before it is sent, e.g. to add auth.
	RequestHook func(*http.Request) error
	Logger      *slog.Logger
}

// Client sends requests and decodes enveloped responses.
type Client struct {
	baseURL     string
	timeout     time.Duration
	headers     map[string]string
	successCode int
	http        *http.Client
	hook        func(*http.Request) error
	log         *slog.Logger
}

// NewClient returns a Client for cfg.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		timeout:     cfg.Timeout,
		headers:     cfg.Headers,
		successCode: cfg.SuccessCode,
		http:        cfg.HTTPClient,
		hook:        cfg.RequestHook,
		log:         cfg.Logger,
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if c.headers == nil {
		c.headers = map[string]string{"Content-Type": "application/json"}
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}

// URL joins a request path onto the base URL. Absolute URLs pass through.
func (c *Client) URL(path string) string {
	if c.baseURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends a request with an optional JSON body and decodes the unwrapped
// payload into out, which may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if c.hook != nil {
		if err := c.hook(req); err != nil {
			return fmt.Errorf("request hook: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "url", req.URL.String(), "err", err)
		return &APIError{Code: TransportCode, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Code: TransportCode, Message: err.Error(), Err: err}
	}
	c.log.Debug("request done", "method", method, "url", req.URL.String(), "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, raw)
	}
	return c.decode(raw, out)
}

func (c *Client) decode(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Code != nil {
			if *env.Code != c.successCode {
				return &APIError{Code: *env.Code, Message: env.Message}
			}
			return unmarshal(env.Data, out)
		}
	}
	return unmarshal(trimmed, out)
}

func unmarshal(data []byte, out any) error {
	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// statusError builds the APIError for an HTTP error status, taking the
// message from a JSON body when it has one.
func statusError(status int, raw []byte) error {
	apiErr := &APIError{Code: status, Message: http.StatusText(status)}
	if len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var details any
	if err := json.Unmarshal(raw, &details); err != nil {
		apiErr.Details = string(raw)
		return apiErr
	}
	apiErr.Details = details
	if m, ok := details.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

// ─── Typed helpers ───────────────────────────────────────────────────

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.Do(ctx, method, path, body, &out)
	return out, err
}

// Get fetches path and decodes the payload as T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return send[T](ctx, c, http.MethodGet, path, nil)
}

// Post sends body to path and decodes the payload as T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPost, path, body)
}

// Put replaces the resource at path.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPut, path, body)
}

// Patch partially updates the resource at path.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return send[T](ctx, c, http.MethodPatch, path, body)
}

// Delete removes the resource at path.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	return send[T](ctx, c, http.MethodDelete, path, nil)
}

// PageURL adds page and pageSize query parameters to path.
func PageURL(path string, page, pageSize int) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d&pageSize=%d", path, sep, page, pageSize)
}

// Paginate fetches one page of a list endpoint.
func Paginate[T any](ctx context.Context, c *Client, path string, page, pageSize int) (*Pagination[T], error) {
	p, err := Get[Pagination[T]](ctx, c, PageURL(path, page, pageSize))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// IsAPIError reports whether err carries an *APIError with the given code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
