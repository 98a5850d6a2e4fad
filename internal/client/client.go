// Package client is a typed Go client of the church portal HTTP API. Reads are
// memoized per request URL until a write on the same entity succeeds.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/daniilsolovey/church-portal/internal/contract"
)

// APIError is a non-2xx response of the API.
type APIError struct {
	Status  int
	Message string
	Field   string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Its Jar is set when nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		cache:   make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

// Invalidate drops cached reads whose URL starts with any of prefixes.
func (c *Client) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.cache {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.cache, key)
				break
			}
		}
	}
}

func (c *Client) cached(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, ok := c.cache[key]
	return body, ok
}

func (c *Client) store(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = body
}

// read performs a GET through the cache and decodes the body into out.
func (c *Client) read(ctx context.Context, path string, out any) error {
	if body, ok := c.cached(path); ok {
		return json.Unmarshal(body, out)
	}

	body, err := c.send(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	c.store(path, body)
	return nil
}

// write sends a JSON body, decodes the response into out when non-nil and
// invalidates cached reads under prefixes.
func (c *Client) write(ctx context.Context, op contract.Operation, params map[string]any, in, out any, prefixes ...string) error {
	var payload io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", op.Name, err)
		}
		payload = bytes.NewReader(b)
		contentType = "application/json"
	}

	body, err := c.send(ctx, op.Method, op.URL(params), contentType, payload)
	if err != nil {
		return err
	}

	c.Invalidate(prefixes...)

	if out == nil {
		return nil
	}
	if err := decodeJSON(body, out); err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	return nil
}

func decodeJSON(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path, contentType string, payload io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var resp contract.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		apiErr.Message = resp.Message
		apiErr.Field = resp.Field
	}

	return apiErr
}

// validateInput reports contract violations as a 400 APIError without a round trip.
func validateInput(v any) error {
	if err := contract.Validate(v); err != nil {
		var verr *contract.ValidationError
		if errors.As(err, &verr) {
			return &APIError{Status: http.StatusBadRequest, Message: verr.Message, Field: verr.Field}
		}
		return err
	}

	return nil
}

func validateOne(v any) error {
	if err := contract.Validate(v); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}

	return nil
}

func validateList[T any](list []T) error {
	if err := contract.ValidateAll(list); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}

	return nil
}
