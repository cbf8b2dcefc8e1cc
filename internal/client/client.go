// Package client is a typed HTTP client for the SDG Knowledge System REST
// API. Paths are relative to the configured base URL, which always ends in
// a slash.
package client

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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "sdg-knowledge/internal/errors"
)

// RequestIDHeader carries a per-request UUID for server-side correlation.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is read for decoding.
const maxErrorBody = 64 << 10

// TokenSource supplies the current auth token. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource with a fixed value.
type StaticToken string

// Token returns the fixed value.
func (s StaticToken) Token() string { return string(s) }

// Client talks JSON to the API.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	authScheme string
	tokens     TokenSource
}

// New creates a Client for baseURL. authScheme prefixes the token in the
// Authorization header ("Token" for the default backend).
func New(baseURL, authScheme string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	return NewWithHTTPClient(baseURL, authScheme, &http.Client{Timeout: timeout}, tokens)
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
// Tests use it to point at an httptest.Server.
func NewWithHTTPClient(baseURL, authScheme string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    parsed,
		authScheme: authScheme,
		tokens:     tokens,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Authenticated reports whether a token is available.
func (c *Client) Authenticated() bool {
	return c.tokens.Token() != ""
}

// Response is a completed API call with its raw body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Do sends a request and returns the raw response. Non-2xx statuses are
// returned as *errors.APIError with the decoded body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Response, error) {
	target, err := c.resolve(path, query)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", c.authScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"latency":    time.Since(start),
	}).Debug("API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, DecodeAPIError(resp.StatusCode, data)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// Get fetches path and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the response into out (nil skips).
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends body as JSON and decodes the response into out (nil skips).
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.call(ctx, http.MethodPut, path, nil, body, out)
}

// GetRaw fetches path and returns the body undecoded, for callers that
// normalize several response shapes.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := decode(resp.Body, out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}
	target := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		q := target.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}
	return target.String(), nil
}

// DecodeAPIError builds an APIError from a failed response body. The
// backend answers with {"detail": "..."}, {"message": "..."} or
// {"error": "..."} for general failures and with {"field": ["msg", ...]}
// for validation failures.
func DecodeAPIError(status int, body []byte) *apperrors.APIError {
	apiErr := &apperrors.APIError{StatusCode: status}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return apiErr
	}

	for _, key := range messageKeys {
		var s string
		if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil {
			apiErr.Message = s
			break
		}
	}

	for key, raw := range obj {
		if key == "statusCode" || isMessageKey(key) {
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) != nil {
			var single string
			if json.Unmarshal(raw, &single) != nil {
				continue
			}
			list = []string{single}
		}
		if apiErr.Fields == nil {
			apiErr.Fields = make(map[string][]string)
		}
		apiErr.Fields[key] = list
	}
	return apiErr
}

// messageKeys are checked in order for a general error message.
var messageKeys = []string{"detail", "message", "error"}

func isMessageKey(key string) bool {
	for _, k := range messageKeys {
		if k == key {
			return true
		}
	}
	return false
}

func decode(body []byte, out interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnexpectedBody, err)
	}
	return nil
}

// pathSegment escapes a single path element.
func pathSegment(s string) string {
	return url.PathEscape(s)
}
